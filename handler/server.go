package handler

import (
	"net/http"

	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/handler/rest"
)

// Server server
type Server struct {
	pool         core.IPoolService
	oracle       core.IOracleService
	transactions core.ITransactionStore
}

// New new server function
func New(pool core.IPoolService, oracle core.IOracleService, transactionStr core.ITransactionStore) Server {
	return Server{
		pool:         pool,
		oracle:       oracle,
		transactions: transactionStr,
	}
}

// HandleRestAPI handle restful apis
func (s Server) HandleRestAPI() http.Handler {
	return rest.Handle(s.pool, s.oracle, s.transactions)
}
