package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/handler/render"
)

// Handle handle rest api request
func Handle(pool core.IPoolService, oracle core.IOracleService, transactionStr core.ITransactionStore) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/markets", allMarketsHandler(pool))
	router.Get("/markets/{symbol}", marketHandler(pool))
	router.Get("/accounts/{user}", accountHandler(pool))
	router.Get("/accounts/{user}/transactions", transactionsHandler(transactionStr))
	router.Get("/prices", pricesHandler(oracle))

	return router
}
