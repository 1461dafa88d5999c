package rest

import (
	"net/http"

	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/handler/param"
	"github.com/y4hyya/Stellend/handler/render"
	"github.com/y4hyya/Stellend/handler/views"
)

// response user transactions, paged by id
func transactionsHandler(transactionStr core.ITransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			User   string `json:"user" valid:"required"`
			Offset uint64 `json:"offset"`
			Limit  int    `json:"limit"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		limit := params.Limit
		if limit <= 0 || limit > 500 {
			limit = 100
		}

		transactions, err := transactionStr.ListByUser(r.Context(), params.User, params.Offset, limit)
		if err != nil {
			render.Error(w, err)
			return
		}

		list := make([]views.Transaction, 0, len(transactions))
		for _, t := range transactions {
			list = append(list, views.TransactionView(t))
		}

		render.JSON(w, list)
	}
}
