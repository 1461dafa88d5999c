package rest

import (
	"net/http"

	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/handler/param"
	"github.com/y4hyya/Stellend/handler/render"
	"github.com/y4hyya/Stellend/handler/views"
)

func accountHandler(pool core.IPoolService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			User string `json:"user" valid:"required"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		account, err := pool.Account(r.Context(), params.User)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.AccountView(account))
	}
}
