package rest

import (
	"net/http"

	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/handler/render"
	"github.com/y4hyya/Stellend/handler/views"
)

func pricesHandler(oracle core.IOracleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		prices, err := oracle.Prices(ctx)
		if err != nil {
			render.Error(w, err)
			return
		}

		list := make([]views.Price, 0, len(prices))
		for _, p := range prices {
			stale, err := oracle.IsStale(ctx, p.Symbol)
			if err != nil {
				render.Error(w, err)
				return
			}

			list = append(list, views.PriceView(p, stale))
		}

		render.JSON(w, list)
	}
}
