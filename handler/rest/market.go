package rest

import (
	"net/http"
	"strings"

	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/handler/param"
	"github.com/y4hyya/Stellend/handler/render"
	"github.com/y4hyya/Stellend/handler/views"
)

func allMarketsHandler(pool core.IPoolService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		infos, err := pool.Markets(r.Context())
		if err != nil {
			render.Error(w, err)
			return
		}

		markets := make([]views.Market, 0, len(infos))
		for _, info := range infos {
			markets = append(markets, views.MarketView(info))
		}

		render.JSON(w, markets)
	}
}

func marketHandler(pool core.IPoolService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Symbol string `json:"symbol" valid:"required"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		info, err := pool.MarketInfo(r.Context(), strings.ToUpper(params.Symbol))
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.MarketView(info))
	}
}
