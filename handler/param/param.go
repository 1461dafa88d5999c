package param

import (
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi"
	"github.com/gorilla/schema"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.SetAliasTag("json")
	decoder.IgnoreUnknownKeys(true)
}

// Binding decode the query string and chi url params into v, then run the
// govalidator `valid` tags
func Binding(r *http.Request, v interface{}) error {
	values := r.URL.Query()
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			if key == "*" {
				continue
			}

			values.Set(key, rctx.URLParams.Values[i])
		}
	}

	if err := decoder.Decode(v, values); err != nil {
		return err
	}

	_, err := govalidator.ValidateStruct(v)
	return err
}
