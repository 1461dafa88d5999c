// Package custody executes the transfers staged by pool operations.
package custody

import (
	"fmt"

	"github.com/y4hyya/Stellend/core"
)

const (
	// KindBook in process balance book
	KindBook = "book"
	// KindHTTP remote custody service
	KindHTTP = "http"
	// KindMixin mixin network wallet
	KindMixin = "mixin"
)

// New custody adapter by config kind, empty kind means book
func New(cfg core.Custody) (core.ICustody, error) {
	switch cfg.Kind {
	case "", KindBook:
		return NewBook(), nil
	case KindHTTP:
		return NewHTTP(cfg.Endpoint, cfg.Token)
	case KindMixin:
		return NewMixin(cfg.Mixin, cfg.Assets)
	}

	return nil, fmt.Errorf("unknown custody kind %q", cfg.Kind)
}
