package codes

import (
	"errors"
	"net/http"

	"github.com/y4hyya/Stellend/core"
)

// InvalidArguments malformed request
const InvalidArguments = 100003

// Status http status of err, errors without a code are internal
func Status(err error) int {
	var code core.ErrorCode
	if !errors.As(err, &code) {
		return http.StatusInternalServerError
	}

	switch code {
	case core.ErrMarketNotFound:
		return http.StatusNotFound
	case core.ErrUnauthorized:
		return http.StatusUnauthorized
	case core.ErrConflict:
		return http.StatusConflict
	case core.ErrPriceUnavailable, core.ErrPriceStale:
		return http.StatusServiceUnavailable
	case core.ErrUnknown:
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}

// Get numeric code of err, 0 when err carries none
func Get(err error) int {
	var code core.ErrorCode
	if errors.As(err, &code) {
		return int(code)
	}

	return 0
}
