package custody

import (
	"context"
	"fmt"
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/pkg/resthttp"
)

// HTTP posts every transfer to a remote custody service, the trace id is
// sent as the request id so retries are idempotent on the remote side
type HTTP struct {
	endpoint string
	token    string
}

// NewHTTP new http custody
func NewHTTP(endpoint, token string) (*HTTP, error) {
	if !govalidator.IsURL(endpoint) {
		return nil, fmt.Errorf("invalid custody endpoint %q", endpoint)
	}

	return &HTTP{endpoint: endpoint, token: token}, nil
}

type transferRequest struct {
	TraceID  string `json:"trace_id"`
	Symbol   string `json:"symbol"`
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Amount   string `json:"amount"`
	Memo     string `json:"memo,omitempty"`
}

func (h *HTTP) Transfer(ctx context.Context, t *core.Transfer) error {
	req := resthttp.WithRequestID(ctx, t.TraceID)
	if h.token != "" {
		req = req.SetAuthToken(h.token)
	}

	body := transferRequest{
		TraceID:  t.TraceID,
		Symbol:   t.Symbol,
		Sender:   t.Sender,
		Receiver: t.Receiver,
		Amount:   t.Amount.String(),
		Memo:     t.Memo,
	}

	_, err := resthttp.Execute(req, http.MethodPost, h.endpoint, body, nil)
	return err
}
