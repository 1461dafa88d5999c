package pool

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/y4hyya/Stellend/core"
)

var (
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stellend",
		Subsystem: "pool",
		Name:      "operations_total",
		Help:      "Pool operations by action and result code.",
	}, []string{"action", "result"})
)

func observe(action core.ActionType, err error) {
	result := "ok"
	if err != nil {
		var code core.ErrorCode
		if errors.As(err, &code) {
			result = code.String()
		} else {
			result = "internal"
		}
	}

	operationsTotal.WithLabelValues(action.String(), result).Inc()
}
