package dispatcher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatpay_dispatcher_requests_total",
		Help: "Requests sent to the payments backend by method and result",
	}, []string{"method", "result"})
	requestTimeHistogramVec = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chatpay_dispatcher_request_duration_seconds",
		Help:    "Time spent on one request to the payments backend including retries",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method"})
	inFlightGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chatpay_dispatcher_in_flight",
		Help: "Requests waiting for a reply from the payments backend",
	})
)

const (
	resultOK        = "ok"
	resultRejected  = "rejected"
	resultTransport = "transport_failure"
	resultParse     = "parse_error"
)
