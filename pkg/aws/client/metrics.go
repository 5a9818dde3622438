package client

import (
	"context"

	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/smithy-go/middleware"
	"github.com/prometheus/client_golang/prometheus"

	cloudtags "github.com/grafana/cloudtags"
)

const (
	subsystem           = "aws"
	metricsMiddlewareID = "cloudtagsRequestMetrics"
)

type Metrics struct {
	// RequestCount tracks the number of AWS API calls by service and operation.
	RequestCount *prometheus.CounterVec

	// RequestErrorsCount tracks the number of AWS API calls that returned an error.
	RequestErrorsCount *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		RequestCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prometheus.BuildFQName(cloudtags.MetricPrefix, subsystem, "api_requests_total"),
			Help: "Total number of requests made to AWS APIs",
		},
			[]string{"service", "operation"},
		),

		RequestErrorsCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prometheus.BuildFQName(cloudtags.MetricPrefix, subsystem, "api_request_errors_total"),
			Help: "Total number of errors returned by AWS APIs",
		},
			[]string{"service", "operation"},
		),
	}
}

func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.RequestCount, m.RequestErrorsCount}
}

// AddMiddleware registers the request counter ahead of the SDK retryer, so
// each operation is counted once regardless of retry attempts.
func (m *Metrics) AddMiddleware(stack *middleware.Stack) error {
	return stack.Finalize.Add(middleware.FinalizeMiddlewareFunc(metricsMiddlewareID, m.handleFinalize), middleware.Before)
}

func (m *Metrics) handleFinalize(ctx context.Context, in middleware.FinalizeInput, next middleware.FinalizeHandler) (middleware.FinalizeOutput, middleware.Metadata, error) {
	service := awsmiddleware.GetServiceID(ctx)
	operation := awsmiddleware.GetOperationName(ctx)

	m.RequestCount.WithLabelValues(service, operation).Inc()
	out, md, err := next.HandleFinalize(ctx, in)
	if err != nil {
		m.RequestErrorsCount.WithLabelValues(service, operation).Inc()
	}
	return out, md, err
}
