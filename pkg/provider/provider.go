package provider

import (
	"context"
	"io"

	"github.com/prometheus/client_golang/prometheus"
)

//go:generate mockgen -source=provider.go -destination mocks/provider.go

type Registry interface {
	prometheus.Registerer
	prometheus.Gatherer
}

// Lister enumerates the resources of one AWS service in a region and writes
// one line per resource with its tags to w.
type Lister interface {
	Name() string
	ListTags(ctx context.Context, region string, w io.Writer) error
}
