// Package dashboards builds the Grafana dashboards shipped with cloudtags.
// The panels read the metrics written by -metrics.textfile once a node
// exporter textfile collector has picked them up.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
)

func BuildDashboards() []*dashboard.DashboardBuilder {
	return []*dashboard.DashboardBuilder{
		OperationsDashboard(),
	}
}
