package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

const operationsUID = "cloudtags-operations"

func OperationsDashboard() *dashboard.DashboardBuilder {
	return dashboard.NewDashboardBuilder("Cloudtags Operations Dashboard").
		Uid(operationsUID).
		Tags([]string{"cloudtags", "aws"}).
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		Refresh("5m").
		Time("now-7d", "now").
		WithVariable(dashboard.NewDatasourceVariableBuilder("datasource").
			Label("Data Source").
			Type("prometheus"),
		).
		WithVariable(dashboard.NewQueryVariableBuilder("service").
			Label("Service").
			Query(dashboard.StringOrMap{
				String: cog.ToPtr("label_values(cloudtags_lister_resources_total, service)"),
			}).
			Datasource(prometheusDatasourceRef()).
			Multi(true).
			Refresh(dashboard.VariableRefreshOnDashboardLoad).
			IncludeAll(true).
			AllValue(".*"),
		).
		WithRow(dashboard.NewRowBuilder("Listing")).
		WithPanel(resourcesByService().Height(6).Span(12)).
		WithPanel(lastRunErrors().Height(6).Span(12)).
		WithPanel(resourcesByRegionOverTime().Height(8).Span(24)).
		WithPanel(listerDurationOverTime().Height(8).Span(24)).
		WithRow(dashboard.NewRowBuilder("AWS API")).
		WithPanel(awsRequestsByOperation().Height(8).Span(12)).
		WithPanel(awsRequestErrorsByOperation().Height(8).Span(12))
}

func prometheusDatasourceRef() dashboard.DataSourceRef {
	return dashboard.DataSourceRef{
		Type: cog.ToPtr[string]("prometheus"),
		Uid:  cog.ToPtr[string]("${datasource}"),
	}
}

func prometheusQuery(expression string, legendFormat string) *prometheus.DataqueryBuilder {
	return prometheus.NewDataqueryBuilder().
		Expr(expression).
		Range().
		LegendFormat(legendFormat)
}

func tableLegend() *common.VizLegendOptionsBuilder {
	return common.NewVizLegendOptionsBuilder().
		DisplayMode(common.LegendDisplayModeTable).
		Placement(common.LegendPlacementBottom).
		ShowLegend(true).
		SortBy("Last *").
		SortDesc(true).
		Calcs([]string{"lastNotNull", "min", "max"})
}

func resourcesByService() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Tagged Resources").
		Description("Resources printed by the last run, per service.").
		Datasource(prometheusDatasourceRef()).
		Unit("short").
		WithTarget(
			prometheusQuery(`sum by (service) (cloudtags_lister_resources_total{service=~"$service"})`, "{{service}}").
				Instant(),
		).
		JustifyMode(common.BigValueJustifyModeAuto).
		TextMode(common.BigValueTextModeAuto).
		Orientation(common.VizOrientationAuto).
		ReduceOptions(common.NewReduceDataOptionsBuilder().
			Values(false).
			Calcs([]string{"lastNotNull"}),
		)
}

// The textfile is rewritten on every run, so the error count of the last run
// is the current value of the counter rather than its rate.
func lastRunErrors() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Failed Listings").
		Description("Service and region pairs that failed in the last run. A run stops at the first failure.").
		Datasource(prometheusDatasourceRef()).
		Unit("short").
		WithTarget(
			prometheusQuery(`sum by (service) (cloudtags_lister_duration_seconds_count{is_error="true", service=~"$service"})`, "{{service}}").
				Instant(),
		).
		ReduceOptions(common.NewReduceDataOptionsBuilder().
			Values(false).
			Calcs([]string{"lastNotNull"}),
		).
		Thresholds(dashboard.NewThresholdsConfigBuilder().
			Mode(dashboard.ThresholdsModeAbsolute).
			Steps([]dashboard.Threshold{
				{Color: "green"},
				{Value: cog.ToPtr[float64](1), Color: "red"},
			}),
		)
}

func resourcesByRegionOverTime() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Resources by Region").
		Datasource(prometheusDatasourceRef()).
		WithTarget(
			prometheusQuery(`sum by (service, region) (cloudtags_lister_resources_total{service=~"$service"})`, "{{service}}:{{region}}"),
		).
		Unit("short").
		ColorScheme(dashboard.NewFieldColorBuilder().Mode("palette-classic")).
		Legend(tableLegend())
}

func listerDurationOverTime() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Listing Duration").
		Description("Average time spent listing one region of a service.").
		Datasource(prometheusDatasourceRef()).
		WithTarget(
			prometheusQuery(
				`sum by (service) (cloudtags_lister_duration_seconds_sum{service=~"$service"}) / sum by (service) (cloudtags_lister_duration_seconds_count{service=~"$service"})`,
				"{{service}}",
			),
		).
		Unit("s").
		ThresholdsStyle(common.NewGraphThresholdsStyleConfigBuilder().Mode(common.GraphThresholdsStyleModeLine)).
		Thresholds(dashboard.NewThresholdsConfigBuilder().
			Mode(dashboard.ThresholdsModeAbsolute).
			Steps([]dashboard.Threshold{
				{Color: "green"},
				{Value: cog.ToPtr[float64](60), Color: "red"},
			}),
		).
		ColorScheme(dashboard.NewFieldColorBuilder().Mode("palette-classic")).
		Legend(tableLegend())
}

func awsRequestsByOperation() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("AWS API Requests").
		Description("Requests sent per run, including retries made by the SDK.").
		Datasource(prometheusDatasourceRef()).
		WithTarget(
			prometheusQuery("sum by (service, operation) (cloudtags_aws_api_requests_total)", "{{service}}:{{operation}}"),
		).
		Unit("short").
		Legend(tableLegend())
}

func awsRequestErrorsByOperation() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("AWS API Errors").
		Datasource(prometheusDatasourceRef()).
		WithTarget(
			prometheusQuery("sum by (service, operation) (cloudtags_aws_api_request_errors_total)", "{{service}}:{{operation}}"),
		).
		Unit("short").
		Legend(tableLegend())
}
