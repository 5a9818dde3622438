// Package cloudtags holds the names shared by the command and its metrics.
package cloudtags

const (
	ToolName     = "cloudtags"
	MetricPrefix = "cloudtags"
)
