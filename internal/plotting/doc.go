// Package plotting renders sensitivity figures: stacked PNG panels with
// gonum/plot for reports, and an interactive HTML page with go-echarts.
package plotting
