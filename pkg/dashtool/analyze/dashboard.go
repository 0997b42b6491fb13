// SPDX-License-Identifier: AGPL-3.0-only

// Package analyze reports the metrics a converted dashboard queries.
package analyze

import (
	"fmt"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/grafana/regexp"
	"github.com/pkg/errors"
	"github.com/prometheus/common/model"
	"github.com/prometheus/prometheus/promql/parser"
	"golang.org/x/exp/slices"

	"github.com/n9e/dashtool/pkg/dashtool/dashboard"
)

var (
	lvRegexp                     = regexp.MustCompile(`(?s)label_values\((.+),.+\)`)
	lvNoQueryRegexp              = regexp.MustCompile(`(?s)label_values\((.+)\)`)
	qrRegexp                     = regexp.MustCompile(`(?s)query_result\((.+)\)`)
	validMetricName              = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_:]*$`)
	variableRangeQueryRangeRegex = regexp.MustCompile(`\[\$?\w+?]`)
	variableSubqueryRangeRegex   = regexp.MustCompile(`\[\$?\w+:\$?\w+?]`)
	// The converter already rewrote $__interval and $__rate_interval, the rest are left in place.
	variableReplacer = strings.NewReplacer(
		"$interval", "5m",
		"$resolution", "5s",
		"$rate_interval", "15s",
		"$__range", "1d",
		"${__range_s:glob}", "30",
		"${__range_s}", "30",
	)
)

type MetricsInDashboards struct {
	MetricsUsed    model.LabelValues   `json:"metricsUsed"`
	OverallMetrics map[string]struct{} `json:"-"`
	Dashboards     []DashboardMetrics  `json:"dashboards"`
}

func NewMetricsInDashboards() *MetricsInDashboards {
	return &MetricsInDashboards{OverallMetrics: map[string]struct{}{}}
}

type DashboardMetrics struct {
	Name        string   `json:"name"`
	Metrics     []string `json:"metrics"`
	ParseErrors []string `json:"parse_errors"`
}

// Finish sorts the metrics used across all the analyzed dashboards into MetricsUsed.
func (m *MetricsInDashboards) Finish() {
	m.MetricsUsed = m.MetricsUsed[:0]
	for metric := range m.OverallMetrics {
		m.MetricsUsed = append(m.MetricsUsed, model.LabelValue(metric))
	}
	slices.Sort(m.MetricsUsed)
}

// ParseMetricsInDashboard collects the metrics queried by the panels and the query variables of d.
func ParseMetricsInDashboard(mid *MetricsInDashboards, d *dashboard.Dashboard, logger log.Logger) {
	var parseErrors []error
	metrics := make(map[string]struct{})

	d.Walk(func(p dashboard.Panel, _ []*dashboard.RowPanel) {
		chart, ok := p.(*dashboard.ChartPanel)
		if !ok {
			return
		}
		parseErrors = append(parseErrors, metricsFromPanel(chart, metrics, logger)...)
	})

	parseErrors = append(parseErrors, metricsFromVariables(d.Configs.Var, metrics, logger)...)

	parseErrs := make([]string, 0, len(parseErrors))
	for _, err := range parseErrors {
		parseErrs = append(parseErrs, err.Error())
	}

	metricsInBoard := make([]string, 0, len(metrics))
	for metric := range metrics {
		if metric == "" {
			continue
		}

		metricsInBoard = append(metricsInBoard, metric)
		mid.OverallMetrics[metric] = struct{}{}
	}
	slices.Sort(metricsInBoard)

	mid.Dashboards = append(mid.Dashboards, DashboardMetrics{
		Name:        d.Name,
		Metrics:     metricsInBoard,
		ParseErrors: parseErrs,
	})
}

func metricsFromVariables(vars []dashboard.Variable, metrics map[string]struct{}, logger log.Logger) []error {
	parseErrors := []error{}
	for _, v := range vars {
		qv, ok := v.(*dashboard.QueryVariable)
		if !ok {
			continue
		}
		query := qv.Definition

		// label_values(query, label)
		if lvRegexp.MatchString(query) {
			sm := lvRegexp.FindStringSubmatch(query)
			if len(sm) > 0 {
				query = sm[1]
			} else {
				continue
			}
		} else if lvNoQueryRegexp.MatchString(query) {
			// No query so no metric.
			continue
		} else if qrRegexp.MatchString(query) {
			// query_result(query)
			query = qrRegexp.FindStringSubmatch(query)[1]
		}
		if err := parseQuery(query, metrics); err != nil {
			parseErrors = append(parseErrors, errors.Wrapf(err, "variable=%v query=%v", qv.Name, query))
			level.Debug(logger).Log("msg", "promql parse error", "err", err, "query", query)
		}
	}
	return parseErrors
}

func metricsFromPanel(panel *dashboard.ChartPanel, metrics map[string]struct{}, logger log.Logger) []error {
	var parseErrors []error

	for _, target := range panel.Targets {
		if target.Expr == "" {
			continue
		}
		err := parseQuery(target.Expr, metrics)
		if err != nil {
			parseErrors = append(parseErrors, errors.Wrapf(err, "panel=%v query=%v", panel.Name, target.Expr))
			level.Debug(logger).Log("msg", "promql parse error", "err", err, "query", target.Expr)
			continue
		}
	}

	return parseErrors
}

func replaceVariables(query string) string {
	query = variableReplacer.Replace(query)
	query = variableRangeQueryRangeRegex.ReplaceAllLiteralString(query, `[5m]`)
	query = variableSubqueryRangeRegex.ReplaceAllLiteralString(query, `[5m:1m]`)
	return query
}

func parseQuery(query string, metrics map[string]struct{}) error {
	expr, err := parser.ParseExpr(replaceVariables(query))
	if err != nil {
		return err
	}

	parser.Inspect(expr, func(node parser.Node, _ []parser.Node) error {
		if n, ok := node.(*parser.VectorSelector); ok {
			// VectorSelector has .Name when it's explicitly set as `name{...}`.
			// Otherwise we need to look into the matchers.
			if n.Name != "" {
				metrics[n.Name] = struct{}{}
				return nil
			}
			for _, m := range n.LabelMatchers {
				if m.Name == model.MetricNameLabel && validMetricName.MatchString(m.Value) {
					metrics[m.Value] = struct{}{}
					return nil
				}
			}
		}

		return nil
	})

	return nil
}

// String renders a one line summary, used when logging the result.
func (m DashboardMetrics) String() string {
	return fmt.Sprintf("%s: %d metrics, %d parse errors", m.Name, len(m.Metrics), len(m.ParseErrors))
}
