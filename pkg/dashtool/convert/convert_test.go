// SPDX-License-Identifier: AGPL-3.0-only

package convert

import (
	"os"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n9e/dashtool/pkg/dashtool/dashboard"
	"github.com/n9e/dashtool/pkg/dashtool/grafana"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestConverter() *Converter {
	return New(NewSequenceGenerator("id-"), nil, nil)
}

func mustConvertJSON(t *testing.T, c *Converter, doc string) dashboard.Dashboard {
	t.Helper()
	d, err := c.ConvertJSON([]byte(doc))
	require.NoError(t, err)
	return d
}

func TestConvert_EndToEnd(t *testing.T) {
	doc := `{
		"title": "T",
		"links": [],
		"templating": {"list": []},
		"panels": [{
			"type": "timeseries",
			"title": "P1",
			"gridPos": {"x": 0, "y": 0, "w": 12, "h": 8},
			"targets": [{"refId": "A", "expr": "rate(x[$__rate_interval])"}],
			"fieldConfig": {"defaults": {"unit": "percent"}},
			"options": {}
		}]
	}`

	d := mustConvertJSON(t, newTestConverter(), doc)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"version": "2.0.0",
		"name": "T",
		"configs": {
			"version": "2.0.0",
			"links": [],
			"var": [],
			"panels": [{
				"version": "2.0.0",
				"id": "id-1",
				"type": "timeseries",
				"name": "P1",
				"links": [],
				"layout": {"x": 0, "y": 0, "w": 12, "h": 8, "i": "id-1"},
				"targets": [{"refId": "A", "expr": "rate(x[5m])"}],
				"options": {
					"thresholds": {"style": "line", "steps": []},
					"standardOptions": {"util": "percent"},
					"legend": {"displayMode": "list"},
					"tooltip": {"mode": "multi"}
				},
				"custom": {
					"version": "2.0.0",
					"drawStyle": "lines",
					"lineInterpolation": "linear",
					"fillOpacity": 0.5,
					"stack": "off"
				}
			}]
		}
	}`, string(out))
}

func TestConvert_StructuralErrors(t *testing.T) {
	tests := map[string]struct {
		doc         string
		expectedErr error
	}{
		"not an object":      {doc: `"dashboard"`, expectedErr: grafana.ErrNotObject},
		"missing panels":     {doc: `{"title": "T", "templating": {"list": []}}`, expectedErr: grafana.ErrMissingPanels},
		"missing templating": {doc: `{"title": "T", "panels": []}`, expectedErr: grafana.ErrMissingTemplating},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := newTestConverter().ConvertJSON([]byte(tc.doc))
			require.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestConvert_IdempotentUpToIDs(t *testing.T) {
	doc := `{
		"title": "T",
		"links": [{"type": "link", "title": "docs", "url": "https://example.com", "targetBlank": true}],
		"templating": {"list": [{"type": "query", "name": "job", "query": "label_values(up, job)"}]},
		"panels": [
			{"type": "row", "title": "R", "collapsed": true, "panels": [
				{"type": "stat", "title": "S", "targets": [{"refId": "A", "expr": "up"}]}
			]},
			{"type": "gauge", "title": "G"}
		]
	}`

	first, err := json.Marshal(mustConvertJSON(t, newTestConverter(), doc))
	require.NoError(t, err)
	second, err := json.Marshal(mustConvertJSON(t, newTestConverter(), doc))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	// With random ids only the ids differ.
	a := mustConvertJSON(t, New(nil, nil, nil), doc)
	b := mustConvertJSON(t, New(nil, nil, nil), doc)
	assert.NotEqual(t, a.Configs.Panels[0].PanelID(), b.Configs.Panels[0].PanelID())
	assert.Equal(t, a.Name, b.Name)
	assert.Equal(t, a.Configs.Var, b.Configs.Var)
	assert.Equal(t, a.Configs.Links, b.Configs.Links)
}

func TestConvert_UniqueIDs(t *testing.T) {
	doc := `{
		"templating": {"list": []},
		"panels": [
			{"type": "row", "panels": [{"type": "stat"}, {"type": "row", "panels": [{"type": "text"}, {"type": "gauge"}]}]},
			{"type": "row", "panels": [{"type": "stat"}]},
			{"type": "piechart"}
		]
	}`

	d := mustConvertJSON(t, New(nil, nil, nil), doc)

	seen := map[string]struct{}{}
	count := 0
	d.Walk(func(p dashboard.Panel, _ []*dashboard.RowPanel) {
		count++
		require.NotEmpty(t, p.PanelID())
		seen[p.PanelID()] = struct{}{}
	})
	assert.Equal(t, 8, count)
	assert.Len(t, seen, count)
}

func TestConvert_TreeShape(t *testing.T) {
	doc := `{
		"templating": {"list": []},
		"panels": [
			{"type": "text", "title": "first"},
			{"type": "row", "title": "outer", "panels": [
				{"type": "stat", "title": "a"},
				{"type": "row", "title": "inner", "panels": [
					{"type": "row", "title": "innermost", "panels": [{"type": "gauge", "title": "deep"}]}
				]},
				{"type": "bargauge", "title": "b"}
			]},
			{"type": "text", "title": "last"}
		]
	}`

	d := mustConvertJSON(t, newTestConverter(), doc)

	type visit struct {
		name  string
		depth int
	}
	var visits []visit
	d.Walk(func(p dashboard.Panel, parents []*dashboard.RowPanel) {
		switch v := p.(type) {
		case *dashboard.RowPanel:
			visits = append(visits, visit{v.Name, len(parents)})
		case *dashboard.ChartPanel:
			visits = append(visits, visit{v.Name, len(parents)})
		}
	})

	assert.Equal(t, []visit{
		{"first", 0},
		{"outer", 0},
		{"a", 1},
		{"inner", 1},
		{"innermost", 2},
		{"deep", 3},
		{"b", 1},
		{"last", 0},
	}, visits)
}

func TestConvert_DropRule(t *testing.T) {
	doc := `{
		"templating": {"list": []},
		"panels": [
			{"type": "timeseries", "title": "missing expr", "targets": [{"refId": "A"}]},
			{"type": "timeseries", "title": "one missing", "targets": [{"refId": "A", "expr": "up"}, {"refId": "B", "expr": ""}]},
			{"type": "timeseries", "title": "no targets", "targets": []},
			{"type": "timeseries", "title": "absent targets"},
			{"type": "row", "title": "row", "panels": [
				{"type": "stat", "title": "nested missing", "targets": [{"refId": "A", "datasource": "loki"}]},
				{"type": "stat", "title": "nested ok", "targets": [{"refId": "A", "expr": "up"}]}
			]}
		]
	}`

	reg := prometheus.NewPedanticRegistry()
	d := mustConvertJSON(t, New(NewSequenceGenerator(""), nil, reg), doc)

	var names []string
	d.Walk(func(p dashboard.Panel, _ []*dashboard.RowPanel) {
		switch v := p.(type) {
		case *dashboard.RowPanel:
			names = append(names, v.Name)
		case *dashboard.ChartPanel:
			names = append(names, v.Name)
		}
	})
	assert.Equal(t, []string{"no targets", "absent targets", "row", "nested ok"}, names)

	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
		# HELP dashtool_dropped_panels_total Total number of panels dropped because a target had no expression.
		# TYPE dashtool_dropped_panels_total counter
		dashtool_dropped_panels_total 3
	`), "dashtool_dropped_panels_total"))
}

func TestConvert_RowCollapseInversion(t *testing.T) {
	tests := map[string]struct {
		collapsed string
		expected  bool
	}{
		"collapsed":     {collapsed: `"collapsed": true,`, expected: false},
		"expanded":      {collapsed: `"collapsed": false,`, expected: true},
		"flag is unset": {collapsed: ``, expected: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			doc := `{"templating": {"list": []}, "panels": [{"type": "row", ` + tc.collapsed + ` "gridPos": {"x": 0, "y": 3, "w": 24, "h": 1}, "panels": []}]}`
			d := mustConvertJSON(t, newTestConverter(), doc)

			require.Len(t, d.Configs.Panels, 1)
			row, ok := d.Configs.Panels[0].(*dashboard.RowPanel)
			require.True(t, ok)
			assert.Equal(t, tc.expected, row.Collapsed)
			assert.Equal(t, dashboard.PanelTypeRow, row.Type)
			assert.Equal(t, []dashboard.Panel{}, row.Panels)
			assert.Equal(t, dashboard.Layout{X: 0, Y: 3, W: 24, H: 1, I: row.ID}, row.Layout)
		})
	}
}

func TestConvert_Targets(t *testing.T) {
	doc := `{"templating": {"list": []}, "panels": [{"type": "timeseries", "targets": [
		{"refId": "A", "expr": "sum(rate(a[$__rate_interval]))", "legendFormat": "{{instance}}"},
		{"refId": "B", "expr": "rate(b[$__interval])", "hide": true},
		{"refId": "C", "expr": "rate(c[$__interval]) / rate(d[$__rate_interval])"},
		{"refId": "D", "expr": "rate(e[$interval])"}
	]}]}`

	d := mustConvertJSON(t, newTestConverter(), doc)

	chart := d.Configs.Panels[0].(*dashboard.ChartPanel)
	assert.Equal(t, []dashboard.Target{
		{RefID: "A", Expr: "sum(rate(a[5m]))", Legend: "{{instance}}"},
		{RefID: "C", Expr: "rate(c[5m]) / rate(d[5m])"},
		{RefID: "D", Expr: "rate(e[$interval])"},
	}, chart.Targets)
}

func TestConvert_UnknownPanelType(t *testing.T) {
	doc := `{"templating": {"list": []}, "panels": [{"type": "grafana-polystat-panel", "title": "poly", "targets": [{"expr": "up"}]}]}`

	d := mustConvertJSON(t, newTestConverter(), doc)

	require.Len(t, d.Configs.Panels, 1)
	chart := d.Configs.Panels[0].(*dashboard.ChartPanel)
	assert.Equal(t, dashboard.PanelTypeUnknown, chart.Type)
	assert.Equal(t, dashboard.UnknownCustom{}, chart.Custom)
	assert.Equal(t, "poly", chart.Name)
	assert.Len(t, chart.Targets, 1)
}

func TestConvert_MistypedFields(t *testing.T) {
	buf, err := os.ReadFile("../grafana/testdata/mistyped.json")
	require.NoError(t, err)

	d, err := newTestConverter().ConvertJSON(buf)
	require.NoError(t, err)
	assert.Equal(t, "Mistyped fields", d.Name)

	require.Len(t, d.Configs.Links, 1)
	assert.Equal(t, "https://runbooks.example.com", d.Configs.Links[0].URL)

	require.Len(t, d.Configs.Var, 2)
	assert.Equal(t, &dashboard.CustomVariable{Type: dashboard.VariableTypeCustom, Name: "env", Definition: "prod,dev", AllValue: "1", Multi: true}, d.Configs.Var[0])
	job := d.Configs.Var[1].(*dashboard.QueryVariable)
	assert.Equal(t, "label_values(up, job)", job.Definition)

	require.Len(t, d.Configs.Panels, 4)

	stat := d.Configs.Panels[0].(*dashboard.ChartPanel)
	assert.Equal(t, dashboard.PanelTypeStat, stat.Type)
	assert.Equal(t, 7, stat.Layout.W)
	require.NotNil(t, stat.Options.StandardOptions)
	assert.Equal(t, dashboard.UnitNone, stat.Options.StandardOptions.Util)
	require.NotNil(t, stat.Options.StandardOptions.Min)
	assert.Equal(t, 0.0, *stat.Options.StandardOptions.Min)
	assert.Nil(t, stat.Options.StandardOptions.Max)

	graph := d.Configs.Panels[1].(*dashboard.ChartPanel)
	assert.Equal(t, dashboard.PanelTypeTimeseries, graph.Type)
	assert.Equal(t, dashboard.DefaultOptions(), graph.Options)
	require.Len(t, graph.Targets, 1)
	assert.Equal(t, "rate(x[5m])", graph.Targets[0].Expr)

	timeseries := d.Configs.Panels[2].(*dashboard.ChartPanel)
	custom := timeseries.Custom.(dashboard.TimeseriesCustom)
	assert.InDelta(t, 0.1, custom.FillOpacity, 1e-9)
	assert.Equal(t, "off", custom.Stack)
	require.Len(t, timeseries.Options.Thresholds.Steps, 3)
	assert.Equal(t, dashboard.StepTypeBase, timeseries.Options.Thresholds.Steps[0].Type)
	assert.Empty(t, timeseries.Options.Thresholds.Steps[1].Type)

	row := d.Configs.Panels[3].(*dashboard.RowPanel)
	assert.True(t, row.Collapsed)
	assert.Empty(t, row.Panels)
}

func TestConvert_Metrics(t *testing.T) {
	doc := `{
		"links": [{"type": "dashboards", "tags": ["k8s"]}, {"type": "link", "url": "https://example.com"}],
		"templating": {"list": [{"type": "datasource", "name": "ds"}, {"type": "interval", "name": "i"}, {"type": "custom", "name": "c"}]},
		"panels": [
			{"type": "row", "panels": [{"type": "graph"}, {"type": "timeseries"}]},
			{"type": "stat"},
			{"type": "news"}
		]
	}`

	reg := prometheus.NewPedanticRegistry()
	mustConvertJSON(t, New(nil, nil, reg), doc)

	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
		# HELP dashtool_converted_dashboards_total Total number of Grafana dashboards converted.
		# TYPE dashtool_converted_dashboards_total counter
		dashtool_converted_dashboards_total 1
		# HELP dashtool_converted_panels_total Total number of panels converted, by N9E panel type.
		# TYPE dashtool_converted_panels_total counter
		dashtool_converted_panels_total{type="row"} 1
		dashtool_converted_panels_total{type="stat"} 1
		dashtool_converted_panels_total{type="timeseries"} 2
		dashtool_converted_panels_total{type="unknown"} 1
		# HELP dashtool_dropped_links_total Total number of dashboard and panel links dropped because they are not plain links.
		# TYPE dashtool_dropped_links_total counter
		dashtool_dropped_links_total 1
		# HELP dashtool_dropped_variables_total Total number of dashboard variables dropped, by Grafana variable type.
		# TYPE dashtool_dropped_variables_total counter
		dashtool_dropped_variables_total{type="datasource"} 1
		dashtool_dropped_variables_total{type="interval"} 1
	`),
		"dashtool_converted_dashboards_total",
		"dashtool_converted_panels_total",
		"dashtool_dropped_links_total",
		"dashtool_dropped_variables_total",
	))
}

func TestConvert_PackageLevel(t *testing.T) {
	board, err := grafana.ParseBoard([]byte(`{"title": "T", "templating": {"list": []}, "panels": [{"type": "text", "options": {"content": "# hi"}}]}`))
	require.NoError(t, err)

	d := Convert(board)
	assert.Equal(t, "T", d.Name)
	assert.Equal(t, dashboard.Version, d.Version)
	assert.Equal(t, dashboard.Version, d.Configs.Version)
	chart := d.Configs.Panels[0].(*dashboard.ChartPanel)
	assert.Equal(t, dashboard.TextCustom{Version: dashboard.Version, Content: "# hi"}, chart.Custom)
}
