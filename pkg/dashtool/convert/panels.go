// SPDX-License-Identifier: AGPL-3.0-only

package convert

import (
	"strings"

	"github.com/go-kit/log/level"

	"github.com/n9e/dashtool/pkg/dashtool/dashboard"
	"github.com/n9e/dashtool/pkg/dashtool/grafana"
)

// MacroWindow is the fixed range the Grafana interval macros are replaced with.
// The macros depend on the dashboard time range and are not evaluated.
const MacroWindow = "5m"

// Every occurrence of a macro is replaced, not only the first one.
var macroReplacer = strings.NewReplacer(
	"$__rate_interval", MacroWindow,
	"$__interval", MacroWindow,
)

// convertPanels converts a panel list, recursing into rows. Sibling order is kept.
func (c *Converter) convertPanels(panels []grafana.Panel) []dashboard.Panel {
	out := make([]dashboard.Panel, 0, len(panels))
	for _, p := range panels {
		if p.IsRow() {
			out = append(out, c.convertRow(p))
			continue
		}
		if p.HasIncompleteTargets() {
			level.Debug(c.logger).Log("msg", "dropping panel with a target without expression", "title", p.Title, "type", p.Type)
			c.metrics.droppedPanels.Inc()
			continue
		}
		out = append(out, c.convertChart(p))
	}
	return out
}

// convertRow inverts collapsed: in Grafana it means the content is hidden,
// in N9E it means the content is shown.
func (c *Converter) convertRow(p grafana.Panel) *dashboard.RowPanel {
	id := c.ids.NewID()
	row := dashboard.NewRowPanel(id, p.Title, !p.Collapsed, layoutOf(p.GridPos), c.convertPanels(p.SubPanels))
	c.metrics.convertedPanels.WithLabelValues(string(dashboard.PanelTypeRow)).Inc()
	return row
}

func (c *Converter) convertChart(p grafana.Panel) *dashboard.ChartPanel {
	kind, ok := LookupPanelKind(p.Type)
	if !ok {
		level.Debug(c.logger).Log("msg", "unsupported panel type, keeping it as unknown", "title", p.Title, "type", p.Type)
	}

	id := c.ids.NewID()
	chart := dashboard.NewChartPanel(id, p.Title, p.Description, layoutOf(p.GridPos), kind.Convert(p))
	chart.Links = c.convertLinks(p.Links)
	chart.Targets = convertTargets(p.Targets)
	chart.Options = c.convertOptions(p)

	c.metrics.convertedPanels.WithLabelValues(string(chart.Type)).Inc()
	return chart
}

func layoutOf(pos grafana.GridPos) dashboard.Layout {
	return dashboard.Layout{
		X:      pos.X,
		Y:      pos.Y,
		W:      pos.W,
		H:      pos.H,
		Static: pos.Static,
	}
}

// convertTargets drops hidden targets.
func convertTargets(targets []grafana.Target) []dashboard.Target {
	out := make([]dashboard.Target, 0, len(targets))
	for _, t := range targets {
		if t.Hide {
			continue
		}
		out = append(out, dashboard.Target{
			RefID:  t.RefID,
			Expr:   ReplaceMacros(t.Expr),
			Legend: t.LegendFormat,
		})
	}
	return out
}

// ReplaceMacros substitutes the interval macros Grafana evaluates at query time with MacroWindow.
func ReplaceMacros(expr string) string {
	return macroReplacer.Replace(expr)
}
