// SPDX-License-Identifier: AGPL-3.0-only

package convert

import (
	"github.com/go-kit/log/level"

	"github.com/n9e/dashtool/pkg/dashtool/dashboard"
	"github.com/n9e/dashtool/pkg/dashtool/grafana"
)

// unitMappings maps Grafana unit ids to N9E units. Units missing here become "none".
var unitMappings = map[string]string{
	"percent":     "percent",
	"percentunit": "percentUnit",
	"bytes":       "bytesIEC",
	"bits":        "bytesIEC",
	"decbytes":    "bytesSI",
	"decbits":     "bitsSI",
	"s":           "seconds",
	"ms":          "milliseconds",
}

// convertOptions translates the field defaults and the legend and tooltip options.
// Legacy graph panels are not migrated, they get the default options of a new N9E timeseries panel.
// Field overrides are not supported by N9E and are ignored.
func (c *Converter) convertOptions(p grafana.Panel) dashboard.Options {
	if p.Type == grafana.TypeGraph {
		return dashboard.DefaultOptions()
	}

	defaults := p.Defaults()
	if defaults == nil {
		return dashboard.Options{}
	}

	return dashboard.Options{
		ValueMappings: defaults.Mappings,
		Thresholds:    convertThresholds(defaults.Thresholds),
		StandardOptions: &dashboard.StandardOptions{
			Util:     c.convertUnit(defaults.Unit),
			Min:      defaults.Min,
			Max:      defaults.Max,
			Decimals: defaults.Decimals,
		},
		Legend:  convertLegend(p.Options),
		Tooltip: convertTooltip(p.Options),
	}
}

func (c *Converter) convertUnit(unit string) string {
	if u, ok := unitMappings[unit]; ok {
		return u
	}
	if unit != "" {
		level.Debug(c.logger).Log("msg", "unsupported unit, falling back to none", "unit", unit)
	}
	return dashboard.UnitNone
}

func convertLegend(opts *grafana.Options) *dashboard.Legend {
	legend := &dashboard.Legend{DisplayMode: dashboard.LegendDisplayList}
	if opts == nil || opts.Legend == nil {
		return legend
	}
	if opts.Legend.DisplayMode == dashboard.LegendDisplayHidden {
		legend.DisplayMode = dashboard.LegendDisplayHidden
	}
	legend.Placement = opts.Legend.Placement
	return legend
}

func convertTooltip(opts *grafana.Options) *dashboard.Tooltip {
	if opts != nil && opts.Tooltip != nil && opts.Tooltip.Mode == dashboard.TooltipModeSingle {
		return &dashboard.Tooltip{Mode: dashboard.TooltipModeSingle}
	}
	return &dashboard.Tooltip{Mode: dashboard.TooltipModeMulti}
}
