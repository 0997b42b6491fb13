// SPDX-License-Identifier: AGPL-3.0-only

package convert

import (
	"github.com/n9e/dashtool/pkg/dashtool/dashboard"
	"github.com/n9e/dashtool/pkg/dashtool/grafana"
)

// CustomConverter builds the type specific block of a chart panel.
// Every Grafana field it reads is optional and every N9E field has a default.
type CustomConverter func(p grafana.Panel) dashboard.Custom

// PanelKind is the N9E panel a Grafana panel type is translated into.
type PanelKind struct {
	Type    dashboard.PanelType
	Convert CustomConverter
}

// panelKinds maps Grafana panel types to N9E panels. Rows are not listed, they are handled by the tree walk.
var panelKinds = map[string]PanelKind{
	grafana.TypeGraph:      {Type: dashboard.PanelTypeTimeseries, Convert: convertTimeseriesCustom},
	grafana.TypeTimeseries: {Type: dashboard.PanelTypeTimeseries, Convert: convertTimeseriesCustom},
	grafana.TypeBarChart:   {Type: dashboard.PanelTypeTimeseries, Convert: convertTimeseriesCustom},
	grafana.TypePieChart:   {Type: dashboard.PanelTypePie, Convert: convertPieCustom},
	grafana.TypeGauge:      {Type: dashboard.PanelTypeGauge, Convert: convertGaugeCustom},
	grafana.TypeSingleStat: {Type: dashboard.PanelTypeStat, Convert: convertStatCustom},
	grafana.TypeStat:       {Type: dashboard.PanelTypeStat, Convert: convertStatCustom},
	grafana.TypeBarGauge:   {Type: dashboard.PanelTypeBarGauge, Convert: convertBarGaugeCustom},
	grafana.TypeText:       {Type: dashboard.PanelTypeText, Convert: convertTextCustom},
}

var unknownKind = PanelKind{
	Type:    dashboard.PanelTypeUnknown,
	Convert: func(grafana.Panel) dashboard.Custom { return dashboard.UnknownCustom{} },
}

// LookupPanelKind returns the translation of a Grafana panel type. ok is false for types
// without a translation, in which case the unknown kind is returned.
func LookupPanelKind(grafanaType string) (kind PanelKind, ok bool) {
	kind, ok = panelKinds[grafanaType]
	if !ok {
		return unknownKind, false
	}
	return kind, true
}

const (
	drawStyleLines = "lines"
	drawStyleBars  = "bars"

	lineInterpolationLinear = "linear"
	lineInterpolationSmooth = "smooth"

	stackOff    = "off"
	stackNormal = "normal"

	defaultFillOpacity = 0.5

	valueMode = "value"

	// N9E pie charts hide the legend by default.
	pieLegendHidden = "hidden"
)

func convertTimeseriesCustom(p grafana.Panel) dashboard.Custom {
	custom := dashboard.TimeseriesCustom{
		Version:           dashboard.Version,
		DrawStyle:         drawStyleLines,
		LineInterpolation: lineInterpolationLinear,
		FillOpacity:       defaultFillOpacity,
		Stack:             stackOff,
	}
	if p.Type == grafana.TypeBarChart {
		custom.DrawStyle = drawStyleBars
	}

	defaults := p.Defaults()
	if defaults == nil || defaults.Custom == nil {
		return custom
	}
	fc := defaults.Custom
	if fc.LineInterpolation == lineInterpolationSmooth {
		custom.LineInterpolation = lineInterpolationSmooth
	}
	// Grafana stores a percentage, N9E a fraction.
	if fc.FillOpacity != nil {
		custom.FillOpacity = *fc.FillOpacity / 100
	}
	if fc.Stacking != nil && fc.Stacking.Mode == stackNormal {
		custom.Stack = stackNormal
	}
	return custom
}

func convertPieCustom(p grafana.Panel) dashboard.Custom {
	return dashboard.PieCustom{
		Version:        dashboard.Version,
		Calc:           p.Options.Calc(),
		LegendPosition: pieLegendHidden,
	}
}

func convertStatCustom(p grafana.Panel) dashboard.Custom {
	return dashboard.StatCustom{
		Version:   dashboard.Version,
		TextMode:  valueMode,
		Calc:      p.Options.Calc(),
		ColorMode: valueMode,
	}
}

func convertGaugeCustom(p grafana.Panel) dashboard.Custom {
	return dashboard.GaugeCustom{
		Version:   dashboard.Version,
		TextMode:  valueMode,
		Calc:      p.Options.Calc(),
		ColorMode: valueMode,
	}
}

func convertBarGaugeCustom(p grafana.Panel) dashboard.Custom {
	return dashboard.BarGaugeCustom{
		Version: dashboard.Version,
		Calc:    p.Options.Calc(),
	}
}

func convertTextCustom(p grafana.Panel) dashboard.Custom {
	custom := dashboard.TextCustom{Version: dashboard.Version}
	if p.Options != nil {
		custom.Content = p.Options.Content
	}
	return custom
}
