// SPDX-License-Identifier: AGPL-3.0-only

package dashboard

// Custom is the type specific block of a chart panel. Each variant belongs to exactly one PanelType.
type Custom interface {
	PanelType() PanelType
}

type TimeseriesCustom struct {
	Version           string  `json:"version"`
	DrawStyle         string  `json:"drawStyle"`
	LineInterpolation string  `json:"lineInterpolation"`
	FillOpacity       float64 `json:"fillOpacity"`
	Stack             string  `json:"stack"`
}

type PieCustom struct {
	Version string `json:"version"`
	Calc    string `json:"calc,omitempty"`
	// The N9E renderer reads the misspelled key.
	LegendPosition string `json:"legengPosition"`
}

type StatCustom struct {
	Version   string `json:"version"`
	TextMode  string `json:"textMode"`
	Calc      string `json:"calc,omitempty"`
	ColorMode string `json:"colorMode"`
}

type GaugeCustom struct {
	Version   string `json:"version"`
	TextMode  string `json:"textMode"`
	Calc      string `json:"calc,omitempty"`
	ColorMode string `json:"colorMode"`
}

type BarGaugeCustom struct {
	Version string `json:"version"`
	Calc    string `json:"calc,omitempty"`
}

type TextCustom struct {
	Version string `json:"version"`
	Content string `json:"content,omitempty"`
}

// UnknownCustom is the empty block of panels whose type could not be translated.
type UnknownCustom struct{}

func (TimeseriesCustom) PanelType() PanelType { return PanelTypeTimeseries }
func (PieCustom) PanelType() PanelType        { return PanelTypePie }
func (StatCustom) PanelType() PanelType       { return PanelTypeStat }
func (GaugeCustom) PanelType() PanelType      { return PanelTypeGauge }
func (BarGaugeCustom) PanelType() PanelType   { return PanelTypeBarGauge }
func (TextCustom) PanelType() PanelType       { return PanelTypeText }
func (UnknownCustom) PanelType() PanelType    { return PanelTypeUnknown }
