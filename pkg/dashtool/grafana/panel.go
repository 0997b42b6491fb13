// SPDX-License-Identifier: AGPL-3.0-only

package grafana

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

// Panel types the importer knows how to translate. Any other type is kept as an unknown panel.
const (
	TypeRow        = "row"
	TypeGraph      = "graph"
	TypeTimeseries = "timeseries"
	TypeBarChart   = "barchart"
	TypePieChart   = "piechart"
	TypeGauge      = "gauge"
	TypeSingleStat = "singlestat"
	TypeStat       = "stat"
	TypeBarGauge   = "bargauge"
	TypeText       = "text"
)

// Panel represents panels of different types defined in a Grafana dashboard.
// Rows are panels too: they carry Collapsed and nest further panels in SubPanels.
type Panel struct {
	Type        string       `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	GridPos     GridPos      `json:"gridPos"`
	Links       []Link       `json:"links,omitempty"`
	Targets     []Target     `json:"targets,omitempty"`
	FieldConfig *FieldConfig `json:"fieldConfig,omitempty"`
	Options     *Options     `json:"options,omitempty"`

	Collapsed bool    `json:"collapsed,omitempty"`
	SubPanels []Panel `json:"panels,omitempty"`
}

// GridPos is the position of a panel on the 24 column dashboard grid.
type GridPos struct {
	X      int   `json:"x"`
	Y      int   `json:"y"`
	W      int   `json:"w"`
	H      int   `json:"h"`
	Static *bool `json:"static,omitempty"`
}

// Target describes an expression with which the Panel fetches data from a data source.
// A Panel may have zero, one or multiple targets.
type Target struct {
	RefID        string `json:"refId,omitempty"`
	Expr         string `json:"expr,omitempty"`
	LegendFormat string `json:"legendFormat,omitempty"`
	Hide         bool   `json:"hide,omitempty"`
}

// IsRow reports whether the panel is a row container.
func (p *Panel) IsRow() bool {
	return p.Type == TypeRow
}

// HasIncompleteTargets returns true if the panel declares targets and at least one of them has no expression.
// A panel without any target is not incomplete.
func (p *Panel) HasIncompleteTargets() bool {
	for _, t := range p.Targets {
		if t.Expr == "" {
			return true
		}
	}
	return false
}

// Defaults returns the field config defaults, or nil if the panel has none.
func (p *Panel) Defaults() *FieldDefaults {
	if p.FieldConfig == nil {
		return nil
	}
	return p.FieldConfig.Defaults
}

// FieldConfig holds the per-field display configuration of a panel.
// Overrides are not translated and therefore not declared.
type FieldConfig struct {
	Defaults *FieldDefaults `json:"defaults,omitempty"`
}

type FieldDefaults struct {
	Unit       string              `json:"unit,omitempty"`
	Min        *float64            `json:"min,omitempty"`
	Max        *float64            `json:"max,omitempty"`
	Decimals   *int                `json:"decimals,omitempty"`
	Mappings   jsoniter.RawMessage `json:"mappings,omitempty"`
	Thresholds *Thresholds         `json:"thresholds,omitempty"`
	Custom     *FieldCustom        `json:"custom,omitempty"`
}

type Thresholds struct {
	Mode  string          `json:"mode,omitempty"`
	Steps []ThresholdStep `json:"steps"`
}

// ThresholdStep is one step of a threshold scale. The first step of a scale has a null value.
// Value is nil both for a null and a missing value, NullValue tells them apart.
type ThresholdStep struct {
	Value     *float64 `json:"value"`
	Color     string   `json:"color"`
	NullValue bool     `json:"-"`
}

func (s *ThresholdStep) UnmarshalJSON(data []byte) error {
	type plain ThresholdStep
	if err := json.Unmarshal(data, (*plain)(s)); err != nil {
		return err
	}

	var fields map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	value, ok := fields["value"]
	s.NullValue = ok && string(bytes.TrimSpace(value)) == "null"
	return nil
}

// FieldCustom holds the visualization specific part of the field defaults.
type FieldCustom struct {
	LineInterpolation string           `json:"lineInterpolation,omitempty"`
	FillOpacity       *float64         `json:"fillOpacity,omitempty"`
	Stacking          *Stacking        `json:"stacking,omitempty"`
	ThresholdsStyle   *ThresholdsStyle `json:"thresholdsStyle,omitempty"`
}

type Stacking struct {
	Mode string `json:"mode,omitempty"`
}

type ThresholdsStyle struct {
	Mode string `json:"mode,omitempty"`
}

// Options holds the panel options. Their meaning depends on the panel type.
type Options struct {
	Legend        *LegendOptions  `json:"legend,omitempty"`
	Tooltip       *TooltipOptions `json:"tooltip,omitempty"`
	ReduceOptions *ReduceOptions  `json:"reduceOptions,omitempty"`
	Content       string          `json:"content,omitempty"`
}

type LegendOptions struct {
	DisplayMode string `json:"displayMode,omitempty"`
	Placement   string `json:"placement,omitempty"`
}

// TooltipOptions is an object in current Grafana versions, but some older
// dashboards store the tooltip mode as a bare string. Any other shape is ignored.
type TooltipOptions struct {
	Mode string `json:"mode,omitempty"`
	Sort string `json:"sort,omitempty"`
}

func (t *TooltipOptions) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		return json.Unmarshal(data, &t.Mode)
	case '{':
		type plain TooltipOptions
		return json.Unmarshal(data, (*plain)(t))
	default:
		return nil
	}
}

type ReduceOptions struct {
	Calcs []string `json:"calcs,omitempty"`
}

// Calc returns the first reducer, or an empty string if none is set.
func (o *Options) Calc() string {
	if o == nil || o.ReduceOptions == nil || len(o.ReduceOptions.Calcs) == 0 {
		return ""
	}
	return o.ReduceOptions.Calcs[0]
}
