// SPDX-License-Identifier: AGPL-3.0-only

package dashboard

import (
	jsoniter "github.com/json-iterator/go"
)

// Options are the display options shared by all chart panels. Every section is optional,
// a panel without field defaults gets an empty object.
type Options struct {
	ValueMappings   jsoniter.RawMessage `json:"valueMappings,omitempty"`
	Thresholds      *Thresholds         `json:"thresholds,omitempty"`
	StandardOptions *StandardOptions    `json:"standardOptions,omitempty"`
	Legend          *Legend             `json:"legend,omitempty"`
	Tooltip         *Tooltip            `json:"tooltip,omitempty"`
}

// ThresholdStyleLine is the only threshold rendering style supported.
const ThresholdStyleLine = "line"

// StepTypeBase marks the first step of a scale, the one without a value.
const StepTypeBase = "base"

type Thresholds struct {
	Mode  string          `json:"mode,omitempty"`
	Style string          `json:"style,omitempty"`
	Steps []ThresholdStep `json:"steps"`
}

type ThresholdStep struct {
	Value *float64 `json:"value"`
	Color string   `json:"color"`
	Type  string   `json:"type,omitempty"`
}

// StandardOptions.Util is the unit; the key name is what the N9E editor stores.
type StandardOptions struct {
	Util     string   `json:"util"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Decimals *int     `json:"decimals,omitempty"`
}

const (
	UnitNone = "none"

	LegendDisplayList   = "list"
	LegendDisplayHidden = "hidden"

	TooltipModeSingle = "single"
	TooltipModeMulti  = "multi"
	TooltipModeAll    = "all"
)

type Legend struct {
	DisplayMode string `json:"displayMode"`
	Placement   string `json:"placement,omitempty"`
}

type Tooltip struct {
	Mode string `json:"mode"`
	Sort string `json:"sort,omitempty"`
}

// DefaultOptions returns the options a newly created timeseries panel gets in the N9E editor.
func DefaultOptions() Options {
	return Options{
		Thresholds: &Thresholds{
			Steps: []ThresholdStep{{Color: "#634CD9", Type: StepTypeBase}},
		},
		Legend:  &Legend{DisplayMode: LegendDisplayHidden},
		Tooltip: &Tooltip{Mode: TooltipModeAll, Sort: "none"},
	}
}
