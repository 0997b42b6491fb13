// SPDX-License-Identifier: AGPL-3.0-only

package dashboard

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_Walk(t *testing.T) {
	inner := NewRowPanel("inner", "inner", true, Layout{}, []Panel{
		NewChartPanel("c2", "c2", "", Layout{}, StatCustom{}),
	})
	outer := NewRowPanel("outer", "outer", true, Layout{}, []Panel{
		NewChartPanel("c1", "c1", "", Layout{}, TextCustom{}),
		inner,
	})
	d := Dashboard{Configs: Configs{Panels: []Panel{
		outer,
		NewChartPanel("c3", "c3", "", Layout{}, UnknownCustom{}),
	}}}

	var visited []string
	depths := map[string]int{}
	d.Walk(func(p Panel, parents []*RowPanel) {
		visited = append(visited, p.PanelID())
		depths[p.PanelID()] = len(parents)
	})

	assert.Equal(t, []string{"outer", "c1", "inner", "c2", "c3"}, visited)
	assert.Equal(t, map[string]int{"outer": 0, "c1": 1, "inner": 1, "c2": 2, "c3": 0}, depths)
}

func TestChartPanel_TypeFollowsCustom(t *testing.T) {
	tests := map[PanelType]Custom{
		PanelTypeTimeseries: TimeseriesCustom{},
		PanelTypePie:        PieCustom{},
		PanelTypeGauge:      GaugeCustom{},
		PanelTypeStat:       StatCustom{},
		PanelTypeBarGauge:   BarGaugeCustom{},
		PanelTypeText:       TextCustom{},
		PanelTypeUnknown:    UnknownCustom{},
	}

	for want, custom := range tests {
		t.Run(string(want), func(t *testing.T) {
			p := NewChartPanel("id", "name", "", Layout{X: 1}, custom)
			assert.Equal(t, want, p.PanelType())
			assert.Equal(t, "id", p.Layout.I)
			assert.Equal(t, 1, p.Layout.X)
		})
	}
}

func TestPanels_MarshalJSON(t *testing.T) {
	row := NewRowPanel("r", "Row", false, Layout{X: 0, Y: 0, W: 24, H: 1}, nil)
	chart := NewChartPanel("c", "Chart", "", Layout{W: 12, H: 8}, UnknownCustom{})

	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal([]Panel{row, chart})
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"version": "2.0.0", "id": "r", "type": "row", "name": "Row", "collapsed": false,
		 "layout": {"x": 0, "y": 0, "w": 24, "h": 1, "i": "r"}, "panels": []},
		{"version": "2.0.0", "id": "c", "type": "unknown", "name": "Chart", "links": [],
		 "layout": {"x": 0, "y": 0, "w": 12, "h": 8, "i": "c"}, "targets": [], "options": {}, "custom": {}}
	]`, string(out))
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	require.NotNil(t, opts.Thresholds)
	require.Len(t, opts.Thresholds.Steps, 1)
	assert.Nil(t, opts.Thresholds.Steps[0].Value)
	assert.Equal(t, StepTypeBase, opts.Thresholds.Steps[0].Type)

	// Every call returns a fresh value.
	opts.Thresholds.Steps[0].Color = "red"
	assert.Equal(t, "#634CD9", DefaultOptions().Thresholds.Steps[0].Color)
}
