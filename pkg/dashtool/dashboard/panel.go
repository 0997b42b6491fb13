// SPDX-License-Identifier: AGPL-3.0-only

package dashboard

// PanelType is the type of an N9E panel.
type PanelType string

const (
	PanelTypeRow        PanelType = "row"
	PanelTypeTimeseries PanelType = "timeseries"
	PanelTypePie        PanelType = "pie"
	PanelTypeGauge      PanelType = "gauge"
	PanelTypeStat       PanelType = "stat"
	PanelTypeBarGauge   PanelType = "barGauge"
	PanelTypeText       PanelType = "text"
	PanelTypeUnknown    PanelType = "unknown"
)

// Panel is either a *RowPanel or a *ChartPanel.
type Panel interface {
	PanelID() string
	PanelType() PanelType
	isPanel()
}

// Layout is the grid rectangle of a panel. I carries the panel id so that the
// grid layout item and the panel share their identity.
type Layout struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	W      int    `json:"w"`
	H      int    `json:"h"`
	Static *bool  `json:"static,omitempty"`
	I      string `json:"i"`
}

// RowPanel groups panels. Collapsed is the expanded-state flag: true means the row content is shown.
type RowPanel struct {
	Version   string    `json:"version"`
	ID        string    `json:"id"`
	Type      PanelType `json:"type"`
	Name      string    `json:"name"`
	Collapsed bool      `json:"collapsed"`
	Layout    Layout    `json:"layout"`
	Panels    []Panel   `json:"panels"`
}

func NewRowPanel(id, name string, collapsed bool, layout Layout, panels []Panel) *RowPanel {
	layout.I = id
	if panels == nil {
		panels = []Panel{}
	}
	return &RowPanel{
		Version:   Version,
		ID:        id,
		Type:      PanelTypeRow,
		Name:      name,
		Collapsed: collapsed,
		Layout:    layout,
		Panels:    panels,
	}
}

func (p *RowPanel) PanelID() string      { return p.ID }
func (p *RowPanel) PanelType() PanelType { return PanelTypeRow }
func (*RowPanel) isPanel()               {}

// ChartPanel is any panel rendering a visualization.
// Its Type always matches the variant of Custom.
type ChartPanel struct {
	Version     string    `json:"version"`
	ID          string    `json:"id"`
	Type        PanelType `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Links       []Link    `json:"links"`
	Layout      Layout    `json:"layout"`
	Targets     []Target  `json:"targets"`
	Options     Options   `json:"options"`
	Custom      Custom    `json:"custom"`
}

func NewChartPanel(id, name, description string, layout Layout, custom Custom) *ChartPanel {
	layout.I = id
	return &ChartPanel{
		Version:     Version,
		ID:          id,
		Type:        custom.PanelType(),
		Name:        name,
		Description: description,
		Links:       []Link{},
		Layout:      layout,
		Targets:     []Target{},
		Custom:      custom,
	}
}

func (p *ChartPanel) PanelID() string      { return p.ID }
func (p *ChartPanel) PanelType() PanelType { return p.Type }
func (*ChartPanel) isPanel()               {}

// Target is one PromQL query of a panel.
type Target struct {
	RefID  string `json:"refId,omitempty"`
	Expr   string `json:"expr"`
	Legend string `json:"legend,omitempty"`
}
