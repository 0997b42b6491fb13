// SPDX-License-Identifier: AGPL-3.0-only

// Package dashboard holds the N9E dashboard model, version 2.0.0.
package dashboard

// Version is the schema version written into every document and panel.
const Version = "2.0.0"

// Dashboard is the document handed to the dashboard storage API: a name plus its configs.
type Dashboard struct {
	Version string  `json:"version"`
	Name    string  `json:"name"`
	Configs Configs `json:"configs"`
}

type Configs struct {
	Version string     `json:"version"`
	Links   []Link     `json:"links"`
	Var     []Variable `json:"var"`
	Panels  []Panel    `json:"panels"`
}

type Link struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	TargetBlank bool   `json:"targetBlank"`
}

// Walk calls fn for every panel of the dashboard, rows included, depth first and in sibling order.
// parents holds the rows enclosing the panel, outermost first.
func (d *Dashboard) Walk(fn func(p Panel, parents []*RowPanel)) {
	walkPanels(d.Configs.Panels, nil, fn)
}

func walkPanels(panels []Panel, parents []*RowPanel, fn func(p Panel, parents []*RowPanel)) {
	for _, p := range panels {
		fn(p, parents)
		if row, ok := p.(*RowPanel); ok {
			walkPanels(row.Panels, append(parents[:len(parents):len(parents)], row), fn)
		}
	}
}
