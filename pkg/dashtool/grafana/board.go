// SPDX-License-Identifier: AGPL-3.0-only

package grafana

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var (
	ErrNotObject         = errors.New("dashboard is not a JSON object")
	ErrMissingPanels     = errors.New("dashboard has no panels list")
	ErrMissingTemplating = errors.New("dashboard has no templating section")
)

// Board is a Grafana dashboard model.
type Board struct {
	UID        string      `json:"uid,omitempty"`
	Title      string      `json:"title"`
	Links      []Link      `json:"links,omitempty"`
	Templating *Templating `json:"templating"`
	Panels     []Panel     `json:"panels"`
}

// Link is a dashboard or panel link. Only links of type "link" carry a URL,
// the "dashboards" type links to other dashboards by tag.
type Link struct {
	Type        string   `json:"type,omitempty"`
	Title       string   `json:"title"`
	URL         string   `json:"url,omitempty"`
	TargetBlank bool     `json:"targetBlank,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// envelope is the shape returned by the Grafana HTTP API and written by "Export > Save to file"
// with the "export for sharing externally" option disabled.
type envelope struct {
	Dashboard jsoniter.RawMessage `json:"dashboard"`
	Meta      jsoniter.RawMessage `json:"meta"`
}

// ParseBoard decodes a dashboard document. Both a bare dashboard model and a
// {"dashboard": ..., "meta": ...} envelope are accepted.
// ParseBoard fails only on structural problems; missing or mistyped optional fields are left at their zero value.
func ParseBoard(data []byte) (Board, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return Board{}, ErrNotObject
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Board{}, errors.Wrap(err, "could not decode dashboard")
	}
	if len(env.Dashboard) > 0 && env.Dashboard[0] == '{' {
		data = env.Dashboard
	}

	var board Board
	if err := json.Unmarshal(data, &board); err != nil {
		return Board{}, errors.Wrap(err, "could not decode dashboard")
	}
	if err := board.Validate(); err != nil {
		return Board{}, err
	}
	return board, nil
}

// Validate checks the top-level sections the importer cannot do without.
func (b Board) Validate() error {
	if b.Panels == nil {
		return ErrMissingPanels
	}
	if b.Templating == nil {
		return ErrMissingTemplating
	}
	return nil
}
