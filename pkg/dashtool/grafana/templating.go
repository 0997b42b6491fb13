// SPDX-License-Identifier: AGPL-3.0-only

package grafana

// Templating holds the dashboard variables.
type Templating struct {
	List []TemplateVar `json:"list"`
}

// TemplateVar is a dashboard variable. Query is a string for most datasources,
// but variables created in the Grafana UI for Prometheus store an object {"query": "...", "refId": "..."}.
type TemplateVar struct {
	Type       string      `json:"type"`
	Name       string      `json:"name"`
	Definition string      `json:"definition,omitempty"`
	Query      interface{} `json:"query,omitempty"`
	AllValue   string      `json:"allValue,omitempty"`
	IncludeAll bool        `json:"includeAll,omitempty"`
	Multi      bool        `json:"multi,omitempty"`
	Regex      string      `json:"regex,omitempty"`
}

// QueryString returns the variable query, whichever of the two shapes it is stored in.
func (v TemplateVar) QueryString() (string, bool) {
	switch q := v.Query.(type) {
	case string:
		return q, true
	case map[string]interface{}:
		if query, ok := q["query"].(string); ok {
			return query, true
		}
	}
	return "", false
}
