// SPDX-License-Identifier: AGPL-3.0-only

package convert

import (
	"github.com/go-kit/log/level"

	"github.com/n9e/dashtool/pkg/dashtool/dashboard"
	"github.com/n9e/dashtool/pkg/dashtool/grafana"
)

// convertVariables keeps query, custom, constant and textbox variables in their original order.
// Other kinds, such as datasource or interval variables, have no N9E equivalent.
func (c *Converter) convertVariables(templating *grafana.Templating) []dashboard.Variable {
	out := []dashboard.Variable{}
	if templating == nil {
		return out
	}

	for _, v := range templating.List {
		converted := convertVariable(v)
		if converted == nil {
			level.Debug(c.logger).Log("msg", "dropping unsupported variable", "name", v.Name, "type", v.Type)
			c.metrics.droppedVariables.WithLabelValues(v.Type).Inc()
			continue
		}
		out = append(out, converted)
	}
	return out
}

func convertVariable(v grafana.TemplateVar) dashboard.Variable {
	query, _ := v.QueryString()

	switch dashboard.VariableType(v.Type) {
	case dashboard.VariableTypeQuery:
		definition := v.Definition
		if definition == "" {
			definition = query
		}
		return &dashboard.QueryVariable{
			Type:       dashboard.VariableTypeQuery,
			Name:       v.Name,
			Definition: definition,
			AllValue:   v.AllValue,
			AllOption:  v.IncludeAll,
			Multi:      v.Multi,
			Reg:        v.Regex,
		}
	case dashboard.VariableTypeCustom:
		return &dashboard.CustomVariable{
			Type:       dashboard.VariableTypeCustom,
			Name:       v.Name,
			Definition: query,
			AllValue:   v.AllValue,
			AllOption:  v.IncludeAll,
			Multi:      v.Multi,
		}
	case dashboard.VariableTypeConstant:
		return &dashboard.ConstantVariable{
			Type:       dashboard.VariableTypeConstant,
			Name:       v.Name,
			Definition: query,
		}
	case dashboard.VariableTypeTextbox:
		return &dashboard.TextboxVariable{
			Type:         dashboard.VariableTypeTextbox,
			Name:         v.Name,
			DefaultValue: query,
		}
	default:
		return nil
	}
}
