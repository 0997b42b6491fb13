// SPDX-License-Identifier: AGPL-3.0-only

package convert

import (
	"github.com/n9e/dashtool/pkg/dashtool/dashboard"
	"github.com/n9e/dashtool/pkg/dashtool/grafana"
)

// convertThresholds keeps the step order. Only an explicit null marks the base step. Grafana's thresholds style is dropped:
// the N9E renderer only draws lines. The mode is copied although N9E ignores it for now.
func convertThresholds(in *grafana.Thresholds) *dashboard.Thresholds {
	out := &dashboard.Thresholds{
		Style: dashboard.ThresholdStyleLine,
		Steps: []dashboard.ThresholdStep{},
	}
	if in == nil {
		return out
	}

	out.Mode = in.Mode
	for i, step := range in.Steps {
		s := dashboard.ThresholdStep{
			Value: step.Value,
			Color: ResolveColor(step.Color),
		}
		if i == 0 && step.NullValue {
			s.Type = dashboard.StepTypeBase
		}
		out.Steps = append(out.Steps, s)
	}
	return out
}
