// SPDX-License-Identifier: AGPL-3.0-only

package convert

import (
	"github.com/go-kit/log/level"

	"github.com/n9e/dashtool/pkg/dashtool/dashboard"
	"github.com/n9e/dashtool/pkg/dashtool/grafana"
)

const linkTypeLink = "link"

// convertLinks keeps plain URL links only.
func (c *Converter) convertLinks(links []grafana.Link) []dashboard.Link {
	out := make([]dashboard.Link, 0, len(links))
	for _, l := range links {
		if l.Type != linkTypeLink {
			level.Debug(c.logger).Log("msg", "dropping unsupported link", "type", l.Type, "title", l.Title)
			c.metrics.droppedLinks.Inc()
			continue
		}
		out = append(out, dashboard.Link{
			Title:       l.Title,
			URL:         l.URL,
			TargetBlank: l.TargetBlank,
		})
	}
	return out
}
