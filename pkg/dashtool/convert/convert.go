// SPDX-License-Identifier: AGPL-3.0-only

// Package convert translates Grafana dashboards into N9E dashboards.
//
// The translation is lossy: whatever N9E cannot represent is dropped or replaced with a
// default, and the only failures are structural ones detected while parsing the document.
package convert

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/n9e/dashtool/pkg/dashtool/dashboard"
	"github.com/n9e/dashtool/pkg/dashtool/grafana"
)

// Converter converts Grafana dashboards. It keeps no state between conversions
// besides its metrics, and is safe for concurrent use if its IDGenerator is.
type Converter struct {
	ids     IDGenerator
	logger  log.Logger
	metrics *Metrics
}

// New returns a Converter. A nil ids uses random UUIDs, a nil logger discards logs
// and a nil reg leaves the metrics unregistered.
func New(ids IDGenerator, logger log.Logger, reg prometheus.Registerer) *Converter {
	if ids == nil {
		ids = UUIDGenerator()
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Converter{
		ids:     ids,
		logger:  logger,
		metrics: NewMetrics(reg),
	}
}

// Convert translates a parsed Grafana dashboard.
func (c *Converter) Convert(board grafana.Board) dashboard.Dashboard {
	d := dashboard.Dashboard{
		Version: dashboard.Version,
		Name:    board.Title,
		Configs: dashboard.Configs{
			Version: dashboard.Version,
			Links:   c.convertLinks(board.Links),
			Var:     c.convertVariables(board.Templating),
			Panels:  c.convertPanels(board.Panels),
		},
	}

	c.metrics.convertedDashboards.Inc()
	level.Debug(c.logger).Log("msg", "converted dashboard", "name", d.Name, "panels", len(d.Configs.Panels), "variables", len(d.Configs.Var))
	return d
}

// ConvertJSON parses a Grafana dashboard document and translates it.
func (c *Converter) ConvertJSON(data []byte) (dashboard.Dashboard, error) {
	board, err := grafana.ParseBoard(data)
	if err != nil {
		return dashboard.Dashboard{}, err
	}
	return c.Convert(board), nil
}

// Convert translates a parsed Grafana dashboard with random panel ids.
func Convert(board grafana.Board) dashboard.Dashboard {
	return New(nil, nil, nil).Convert(board)
}
