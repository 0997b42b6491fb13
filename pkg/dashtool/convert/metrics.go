// SPDX-License-Identifier: AGPL-3.0-only

package convert

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	convertedDashboards prometheus.Counter
	convertedPanels     *prometheus.CounterVec
	droppedPanels       prometheus.Counter
	droppedVariables    *prometheus.CounterVec
	droppedLinks        prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		convertedDashboards: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "dashtool_converted_dashboards_total",
			Help: "Total number of Grafana dashboards converted.",
		}),
		convertedPanels: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "dashtool_converted_panels_total",
			Help: "Total number of panels converted, by N9E panel type.",
		}, []string{"type"}),
		droppedPanels: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "dashtool_dropped_panels_total",
			Help: "Total number of panels dropped because a target had no expression.",
		}),
		droppedVariables: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "dashtool_dropped_variables_total",
			Help: "Total number of dashboard variables dropped, by Grafana variable type.",
		}, []string{"type"}),
		droppedLinks: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "dashtool_dropped_links_total",
			Help: "Total number of dashboard and panel links dropped because they are not plain links.",
		}),
	}
}
