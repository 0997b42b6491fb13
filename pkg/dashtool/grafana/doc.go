// SPDX-License-Identifier: AGPL-3.0-only

/*
Package grafana contains the subset of the Grafana dashboard model that the importer reads.
Every field is optional: dashboards exported by different Grafana versions disagree on most of
the model, so only the parts that are translated into the N9E schema are declared here, and
anything else is ignored while unmarshaling.
*/
package grafana
