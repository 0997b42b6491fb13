// SPDX-License-Identifier: AGPL-3.0-only

package commands

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/grafana-tools/sdk"
	"github.com/grafana/dskit/multierror"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/exp/slices"

	"github.com/n9e/dashtool/pkg/dashtool/convert"
)

// GrafanaImportCommand fetches dashboards from a Grafana server and converts them.
type GrafanaImportCommand struct {
	address     string
	apiKey      string
	readTimeout time.Duration
	uids        []string
	folders     folderTitles
	outputDir   string
	format      string

	logConfig *LoggerConfig
	reg       prometheus.Registerer
}

type folderTitles []string

func (f *folderTitles) Set(value string) error {
	*f = append(*f, value)
	return nil
}

func (f folderTitles) String() string {
	return strings.Join(f, ",")
}

func (f folderTitles) IsCumulative() bool {
	return true
}

func (c *GrafanaImportCommand) Register(app *kingpin.Application, envVars EnvVarNames, logConfig *LoggerConfig, reg prometheus.Registerer) {
	c.logConfig = logConfig
	c.reg = reg

	grafanaCmd := app.Command("grafana", "Work with dashboards stored in Grafana.")
	cmd := grafanaCmd.Command("import", "Fetch dashboards from Grafana and convert them into N9E dashboards.").Action(c.run)

	cmd.Flag("address", "Address of the Grafana server, alternatively set $"+envVars.GrafanaAddress+".").
		Envar(envVars.GrafanaAddress).
		Required().
		StringVar(&c.address)
	cmd.Flag("key", "API key to use when contacting Grafana, alternatively set $"+envVars.GrafanaAPIKey+".").
		Envar(envVars.GrafanaAPIKey).
		Default("").
		StringVar(&c.apiKey)
	cmd.Flag("read-timeout", "Timeout for fetching one dashboard.").Default("300s").DurationVar(&c.readTimeout)
	cmd.Flag("uid", "UID of a dashboard to import. Can be repeated. All dashboards are imported if not set.").StringsVar(&c.uids)
	cmd.Flag("folder", "Only import dashboards in the folder with this title. Can be repeated.").SetValue(&c.folders)
	cmd.Flag("output-dir", "Directory to write the converted dashboards to.").Required().ExistingDirVar(&c.outputDir)
	cmd.Flag("format", "Output format. Valid formats: [json, yaml]").Default(formatJSON).EnumVar(&c.format, formatJSON, formatYAML)
}

func (c *GrafanaImportCommand) run(_ *kingpin.ParseContext) error {
	client, err := sdk.NewClient(c.address, c.apiKey, sdk.DefaultHTTPClient)
	if err != nil {
		return err
	}

	return c.importDashboards(context.Background(), client, convert.New(nil, c.logConfig.Logger(), c.reg))
}

func (c *GrafanaImportCommand) importDashboards(ctx context.Context, client *sdk.Client, conv *convert.Converter) error {
	logger := c.logConfig.Logger()

	uids := c.uids
	if len(uids) == 0 {
		boards, err := getAllDashboards(ctx, client)
		if err != nil {
			return errors.Wrap(err, "could not list dashboards")
		}
		for _, b := range boards {
			if len(c.folders) > 0 && !slices.Contains(c.folders, b.FolderTitle) {
				continue
			}
			uids = append(uids, b.UID)
		}
	}

	errs := multierror.New()
	for _, uid := range uids {
		if err := c.importDashboard(ctx, client, conv, uid, logger); err != nil {
			level.Error(logger).Log("msg", "could not import dashboard", "uid", uid, "err", err)
			errs.Add(err)
		}
	}
	return errs.Err()
}

func (c *GrafanaImportCommand) importDashboard(ctx context.Context, client *sdk.Client, conv *convert.Converter, uid string, logger log.Logger) error {
	fetchCtx, cancel := context.WithTimeout(ctx, c.readTimeout)
	defer cancel()

	data, _, err := client.GetRawDashboardByUID(fetchCtx, uid)
	if err != nil {
		return errors.Wrapf(err, "could not fetch dashboard %s", uid)
	}

	d, err := conv.ConvertJSON(data)
	if err != nil {
		return errors.Wrapf(err, "could not convert dashboard %s", uid)
	}

	out := filepath.Join(c.outputDir, uid+"."+c.format)
	if err := writeFile(out, d, c.format); err != nil {
		return err
	}
	level.Info(logger).Log("msg", "imported dashboard", "uid", uid, "name", d.Name, "output", out)
	return nil
}

func getAllDashboards(ctx context.Context, c *sdk.Client) ([]sdk.FoundBoard, error) {
	var currentPage uint = 1
	var results []sdk.FoundBoard
	for {
		nextPageResults, err := c.Search(ctx, sdk.SearchType(sdk.SearchTypeDashboard), sdk.SearchPage(currentPage))
		if err != nil {
			return nil, err
		}
		// no more pages, we got everything
		if len(nextPageResults) == 0 {
			return results, nil
		}
		results = append(results, nextPageResults...)
		currentPage++
	}
}
