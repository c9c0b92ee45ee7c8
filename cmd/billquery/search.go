// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/billquery/internal/logger"
	"github.com/pdiddy/billquery/internal/output"
	"github.com/pdiddy/billquery/internal/search"
	"github.com/pdiddy/billquery/internal/secrets"
	"github.com/pdiddy/billquery/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "billquery/0.1"
)

var searchCmd = &cobra.Command{
	Use:   "search [keywords...]",
	Short: "Search both legislatures for bills matching keywords",
	Long: `Search runs every keyword against the New York City Council matters filed
between 2018-01-01 and 2019-12-01 and the New York State bills of the 2018
and 2019 sessions, then prints the state matches followed by the city matches.

Keywords given as arguments or with --keyword replace the built-in technology
keywords; --ignore replaces the built-in list of unrelated bills. CSV output
replaces commas in bill titles with '/'.`,
	Example: `  billquery search -c $NYC_TOKEN -s $NYS_KEY -f csv
  billquery search -c $NYC_TOKEN -s $NYS_KEY -i A10165 -i T2018-1413
  billquery search -c $NYC_TOKEN -s $NYS_KEY 'evil robots' 'free coffee at the office'`,
	RunE: runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.StringP("city-key", "c", "", "API token for the NYC Council Legistar API")
	f.StringP("state-key", "s", "", "API key for the NYS Open Legislation API")
	f.StringP("format", "f", "txt", "output format: txt, csv, or table")
	f.StringSliceP("ignore", "i", nil, "bill identifiers to leave out (replaces the built-in list)")
	f.String("ignore-file", "", "file listing bill identifiers to leave out")
	f.StringArrayP("keyword", "k", nil, "keyword to search for (repeatable; replaces the built-in list)")
	f.String("keyword-file", "", "file listing keywords to search for")
	f.BoolP("verbose", "v", false, "narrate progress on stderr")
	f.String("color", "auto", "color section headers: auto, always, or never")
	f.Duration("timeout", 0, "HTTP request timeout (default 60s)")

	_ = viper.BindPFlag("city_key", f.Lookup("city-key"))
	_ = viper.BindPFlag("state_key", f.Lookup("state-key"))
	_ = viper.BindPFlag("format", f.Lookup("format"))
	_ = viper.BindPFlag("color", f.Lookup("color"))
	_ = viper.BindPFlag("timeout", f.Lookup("timeout"))

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := queryConfig(cmd, args)
	if err != nil {
		return err
	}

	colorMode, err := output.ParseColorMode(viper.GetString("color"))
	if err != nil {
		return err
	}
	useColors := cfg.Format != types.FormatCSV && output.ResolveColors(colorMode)
	printer := output.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), useColors)

	logCfg := logger.Config{Level: viper.GetString("log_level")}
	if cfg.Verbose {
		logCfg.Level = "debug"
	}
	log, err := logger.New(logCfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log = log.With(logger.String("run_id", uuid.NewString()))

	client := &http.Client{Timeout: cfg.Timeout}
	agg := &search.Aggregator{
		City: &search.LegistarClient{
			Client:     client,
			Token:      cfg.City.Token,
			UserAgent:  cfg.UserAgent,
			AgendaFrom: cfg.City.AgendaFrom,
			AgendaTo:   cfg.City.AgendaTo,
		},
		State: &search.OpenLegislationClient{
			Client:    client,
			Key:       cfg.State.Key,
			UserAgent: cfg.UserAgent,
		},
		Years:  cfg.State.Years,
		Format: cfg.Format,
		Log:    log,
	}

	if err := search.Run(cmd.Context(), cfg, agg, printer, log); err != nil {
		log.Error("search failed", logger.Error(err))
		return err
	}
	return nil
}

// queryConfig resolves flags, environment, config file, secrets, and list
// files into one QueryConfig.
func queryConfig(cmd *cobra.Command, args []string) (types.QueryConfig, error) {
	format, err := types.ParseOutputFormat(viper.GetString("format"))
	if err != nil {
		return types.QueryConfig{}, err
	}

	cityKey := secretDefault(viper.GetString("city_key"), secrets.CityToken)
	stateKey := secretDefault(viper.GetString("state_key"), secrets.StateAPIKey)
	if cityKey == "" || stateKey == "" {
		return types.QueryConfig{}, fmt.Errorf("both API keys are required: set --city-key and --state-key, BILLQUERY_CITY_KEY and BILLQUERY_STATE_KEY, or .secrets/%s and .secrets/%s",
			secrets.CityToken, secrets.StateAPIKey)
	}

	flagKeywords, _ := cmd.Flags().GetStringArray("keyword")
	fileKeywords, err := listFromFile(cmd, "keyword-file")
	if err != nil {
		return types.QueryConfig{}, err
	}
	flagIgnore, _ := cmd.Flags().GetStringSlice("ignore")
	fileIgnore, err := listFromFile(cmd, "ignore-file")
	if err != nil {
		return types.QueryConfig{}, err
	}

	timeout := viper.GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	userAgent := viper.GetString("user_agent")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	verbose, _ := cmd.Flags().GetBool("verbose")

	return types.QueryConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: userAgent,
		},
		City: types.CityConfig{
			Token:      cityKey,
			AgendaFrom: search.CityAgendaFrom,
			AgendaTo:   search.CityAgendaTo,
		},
		State: types.StateConfig{
			Key:   stateKey,
			Years: search.StateYears,
		},
		Format: format,
		Keywords: search.ResolveList(args, flagKeywords, fileKeywords,
			viper.GetStringSlice("keywords"), search.DefaultKeywords),
		Ignore: types.NewIgnoreSet(search.ResolveList(flagIgnore, fileIgnore,
			viper.GetStringSlice("ignore"), search.DefaultIgnore)),
		Verbose: verbose,
	}, nil
}

func listFromFile(cmd *cobra.Command, flag string) ([]string, error) {
	path, _ := cmd.Flags().GetString(flag)
	if path == "" {
		return nil, nil
	}
	list, err := search.ReadListFile(path)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flag, err)
	}
	return list, nil
}
