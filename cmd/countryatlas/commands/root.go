package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nulllvoid/countryatlas"
)

var (
	configPath     string
	baseURL        string
	date           string
	timeoutSeconds int
	verbose        bool

	aggregator *countryatlas.Aggregator
)

type stderrLogger struct{}

func (stderrLogger) Info(msg string, keyvals ...interface{}) {
	fmt.Fprintln(os.Stderr, append([]interface{}{"INFO", msg}, keyvals...)...)
}

func (stderrLogger) Error(msg string, keyvals ...interface{}) {
	fmt.Fprintln(os.Stderr, append([]interface{}{"ERROR", msg}, keyvals...)...)
}

func Execute() error {
	root := &cobra.Command{
		Use:           "countryatlas",
		Short:         "Country directory enriched with World Bank indicators",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := countryatlas.DefaultConfig()
			if configPath != "" {
				loaded, err := countryatlas.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if baseURL != "" {
				cfg.BaseURL = baseURL
			}
			if date != "" {
				cfg.Date = date
			}
			if timeoutSeconds > 0 {
				cfg.TimeoutSeconds = timeoutSeconds
			}

			clientOpts := []countryatlas.ClientOption{countryatlas.WithClientConfig(cfg)}
			aggOpts := []countryatlas.AggregatorOption{
				countryatlas.WithIndicators(cfg.PopulationIndicator, cfg.GDPIndicator),
			}
			if verbose {
				logger := stderrLogger{}
				clientOpts = append(clientOpts, countryatlas.WithRequestLogging(logger))
				aggOpts = append(aggOpts, countryatlas.WithLogger(logger))
			}

			client := countryatlas.NewClient(clientOpts...)
			aggregator = countryatlas.NewAggregator(client, aggOpts...)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (YAML)")
	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL (default "+countryatlas.DefaultBaseURL+")")
	root.PersistentFlags().StringVar(&date, "date", "", "observation year (default "+countryatlas.DefaultDate+")")
	root.PersistentFlags().IntVar(&timeoutSeconds, "timeout", 0, "request timeout in seconds")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests and pipeline progress to stderr")

	root.AddCommand(listCmd(), regionsCmd())
	return root.Execute()
}
