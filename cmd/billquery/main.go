// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the billquery CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/billquery/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from the secrets directory at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the billquery CLI.
var rootCmd = &cobra.Command{
	Use:   "billquery",
	Short: "Find recent New York City and New York State bills on a topic",
	Long: `billquery searches the New York City Council (Legistar) and New York State
Senate (Open Legislation) APIs for bills matching a list of keywords, and prints
a sorted, deduplicated listing of the matches for each legislature.

API keys can be requested at:
  NYS - https://legislation.nysenate.gov/
  NYC - https://council.nyc.gov/legislation/api/`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := secrets.LoadEnv(secrets.EnvFiles...); err != nil {
			return err
		}

		dir, _ := cmd.Flags().GetString("secrets-dir")
		s, err := secrets.Load(dir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(cmd.ErrOrStderr(), "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./billquery.yaml or ~/.config/billquery/billquery.yaml)")
	rootCmd.PersistentFlags().String("secrets-dir", ".secrets", "directory of API key files (nyc-council-token, nys-senate-api-key)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("billquery")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "billquery"))
		}
	}

	viper.SetEnvPrefix("BILLQUERY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// secretDefault returns value if set, otherwise the loaded secret for key.
func secretDefault(value, key string) string {
	return secrets.First(value, loadedSecrets[key])
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
