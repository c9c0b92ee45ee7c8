package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/billquery/internal/search"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults [keywords|ignore]",
	Short: "Print the built-in keyword and ignore lists as YAML",
	Long: `Defaults prints the built-in keyword list and the built-in list of ignored
bills. With an argument it prints only that list, as a YAML sequence that
--keyword-file and --ignore-file accept.`,
	ValidArgs: []string{"keywords", "ignore"},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		var doc any = map[string][]string{
			"keywords": search.DefaultKeywords,
			"ignore":   search.DefaultIgnore,
		}
		if len(args) == 1 {
			switch args[0] {
			case "keywords":
				doc = search.DefaultKeywords
			case "ignore":
				doc = search.DefaultIgnore
			}
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		defer enc.Close()
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding defaults: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(defaultsCmd)
}
