// Command route routes single utterances from the command line, for trying
// out domains and prompts without the HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	noModel    bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "route",
	Short: "Route chat utterances to action plans",
	Long: `Runs the intent router in-process: deterministic fast path, model
fallback, confidence gate and domain compiler. Prints the routing result
as JSON.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: search ./config, ., /etc/app)")
	rootCmd.PersistentFlags().BoolVar(&noModel, "no-model", false, "disable the model fallback")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log routing steps")

	rootCmd.AddCommand(textCmd, domainsCmd, promptCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
