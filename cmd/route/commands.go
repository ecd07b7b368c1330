package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"intent-router/config"
	"intent-router/internal/agenda"
	"intent-router/internal/intent"
	"intent-router/internal/modelextract"
	"intent-router/internal/rail"
	"intent-router/internal/router"
	"intent-router/pkg/datemath"
	"intent-router/pkg/llmprovider"
	"intent-router/pkg/log"
)

var (
	domain       string
	turnKey      string
	previousText string
)

var textCmd = &cobra.Command{
	Use:   "text [utterance...]",
	Short: "Route one utterance and print the result",
	Long: `Routes one utterance for a domain.

Example:
  route text --domain rail "laat het vertrekbord van station Utrecht zien"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runText,
}

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List the routing domains",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		for _, name := range e.router.Domains() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var promptCmd = &cobra.Command{
	Use:   "prompt [utterance...]",
	Short: "Print the model prompt an utterance would be sent with",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		d, ok := e.domains[domain]
		if !ok {
			return fmt.Errorf("unknown domain %q", domain)
		}
		tc := intent.TurnContext{PreviousUserText: previousText}
		fmt.Fprintln(cmd.OutOrStdout(), e.extractor.BuildPrompt(d.ModelSpec(), strings.Join(args, " "), tc))
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{textCmd, promptCmd} {
		cmd.Flags().StringVarP(&domain, "domain", "d", rail.DomainName, "routing domain")
		cmd.Flags().StringVar(&previousText, "previous", "", "previous user message of the chat")
	}
	textCmd.Flags().StringVar(&turnKey, "turn-key", "cli:1", "turn key for side-effecting plans")
}

func runText(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	res := e.router.Route(context.Background(), router.Request{
		Domain:  domain,
		Text:    strings.Join(args, " "),
		Context: intent.TurnContext{PreviousUserText: previousText},
		TurnKey: turnKey,
	})

	out := struct {
		router.Result
		Reason string `json:"reason,omitempty"`
	}{Result: res}
	if res.Reason != nil {
		out.Reason = res.Reason.Error()
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// env is the in-process routing stack built from config.
type env struct {
	router    *router.Dispatcher
	extractor *modelextract.Extractor
	domains   map[string]router.Domain
}

func newEnv() (*env, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.NewNop()
	if verbose {
		logger = log.Init(log.ZapConfig{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true})
	}

	dates, err := datemath.NewParser(cfg.Router.Timezone)
	if err != nil {
		return nil, err
	}

	modelEnabled := cfg.Router.ModelEnabled && !noModel
	var models router.ModelResolver
	if modelEnabled && len(cfg.LLM.Providers) > 0 {
		models = llmprovider.NewResolver(&cfg.LLM, logger)
	}

	domains := []router.Domain{rail.New(dates), agenda.New(dates)}
	byName := make(map[string]router.Domain, len(domains))
	for _, d := range domains {
		byName[d.Name()] = d
	}

	return &env{
		router: router.New(logger, dates, router.Config{
			Enabled:       cfg.Router.Enabled,
			ModelEnabled:  modelEnabled,
			MinConfidence: &cfg.Router.MinConfidence,
			MaxInputChars: cfg.Router.MaxInputChars,
			ModelTimeout:  cfg.Router.ModelTimeout,
		}, models, domains),
		extractor: modelextract.New(logger, dates, modelextract.Config{
			MaxInputChars: cfg.Router.MaxInputChars,
			Timeout:       cfg.Router.ModelTimeout,
		}),
		domains: byName,
	}, nil
}
