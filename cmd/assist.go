package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/agent"
	"github.com/etnz/tracker/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "Start an interactive session with the AI assistant." }
func (*assistCmd) Usage() string {
	return `ivt assist [question]

  Start an interactive session with a portfolio analyst grounded on the
  current reports. Requires Gemini API credentials in the environment.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = []string{strings.Join(f.Args(), " ")}
	}

	store, err := loadStore()
	if err != nil {
		return fail("Error loading portfolio: %v", err)
	}

	p := tracker.NewPricer(store, market())
	valuations := tracker.Valuations(store, p)
	summary := tracker.Summarize(valuations, store.Cash, store.Currency())
	reports := renderer.PortfolioMarkdown(valuations, summary) +
		"\n" + renderer.TrueADAMarkdown(valuations, summary) +
		"\n" + renderer.DividendsMarkdown(store)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(reports)
	if err := analyst.Run(ctx, client, os.Stdout, os.Stdin, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
