// Command socialgraph builds a friendship network from a seed fixture and
// prints every person's friends. With no flags it replays the built-in
// demonstration network.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dd0wney/socialgraph/pkg/config"
	"github.com/dd0wney/socialgraph/pkg/graphql"
	"github.com/dd0wney/socialgraph/pkg/logging"
	"github.com/dd0wney/socialgraph/pkg/metrics"
	"github.com/dd0wney/socialgraph/pkg/network"
	"github.com/dd0wney/socialgraph/pkg/render"
	"github.com/dd0wney/socialgraph/pkg/seed"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "socialgraph: %v\n", err)
		}
		os.Exit(1)
	}
}

type options struct {
	configPath string
	seedPath   string
	style      string
	query      string
	metrics    bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("socialgraph", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&opts.seedPath, "seed", "", "YAML fixture of people and friendships (default: built-in demo)")
	fs.StringVar(&opts.style, "style", "", "listing style: plain or styled")
	fs.StringVar(&opts.query, "query", "", "GraphQL query to run after seeding")
	fs.BoolVar(&opts.metrics, "metrics", false, "write Prometheus metrics to stderr on exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.seedPath != "" {
		cfg.SeedFile = opts.seedPath
	}
	if opts.style != "" {
		cfg.Output.Style = opts.style
	}
	cfg.Metrics.Enabled = cfg.Metrics.Enabled || opts.metrics

	logger := logging.NewJSONLogger(stderr, cfg.Level())
	logging.SetDefaultLogger(logger)

	renderer, err := render.New(cfg.Output.Style)
	if err != nil {
		return err
	}

	fixture := seed.Default()
	if cfg.SeedFile != "" {
		if fixture, err = seed.Load(cfg.SeedFile); err != nil {
			return err
		}
	}

	reg := metrics.NewRegistry()
	net := network.New(
		network.WithOutput(stdout),
		network.WithDiagnostics(cfg.DiagnosticsWriter(stdout, stderr)),
		network.WithLogger(logger),
		network.WithMetrics(reg),
	)

	res := seed.Apply(net, fixture)
	logger.Info("seed applied",
		logging.NetworkID(net.ID()),
		logging.Int("people_added", res.PeopleAdded),
		logging.Int("friendships_added", res.FriendshipsAdded),
		logging.Int("rejected", res.Rejected),
	)

	// The plain listing is the network's own output; other styles render a snapshot
	if cfg.Output.Style == config.StylePlain {
		err = net.PrintNetwork()
	} else {
		err = renderer.Render(stdout, net.Snapshot())
	}
	if err != nil {
		return fmt.Errorf("write listing: %w", err)
	}

	if opts.query != "" {
		if err := runQuery(ctx, net, cfg, reg, logger, opts.query, stdout); err != nil {
			return err
		}
	}

	if cfg.Metrics.Enabled {
		if err := reg.WriteText(stderr); err != nil {
			return err
		}
	}
	return nil
}

func runQuery(ctx context.Context, net *network.Network, cfg config.Config, reg *metrics.Registry, logger logging.Logger, query string, stdout io.Writer) error {
	exec, err := graphql.NewExecutor(net, graphql.ExecutorConfig{
		MaxDepth: cfg.GraphQL.MaxDepth,
		Metrics:  reg,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	result := exec.Execute(ctx, query, nil)
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode query result: %w", err)
	}
	fmt.Fprintln(stdout, string(data))

	if result.HasErrors() {
		return fmt.Errorf("query failed: %s", result.Errors[0].Message)
	}
	return nil
}
