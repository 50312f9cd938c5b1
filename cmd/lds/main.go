// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/2dChan/lds/internal/config"
	"github.com/2dChan/lds/internal/seqs"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/toolkits/pkg/logger"
)

type options struct {
	configFile string
	kind       string
	bases      string
	count      int
	seed       uint64
	format     string
	output     string
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "lds",
		Short:         "low-discrepancy sequence generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "YAML config file")
	pf.StringVarP(&opts.kind, "kind", "k", config.DefaultKind, "sequence kind")
	pf.StringVarP(&opts.bases, "bases", "b", "", "comma separated bases (default: first primes)")
	pf.IntVarP(&opts.count, "count", "n", config.DefaultCount, "number of points")
	pf.Uint64Var(&opts.seed, "seed", 0, "start cursor")
	pf.StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	pf.StringVar(&opts.logLevel, "log-level", config.DefaultLevel, "DEBUG, INFO, WARNING or ERROR")

	rootCmd.AddCommand(
		newGenCmd(opts),
		newSVGCmd(opts),
		newCoverageCmd(opts),
		newIntegrateCmd(opts),
		newKindsCmd(),
	)
	return rootCmd
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "list sequence kinds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range seqs.Kinds {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
		},
	}
}

// loadConfig reads the config file, if any, applies the flags the user set
// on top of it, and starts the logger.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configFile != "" {
		var err error
		if cfg, err = config.Load(opts.configFile); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("kind") {
		cfg.Kind = opts.kind
	}
	if flags.Changed("bases") {
		bases, err := parseBases(opts.bases)
		if err != nil {
			return nil, err
		}
		cfg.Bases = bases
	}
	if flags.Changed("count") {
		cfg.Count = opts.count
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = strings.ToUpper(opts.logLevel)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if err := logger.Init(logger.LogConfig{Type: cfg.Log.Type, Level: cfg.Log.Level}); err != nil {
		return nil, errors.Wrap(err, "init logger")
	}
	logger.Debugf("config: kind=%s bases=%v count=%d seed=%d", cfg.Kind, cfg.Bases, cfg.Count, cfg.Seed)
	return cfg, nil
}

func parseBases(s string) ([]uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	bases := make([]uint64, len(fields))
	for i, f := range fields {
		b, err := strconv.ParseUint(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "base %q", f)
		}
		bases[i] = b
	}
	return bases, nil
}

// newSequence builds the configured generator, positioned at cfg.Seed.
func newSequence(cfg *config.Config) (seqs.Kind, *sequence, error) {
	kind, err := cfg.SeqKind()
	if err != nil {
		return "", nil, err
	}
	seq, err := seqs.New(kind, cfg.Bases)
	if err != nil {
		return "", nil, err
	}
	seq.Reseed(cfg.Seed)

	nbases := len(cfg.Bases)
	if nbases == 0 {
		nbases = kind.MinBases()
	}
	return kind, &sequence{Sequence: seq, dim: kind.Dim(nbases)}, nil
}
