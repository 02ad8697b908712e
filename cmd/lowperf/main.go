// Command lowperf runs the allocation anti-pattern demonstrations.
//
// Usage:
//
//	lowperf                                 # run every procedure once
//	lowperf --only leak,boxing --repeat 2   # run a subset twice in one process
//	lowperf --config small.lpconf --memstats
//	lowperf --report run.cbor               # also write a CBOR run report
//	lowperf list                            # list procedures and default counts
//	lowperf version
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"lowperf/internal/config"
	"lowperf/internal/report"
	"lowperf/internal/runner"
	"lowperf/internal/waste"
	"lowperf/pkg/clock"
	"lowperf/pkg/random"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := newRootCommand(os.Stdout).ExecuteContext(ctx)
	stop()
	if err != nil {
		klog.ErrorS(err, "lowperf failed")
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

type options struct {
	configPath string
	only       []string
	repeat     int
	seed       uint64
	reportPath string
	memStats   bool
}

func newRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "lowperf",
		Short:         "Run allocation anti-pattern demonstrations",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), out, cfg, opts.reportPath)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "path to a .lpconf file")
	flags.StringSliceVar(&opts.only, "only", nil, "run only these procedures (strings, objects, collections, leak, boxing)")
	flags.IntVar(&opts.repeat, "repeat", 1, "number of passes over the procedures")
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed (0 seeds from the clock)")
	flags.StringVar(&opts.reportPath, "report", "", "write a CBOR run report to this path")
	flags.BoolVar(&opts.memStats, "memstats", false, "print heap and GC deltas after each procedure")

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	cmd.SetOut(out)
	cmd.AddCommand(newListCommand(), newVersionCommand())
	return cmd
}

// resolveConfig loads the config file, if any, and applies the flags that
// were set explicitly on top of it.
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.LoadFromFile(opts.configPath, time.Now())
		if err != nil {
			return nil, err
		}
		cfg = loaded
		klog.V(1).InfoS("Loaded config", "path", opts.configPath)
	}

	flags := cmd.Flags()
	if flags.Changed("only") {
		cfg.Only = opts.only
	}
	if flags.Changed("repeat") {
		cfg.Repeat = opts.repeat
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("memstats") {
		cfg.MemStats = opts.memStats
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, out io.Writer, cfg *config.Config, reportPath string) error {
	r, err := runner.NewRunner(runner.Config{
		Params:   cfg.Params,
		Clock:    clock.NewReal(),
		Rand:     random.NewSeeded(cfg.Seed),
		Out:      out,
		Only:     cfg.Only,
		MemStats: cfg.MemStats,
	})
	if err != nil {
		return err
	}

	rep, err := r.Run(ctx, cfg.Repeat)
	if err != nil {
		return err
	}

	if reportPath != "" {
		if err := report.WriteFile(reportPath, rep); err != nil {
			return err
		}
		klog.InfoS("Wrote report", "path", reportPath, "procedures", len(rep.Procedures))
	}
	return nil
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List procedures in run order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			p := waste.DefaultParams()
			counts := map[string]int{
				waste.NameStrings:     p.StringIterations,
				waste.NameObjects:     p.ObjectIterations,
				waste.NameCollections: p.CollectionIterations,
				waste.NameLeak:        p.LeakIterations,
				waste.NameBoxing:      p.BoxingIterations,
			}
			for _, proc := range waste.Procedures() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %7d  %s\n", proc.Name, counts[proc.Name], proc.Start)
			}
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lowperf v%s\n", version)
		},
	}
}
