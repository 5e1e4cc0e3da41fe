// Command dscc runs the distributed divide-and-conquer SCC solver
// against an edge-list file.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ailidani/dscc"
	"github.com/ailidani/dscc/log"
	"github.com/ailidani/dscc/metrics"

	prom "github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "dscc <edge-list-file>",
		Short: "Distributed divide-and-conquer strongly connected components solver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			// Config keys use underscores; bind the hyphenated flags to them.
			if err := v.BindPFlag("log_level", cmd.Flags().Lookup("log-level")); err != nil {
				return err
			}
			if err := v.BindPFlag("metrics_addr", cmd.Flags().Lookup("metrics-addr")); err != nil {
				return err
			}
			cfg, err := dscc.LoadConfig(v, configFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			cfg.Input = args[0]
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "optional config file (yaml/json/toml)")
	cmd.Flags().Int("procs", dscc.DefaultConfig().Procs, "number of simulated BSP processes")
	cmd.Flags().String("log-level", dscc.DefaultConfig().LogLevel, "debug|info|warning|error")
	cmd.Flags().String("metrics-addr", "", "address to serve Prometheus /metrics on, empty disables it")

	return cmd
}

func run(cfg dscc.Config) error {
	if err := log.Level.Set(cfg.LogLevel); err != nil {
		return err
	}

	m := metrics.New(prom.DefaultRegisterer)
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				log.Errorf("metrics server: %v", err)
			}
		}()
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("opening %s: %w", cfg.Input, err)
	}
	defer f.Close()

	result, err := dscc.Solve(context.Background(), f, cfg.Procs, m)
	if err != nil {
		return fmt.Errorf("solving: %w", err)
	}

	fmt.Printf("run_id=%s iterations=%d edges=%d vertices_range=[%d,%d] sccs=%d largest_scc=%d\n",
		result.Report.RunID, result.Report.Iterations, result.Ingest.Edges,
		result.Ingest.MinID, result.Ingest.MaxID, result.Report.SCCCount, result.Report.LargestSCC)

	return nil
}
