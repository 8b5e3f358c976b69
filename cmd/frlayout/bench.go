package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/arborcrest/frlayout/graph"
	"github.com/arborcrest/frlayout/internal/obslog"
	"github.com/arborcrest/frlayout/layout"
	"github.com/arborcrest/frlayout/metrics"
	"github.com/arborcrest/frlayout/repulsion"
)

type benchConfig struct {
	Nodes       int
	Probability float64
	Steps       int
	Theta       float64
	Seed        int64
	MetricsAddr string
}

func newBenchCommand() *cobra.Command {
	cfg := benchConfig{Nodes: 500, Probability: 0.01, Steps: 50, Theta: 0.5, Seed: 1}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare BruteForce and BarnesHut step latency on a random graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, cfg)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&cfg.Nodes, "nodes", cfg.Nodes, "number of nodes in the benchmark graph")
	flags.Float64Var(&cfg.Probability, "probability", cfg.Probability, "Erdos-Renyi edge probability")
	flags.IntVar(&cfg.Steps, "steps", cfg.Steps, "number of steps to time per strategy")
	flags.Float64Var(&cfg.Theta, "theta", cfg.Theta, "Barnes-Hut acceptance parameter")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed shared by graph generation and both runs")
	flags.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address for the duration of the benchmark (e.g. :9090)")
	return cmd
}

// timeStrategy runs cfg.Steps layout steps on a fresh copy of the graph
// built from the same seed, using the given repulsive strategy, feeding
// every step's temperature/energy/duration into recorder, and returns the
// total wall-clock time of the step loop (Step calls plus the per-step
// metric recording).
func timeStrategy(cfg benchConfig, strategy repulsion.Strategy, recorder *metrics.Recorder) (time.Duration, error) {
	g, err := graph.ErdosRenyi(cfg.Nodes, cfg.Probability, cfg.Seed)
	if err != nil {
		return 0, err
	}
	engine, err := layout.New(1000, 1000, 1.0)
	if err != nil {
		return 0, err
	}
	engine.SetStrategy(strategy)
	if err := engine.Initialize(g, cfg.Seed); err != nil {
		return 0, err
	}

	start := time.Now()
	for i := 0; i < cfg.Steps; i++ {
		stepStart := time.Now()
		if err := engine.Step(g); err != nil {
			return 0, fmt.Errorf("bench: step %d: %w", i, err)
		}
		recorder.ObserveStep(engine.Temperature(), engine.KineticEnergy(), time.Since(stepStart))
	}
	return time.Since(start), nil
}

func runBench(cmd *cobra.Command, cfg benchConfig) error {
	log := obslog.New("bench")
	registry := prometheus.NewRegistry()
	recorder := metrics.NewRecorder()
	registry.MustRegister(recorder.Collectors()...)

	var server *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		server = &http.Server{Addr: cfg.MetricsAddr, Handler: mux}
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("metrics server stopped", "error", err)
			}
		}()
		log.Info("serving metrics", "addr", cfg.MetricsAddr)
		defer server.Close()
	}

	bfDuration, err := timeStrategy(cfg, repulsion.BruteForce{}, recorder)
	if err != nil {
		return err
	}
	bhDuration, err := timeStrategy(cfg, repulsion.NewBarnesHut(cfg.Theta), recorder)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "nodes=%d steps=%d\n", cfg.Nodes, cfg.Steps)
	fmt.Fprintf(out, "bruteforce: %v (%v/step)\n", bfDuration, bfDuration/time.Duration(cfg.Steps))
	fmt.Fprintf(out, "barneshut:  %v (%v/step)\n", bhDuration, bhDuration/time.Duration(cfg.Steps))
	return nil
}
