package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/arborcrest/frlayout/export"
	"github.com/arborcrest/frlayout/graph"
	"github.com/arborcrest/frlayout/internal/obslog"
	"github.com/arborcrest/frlayout/internal/rng"
	"github.com/arborcrest/frlayout/layout"
	"github.com/arborcrest/frlayout/repulsion"
)

func newRunCommand() *cobra.Command {
	cfg := runConfig{
		Nodes:            100,
		Probability:      0.05,
		Width:            1000,
		Height:           1000,
		ScalingConstant:  1.0,
		Steps:            500,
		Strategy:         "barneshut",
		Theta:            0.5,
		OutDir:           ".",
		WarnDisconnected: true,
	}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a random graph and run the layout to completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Nodes, "nodes", cfg.Nodes, "number of nodes in the generated graph")
	flags.Float64Var(&cfg.Probability, "probability", cfg.Probability, "Erdos-Renyi edge probability")
	flags.Float64Var(&cfg.Width, "width", cfg.Width, "frame width")
	flags.Float64Var(&cfg.Height, "height", cfg.Height, "frame height")
	flags.Float64Var(&cfg.ScalingConstant, "scale", cfg.ScalingConstant, "layout scaling constant C")
	flags.IntVar(&cfg.Steps, "steps", cfg.Steps, "number of layout iterations to run")
	flags.Int64Var(&cfg.GraphSeed, "graph-seed", cfg.GraphSeed, "seed for graph generation (0 = nondeterministic)")
	flags.Int64Var(&cfg.LayoutSeed, "layout-seed", cfg.LayoutSeed, "seed for initial layout positions (0 = nondeterministic)")
	flags.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "repulsive strategy: bruteforce or barneshut")
	flags.Float64Var(&cfg.Theta, "theta", cfg.Theta, "Barnes-Hut acceptance parameter")
	flags.StringVar(&cfg.OutDir, "out", cfg.OutDir, "directory to write node/edge/convergence CSVs into")
	flags.BoolVar(&cfg.WarnDisconnected, "warn-disconnected", cfg.WarnDisconnected, "log a warning if the generated graph has more than one connected component")
	return cmd
}

func runLayout(cmd *cobra.Command, cfg runConfig) error {
	log := obslog.New("run")

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("run: invalid configuration: %w", err)
	}

	now := func() int64 { return time.Now().UnixNano() }
	graphSeed := rng.SeedOrDefault(cfg.GraphSeed, now)
	layoutSeed := rng.SeedOrDefault(cfg.LayoutSeed, now)

	g, err := graph.ErdosRenyi(cfg.Nodes, cfg.Probability, graphSeed)
	if err != nil {
		return fmt.Errorf("run: generating graph: %w", err)
	}
	log.Info("graph generated", "nodes", g.NodeCount(), "edges", g.EdgeCount(), "seed", graphSeed)

	if cfg.WarnDisconnected {
		if comps := g.ConnectedComponents(); len(comps) > 1 {
			log.Warn("generated graph is disconnected", "components", len(comps))
		}
	}

	engine, err := layout.New(cfg.Width, cfg.Height, cfg.ScalingConstant)
	if err != nil {
		return fmt.Errorf("run: constructing engine: %w", err)
	}
	switch cfg.Strategy {
	case "barneshut":
		engine.SetStrategy(repulsion.NewBarnesHut(cfg.Theta))
	case "bruteforce":
		engine.SetStrategy(repulsion.BruteForce{})
	}

	if err := engine.Initialize(g, layoutSeed); err != nil {
		return fmt.Errorf("run: initializing layout: %w", err)
	}

	energies, err := runWithProgress(cmd, engine, g, cfg.Steps)
	if err != nil {
		log.Error("layout run failed", "error", err)
		return err
	}

	if err := writeResults(cmd.OutOrStdout(), cfg.OutDir, g, energies); err != nil {
		log.Error("exporting results failed", "error", err)
		return err
	}
	log.Info("run complete", "steps", cfg.Steps, "final_energy", engine.KineticEnergy())
	return nil
}

func writeResults(out io.Writer, outDir string, g *graph.Graph, energies []float64) error {
	runID := uuid.New()
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("run: creating output directory: %w", err)
	}

	nodesFile, err := os.Create(filepath.Join(outDir, "nodes.csv"))
	if err != nil {
		return err
	}
	defer nodesFile.Close()
	if err := export.Nodes(nodesFile, g, runID); err != nil {
		return fmt.Errorf("run: exporting nodes: %w", err)
	}

	edgesFile, err := os.Create(filepath.Join(outDir, "edges.csv"))
	if err != nil {
		return err
	}
	defer edgesFile.Close()
	if err := export.Edges(edgesFile, g, runID); err != nil {
		return fmt.Errorf("run: exporting edges: %w", err)
	}

	seriesFile, err := os.Create(filepath.Join(outDir, "convergence.csv"))
	if err != nil {
		return err
	}
	defer seriesFile.Close()
	if err := export.ConvergenceSeries(seriesFile, energies, runID); err != nil {
		return fmt.Errorf("run: exporting convergence series: %w", err)
	}

	fmt.Fprintf(out, "run %s complete: %d nodes written to %s\n", runID, g.NodeCount(), outDir)
	return nil
}
