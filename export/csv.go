// Package export writes the three read-only views spec.md names as
// produced for the exporter collaborator — final node positions, canonical
// edges, and the per-step convergence series — to CSV. None of this lives
// in the core: the engine and graph packages never import it, and it
// reaches into them only through their already-exported accessors.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"

	"github.com/arborcrest/frlayout/graph"
)

// Nodes writes one "id,x,y" row per node, in the graph's stable insertion
// order, preceded by a comment header line carrying runID so a batch of
// CSV files produced by one run can be correlated after the fact.
func Nodes(w io.Writer, g *graph.Graph, runID uuid.UUID) error {
	if _, err := fmt.Fprintf(w, "# run=%s\n", runID); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "x", "y"}); err != nil {
		return err
	}
	for _, n := range g.Nodes() {
		row := []string{
			strconv.FormatUint(uint64(n.ID), 10),
			strconv.FormatFloat(n.Position.X, 'g', -1, 64),
			strconv.FormatFloat(n.Position.Y, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Edges writes one "source,target" row per canonical edge (source <=
// target), in ascending (source, target) order.
func Edges(w io.Writer, g *graph.Graph, runID uuid.UUID) error {
	if _, err := fmt.Fprintf(w, "# run=%s\n", runID); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"source", "target"}); err != nil {
		return err
	}
	for _, e := range g.Edges() {
		row := []string{
			strconv.FormatUint(uint64(e.Source), 10),
			strconv.FormatUint(uint64(e.Target), 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ConvergenceSeries writes one "step,kinetic_energy" row per element of
// energies, in the order the steps actually ran.
func ConvergenceSeries(w io.Writer, energies []float64, runID uuid.UUID) error {
	if _, err := fmt.Fprintf(w, "# run=%s\n", runID); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "kinetic_energy"}); err != nil {
		return err
	}
	for i, e := range energies {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(e, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
