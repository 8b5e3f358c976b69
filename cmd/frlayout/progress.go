package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/arborcrest/frlayout/graph"
	"github.com/arborcrest/frlayout/layout"
)

var energyLabelStyle = lipgloss.NewStyle().Faint(true)

// stepMsg reports one completed iteration back to the bubbletea program;
// doneMsg signals the run finished (successfully or with an error).
type stepMsg struct {
	index  int
	total  int
	energy float64
}

type doneMsg struct {
	err error
}

type progressModel struct {
	bar      progress.Model
	total    int
	current  int
	energy   float64
	err      error
	finished bool
}

func newProgressModel(total int) progressModel {
	return progressModel{bar: progress.New(progress.WithDefaultGradient()), total: total}
}

func (m progressModel) Init() tea.Cmd { return nil }

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepMsg:
		m.current = msg.index
		m.energy = msg.energy
		return m, nil
	case doneMsg:
		m.finished = true
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.finished {
		return ""
	}
	ratio := 0.0
	if m.total > 0 {
		ratio = float64(m.current) / float64(m.total)
	}
	return fmt.Sprintf(
		"%s\n%s step %d/%d\n",
		m.bar.ViewAs(ratio),
		energyLabelStyle.Render(fmt.Sprintf("kinetic energy %.4f", m.energy)),
		m.current, m.total,
	)
}

// runWithProgress executes steps iterations of engine against g, reporting
// progress through a bubbletea program, and returns the per-step kinetic
// energy series for the convergence CSV. The simulation itself runs
// synchronously in a background goroutine exactly as LayoutEngine requires
// (single-threaded, blocking step calls); the goroutine only exists to let
// the console repaint between steps.
func runWithProgress(cmd *cobra.Command, engine *layout.Engine, g *graph.Graph, steps int) ([]float64, error) {
	program := tea.NewProgram(newProgressModel(steps), tea.WithOutput(cmd.OutOrStdout()))

	energies := make([]float64, 0, steps)
	var stepErr error

	go func() {
		for i := 0; i < steps; i++ {
			if err := engine.Step(g); err != nil {
				stepErr = fmt.Errorf("run: step %d: %w", i, err)
				break
			}
			e := engine.KineticEnergy()
			energies = append(energies, e)
			program.Send(stepMsg{index: i + 1, total: steps, energy: e})
		}
		program.Send(doneMsg{err: stepErr})
	}()

	if _, err := program.Run(); err != nil {
		return nil, fmt.Errorf("run: progress display: %w", err)
	}
	if stepErr != nil {
		return nil, stepErr
	}
	return energies, nil
}
