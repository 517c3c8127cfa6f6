package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/percolate/lattice"
	"github.com/katalvlaran/percolate/percolation"
	"github.com/katalvlaran/percolate/render"
)

const playHelp = "arrows/hjkl move · space/enter open · q quit"

// playModel is the interactive controller. It owns the percolation model
// and re-renders from Snapshot after every key press.
type playModel struct {
	model  *percolation.Model
	cursor lattice.Site
	styles render.Styles
	log    *zap.Logger
	err    error
}

func newPlayModel(n int, st render.Styles, log *zap.Logger) (*playModel, error) {
	pm := &playModel{styles: st, log: log}
	m, err := percolation.New(n, percolation.WithOnOpen(func(e percolation.OpenEvent) {
		log.Debug("site opened",
			zap.Int("row", e.Row),
			zap.Int("col", e.Col),
			zap.Bool("full", e.Full),
			zap.Bool("percolates", e.Percolates),
			zap.Int("open_sites", e.OpenSites))
	}))
	if err != nil {
		return nil, err
	}
	pm.model = m

	return pm, nil
}

func (pm *playModel) Init() tea.Cmd {
	return nil
}

func (pm *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return pm, nil
	}
	last := pm.model.SideLength() - 1
	switch key.String() {
	case "ctrl+c", "q", "esc":
		return pm, tea.Quit
	case "up", "k":
		pm.cursor.Row = max(pm.cursor.Row-1, 0)
	case "down", "j":
		pm.cursor.Row = min(pm.cursor.Row+1, last)
	case "left", "h":
		pm.cursor.Col = max(pm.cursor.Col-1, 0)
	case "right", "l":
		pm.cursor.Col = min(pm.cursor.Col+1, last)
	case " ", "enter":
		pm.openCursor()
	}

	return pm, nil
}

// openCursor opens the site under the cursor unless it is already open.
func (pm *playModel) openCursor() {
	row, col := pm.cursor.Row, pm.cursor.Col
	open, err := pm.model.IsOpen(row, col)
	if err != nil {
		pm.err = err
		return
	}
	if open {
		return
	}
	if err := pm.model.Open(row, col); err != nil {
		pm.err = err
		pm.log.Warn("open failed", zap.Int("row", row), zap.Int("col", col), zap.Error(err))
	}
}

func (pm *playModel) View() string {
	view := render.Frame(pm.model.Snapshot(), pm.styles, &pm.cursor) + "\n\n" + playHelp + "\n"
	if pm.err != nil {
		view += fmt.Sprintf("error: %v\n", pm.err)
	}

	return view
}

func runPlay(cmd *cobra.Command, args []string) error {
	pm, err := newPlayModel(cfg.Size, styles(), logger)
	if err != nil {
		return err
	}
	logger.Info("interactive session started", zap.Int("size", cfg.Size))

	p := tea.NewProgram(pm,
		tea.WithContext(commandContext(cmd)),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive session: %w", err)
	}
	logger.Info("interactive session ended",
		zap.Int("open_sites", pm.model.OpenSiteCount()),
		zap.Bool("percolates", pm.model.Percolates()))

	return nil
}
