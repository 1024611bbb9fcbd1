// This file is part of stickvis.
//
// stickvis is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// stickvis is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with stickvis.  If not, see <https://www.gnu.org/licenses/>.

package termview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tui "github.com/charmbracelet/bubbletea"
	styles "github.com/charmbracelet/lipgloss"
	plot "github.com/chriskim06/drawille-go"

	"github.com/stickvis/stickvis/govern"
	"github.com/stickvis/stickvis/logger"
	"github.com/stickvis/stickvis/snapshot"
	"github.com/stickvis/stickvis/visualizer"
)

// frames per second of the terminal display
const fps = 30

// the number of lines used by the plot, the status line and the help line
const (
	plotHeight  = 6
	statusLines = 2
	helpLines   = 1
)

// size of PNG snapshots taken from the terminal
const (
	snapshotWidth  = 800
	snapshotHeight = 600
)

var (
	statusStyle = styles.NewStyle().Foreground(styles.AdaptiveColor{Light: "8", Dark: "7"})
	pausedStyle = styles.NewStyle().Bold(true).Foreground(styles.AdaptiveColor{Light: "1", Dark: "9"})
	plotStyle   = styles.NewStyle().Border(styles.NormalBorder()).BorderForeground(styles.AdaptiveColor{Light: "8", Dark: "8"})
)

type frameMsg time.Time

func doFrame() tui.Cmd {
	return tui.Every(time.Second/fps, func(t time.Time) tui.Msg {
		return frameMsg(t)
	})
}

// Model is the bubbletea model for the terminal host.
type Model struct {
	vis     *visualizer.Visualizer
	session *govern.Session
	samples <-chan visualizer.Sample

	// called for every sample before it is passed to the visualiser. may be
	// nil
	tap func(visualizer.Sample)

	canvas *CellCanvas
	plot   *plot.Canvas
	help   help.Model

	width  int
	height int

	// most recent status message. usually the result of a snapshot
	message string
}

// NewModel is the preferred method of initialisation for the Model type.
// Samples received on the channel are passed to the visualiser on every
// frame. The channel may be nil.
func NewModel(vis *visualizer.Visualizer, session *govern.Session, samples <-chan visualizer.Sample) *Model {
	m := &Model{
		vis:     vis,
		session: session,
		samples: samples,
		help:    help.New(),
	}
	m.resize(80, 24)
	return m
}

func (m *Model) resize(w, h int) {
	m.width = w
	m.height = h

	canvasHeight := max(1, h-plotHeight-2-statusLines-helpLines)
	m.canvas = NewCellCanvas(w, canvasHeight)

	p := plot.NewCanvas(max(1, w-2), plotHeight)
	p.ShowAxis = false
	p.LineColors = []plot.Color{plot.Red, plot.LightGray}
	m.plot = &p

	m.help.Width = w
}

// drain all pending samples into the visualiser.
func (m *Model) drain() {
	if m.samples == nil {
		return
	}
	for {
		select {
		case s, ok := <-m.samples:
			if !ok {
				m.samples = nil
				return
			}
			if m.tap != nil {
				m.tap(s)
			}
			m.vis.OnInput(s)
		default:
			return
		}
	}
}

// Init implements the tui.Model interface.
func (m *Model) Init() tui.Cmd {
	m.session.SetState(govern.Running)
	return doFrame()
}

// Update implements the tui.Model interface.
func (m *Model) Update(msg tui.Msg) (tui.Model, tui.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.drain()
		m.draw()
		return m, doFrame()

	case tui.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tui.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.session.SetState(govern.Ending)
			return m, tui.Quit
		case key.Matches(msg, keys.Pause):
			m.message = fmt.Sprintf("state: %s", m.session.TogglePause())
		case key.Matches(msg, keys.Mode):
			m.message = fmt.Sprintf("mode: %s", m.session.CycleMode())
		case key.Matches(msg, keys.Snapshot):
			m.message = m.snapshot()
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

func (m *Model) draw() {
	m.canvas.Clear()
	if s, err := m.vis.Settings(); err == nil {
		m.canvas.Fit(s.Extent())
	}
	m.vis.Draw(m.canvas)

	hist := m.vis.History()
	n := max(2, len(hist))
	m.plot.NumDataPoints = n

	steer := make([]float64, n)
	pitch := make([]float64, n)
	for i, s := range hist {
		// offset so that the most recent sample is on the right
		j := n - len(hist) + i
		steer[j] = float64(s.Steer)
		pitch[j] = float64(s.Pitch)
	}
	m.plot.Fill([][]float64{steer, pitch})
}

func (m *Model) snapshot() string {
	prims := m.vis.Render(visualizer.Vec2{X: snapshotWidth, Y: snapshotHeight})
	fn, err := snapshot.SaveUnique(strings.ToLower(m.session.Mode().String()), snapshotWidth, snapshotHeight, prims)
	if err != nil {
		logger.Log(logger.Allow, "termview", err)
		return err.Error()
	}
	return fmt.Sprintf("snapshot saved: %s", fn)
}

func (m *Model) status() string {
	st := m.session.State()

	var s strings.Builder
	if m.session.IsPaused() {
		s.WriteString(pausedStyle.Render(st.String()))
	} else {
		s.WriteString(statusStyle.Render(st.String()))
	}
	s.WriteString(statusStyle.Render(fmt.Sprintf("  mode: %s  samples: %d", m.session.Mode(), m.vis.Len())))

	if hist := m.vis.History(); len(hist) > 0 {
		last := hist[len(hist)-1]
		s.WriteString(statusStyle.Render(fmt.Sprintf("  last: %s", last)))
	}

	s.WriteRune('\n')
	if m.message != "" {
		s.WriteString(statusStyle.Render(m.message))
	} else {
		var l strings.Builder
		logger.Tail(&l, 1)
		s.WriteString(statusStyle.Render(strings.TrimSpace(l.String())))
	}

	return s.String()
}

// View implements the tui.Model interface.
func (m *Model) View() string {
	return styles.JoinVertical(styles.Left,
		m.canvas.String(),
		plotStyle.Render(m.plot.String()),
		m.status(),
		m.help.View(keys),
	)
}

// Run the terminal host until the user quits. The tap function, if not nil,
// sees every sample before it is passed to the visualiser.
func Run(vis *visualizer.Visualizer, session *govern.Session, samples <-chan visualizer.Sample, tap func(visualizer.Sample)) error {
	m := NewModel(vis, session, samples)
	m.tap = tap
	if _, err := tui.NewProgram(m, tui.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}
