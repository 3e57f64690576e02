// Package terminal is a render/input adapter that plays the game inside a
// terminal using Bubble Tea. Every tile is two character cells wide so the
// board keeps its square proportions.
package terminal

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mikenye/gridsnake/internal/domain"
	"github.com/mikenye/gridsnake/internal/game"
	"github.com/mikenye/gridsnake/internal/ui/types"
)

const cell = "  "

// TickMsg is the render trigger.
type TickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

var keyIntents = map[string]game.Intent{
	"w":     game.IntentUp,
	"up":    game.IntentUp,
	"s":     game.IntentDown,
	"down":  game.IntentDown,
	"a":     game.IntentLeft,
	"left":  game.IntentLeft,
	"d":     game.IntentRight,
	"right": game.IntentRight,
	"r":     game.IntentReset,
	"R":     game.IntentReset,
}

type Model struct {
	session *game.Session
	snap    game.Snapshot

	// intents received since the last tick
	pending []game.Intent

	// timestamp of the previous TickMsg
	lastTick time.Time

	styles map[string]lipgloss.Style
}

func New(session *game.Session) Model {
	return Model{
		session: session,
		snap:    session.Controller().Game().Snapshot(),
		styles:  make(map[string]lipgloss.Style),
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.Config().FrameInterval())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if key == "q" || key == "ctrl+c" {
			return m, tea.Quit
		}
		if intent, ok := keyIntents[key]; ok {
			m.pending = append(m.pending, intent)
		}
	case TickMsg:
		now := time.Time(msg)
		elapsed := m.session.Config().FrameInterval()
		if !m.lastTick.IsZero() {
			elapsed = now.Sub(m.lastTick)
		}
		m.lastTick = now
		m.snap = m.session.Step(elapsed, m.pending)
		m.pending = nil
		return m, tickCmd(m.session.Config().FrameInterval())
	}
	return m, nil
}

func (m Model) View() string {
	grid := m.snap.Grid
	scene := types.SceneFor(m.session.Config().Palette, m.snap)
	width := grid.Cols * len(cell)

	var sb strings.Builder

	// header strip, score on its middle row
	header := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Background(lipgloss.Color(types.Hex(scene.HeaderBg))).
		Foreground(lipgloss.Color(types.Hex(scene.HeaderFg)))
	for row := 0; row < grid.HeaderRows; row++ {
		line := ""
		if row == grid.HeaderRows/2 {
			line = types.ScoreLine(m.snap.Score)
		}
		sb.WriteString(header.Render(line))
		sb.WriteByte('\n')
	}

	colors := m.tileColors(scene)
	bannerRow := grid.Rows / 2
	bannerStyle := header.Background(lipgloss.Color(types.Hex(scene.Background)))

	for row := grid.HeaderRows; row < grid.Rows; row++ {
		if m.snap.GameOver() && row == bannerRow {
			sb.WriteString(bannerStyle.Render(types.DeathBanner))
			sb.WriteByte('\n')
			continue
		}
		for col := 0; col < grid.Cols; col++ {
			hex, ok := colors[domain.Position{Col: col, Row: row}]
			if !ok {
				hex = types.Hex(scene.Background)
			}
			sb.WriteString(m.style(hex).Render(cell))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("WASD/arrows: steer  R: reset  q: quit")
	return sb.String()
}

// tileColors maps every occupied tile to its colour. Snake segments are
// painted after the food and head-last so the head wins on overlap.
func (m Model) tileColors(scene types.Scene) map[domain.Position]string {
	colors := make(map[domain.Position]string, len(m.snap.Body)+1)
	colors[m.snap.Food] = types.Hex(scene.Food)
	for i := len(m.snap.Body) - 1; i >= 0; i-- {
		colors[m.snap.Body[i]] = types.Hex(scene.SegmentColor(i, len(m.snap.Body)))
	}
	return colors
}

func (m Model) style(hex string) lipgloss.Style {
	if s, ok := m.styles[hex]; ok {
		return s
	}
	s := lipgloss.NewStyle().Background(lipgloss.Color(hex))
	m.styles[hex] = s
	return s
}

// Run plays session in the terminal until the player quits or ctx is done.
func Run(ctx context.Context, session *game.Session) error {
	p := tea.NewProgram(New(session), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
