// Package tui replays recorded animation sequences in the terminal.
package tui

import (
	"fmt"
	"image"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/nbodyanim/internal/viz"
)

const (
	canvasWidth  = 72
	canvasHeight = 30
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 2)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Options configure sequence playback.
type Options struct {
	Frames   []*image.Paletted
	Energies []float64 // per-frame, same order as Frames
	Title    string
	Interval time.Duration
	Repeat   bool
}

// Player steps through a recorded frame sequence at the animation's
// configured interval.
type Player struct {
	opts    Options
	canvas  *viz.Canvas
	idx     int
	playing bool
	done    bool
}

func NewPlayer(opts Options) Player {
	if opts.Interval <= 0 {
		opts.Interval = 200 * time.Millisecond
	}
	return Player{
		opts:    opts,
		canvas:  viz.NewCanvas(canvasWidth, canvasHeight),
		playing: true,
	}
}

func (p Player) Init() tea.Cmd { return p.tick() }

func (p Player) tick() tea.Cmd {
	return tea.Tick(p.opts.Interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (p Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return p, tea.Quit
		case " ":
			if !p.done {
				p.playing = !p.playing
			}
		case "r":
			p.idx = 0
			p.done = false
			p.playing = true
		case "left", "h":
			p.playing = false
			p.done = false
			if p.idx > 0 {
				p.idx--
			}
		case "right", "l":
			p.playing = false
			p.done = false
			if p.idx < len(p.opts.Frames)-1 {
				p.idx++
			}
		}
	case TickMsg:
		if p.playing && len(p.opts.Frames) > 0 {
			if p.idx < len(p.opts.Frames)-1 {
				p.idx++
			} else if p.opts.Repeat {
				p.idx = 0
			} else {
				p.done = true
				p.playing = false
			}
		}
		return p, p.tick()
	}
	return p, nil
}

func (p Player) View() string {
	if len(p.opts.Frames) == 0 {
		return statusStyle.Render("no frames recorded") + "\n"
	}

	title := p.opts.Title
	if title == "" {
		title = "animation"
	}

	p.canvas.DrawImage(p.opts.Frames[p.idx])

	status := "PLAYING"
	switch {
	case p.done:
		status = "DONE"
	case !p.playing:
		status = "PAUSED"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(strings.ToUpper(title)) + "\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("frame %d/%d  %s", p.idx+1, len(p.opts.Frames), status)) + "\n")
	b.WriteString(canvasStyle.Render(p.canvas.String()))

	if p.idx < len(p.opts.Energies) && p.idx > 0 {
		chart := asciigraph.Plot(p.opts.Energies[:p.idx+1],
			asciigraph.Height(4), asciigraph.Width(40), asciigraph.Caption("Total Energy"))
		b.WriteString("\n" + graphStyle.Render(chart))
	}

	b.WriteString("\n" + helpStyle.Render("SP:Pause R:Restart ←→:Scrub Q:Quit"))
	return b.String()
}

// Play blocks until the viewer closes the player.
func Play(opts Options) error {
	_, err := tea.NewProgram(NewPlayer(opts)).Run()
	return err
}
