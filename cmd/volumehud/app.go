package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"volumehud/internal/domain"
	"volumehud/internal/hud"
	"volumehud/internal/lifecycle"
	"volumehud/internal/logger"
	"volumehud/internal/tui"
	"volumehud/internal/volume"
)

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))
)

// app is the demo's Bubble Tea model: the overlay surface composed above a
// small command prompt. Terminal focus drives the lifecycle monitor, arrow
// keys emulate the hardware volume buttons.
type app struct {
	ctrl     *hud.Controller
	surface  *tui.Surface
	viewport *tui.Viewport
	monitor  *lifecycle.Monitor
	manual   *volume.Manual // nil when watching the OS mixer
	log      *logger.Logger

	input  textinput.Model
	width  int
	status string
}

func newApp(ctrl *hud.Controller, surface *tui.Surface, viewport *tui.Viewport, monitor *lifecycle.Monitor, manual *volume.Manual, log *logger.Logger) app {
	ti := textinput.New()
	ti.Prompt = "hud> "
	ti.PromptStyle = promptStyle
	ti.Focus()
	ti.CharLimit = 120
	ti.Width = 60 // updated on first WindowSizeMsg

	status := "↑/↓ volume · type \"help\" for commands"
	if manual == nil {
		status = "watching OS mixer · type \"help\" for commands"
	}

	return app{
		ctrl:     ctrl,
		surface:  surface,
		viewport: viewport,
		monitor:  monitor,
		manual:   manual,
		log:      log,
		input:    ti,
		status:   status,
	}
}

func (a app) Init() tea.Cmd {
	return textinput.Blink
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return a, tea.Quit
		case tea.KeyUp:
			if a.manual != nil {
				a.manual.StepUp()
			}
			return a, nil
		case tea.KeyDown:
			if a.manual != nil {
				a.manual.StepDown()
			}
			return a, nil
		case tea.KeyEnter:
			line := strings.TrimSpace(a.input.Value())
			a.input.Reset()
			if line == "" {
				return a, nil
			}
			return a.runCommand(line)
		}

	case tea.FocusMsg:
		a.monitor.Activate()
		return a, nil

	case tea.BlurMsg:
		a.monitor.Resign()
		return a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.viewport.SetSize(msg.Width, msg.Height)
		a.ctrl.UpdateHeight()
		const promptLen = 5
		if msg.Width > promptLen {
			a.input.Width = msg.Width - promptLen
		}
		return a, nil

	case tui.RepaintMsg:
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a app) View() string {
	var b strings.Builder

	if overlay := a.surface.View(a.width); overlay != "" {
		b.WriteString(overlay)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(statusStyle.Render(a.status))
	b.WriteByte('\n')
	b.WriteString(a.input.View())
	return b.String()
}

// runCommand executes one prompt line against the controller.
func (a app) runCommand(line string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "quit", "exit":
		return a, tea.Quit

	case "help":
		a.status = "show hide start stop · set <0-100> · style slide|fade · segments <n> · spacing <n> · anim <ms> · linger <ms>"

	case "show":
		a.ctrl.Show()
		a.status = "visibility: " + a.ctrl.Visibility().String()

	case "hide":
		a.ctrl.Hide()
		a.status = "visibility: " + a.ctrl.Visibility().String()

	case "start":
		if err := a.ctrl.Start(); err != nil {
			a.status = errorStyle.Render(err.Error())
		} else {
			a.status = "observing volume changes"
		}

	case "stop":
		a.ctrl.Stop()
		a.status = "stopped observing"

	case "set":
		a.setVolume(args)

	case "style":
		if len(args) != 1 || (args[0] != "slide" && args[0] != "fade") {
			a.status = errorStyle.Render("usage: style slide|fade")
			break
		}
		style := domain.StyleSlide
		if args[0] == "fade" {
			style = domain.StyleFade
		}
		a.ctrl.Config().SetAnimationStyle(style)
		a.status = "style: " + style.String()

	case "segments":
		a.setInt(args, "segments", func(n int) error {
			return a.ctrl.Config().SetSegmentCount(n)
		})

	case "spacing":
		a.setInt(args, "spacing", func(n int) error {
			return a.ctrl.Config().SetSpacing(float64(n))
		})

	case "anim":
		a.setInt(args, "anim", func(n int) error {
			return a.ctrl.Config().SetAnimationDuration(time.Duration(n) * time.Millisecond)
		})

	case "linger":
		a.setInt(args, "linger", func(n int) error {
			return a.ctrl.Config().SetMinimumVisible(time.Duration(n) * time.Millisecond)
		})

	default:
		a.status = errorStyle.Render(fmt.Sprintf("unknown command %q", cmd))
	}
	return a, nil
}

func (a *app) setVolume(args []string) {
	if a.manual == nil {
		a.status = errorStyle.Render("set only works with the manual source")
		return
	}
	if len(args) != 1 {
		a.status = errorStyle.Render("usage: set <0-100>")
		return
	}
	pct, err := strconv.Atoi(args[0])
	if err != nil || pct < 0 || pct > 100 {
		a.status = errorStyle.Render("usage: set <0-100>")
		return
	}
	a.manual.Set(float64(pct) / 100)
	a.status = fmt.Sprintf("volume: %d%%", pct)
}

func (a *app) setInt(args []string, name string, apply func(int) error) {
	if len(args) != 1 {
		a.status = errorStyle.Render("usage: " + name + " <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		a.status = errorStyle.Render("usage: " + name + " <n>")
		return
	}
	if err := apply(n); err != nil {
		a.status = errorStyle.Render(err.Error())
		return
	}
	a.status = fmt.Sprintf("%s: %d", name, n)
}
