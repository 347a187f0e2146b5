package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fastos/internal/models"
	"fastos/services"
)

type focusArea int

const (
	focusBoot focusArea = iota
	focusShutdown
	focusInput
)

type (
	logMsg  models.LogEntry
	doneMsg struct{}
)

// Model is the desktop shell: Boot and Shutdown buttons, a command input, a
// scrollable log view and a service status panel. Boot and Shutdown run as
// commands on their own goroutines so the event loop never freezes during a
// simulated transition; the log view follows the sink through a subscription.
type Model struct {
	sys    *services.System
	theme  Theme
	styles Styles

	focus   focusArea
	input   textinput.Model
	logView viewport.Model

	events  <-chan models.LogEntry
	cancel  func()
	lines   []string
	lastSeq int64

	width  int
	height int
	ready  bool
}

func NewModel(sys *services.System, themeName string) Model {
	theme := ThemeByName(themeName)

	ti := textinput.New()
	ti.Placeholder = "type a command (status, services, ...)"
	ti.CharLimit = 120

	m := Model{
		sys:    sys,
		theme:  theme,
		styles: NewStyles(theme),
		focus:  focusBoot,
		input:  ti,
	}

	// Subscribe before snapshotting so nothing appended in between is lost;
	// lastSeq deduplicates the overlap.
	m.events, m.cancel = sys.Sink.Subscribe()
	for _, entry := range sys.Sink.Snapshot() {
		m.lines = append(m.lines, entry.Text)
		m.lastSeq = entry.Seq
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitForLog(), textinput.Blink)
}

// waitForLog blocks on the sink subscription and delivers the next entry to
// the event loop.
func (m Model) waitForLog() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		entry, ok := <-events
		if !ok {
			return nil
		}
		return logMsg(entry)
	}
}

func bootCmd(sys *services.System) tea.Cmd {
	return func() tea.Msg {
		sys.Runner.Boot(context.Background())
		return doneMsg{}
	}
}

func shutdownCmd(sys *services.System) tea.Cmd {
	return func() tea.Msg {
		sys.Runner.Shutdown(context.Background())
		return doneMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		logHeight := m.logHeight()
		if !m.ready {
			m.logView = viewport.New(msg.Width-4, logHeight)
			m.logView.SetContent(strings.Join(m.lines, "\n"))
			m.logView.GotoBottom()
			m.ready = true
		} else {
			m.logView.Width = msg.Width - 4
			m.logView.Height = logHeight
		}
		return m, nil

	case logMsg:
		if msg.Seq > m.lastSeq {
			m.lastSeq = msg.Seq
			m.lines = append(m.lines, msg.Text)
			if m.ready {
				m.logView.SetContent(strings.Join(m.lines, "\n"))
				m.logView.GotoBottom()
			}
		}
		return m, m.waitForLog()

	case doneMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateChildren(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.cancel()
		return m, tea.Quit

	case "q":
		if m.focus != focusInput {
			m.cancel()
			return m, tea.Quit
		}

	case "ctrl+t":
		m.theme = m.theme.Toggle()
		m.styles = NewStyles(m.theme)
		return m, nil

	case "tab":
		return m.cycleFocus(1), nil

	case "shift+tab":
		return m.cycleFocus(-1), nil

	case "enter":
		switch m.focus {
		case focusBoot:
			return m, bootCmd(m.sys)
		case focusShutdown:
			return m, shutdownCmd(m.sys)
		case focusInput:
			line := m.input.Value()
			m.input.SetValue("")
			m.sys.Interpreter.Execute(line)
			return m, nil
		}
	}

	return m.updateChildren(msg)
}

func (m Model) cycleFocus(dir int) Model {
	m.focus = focusArea((int(m.focus) + dir + 3) % 3)
	if m.focus == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m
}

func (m Model) updateChildren(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.focus == focusInput {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.ready {
		m.logView, cmd = m.logView.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// logHeight leaves room for title, buttons, input, status rows, the service
// panel and the footer.
func (m Model) logHeight() int {
	fixed := 8 + m.sys.Registry.Len()
	h := m.height - fixed
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) View() string {
	if !m.ready {
		return "starting desktop..."
	}

	title := m.styles.Title.Render(fmt.Sprintf("%s - v%s", m.sys.Name(), m.sys.Version()))

	bootStyle := m.styles.Button
	shutdownStyle := m.styles.Button
	if m.focus == focusBoot {
		bootStyle = m.styles.ButtonFocused
	}
	if m.focus == focusShutdown {
		shutdownStyle = m.styles.ButtonFocused
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		bootStyle.Render("Boot OS"),
		shutdownStyle.Render("Shutdown OS"),
	)

	logPanel := m.styles.LogPanel.Render(m.logView.View())

	input := m.styles.InputLabel.Render("> ") + m.input.View()

	status := m.styles.StatusLabel.Render("OS Status: " + m.sys.Runner.State().String())

	bootTime := "Boot Time: N/A"
	if bt := m.sys.Runner.BootTime(); bt > 0 {
		bootTime = fmt.Sprintf("Boot Time: %.2f sec", bt.Seconds())
	}
	bootLabel := m.styles.BootTime.Render(bootTime)

	var svcLines []string
	for _, detail := range m.sys.Registry.Details() {
		statusStyle := m.styles.ServiceDown
		if detail.Status == models.StatusRunning {
			statusStyle = m.styles.ServiceUp
		}
		svcLines = append(svcLines,
			m.styles.ServiceName.Render(detail.Name+": ")+statusStyle.Render(detail.Status.String()))
	}

	footer := m.styles.Footer.Render("tab: focus · enter: activate · ctrl+t: toggle theme · q: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		buttons,
		logPanel,
		input,
		status,
		bootLabel,
		strings.Join(svcLines, "\n"),
		footer,
	)
}

// Run starts the desktop shell and blocks until the user quits.
func Run(sys *services.System, themeName string) error {
	p := tea.NewProgram(NewModel(sys, themeName), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
