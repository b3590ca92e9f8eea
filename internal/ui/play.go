package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Responder handles one typed line and returns the reply lines and whether
// the run is over.
type Responder func(line string) (lines []string, quit bool)

const maxHistory = 500

// PlayModel is the interactive front end: a prompt line under a scrolling
// log of replies.
type PlayModel struct {
	respond Responder
	input   string
	history []string
	height  int
	done    bool
}

func NewPlayModel(intro []string, respond Responder) PlayModel {
	m := PlayModel{respond: respond}
	m.appendLines(intro)
	return m
}

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			return m.submit("quit")
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input)
			m.input = ""
			if line == "" {
				return m, nil
			}
			return m.submit(line)
		case tea.KeyBackspace:
			if r := []rune(m.input); len(r) > 0 {
				m.input = string(r[:len(r)-1])
			}
		case tea.KeySpace:
			m.input += " "
		case tea.KeyRunes:
			m.input += string(msg.Runes)
		}
	}
	return m, nil
}

func (m PlayModel) submit(line string) (tea.Model, tea.Cmd) {
	m.appendLines([]string{dimStyle.Render("> " + line)})
	lines, quit := m.respond(line)
	m.appendLines(lines)
	if quit {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// appendLines splits multi-line screens so scrolling counts terminal rows.
func (m *PlayModel) appendLines(lines []string) {
	for _, l := range lines {
		m.history = append(m.history, strings.Split(l, "\n")...)
	}
	if over := len(m.history) - maxHistory; over > 0 {
		m.history = append([]string(nil), m.history[over:]...)
	}
}

// Done reports whether the session asked to quit.
func (m PlayModel) Done() bool {
	return m.done
}

func (m PlayModel) View() string {
	rows := m.history
	if m.height > 1 && len(rows) > m.height-1 {
		rows = rows[len(rows)-(m.height-1):]
	}
	view := strings.Join(rows, "\n")
	if m.done {
		return view + "\n"
	}
	return view + "\n" + titleStyle.Render("> ") + m.input + "_"
}
