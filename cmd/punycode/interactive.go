package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectOp modelState = iota
	stateInputText
	stateShowResult
)

type opInfo struct {
	op     operation
	label  string
	prompt string
}

var ops = []opInfo{
	{opEncode, "Encode Unicode to Punycode", "Enter a Unicode string"},
	{opDecode, "Decode Punycode to Unicode", "Enter a Punycode string"},
}

type interactiveModel struct {
	err      error
	result   string
	input    textinput.Model
	selected int
	state    modelState
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Width = 40
	return &interactiveModel{input: ti}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputText {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectOp && m.selected < len(ops)-1 {
				m.selected++
			}

		case "1", "2":
			if m.state == stateSelectOp {
				m.selected = int(msg.String()[0] - '1')
				m.prepareInput()
			}

		case "enter":
			switch m.state {
			case stateSelectOp:
				m.prepareInput()

			case stateInputText:
				m.result, m.err = run(ops[m.selected].op, m.input.Value())
				m.state = stateShowResult

			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInputText:
				m.input.Blur()
				m.state = stateSelectOp
			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}
		}
	}

	if m.state == stateInputText {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) prepareInput() {
	m.input.SetValue("")
	m.input.Prompt = ops[m.selected].prompt + ": "
	m.input.Focus()
	m.state = stateInputText
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Punycode Encoder/Decoder"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectOp:
		for i, op := range ops {
			line := fmt.Sprintf("%d. %s", i+1, op.label)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ or 1/2 select • enter confirm • q quit"))

	case stateInputText:
		b.WriteString(opStyle.Render(ops[m.selected].label))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter convert • esc back"))

	case stateShowResult:
		b.WriteString(opStyle.Render(ops[m.selected].label))
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel())
	_, err := p.Run()
	return err
}
