package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jmylchreest/shade/internal/colour"
	"github.com/jmylchreest/shade/internal/report"
)

var (
	promptTitleStyle = lipgloss.NewStyle().Bold(true)
	promptErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))
	promptHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777"))
)

// promptModel is the bubbletea model behind --tui.
type promptModel struct {
	input     textinput.Model
	value     string
	err       error
	cancelled bool
}

func newPromptModel() promptModel {
	ti := textinput.New()
	ti.Placeholder = "#336699 f80 00ff00"
	ti.Prompt = "> "
	ti.CharLimit = 512
	ti.Width = 50
	ti.Focus()

	return promptModel{input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			value := m.input.Value()
			if err := validateTokens(value); err != nil {
				m.err = err
				return m, nil
			}
			m.value = value
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.err = nil
	return m, cmd
}

func (m promptModel) View() string {
	var b strings.Builder
	b.WriteString(promptTitleStyle.Render("Enter one or more colors in hexadecimal code format"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(promptErrorStyle.Render(m.err.Error()))
	}
	b.WriteString("\n")
	b.WriteString(promptHelpStyle.Render("enter to confirm • esc to cancel"))
	b.WriteString("\n")
	return b.String()
}

// validateTokens checks every token in line without decoding the colours.
func validateTokens(line string) error {
	for _, tok := range report.SplitTokens(line) {
		if _, err := colour.Normalize(tok); err != nil {
			return err
		}
	}
	return nil
}

// runPrompt runs the interactive prompt and returns the entered line.
// A cancelled prompt returns an empty line.
func runPrompt(in io.Reader, out io.Writer) (string, error) {
	p := tea.NewProgram(newPromptModel(), tea.WithInput(in), tea.WithOutput(out))

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	m, ok := final.(promptModel)
	if !ok || m.cancelled {
		return "", nil
	}
	return m.value, nil
}
