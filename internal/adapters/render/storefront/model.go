package storefront

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/maelys-dev/sweetshop-cli/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	lines    []domain.CartLine
	subtotal float64
	styles   styles
	output   string
}

func newModel(lines []domain.CartLine, subtotal float64) model {
	return model{
		lines:    lines,
		subtotal: subtotal,
		styles:   newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderCartView(m.lines, m.subtotal, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// RenderCart renders the cart through a one-shot bubbletea program so the
// output picks up the active color profile.
func RenderCart(lines []domain.CartLine, subtotal float64) (string, error) {
	p := tea.NewProgram(
		newModel(lines, subtotal),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
