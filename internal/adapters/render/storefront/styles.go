package storefront

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	name      lipgloss.Style
	detail    lipgloss.Style
	meta      lipgloss.Style
	price     lipgloss.Style
	total     lipgloss.Style
	warning   lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	heart     lipgloss.Style
	inactive  lipgloss.Style
	statusTag lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		price:     lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		total:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("120")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		heart:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		inactive:  lipgloss.NewStyle().Faint(true).Strikethrough(true),
		statusTag: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}
