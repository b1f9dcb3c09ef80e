package ui

import (
	"github.com/aholstenson/cors-inspector/pkg/network"
	"github.com/charmbracelet/lipgloss"
)

var styleApp = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#7D56F4"))

var styleLabel = lipgloss.NewStyle().
	Width(9).
	Faint(true)

var styleLabelFocused = lipgloss.NewStyle().
	Width(9).
	Bold(true).
	Foreground(lipgloss.Color("#7D56F4"))

var styleTitle = lipgloss.NewStyle().
	Bold(true)

var styleFaint = lipgloss.NewStyle().Faint(true)

var styleURL = lipgloss.NewStyle().Faint(true)

var styleSelected = lipgloss.NewStyle().
	Bold(true).
	Reverse(true)

var styleAlert = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FF5252"))

var styleDefault = lipgloss.NewStyle().
	Bold(true)

var style2xx = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#04B575"))

var style3xx = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FDD835"))

var style4xx = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFA726"))

var style5xx = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FF7043"))

var styleDivider = lipgloss.NewStyle().
	Faint(true)

func statusStyle(code int) lipgloss.Style {
	switch {
	case code >= 200 && code < 300:
		return style2xx
	case code >= 300 && code < 400:
		return style3xx
	case code >= 400 && code < 500:
		return style4xx
	case code >= 500 && code < 600:
		return style5xx
	}
	return styleDefault
}

var methodColors = map[network.Method]lipgloss.Color{
	network.MethodGet:     lipgloss.Color("#04B575"),
	network.MethodPost:    lipgloss.Color("#4C8BF5"),
	network.MethodPut:     lipgloss.Color("#FDD835"),
	network.MethodDelete:  lipgloss.Color("#FF5252"),
	network.MethodOptions: lipgloss.Color("#26C6DA"),
}

func methodStyle(m network.Method) lipgloss.Style {
	color, ok := methodColors[m]
	if !ok {
		color = lipgloss.Color("#9E9E9E")
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}
