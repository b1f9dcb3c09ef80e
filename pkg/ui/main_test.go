package ui

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	// Plain output keeps styled segments comparable as text.
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}
