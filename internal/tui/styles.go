package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ViewState is the screen a model is showing.
type ViewState int

// View states shared by the interactive models.
const (
	ViewStateList ViewState = iota
	ViewStateDetail
	ViewStateQuitting
)

// Layout defaults used before the first tea.WindowSizeMsg arrives.
const (
	defaultWidth         = 100
	defaultHeight        = 30
	minHeight            = 5
	filterInputCharLimit = 64
	filterInputWidth     = 40
)

// Key names as reported by tea.KeyMsg.String.
const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyEnter = "enter"
	keyEsc   = "esc"
	keySlash = "/"
	keyS     = "s"
)

// Shared styles.
//
//nolint:gochecknoglobals // lipgloss styles are immutable values.
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	TableHeaderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")).
				BorderBottom(true).
				Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Width(labelWidth)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

const labelWidth = 13

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
