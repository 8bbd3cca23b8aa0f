package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Adaptive color palette, chosen once at startup based on the terminal
// background.
var (
	ColorPrimary   lipgloss.Color
	ColorSecondary lipgloss.Color
	ColorAccent    lipgloss.Color

	ColorSuccess lipgloss.Color
	ColorWarning lipgloss.Color
	ColorError   lipgloss.Color

	ColorText      lipgloss.Color
	ColorTextMuted lipgloss.Color
	ColorTextDim   lipgloss.Color
	ColorBorder    lipgloss.Color
)

// initializeColors sets up adaptive colors based on terminal background
func initializeColors() {
	switch os.Getenv("GLAMOUR_STYLE") {
	case "light":
		setLightThemeColors()
		return
	case "dark":
		setDarkThemeColors()
		return
	}

	if lipgloss.HasDarkBackground() {
		setDarkThemeColors()
	} else {
		setLightThemeColors()
	}
}

func setDarkThemeColors() {
	ColorPrimary = lipgloss.Color("205")
	ColorSecondary = lipgloss.Color("33")
	ColorAccent = lipgloss.Color("214")

	ColorSuccess = lipgloss.Color("10")
	ColorWarning = lipgloss.Color("11")
	ColorError = lipgloss.Color("9")

	ColorText = lipgloss.Color("252")
	ColorTextMuted = lipgloss.Color("244")
	ColorTextDim = lipgloss.Color("240")
	ColorBorder = lipgloss.Color("238")
}

func setLightThemeColors() {
	ColorPrimary = lipgloss.Color("125")
	ColorSecondary = lipgloss.Color("24")
	ColorAccent = lipgloss.Color("130")

	ColorSuccess = lipgloss.Color("22")
	ColorWarning = lipgloss.Color("136")
	ColorError = lipgloss.Color("160")

	ColorText = lipgloss.Color("235")
	ColorTextMuted = lipgloss.Color("243")
	ColorTextDim = lipgloss.Color("247")
	ColorBorder = lipgloss.Color("250")
}

// Shared view styles, built after initializeColors runs.
var (
	titleStyle      lipgloss.Style
	tabStyle        lipgloss.Style
	activeTabStyle  lipgloss.Style
	labelStyle      lipgloss.Style
	focusedStyle    lipgloss.Style
	errorStyle      lipgloss.Style
	statusStyle     lipgloss.Style
	statusErrStyle  lipgloss.Style
	helpTextStyle   lipgloss.Style
	sectionStyle    lipgloss.Style
	unresolvedStyle lipgloss.Style
)

func initializeStyles() {
	initializeColors()

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	tabStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Underline(true).
		Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	focusedStyle = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	statusStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	statusErrStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	helpTextStyle = lipgloss.NewStyle().
		Foreground(ColorTextDim)

	sectionStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	unresolvedStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)
}
