// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all sigcalc output.
const (
	// ColorMuted is gray, used for hints and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorError is red, used for errors.
	ColorError = lipgloss.Color("#EF4444")

	// ColorHighlight is blue, used for command names.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// ErrorStyle is for the error prefix.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// HintStyle is for follow-up hints printed after an error.
	HintStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// CmdStyle is for command lines quoted inside hints.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)
