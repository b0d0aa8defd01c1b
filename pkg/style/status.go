// Package style provides pterm-based status styling for the CLI
// surface: headers, error lines and hop-kind indicators.
package style

import (
	"github.com/pterm/pterm"
)

// Status classifies a line of CLI output
type Status string

const (
	StatusError Status = "error"
	StatusInfo  Status = "info"
	StatusMuted Status = "muted"
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusError:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	case StatusInfo:
		return pterm.NewStyle(pterm.FgCyan)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Bold renders text in bold
func Bold(text string) string {
	return pterm.NewStyle(pterm.Bold).Sprint(text)
}

// ErrorLine renders an error message for stderr
func ErrorLine(msg string) string {
	return StatusStyle(StatusError).Sprint("Error: ") + msg
}

// Header renders the multi-match header line
func Header(text string) string {
	return StatusStyle(StatusInfo).Sprint(text)
}
