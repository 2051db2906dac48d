// Package ui provides terminal output styling for the analyzer CLI.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tfanalyze/internal/config"
	"tfanalyze/internal/models"
)

// Color constants for terminal output.
const (
	ColorReset = "\033[0m"
	TextBold   = "\033[1m"
)

var (
	// Default colors - overridden from config
	ColorError   = "\033[1;31m"
	ColorSuccess = "\033[32m"
	ColorWarning = "\033[33m"
	ColorInfo    = "\033[36m"
	ColorFaint   = "\033[38;2;119;119;119m"

	// Store the loaded config
	appConfig *config.Config
)

// InitColors initializes the colors from the provided configuration.
func InitColors(cfg *config.Config) {
	appConfig = cfg

	ColorError = parseColorToAnsi(cfg.Colors.Error)
	ColorSuccess = parseColorToAnsi(cfg.Colors.Success)
	ColorWarning = parseColorToAnsi(cfg.Colors.Warning)
	ColorInfo = parseColorToAnsi(cfg.Colors.Info)
	ColorFaint = parseColorToAnsi(cfg.Colors.Faint)
}

// parseColorToAnsi converts a hex color string to an ANSI color code.
func parseColorToAnsi(hexColor string) string {
	hexColor = strings.TrimPrefix(hexColor, "#")

	// Expand 3-character hex colors
	if len(hexColor) == 3 {
		r := hexColor[0:1]
		g := hexColor[1:2]
		b := hexColor[2:3]
		hexColor = r + r + g + g + b + b
	}

	if len(hexColor) != 6 {
		return "\033[37m" // White as fallback
	}

	r, _ := strconv.ParseInt(hexColor[0:2], 16, 0)
	g, _ := strconv.ParseInt(hexColor[2:4], 16, 0)
	b, _ := strconv.ParseInt(hexColor[4:6], 16, 0)

	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
}

// statusHexColor maps a report status to the configured hex color for it.
func statusHexColor(status models.ResponseStatus) string {
	colors := config.DefaultConfig().Colors
	if appConfig != nil {
		colors = appConfig.Colors
	}

	switch status {
	case models.StatusSuccess:
		return colors.Success
	case models.StatusError:
		return colors.Error
	default:
		return colors.Warning
	}
}

// StatusBanner renders a one-line colored banner for the report summary,
// suitable for writing to stderr alongside the JSON report.
func StatusBanner(status models.ResponseStatus, summary string) string {
	label := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(statusHexColor(status))).
		Render(strings.ToUpper(string(status)))

	return label + " " + summary
}

// ConfidenceBadge renders a colored tag for a recommendation confidence
// level.
func ConfidenceBadge(confidence models.ConfidenceLevel) string {
	colors := config.DefaultConfig().Colors
	if appConfig != nil {
		colors = appConfig.Colors
	}

	var hex string
	switch confidence {
	case models.ConfidenceHigh:
		hex = colors.Success
	case models.ConfidenceMedium:
		hex = colors.Warning
	default:
		hex = colors.Faint
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex)).
		Render("[" + string(confidence) + "]")
}
