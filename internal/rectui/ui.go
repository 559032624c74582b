// Package rectui renders packing results to the terminal: a small
// lipgloss palette plus Print* helpers for titles, status lines and
// per-bin solution summaries.
package rectui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/aclarke/rectpack"
)

var (
	primaryColor   = lipgloss.Color("#7D56F4")
	secondaryColor = lipgloss.Color("#00D9FF")
	successColor   = lipgloss.Color("#04B575")
	errorColor     = lipgloss.Color("#FF5F87")
	warningColor   = lipgloss.Color("#FFAF00")
	mutedColor     = lipgloss.Color("#626262")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginTop(1).
			MarginBottom(1).
			PaddingLeft(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(secondaryColor).
			MarginTop(1).
			PaddingLeft(1)

	successStyle = lipgloss.NewStyle().Foreground(successColor).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(warningColor)
	infoStyle    = lipgloss.NewStyle().Foreground(mutedColor)

	stepStyle = lipgloss.NewStyle().PaddingLeft(2)
	itemStyle = lipgloss.NewStyle().PaddingLeft(4)

	checkmark = lipgloss.NewStyle().Foreground(successColor).Bold(true).SetString("✓")
	cross     = lipgloss.NewStyle().Foreground(errorColor).Bold(true).SetString("✗")
	dot       = lipgloss.NewStyle().Foreground(mutedColor).SetString("•")
)

// PrintTitle prints a major title for a command's output.
func PrintTitle(title string) {
	fmt.Println(titleStyle.Render("╭─ " + title + " ─╮"))
}

// PrintHeader prints a section header.
func PrintHeader(title string) {
	fmt.Println(headerStyle.Render("\n▸ " + title))
}

// PrintSuccess prints a success message.
func PrintSuccess(message string) {
	fmt.Println(stepStyle.Render(checkmark.String() + " " + successStyle.Render(message)))
}

// PrintError prints an error message.
func PrintError(message string) {
	fmt.Println(stepStyle.Render(cross.String() + " " + errorStyle.Render(message)))
}

// PrintWarning prints a warning message.
func PrintWarning(message string) {
	fmt.Println(stepStyle.Render("⚠ " + warningStyle.Render(message)))
}

// PrintInfo prints a muted informational line.
func PrintInfo(message string) {
	fmt.Println(stepStyle.Render(infoStyle.Render(message)))
}

// PrintItem prints one bulleted line.
func PrintItem(item string) {
	fmt.Println(itemStyle.Render(dot.String() + " " + item))
}

// PrintSolution renders a packed solution: one line per bin giving
// rectangle count, utilisation and a humanized occupied-area figure.
func PrintSolution(sol rectpack.Solution) {
	PrintHeader(fmt.Sprintf("%d bins", sol.NumBins()))
	for i, b := range sol.Bins {
		occupied := b.SideLength()*b.SideLength() - b.FreeArea()
		util := rectpack.Utilisation(b)
		PrintItem(fmt.Sprintf(
			"bin %d: %d rects, %s occupied, %.1f%% utilised",
			i, len(b.Rects()), humanize.Comma(int64(occupied)), util*100,
		))
	}
}

// PrintViolations renders a failed Validate call's violation list.
func PrintViolations(violations []string) {
	PrintError(fmt.Sprintf("%d violation(s)", len(violations)))
	for _, v := range violations {
		PrintItem(v)
	}
}

// PrintSeparator prints a visual divider.
func PrintSeparator() {
	fmt.Println(lipgloss.NewStyle().Foreground(mutedColor).
		Render(strings.Repeat("─", 47)))
}
