package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JuanJoseLL/dengue-dss/internal/policy"
	"github.com/JuanJoseLL/dengue-dss/internal/scoring"
)

var (
	colorRed    = lipgloss.Color("#FF5555")
	colorYellow = lipgloss.Color("#F1FA8C")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorOrange = lipgloss.Color("#FFB86C")
	colorWhite  = lipgloss.Color("#F8F8F2")
	colorGray   = lipgloss.Color("#6272A4")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
	nameStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	dimStyle    = lipgloss.NewStyle().Foreground(colorGray)
	critStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	okStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	topStyle    = lipgloss.NewStyle().Foreground(colorOrange).Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)
)

const barWidth = 20

func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 0.7:
		return okStyle
	case score >= 0.4:
		return warnStyle
	default:
		return critStyle
	}
}

func severityStyle(sev policy.Severity) lipgloss.Style {
	switch sev {
	case policy.SeverityEmergency, policy.SeverityHigh:
		return critStyle
	case policy.SeverityModerate:
		return warnStyle
	default:
		return okStyle
	}
}

func bar(score float64) string {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	filled := int(score*barWidth + 0.5)
	return scoreStyle(score).Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", barWidth-filled))
}

// Ranking renders the ranked strategy table for one run. top limits how many
// strategies are shown; zero or negative shows all of them.
func Ranking(res *scoring.RunResult, top int) string {
	var sb strings.Builder

	header := fmt.Sprintf("Outbreak response ranking — severity %s", res.Severity)
	if res.Context != "" {
		header += fmt.Sprintf("  context %q", res.Context)
	}
	sb.WriteString(titleStyle.Render(header))
	sb.WriteString("\n")
	sb.WriteString(severityStyle(res.Severity).Render(strings.ToUpper(string(res.Severity))))
	sb.WriteString(dimStyle.Render(fmt.Sprintf("  run %s", res.RunID)))
	sb.WriteString("\n\n")

	rows := res.Strategies
	if top > 0 && top < len(rows) {
		rows = rows[:top]
	}

	sb.WriteString(headerStyle.Render(fmt.Sprintf("%4s  %-52s  %-12s  %8s  %8s  %s",
		"RANK", "STRATEGY", "RESPONSE", "BASE", "ADJ", "SCORE")))
	sb.WriteString("\n")
	for _, st := range rows {
		rank := fmt.Sprintf("%4d", st.AdjustedRank)
		if st.AdjustedRank == 1 {
			rank = topStyle.Render(rank)
		}
		name := st.Name
		if len(name) > 52 {
			name = name[:49] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s  %s  %s  %8.4f  %8.4f  %s\n",
			rank,
			nameStyle.Render(fmt.Sprintf("%-52s", name)),
			dimStyle.Render(fmt.Sprintf("%-12s", st.Response)),
			st.BaseScore,
			st.AdjustedScore,
			bar(st.AdjustedScore),
		))
	}
	return panelStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// Indicators renders the surveyed indicator panel: readings against their
// thresholds, alarming ones first by distance past the bound.
func Indicators(res *scoring.RunResult) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Indicator survey"))
	sb.WriteString("  ")
	sb.WriteString(critStyle.Render(fmt.Sprintf("%d critical", res.CriticalIndicators)))
	sb.WriteString(dimStyle.Render(" / "))
	sb.WriteString(okStyle.Render(fmt.Sprintf("%d normal", res.NormalIndicators)))
	sb.WriteString("\n\n")

	sb.WriteString(headerStyle.Render(fmt.Sprintf("%-44s  %10s  %-10s  %10s  %s",
		"INDICATOR", "VALUE", "THRESHOLD", "EXCESS", "STATUS")))
	sb.WriteString("\n")
	for _, ind := range res.Indicators {
		name := ind.Name
		if len(name) > 44 {
			name = name[:41] + "..."
		}
		status := okStyle.Render("normal")
		excess := dimStyle.Render(fmt.Sprintf("%10s", "-"))
		if ind.Alarming {
			status = critStyle.Render("ALARMING")
			excess = warnStyle.Render(fmt.Sprintf("%+10.2f", ind.Excess))
		}
		sb.WriteString(fmt.Sprintf("%-44s  %10.2f  %-10s  %s  %s\n",
			name, ind.Value, ind.Threshold.String(), excess, status))
	}
	return panelStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// Report renders the full console report for one run.
func Report(res *scoring.RunResult, top int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		Ranking(res, top),
		Indicators(res),
	)
}
