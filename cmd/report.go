package cmd

import (
	"fmt"
	"strings"

	"status-notifier/core/reconcile"
	"status-notifier/feature/subscribers"

	"github.com/charmbracelet/lipgloss"
)

var (
	green = lipgloss.Color("76")
	red   = lipgloss.Color("204")
	amber = lipgloss.Color("214")
	dim   = lipgloss.Color("243")

	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(dim).Width(18)
	okStyle    = lipgloss.NewStyle().Foreground(green)
	failStyle  = lipgloss.NewStyle().Foreground(red)
	warnStyle  = lipgloss.NewStyle().Foreground(amber)
)

func row(label string, value any) string {
	return labelStyle.Render(label) + fmt.Sprint(value)
}

// count renders n amber when it is non-zero.
func count(n int) string {
	if n == 0 {
		return "0"
	}
	return warnStyle.Render(fmt.Sprint(n))
}

func renderSummary(s reconcile.Summary) string {
	var b strings.Builder

	phase := okStyle.Render(string(s.Phase))
	if s.Phase == reconcile.PhaseFailed {
		phase = failStyle.Render(fmt.Sprintf("%s in %s", s.Phase, s.FailedIn))
	}
	if s.Phase == "" {
		phase = warnStyle.Render("skipped")
	}

	b.WriteString(titleStyle.Render("Cycle summary") + "\n")
	b.WriteString(row("phase", phase) + "\n")
	b.WriteString(row("fetched", s.Fetched) + "\n")
	b.WriteString(row("upserted", s.Upserted) + "\n")
	b.WriteString(row("persist failures", count(s.PersistFailures)) + "\n")
	b.WriteString(row("changed", s.Changed) + "\n")
	b.WriteString(row("notified", s.Notified) + "\n")
	b.WriteString(row("failed", count(s.Failed)) + "\n")
	b.WriteString(row("duration", s.Duration.Round(1e6)) + "\n")
	if s.Error != "" {
		b.WriteString(row("error", failStyle.Render(s.Error)) + "\n")
	}
	return b.String()
}

func renderImport(r *subscribers.ImportReport) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Subscriber import") + "\n")
	b.WriteString(row("created", okStyle.Render(fmt.Sprint(r.Created))) + "\n")
	b.WriteString(row("updated", r.Updated) + "\n")
	b.WriteString(row("rejected", count(len(r.Rejected))) + "\n")
	for _, rej := range r.Rejected {
		b.WriteString(fmt.Sprintf("  #%d %s: %s\n", rej.Index, rej.Email, failStyle.Render(rej.Reason)))
	}
	return b.String()
}
