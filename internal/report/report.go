// Package report renders settlement runs for the terminal.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/samandr77/microservices/settlement/internal/entity"
	"github.com/samandr77/microservices/settlement/internal/service"
)

var (
	accent  = lipgloss.Color("#0EA5E9")
	dim     = lipgloss.Color("#6B7280")
	faint   = lipgloss.Color("#3F3F46")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	warning = lipgloss.Color("#F59E0B")
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	paidStyle     = lipgloss.NewStyle().Foreground(success)
	wrongStyle    = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	separatorLine = lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("─", 64))
)

// Render formats a finished run: a header box, one line per settled payment
// and the totals per currency and status.
func Render(r service.Report) string {
	var b strings.Builder

	header := titleStyle.Render("settlement") + "\n" +
		dimStyle.Render("run "+r.RunID.String()) + "\n" +
		fmt.Sprintf("%d payments settled in %s", len(r.Statuses), r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond))

	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n\n")

	if len(r.Statuses) == 0 {
		b.WriteString(dimStyle.Render("  nothing to settle"))
		b.WriteString("\n")

		return b.String()
	}

	for _, st := range r.Statuses {
		fmt.Fprintf(&b, "  %-12s %-12s %-12s %14s %s  %s\n",
			st.OrganizationID,
			st.InvoiceID,
			st.Payment.ID,
			st.Payment.Amount.StringFixed(st.Currency.Exponent()),
			st.Currency,
			statusTag(st.Status),
		)
	}

	b.WriteString(separatorLine)
	b.WriteString("\n")

	for _, t := range r.Totals() {
		fmt.Fprintf(&b, "  %-38s %14s %s  %s\n",
			fmt.Sprintf("%d x", t.Count),
			t.Amount.StringFixed(t.Currency.Exponent()),
			t.Currency,
			statusTag(t.Status),
		)
	}

	return b.String()
}

// RenderError formats the single error that failed a run.
func RenderError(r service.Report, err error) string {
	kind := entity.Kind(err)
	if kind == "" {
		kind = "Error"
	}

	var b strings.Builder

	b.WriteString(errorTagStyle.Render(kind))
	b.WriteString(" ")
	b.WriteString(err.Error())
	b.WriteString("\n")

	if httpErr, ok := entity.AsHTTPError(err); ok {
		fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf("status %d %s", httpErr.Status, httpErr.StatusText)))
	}

	fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf("run %s failed, no payment results kept", r.RunID)))

	return b.String()
}

func statusTag(s entity.SettlementStatus) string {
	if s == entity.SettlementStatusPaid {
		return paidStyle.Render(s.String())
	}

	return wrongStyle.Render(s.String())
}
