package application

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ericfisherdev/jiracheck/internal/domain/model"
)

// Sort modes accepted by SortResults.
const (
	SortByStatus = "status"
	SortByTicket = "ticket"
)

// Output formats accepted by the command layer.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
)

// SortResults orders rows in place: SortByTicket sorts lexicographically by
// ticket key, anything else sorts case-insensitively by status text.
func SortResults(results []model.TicketResult, mode string) {
	if mode == SortByTicket {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Ticket < results[j].Ticket
		})
		return
	}
	sort.SliceStable(results, func(i, j int) bool {
		return strings.ToLower(results[i].Status) < strings.ToLower(results[j].Status)
	})
}

// RenderTable renders rows as an aligned text table. Ticket and status
// columns are left-padded to the widest cell (header included) and separated
// by two spaces; the link column is not padded.
func RenderTable(results []model.TicketResult) string {
	ticketWidth := len("Ticket")
	statusWidth := len("Status")
	for _, r := range results {
		if len(r.Ticket) > ticketWidth {
			ticketWidth = len(r.Ticket)
		}
		if len(r.Status) > statusWidth {
			statusWidth = len(r.Status)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s  %-*s  %s\n", ticketWidth, "Ticket", statusWidth, "Status", "Link")
	fmt.Fprintf(&b, "%s  %s  %s\n", strings.Repeat("-", ticketWidth), strings.Repeat("-", statusWidth), strings.Repeat("-", 4))
	for _, r := range results {
		fmt.Fprintf(&b, "%-*s  %-*s  %s\n", ticketWidth, r.Ticket, statusWidth, r.Status, r.Link)
	}
	return b.String()
}

// RenderCSV renders rows as comma-separated lines under a fixed header.
// Fields are not escaped: ticket keys and browse links are URL-safe by
// construction and Jira status names do not contain commas in practice.
func RenderCSV(results []model.TicketResult) string {
	var b strings.Builder
	b.WriteString("Ticket,Status,Link\n")
	for _, r := range results {
		fmt.Fprintf(&b, "%s,%s,%s\n", r.Ticket, r.Status, r.Link)
	}
	return b.String()
}
