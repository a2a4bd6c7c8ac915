// Package application holds the ticket-checking workflow: extraction,
// credential resolution, status fetching and report rendering.
package application

import (
	"regexp"
	"sort"
)

// ticketPattern matches tracker ticket keys such as PROJ-123 or ABC-4.
var ticketPattern = regexp.MustCompile(`[A-Z]+-[0-9]+`)

// ExtractTickets scans branch names for ticket keys and returns the
// deduplicated set in ascending lexicographic order.
func ExtractTickets(branches []string) []string {
	seen := make(map[string]struct{})
	for _, branch := range branches {
		for _, match := range ticketPattern.FindAllString(branch, -1) {
			seen[match] = struct{}{}
		}
	}

	tickets := make([]string, 0, len(seen))
	for ticket := range seen {
		tickets = append(tickets, ticket)
	}
	sort.Strings(tickets)
	return tickets
}
