package application

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/jiracheck/internal/domain/model"
)

func sampleResults() []model.TicketResult {
	return []model.TicketResult{
		{Ticket: "PROJ-12", Status: "In Progress", Link: "https://jira.example.com/browse/PROJ-12"},
		{Ticket: "ABC-3", Status: "Done: Fixed", Link: "https://jira.example.com/browse/ABC-3"},
		{Ticket: "ZZ-1", Status: "error: 404", Link: "https://jira.example.com/browse/ZZ-1"},
	}
}

func TestSortResults_ByTicket(t *testing.T) {
	results := sampleResults()

	SortResults(results, SortByTicket)

	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i-1].Ticket, results[i].Ticket)
	}
	assert.Equal(t, "ABC-3", results[0].Ticket)
}

func TestSortResults_ByStatusCaseInsensitive(t *testing.T) {
	results := sampleResults()

	SortResults(results, SortByStatus)

	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t,
			strings.ToLower(results[i-1].Status),
			strings.ToLower(results[i].Status))
	}
	// "error: 404" sorts between "Done" and "In Progress" only when case-folded.
	assert.Equal(t, []string{"Done: Fixed", "error: 404", "In Progress"},
		[]string{results[0].Status, results[1].Status, results[2].Status})
}

func TestRenderTable_ColumnWidths(t *testing.T) {
	results := []model.TicketResult{
		{Ticket: "PROJ-12", Status: "In Progress", Link: "https://j/browse/PROJ-12"},
		{Ticket: "AB-1", Status: "Done", Link: "https://j/browse/AB-1"},
	}

	out := RenderTable(results)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	// Widest ticket is "PROJ-12" (7), widest status is "In Progress" (11).
	assert.Equal(t, "Ticket   Status       Link", lines[0])
	assert.Equal(t, "-------  -----------  ----", lines[1])
	assert.Equal(t, "PROJ-12  In Progress  https://j/browse/PROJ-12", lines[2])
	assert.Equal(t, "AB-1     Done         https://j/browse/AB-1", lines[3])
}

func TestRenderTable_HeaderWiderThanCells(t *testing.T) {
	results := []model.TicketResult{
		{Ticket: "A-1", Status: "Ok", Link: "https://j/browse/A-1"},
	}

	out := RenderTable(results)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// Headers ("Ticket", "Status") are wider than any cell, so they set the widths.
	assert.Equal(t, "Ticket  Status  Link", lines[0])
	assert.Equal(t, "------  ------  ----", lines[1])
	assert.Equal(t, "A-1     Ok      https://j/browse/A-1", lines[2])
}

func TestRenderTable_SeparatorMatchesWidths(t *testing.T) {
	results := sampleResults()

	lines := strings.Split(RenderTable(results), "\n")

	// Widest ticket is "PROJ-12" (7), widest status is "In Progress" (11);
	// dash runs must match those widths, the link column always gets four.
	assert.Equal(t, strings.Repeat("-", 7)+"  "+strings.Repeat("-", 11)+"  ----", lines[1])
}

func TestRenderCSV_HeaderAndRows(t *testing.T) {
	results := []model.TicketResult{
		{Ticket: "ABC-3", Status: "Done: Fixed", Link: "https://j/browse/ABC-3"},
		{Ticket: "PROJ-12", Status: "Error: 404", Link: "https://j/browse/PROJ-12"},
	}

	out := RenderCSV(results)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "Ticket,Status,Link", lines[0])
	assert.Equal(t, "ABC-3,Done: Fixed,https://j/browse/ABC-3", lines[1])
	assert.Equal(t, "PROJ-12,Error: 404,https://j/browse/PROJ-12", lines[2])
}

func TestRenderCSV_EmptyStillHasHeader(t *testing.T) {
	assert.Equal(t, "Ticket,Status,Link\n", RenderCSV(nil))
}
