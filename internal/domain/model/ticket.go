package model

// TicketResult is one row of the final report: a ticket key, the status
// text resolved for it (which may be an "Error: ..." placeholder), and a
// browse link into the tracker.
type TicketResult struct {
	Ticket string
	Status string
	Link   string
}

// Issue mirrors the fields we care about from Jira's issue-detail JSON.
type Issue struct {
	Key    string      `json:"key"`
	Fields IssueFields `json:"fields"`
}

// IssueFields is the nested "fields" object of a Jira issue. Resolution is
// a pointer because unresolved issues carry an explicit JSON null.
type IssueFields struct {
	Status     NamedField  `json:"status"`
	Resolution *NamedField `json:"resolution"`
}

// NamedField is Jira's {"name": "..."} shape used for statuses and resolutions.
type NamedField struct {
	Name string `json:"name"`
}

// StatusText composes the report status text: the status name alone, or
// "status: resolution" when the issue has been resolved. An absent status
// name falls back to "Unknown".
func (i Issue) StatusText() string {
	status := i.Fields.Status.Name
	if status == "" {
		status = "Unknown"
	}
	if i.Fields.Resolution != nil && i.Fields.Resolution.Name != "" {
		return status + ": " + i.Fields.Resolution.Name
	}
	return status
}
