package model

import "time"

// Credential holds the username and API token for one tracker server.
// ServerURL is the tracker base URL and acts as the record key; there is
// at most one credential pair per server.
type Credential struct {
	ServerURL string
	Username  string
	Token     string
	UpdatedAt time.Time
}

// IsZero reports whether the record carries no usable credential pair.
func (c Credential) IsZero() bool {
	return c.Username == "" && c.Token == ""
}
