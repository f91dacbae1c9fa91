package domain

// JobRecord is one posting as it appears in the jobs JSON resource.
// Every display field is optional; empty values render blank.
type JobRecord struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Company    string `json:"company"`
	Category   string `json:"category"`
	Type       string `json:"type"`
	Location   string `json:"location"`
	Salary     string `json:"salary"`
	PostedTime string `json:"postedTime"`
	Logo       string `json:"logo"`
}

// Collection is the ordered, read-only set of postings loaded for a render.
// Ids are assumed unique; lookups take the first match.
type Collection []JobRecord
