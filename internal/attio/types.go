// Package attio provides the remote record client for the Attio CRM API.
package attio

import (
	"encoding/json"
	"time"
)

// RecordBatch holds a batch of raw records returned by a query endpoint.
// Records pass through undecoded so callers see the full Attio payload.
type RecordBatch struct {
	Data []json.RawMessage `json:"data"`
}

// NoteBatch holds notes associated with a parent record
type NoteBatch struct {
	Data []json.RawMessage `json:"data"`
}

// MemberID identifies a workspace member within a workspace
type MemberID struct {
	WorkspaceID       string `json:"workspace_id"`
	WorkspaceMemberID string `json:"workspace_member_id"`
}

// WorkspaceMember represents a user account within the Attio workspace
type WorkspaceMember struct {
	ID           MemberID `json:"id"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	EmailAddress string   `json:"email_address"`
	AvatarURL    *string  `json:"avatar_url"`
	AccessLevel  string   `json:"access_level"`
	CreatedAt    string   `json:"created_at"`
}

// MemberBatch holds the full workspace member collection from a listing call
type MemberBatch struct {
	Data []WorkspaceMember `json:"data"`
}

// TaskBatch holds a batch of raw tasks. Deadlines are peeked per element
// for client-side range filtering without disturbing the raw payload.
type TaskBatch struct {
	Data []json.RawMessage `json:"data"`
}

// taskDeadline is the minimal view of a task needed for deadline filtering
type taskDeadline struct {
	DeadlineAt *time.Time `json:"deadline_at"`
}

// SearchCompaniesParams holds the optional criteria for a company search.
// Empty strings mean the predicate is not applied.
type SearchCompaniesParams struct {
	Name          string
	Domain        string
	OwnerID       string
	ReminderStart string // inclusive lower bound, YYYY-MM-DD
	ReminderEnd   string // inclusive upper bound, YYYY-MM-DD
	Limit         int
}

// SearchPeopleParams holds the optional criteria for a people search
type SearchPeopleParams struct {
	Query string
	Email string
	Limit int
}

// ListTasksParams holds the optional criteria for a task listing.
// Deadline bounds are applied client-side; the assignee filter is remote.
type ListTasksParams struct {
	Assignee      string
	DeadlineStart string // inclusive lower bound, YYYY-MM-DD
	DeadlineEnd   string // inclusive upper bound, YYYY-MM-DD
	Limit         int
}

// Default result limits per operation
const (
	DefaultCompanyLimit = 15
	DefaultPeopleLimit  = 10
	DefaultTaskLimit    = 25
	DefaultMemberLimit  = 50

	// taskFetchPage is the fixed page requested from the remote service
	// when any deadline bound is active, so range filtering sees the
	// whole working set before truncation.
	taskFetchPage = 500
)
