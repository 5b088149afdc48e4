package attio

import (
	"fmt"
	"time"

	apperrors "github.com/chybatronik/goAttioMCP/pkg/errors"
)

// Condition is a single Attio filter predicate in the remote query syntax
type Condition map[string]any

// NameContains matches records whose name attribute contains the substring
func NameContains(name string) Condition {
	return Condition{
		"name": map[string]any{"$contains": name},
	}
}

// DomainEquals matches companies registered under the exact domain
func DomainEquals(domain string) Condition {
	return Condition{
		"domains": map[string]any{
			"domain": map[string]any{"$eq": domain},
		},
	}
}

// EmailEquals matches people with the exact email address
func EmailEquals(email string) Condition {
	return Condition{
		"email_addresses": map[string]any{
			"email_address": map[string]any{"$eq": email},
		},
	}
}

// OwnedBy matches records owned by the given workspace member
func OwnedBy(memberID string) Condition {
	return Condition{
		"owner": map[string]any{
			"referenced_actor_type": "workspace-member",
			"referenced_actor_id":   memberID,
		},
	}
}

// ReminderBetween matches records whose reminder date falls within the
// inclusive bounds. Either bound may be empty.
func ReminderBetween(start, end string) Condition {
	bounds := map[string]any{}
	if start != "" {
		bounds["$gte"] = start
	}
	if end != "" {
		bounds["$lte"] = end
	}
	return Condition{"reminder": bounds}
}

// BuildQueryPayload assembles the request body for a records/query call.
// A single condition is sent bare; multiple conditions are combined with
// $and in the order supplied. With no conditions the filter key is omitted
// so the remote service returns an unfiltered page.
func BuildQueryPayload(limit int, conditions []Condition) map[string]any {
	payload := map[string]any{"limit": limit}

	switch len(conditions) {
	case 0:
	case 1:
		payload["filter"] = conditions[0]
	default:
		combined := make([]any, 0, len(conditions))
		for _, c := range conditions {
			combined = append(combined, c)
		}
		payload["filter"] = map[string]any{"$and": combined}
	}

	return payload
}

const dateLayout = "2006-01-02"

// parseDateBound parses an inclusive YYYY-MM-DD bound. Empty means unset.
func parseDateBound(field, value string) (time.Time, bool, error) {
	if value == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false, apperrors.NewValidationError(
			apperrors.ErrCodeInvalidDateRange,
			fmt.Sprintf("Invalid %s date %q: expected YYYY-MM-DD", field, value),
		)
	}
	return t, true, nil
}

// ValidateDateRange checks that both bounds parse and are correctly ordered.
// Either bound may be empty.
func ValidateDateRange(start, end string) error {
	startT, hasStart, err := parseDateBound("start", start)
	if err != nil {
		return err
	}
	endT, hasEnd, err := parseDateBound("end", end)
	if err != nil {
		return err
	}
	if hasStart && hasEnd && startT.After(endT) {
		return apperrors.NewValidationError(
			apperrors.ErrCodeInvalidDateRange,
			fmt.Sprintf("Invalid date range: start %s is after end %s", start, end),
		)
	}
	return nil
}
