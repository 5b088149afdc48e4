// Package validation provides input validation and normalization for
// tool arguments before they reach the remote client.
package validation

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	apperrors "github.com/chybatronik/goAttioMCP/pkg/errors"
)

// NormalizeSearchTerm prepares a user-supplied term for case-insensitive
// substring matching. NFKC folds compatibility variants (full-width forms,
// ligatures) so visually equivalent input matches stored values.
func NormalizeSearchTerm(term string) string {
	return strings.ToLower(norm.NFKC.String(strings.TrimSpace(term)))
}

// ValidateRecordID checks that a record identifier is usable in a request
// path. Identifiers are interpolated into the URL, so path separators and
// whitespace are rejected before any remote call is made.
func ValidateRecordID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidationError(
			apperrors.ErrCodeInvalidRecordID,
			fmt.Sprintf("%s must not be empty", field),
		)
	}
	if strings.ContainsAny(id, "/ \t\n") {
		return apperrors.NewValidationError(
			apperrors.ErrCodeInvalidRecordID,
			fmt.Sprintf("%s %q is not a valid record identifier", field, id),
		)
	}
	return nil
}

// ValidateLimit checks that a result limit is non-negative
func ValidateLimit(limit int) error {
	if limit < 0 {
		return apperrors.NewValidationError(
			apperrors.ErrCodeInvalidLimit,
			fmt.Sprintf("limit must be non-negative, got %d", limit),
		)
	}
	return nil
}
