package attio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/chybatronik/goAttioMCP/internal/logging"
	"github.com/chybatronik/goAttioMCP/internal/validation"
	apperrors "github.com/chybatronik/goAttioMCP/pkg/errors"
)

// GetWorkspaceMember fetches a single workspace member by id. The remote
// payload passes through undecoded. A remote 404 means the member does
// not exist.
func (c *Client) GetWorkspaceMember(ctx context.Context, memberID string) (json.RawMessage, error) {
	if err := validation.ValidateRecordID("member_id", memberID); err != nil {
		return nil, err
	}

	status, body, err := c.get(ctx, "/workspace_members/"+url.PathEscape(memberID), nil)
	if err != nil {
		c.logger.AttioError("failed to get workspace member", err)
		return nil, err
	}
	if status == http.StatusNotFound {
		notFound := apperrors.NewMemberNotFoundError(memberID)
		c.logger.AttioError("workspace member not found", notFound)
		return nil, notFound
	}
	if !isSuccess(status) {
		apiErr := remoteError(status, body)
		c.logger.AttioError("workspace member lookup failed", apiErr)
		return nil, apiErr
	}

	c.logger.Attio("workspace member retrieved",
		logging.FieldOperation, "get_workspace_member",
		logging.FieldMemberID, memberID,
	)
	return json.RawMessage(body), nil
}

// ListWorkspaceMembers fetches the full member collection in one request.
// The remote endpoint offers no filtering, so callers filter locally.
func (c *Client) ListWorkspaceMembers(ctx context.Context) (*MemberBatch, error) {
	status, body, err := c.get(ctx, "/workspace_members", nil)
	if err != nil {
		c.logger.AttioError("failed to list workspace members", err)
		return nil, err
	}
	if !isSuccess(status) {
		apiErr := remoteError(status, body)
		c.logger.AttioError("workspace member listing failed", apiErr)
		return nil, apiErr
	}

	var batch MemberBatch
	if err := decodeInto(body, &batch); err != nil {
		c.logger.AttioError("failed to decode workspace members", err)
		return nil, err
	}
	if batch.Data == nil {
		batch.Data = []WorkspaceMember{}
	}

	c.logger.Attio("workspace members listed",
		logging.FieldOperation, "list_workspace_members",
		logging.FieldResultCount, len(batch.Data),
	)
	return &batch, nil
}

// FilterMembers applies the case-insensitive substring filter and truncates
// to the limit. A member matches when the needle appears in the first name,
// last name, the trimmed "first last" concatenation, or the email address.
// An empty needle keeps every member. Order is preserved.
func FilterMembers(members []WorkspaceMember, contains string, limit int) ([]WorkspaceMember, error) {
	if err := validation.ValidateLimit(limit); err != nil {
		return nil, err
	}
	if limit == 0 {
		limit = DefaultMemberLimit
	}

	needle := validation.NormalizeSearchTerm(contains)

	matched := make([]WorkspaceMember, 0, len(members))
	for _, m := range members {
		if needle == "" || memberMatches(m, needle) {
			matched = append(matched, m)
		}
	}

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func memberMatches(m WorkspaceMember, needle string) bool {
	fullName := strings.TrimSpace(m.FirstName + " " + m.LastName)
	haystacks := []string{m.FirstName, m.LastName, fullName, m.EmailAddress}
	for _, h := range haystacks {
		if strings.Contains(validation.NormalizeSearchTerm(h), needle) {
			return true
		}
	}
	return false
}

// FindMemberByEmail scans the member collection for an exact email match,
// compared case-insensitively. Returns nil when no member matches.
func FindMemberByEmail(members []WorkspaceMember, email string) *WorkspaceMember {
	target := validation.NormalizeSearchTerm(email)
	if target == "" {
		return nil
	}
	for i := range members {
		if validation.NormalizeSearchTerm(members[i].EmailAddress) == target {
			return &members[i]
		}
	}
	return nil
}
