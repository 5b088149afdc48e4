package attio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/chybatronik/goAttioMCP/internal/logging"
	"github.com/chybatronik/goAttioMCP/internal/validation"
	apperrors "github.com/chybatronik/goAttioMCP/pkg/errors"
)

// SearchPeople queries person records by name substring and optionally an
// exact email address. Predicates combine in name-then-email order.
func (c *Client) SearchPeople(ctx context.Context, params SearchPeopleParams) (*RecordBatch, error) {
	if err := validation.ValidateLimit(params.Limit); err != nil {
		return nil, err
	}
	if params.Limit == 0 {
		params.Limit = DefaultPeopleLimit
	}

	var conditions []Condition
	if params.Query != "" {
		conditions = append(conditions, NameContains(params.Query))
	}
	if params.Email != "" {
		conditions = append(conditions, EmailEquals(params.Email))
	}

	payload := BuildQueryPayload(params.Limit, conditions)

	status, body, err := c.postJSON(ctx, "/objects/people/records/query", payload)
	if err != nil {
		c.logger.AttioError("failed to search people", err)
		return nil, err
	}
	if !isSuccess(status) {
		apiErr := remoteError(status, body)
		c.logger.AttioError("people search failed", apiErr)
		return nil, apiErr
	}

	var batch RecordBatch
	if err := decodeInto(body, &batch); err != nil {
		c.logger.AttioError("failed to decode people search results", err)
		return nil, err
	}

	c.logger.Attio("people search completed",
		logging.FieldOperation, "search_people",
		logging.FieldResultCount, len(batch.Data),
	)
	return &batch, nil
}

// GetPerson fetches a single person record by its record id.
// A remote 404 means the person does not exist.
func (c *Client) GetPerson(ctx context.Context, personID string) (json.RawMessage, error) {
	if err := validation.ValidateRecordID("person_id", personID); err != nil {
		return nil, err
	}

	status, body, err := c.get(ctx, "/objects/people/records/"+url.PathEscape(personID), nil)
	if err != nil {
		c.logger.AttioError("failed to get person", err)
		return nil, err
	}
	if status == http.StatusNotFound {
		notFound := apperrors.NewPersonNotFoundError(personID)
		c.logger.AttioError("person not found", notFound)
		return nil, notFound
	}
	if !isSuccess(status) {
		apiErr := remoteError(status, body)
		c.logger.AttioError("person lookup failed", apiErr)
		return nil, apiErr
	}

	c.logger.Attio("person retrieved",
		logging.FieldOperation, "get_person_details",
		logging.FieldRecordID, personID,
	)
	return json.RawMessage(body), nil
}

// GetPersonNotes fetches the notes attached to a person record
func (c *Client) GetPersonNotes(ctx context.Context, personID string) (*NoteBatch, error) {
	return c.getNotes(ctx, "people", personID)
}
