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

// SearchCompanies queries company records matching the supplied criteria.
// Active predicates combine in a fixed order: name, domain, owner, reminder
// range. The date range is validated before any request is issued.
func (c *Client) SearchCompanies(ctx context.Context, params SearchCompaniesParams) (*RecordBatch, error) {
	if err := ValidateDateRange(params.ReminderStart, params.ReminderEnd); err != nil {
		return nil, err
	}
	if err := validation.ValidateLimit(params.Limit); err != nil {
		return nil, err
	}
	if params.Limit == 0 {
		params.Limit = DefaultCompanyLimit
	}

	var conditions []Condition
	if params.Name != "" {
		conditions = append(conditions, NameContains(params.Name))
	}
	if params.Domain != "" {
		conditions = append(conditions, DomainEquals(params.Domain))
	}
	if params.OwnerID != "" {
		conditions = append(conditions, OwnedBy(params.OwnerID))
	}
	if params.ReminderStart != "" || params.ReminderEnd != "" {
		conditions = append(conditions, ReminderBetween(params.ReminderStart, params.ReminderEnd))
	}

	payload := BuildQueryPayload(params.Limit, conditions)

	status, body, err := c.postJSON(ctx, "/objects/companies/records/query", payload)
	if err != nil {
		c.logger.AttioError("failed to search companies", err)
		return nil, err
	}
	if !isSuccess(status) {
		apiErr := remoteError(status, body)
		c.logger.AttioError("company search failed", apiErr)
		return nil, apiErr
	}

	var batch RecordBatch
	if err := decodeInto(body, &batch); err != nil {
		c.logger.AttioError("failed to decode company search results", err)
		return nil, err
	}

	c.logger.Attio("company search completed",
		logging.FieldOperation, "search_companies",
		logging.FieldResultCount, len(batch.Data),
	)
	return &batch, nil
}

// GetCompany fetches a single company record by its record id.
// A remote 404 means the company does not exist.
func (c *Client) GetCompany(ctx context.Context, companyID string) (json.RawMessage, error) {
	if err := validation.ValidateRecordID("company_id", companyID); err != nil {
		return nil, err
	}

	status, body, err := c.get(ctx, "/objects/companies/records/"+url.PathEscape(companyID), nil)
	if err != nil {
		c.logger.AttioError("failed to get company", err)
		return nil, err
	}
	if status == http.StatusNotFound {
		notFound := apperrors.NewCompanyNotFoundError(companyID)
		c.logger.AttioError("company not found", notFound)
		return nil, notFound
	}
	if !isSuccess(status) {
		apiErr := remoteError(status, body)
		c.logger.AttioError("company lookup failed", apiErr)
		return nil, apiErr
	}

	c.logger.Attio("company retrieved",
		logging.FieldOperation, "get_company_details",
		logging.FieldRecordID, companyID,
	)
	return json.RawMessage(body), nil
}

// GetCompanyNotes fetches the notes attached to a company record
func (c *Client) GetCompanyNotes(ctx context.Context, companyID string) (*NoteBatch, error) {
	return c.getNotes(ctx, "companies", companyID)
}

// getNotes fetches notes for a parent record. A remote 404 means the
// parent has no notes, which is a normal empty result rather than an error.
func (c *Client) getNotes(ctx context.Context, parentObject, recordID string) (*NoteBatch, error) {
	if err := validation.ValidateRecordID("record_id", recordID); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("parent_object", parentObject)
	query.Set("parent_record_id", recordID)

	status, body, err := c.get(ctx, "/notes", query)
	if err != nil {
		c.logger.AttioError("failed to get notes", err)
		return nil, err
	}
	if status == http.StatusNotFound {
		c.logger.Attio("no notes found",
			logging.FieldParentObject, parentObject,
			logging.FieldRecordID, recordID,
		)
		return &NoteBatch{Data: []json.RawMessage{}}, nil
	}
	if !isSuccess(status) {
		apiErr := remoteError(status, body)
		c.logger.AttioError("notes lookup failed", apiErr)
		return nil, apiErr
	}

	var batch NoteBatch
	if err := decodeInto(body, &batch); err != nil {
		c.logger.AttioError("failed to decode notes", err)
		return nil, err
	}
	if batch.Data == nil {
		batch.Data = []json.RawMessage{}
	}

	c.logger.Attio("notes retrieved",
		logging.FieldParentObject, parentObject,
		logging.FieldRecordID, recordID,
		logging.FieldResultCount, len(batch.Data),
	)
	return &batch, nil
}
