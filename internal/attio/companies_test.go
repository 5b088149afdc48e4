package attio

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/chybatronik/goAttioMCP/pkg/errors"
)

func TestSearchCompanies_SendsQueryPayload(t *testing.T) {
	var gotPath string
	var gotPayload map[string]any

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [{"id": {"record_id": "company-123"}}]}`))
	}))

	batch, err := client.SearchCompanies(context.Background(), SearchCompaniesParams{
		Name:   "OpenAI",
		Domain: "openai.com",
		Limit:  5,
	})
	require.NoError(t, err)

	assert.Equal(t, "/objects/companies/records/query", gotPath)
	assert.Equal(t, float64(5), gotPayload["limit"])

	filter, ok := gotPayload["filter"].(map[string]any)
	require.True(t, ok, "expected combined filter")
	combined, ok := filter["$and"].([]any)
	require.True(t, ok, "expected $and for two active predicates")
	require.Len(t, combined, 2)

	first := combined[0].(map[string]any)
	assert.Contains(t, first, "name")
	second := combined[1].(map[string]any)
	assert.Contains(t, second, "domains")

	require.Len(t, batch.Data, 1)
}

func TestSearchCompanies_NoCriteriaOmitsFilter(t *testing.T) {
	var gotPayload map[string]any

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": []}`))
	}))

	_, err := client.SearchCompanies(context.Background(), SearchCompaniesParams{})
	require.NoError(t, err)

	assert.Equal(t, float64(DefaultCompanyLimit), gotPayload["limit"])
	_, hasFilter := gotPayload["filter"]
	assert.False(t, hasFilter)
}

func TestSearchCompanies_InvalidDateRangeSkipsNetwork(t *testing.T) {
	client, _ := newTestClient(t, unreachableHandler(t))

	_, err := client.SearchCompanies(context.Background(), SearchCompaniesParams{
		ReminderStart: "2024-12-31",
		ReminderEnd:   "2024-01-01",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err), "expected validation error, got %v", err)
}

func TestSearchCompanies_NegativeLimitSkipsNetwork(t *testing.T) {
	client, _ := newTestClient(t, unreachableHandler(t))

	_, err := client.SearchCompanies(context.Background(), SearchCompaniesParams{Limit: -1})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err), "expected validation error, got %v", err)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestGetCompany_NotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.GetCompany(context.Background(), "missing-id")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err), "expected not-found error, got %v", err)
	assert.Contains(t, err.Error(), "Company not found: missing-id")
}

func TestGetCompany_ServerError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	}))

	_, err := client.GetCompany(context.Background(), "company-123")

	require.Error(t, err)
	assert.False(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "upstream exploded")
}

func TestGetCompany_Success(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/objects/companies/records/company-123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"id": {"record_id": "company-123"}}}`))
	}))

	raw, err := client.GetCompany(context.Background(), "company-123")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "data")
}

func TestGetCompanyNotes_RemoteNotFoundIsEmpty(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	batch, err := client.GetCompanyNotes(context.Background(), "missing-id")

	require.NoError(t, err, "404 on notes is an empty collection, not an error")
	require.NotNil(t, batch)
	assert.Empty(t, batch.Data)
}

func TestGetCompanyNotes_SendsParentQuery(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notes", r.URL.Path)
		assert.Equal(t, "companies", r.URL.Query().Get("parent_object"))
		assert.Equal(t, "company-123", r.URL.Query().Get("parent_record_id"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [{"id": {"note_id": "note-1"}}, {"id": {"note_id": "note-2"}}]}`))
	}))

	batch, err := client.GetCompanyNotes(context.Background(), "company-123")
	require.NoError(t, err)
	assert.Len(t, batch.Data, 2)
}

func TestGetCompany_EmptyIDFailsValidation(t *testing.T) {
	client, _ := newTestClient(t, unreachableHandler(t))

	_, err := client.GetCompany(context.Background(), "")

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
