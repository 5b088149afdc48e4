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

func TestSearchPeople_NameOnlySendsBareFilter(t *testing.T) {
	var gotPayload map[string]any

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/objects/people/records/query", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [{"id": {"record_id": "person-123"}}]}`))
	}))

	batch, err := client.SearchPeople(context.Background(), SearchPeopleParams{
		Query: "John",
		Limit: 10,
	})
	require.NoError(t, err)
	require.Len(t, batch.Data, 1)

	filter, ok := gotPayload["filter"].(map[string]any)
	require.True(t, ok)
	_, hasAnd := filter["$and"]
	assert.False(t, hasAnd, "single predicate must not be wrapped in $and")
	assert.Contains(t, filter, "name")
}

func TestSearchPeople_NameAndEmail(t *testing.T) {
	var gotPayload map[string]any

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": []}`))
	}))

	_, err := client.SearchPeople(context.Background(), SearchPeopleParams{
		Query: "John",
		Email: "john@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, float64(DefaultPeopleLimit), gotPayload["limit"])

	filter := gotPayload["filter"].(map[string]any)
	combined, ok := filter["$and"].([]any)
	require.True(t, ok)
	require.Len(t, combined, 2)

	// Name predicate first, email second
	assert.Contains(t, combined[0].(map[string]any), "name")
	assert.Contains(t, combined[1].(map[string]any), "email_addresses")
}

func TestSearchPeople_NegativeLimitSkipsNetwork(t *testing.T) {
	client, _ := newTestClient(t, unreachableHandler(t))

	_, err := client.SearchPeople(context.Background(), SearchPeopleParams{Limit: -1})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err), "expected validation error, got %v", err)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestGetPerson_NotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.GetPerson(context.Background(), "missing-id")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "Person not found: missing-id")
}

func TestGetPersonNotes_RemoteNotFoundIsEmpty(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "people", r.URL.Query().Get("parent_object"))
		w.WriteHeader(http.StatusNotFound)
	}))

	batch, err := client.GetPersonNotes(context.Background(), "non-existent-id")

	require.NoError(t, err)
	assert.Empty(t, batch.Data)
}
