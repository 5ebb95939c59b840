package ner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRecognizer_Recognize(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"entities":[{"text":"Acme Corp","label":"ORG"},{"text":"John Smith","label":"PERSON"}]}`))
	}))
	defer srv.Close()

	rec := NewHTTPRecognizer(srv.URL, 5*time.Second, nil)
	entities, err := rec.Recognize(context.Background(), "Invoice from Acme Corp, attn John Smith")
	require.NoError(t, err)

	assert.Equal(t, "Invoice from Acme Corp, attn John Smith", gotBody["text"])
	require.Len(t, entities, 2)
	assert.Equal(t, Entity{Text: "Acme Corp", Label: "ORG"}, entities[0])
	assert.Equal(t, Entity{Text: "John Smith", Label: "PERSON"}, entities[1])
}

func TestHTTPRecognizer_EmptyEntities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"entities":[]}`))
	}))
	defer srv.Close()

	rec := NewHTTPRecognizer(srv.URL, 5*time.Second, nil)
	entities, err := rec.Recognize(context.Background(), "nothing here")
	require.NoError(t, err)
	assert.Empty(t, entities)
}

func TestHTTPRecognizer_SchemaRejection(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing entities key", body: `{"spans":[]}`},
		{name: "entities not an array", body: `{"entities":"none"}`},
		{name: "item missing label", body: `{"entities":[{"text":"Acme"}]}`},
		{name: "item wrong types", body: `{"entities":[{"text":1,"label":2}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			rec := NewHTTPRecognizer(srv.URL, 5*time.Second, nil)
			_, err := rec.Recognize(context.Background(), "text")
			assert.Error(t, err)
		})
	}
}

func TestHTTPRecognizer_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	rec := NewHTTPRecognizer(srv.URL, 5*time.Second, nil)
	_, err := rec.Recognize(context.Background(), "text")
	assert.Error(t, err)
}

func TestValidateResponse(t *testing.T) {
	assert.NoError(t, validateResponse([]byte(`{"entities":[{"text":"a","label":"ORG"}]}`)))
	assert.Error(t, validateResponse([]byte(`not json`)))
	assert.Error(t, validateResponse([]byte(`{}`)))
}
