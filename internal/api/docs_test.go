package api_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

// Every routed operation must be described in the served OpenAPI document.
func TestOpenAPIDocCoversRoutes(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	routes, ok := newTestServer(t, nil).(chi.Routes)
	require.True(t, ok)

	walked := 0
	err = chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if strings.HasPrefix(route, "/docs/") {
			return nil
		}
		walked++
		ops, ok := doc.Paths[route]
		if assert.True(t, ok, "route %s missing from doc", route) {
			assert.Contains(t, ops, strings.ToLower(method), "%s %s missing from doc", method, route)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 12, walked)
}

func TestOpenAPIDocIsServed(t *testing.T) {
	h := newTestServer(t, nil)

	rec, body := do(t, h, http.MethodGet, "/docs/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Catalog API", body["info"].(map[string]any)["title"])
}
