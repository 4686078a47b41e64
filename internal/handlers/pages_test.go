package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diegoclair/chore-board/internal/handlers/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_BoardPage(t *testing.T) {
	m, router, _ := test.GetHandlerTest(t)
	test.Authenticate(m)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, test.WithSession(httptest.NewRequest(http.MethodGet, "/", nil)))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Type"), "text/html")

	page := recorder.Body.String()

	// the requested date is the browser's local day, never the UTC one
	assert.NotContains(t, page, "toISOString")
	assert.Contains(t, page, "d.getFullYear()")
	assert.Contains(t, page, "d.getMonth() + 1")
	assert.Contains(t, page, "d.getDate()")
	assert.Contains(t, page, `"/api/board?date=" + iso(current)`)

	// every card has a bulk toggle posting its tasks as one batch
	assert.Contains(t, page, "bulk.dataset.bulk")
	assert.Contains(t, page, "save(changed.map(wire))")
}

func TestHandler_LoginPage(t *testing.T) {
	_, router, _ := test.GetHandlerTest(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/login", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "/api/auth")
}
