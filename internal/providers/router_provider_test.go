package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedHandler(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(name))
	})
}

func journalRouter() RouterProviderInterface {
	rp := NewRouterProvider()
	rp.Get("/", namedHandler("form"))
	rp.Post("/submit", namedHandler("submit"))
	rp.Get("/entries", namedHandler("entries"))
	return rp
}

func serve(t *testing.T, route http.Handler, method, url string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	route.ServeHTTP(rr, httptest.NewRequest(method, url, nil))
	return rr
}

func TestRouterProvider_RoutesInRegistrationOrder(t *testing.T) {
	routes := journalRouter().GetRoutes()

	require.Len(t, routes, 3)
	assert.Equal(t, "/", routes[0].Url)
	assert.Equal(t, "/submit", routes[1].Url)
	assert.Equal(t, "/entries", routes[2].Url)
}

func TestRouterProvider_Endpoints(t *testing.T) {
	rp := journalRouter()
	endpoints := rp.Endpoints()
	assert.Equal(t, []string{"/", "/submit", "/entries"}, endpoints)

	endpoints[0] = "/changed"
	assert.Equal(t, "/", rp.Endpoints()[0])
}

func TestRouterProvider_DispatchesByMethod(t *testing.T) {
	routes := journalRouter().GetRoutes()

	rr := serve(t, routes[1].Handler, http.MethodPost, "/submit")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "submit", rr.Body.String())

	rr = serve(t, routes[2].Handler, http.MethodGet, "/entries")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "entries", rr.Body.String())
}

func TestRouterProvider_SubmitRejectsGet(t *testing.T) {
	submit := journalRouter().GetRoutes()[1]

	rr := serve(t, submit.Handler, http.MethodGet, "/submit")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, http.MethodPost, rr.Header().Get("Allow"))
	assert.NotContains(t, rr.Body.String(), "submit")
}

func TestRouterProvider_EntriesRejectsPost(t *testing.T) {
	entries := journalRouter().GetRoutes()[2]

	rr := serve(t, entries.Handler, http.MethodPost, "/entries")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, http.MethodGet, rr.Header().Get("Allow"))
}

func TestRouterProvider_SameUrlTwoMethods(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/", namedHandler("form"))
	rp.Post("/", namedHandler("submit"))

	routes := rp.GetRoutes()
	require.Len(t, routes, 1)

	assert.Equal(t, "form", serve(t, routes[0].Handler, http.MethodGet, "/").Body.String())
	assert.Equal(t, "submit", serve(t, routes[0].Handler, http.MethodPost, "/").Body.String())

	rr := serve(t, routes[0].Handler, http.MethodDelete, "/")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "GET, POST", rr.Header().Get("Allow"))
}
