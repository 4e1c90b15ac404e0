package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func tag(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Chain", name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter_MiddlewareOrder(t *testing.T) {
	echoID := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(httprouter.ParamsFromContext(req.Context()).ByName("id")))
	})

	r := New(WithRoutes(Route{
		Path:        "/items/:id",
		Method:      http.MethodGet,
		Handler:     echoID,
		Middlewares: []func(http.Handler) http.Handler{tag("first"), tag("second")},
	}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/42", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", rec.Body.String())
	assert.Equal(t, []string{"first", "second"}, rec.Header().Values("X-Chain"))
	assert.Equal(t, []string{"GET /items/:id"}, r.Routes())
}

func TestRouter_FallbackHandlers(t *testing.T) {
	r := New(
		WithRoutes(Route{Path: "/items", Method: http.MethodPost, Handler: http.NotFoundHandler()}),
		WithNotFound(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("custom-404"))
		})),
		WithMethodNotAllowed(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusMethodNotAllowed)
			w.Write([]byte("custom-405"))
		})),
	)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "custom-404"))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "custom-405", rec.Body.String())
}
