package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
)

// Route descreve um endpoint e a cadeia de middlewares aplicada só a ele
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

type Option func(r *Router)

// WithRoutes registra as rotas na ordem em que foram declaradas
func WithRoutes(routes ...Route) Option {
	return func(r *Router) {
		for _, route := range routes {
			r.handle(route)
		}
	}
}

// WithNotFound substitui a resposta padrão do httprouter para rotas inexistentes
func WithNotFound(handler http.Handler) Option {
	return func(r *Router) {
		r.mux.NotFound = handler
	}
}

// WithMethodNotAllowed é usado quando o caminho existe mas o método não
func WithMethodNotAllowed(handler http.Handler) Option {
	return func(r *Router) {
		r.mux.MethodNotAllowed = handler
	}
}

type Router struct {
	mux    *httprouter.Router
	routes []string
}

func New(opts ...Option) *Router {
	r := &Router{mux: httprouter.New()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Routes lista "METHOD path" de tudo que foi registrado
func (r *Router) Routes() []string {
	return append([]string(nil), r.routes...)
}

// O primeiro middleware da lista é o mais externo
func (r *Router) handle(route Route) {
	constructors := make([]alice.Constructor, 0, len(route.Middlewares))
	for _, mw := range route.Middlewares {
		constructors = append(constructors, mw)
	}

	r.mux.Handler(route.Method, route.Path, alice.New(constructors...).Then(route.Handler))
	r.routes = append(r.routes, route.Method+" "+route.Path)
}
