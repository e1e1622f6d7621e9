// Package router registra as rotas da API sobre o httprouter
package router

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/retail-analytics-api/pkg/apiErrors"
)

// AnalyticsPrefix agrupa as rotas de widgets; 404 abaixo dele vira ANL_002
const AnalyticsPrefix = "/v1/analytics/"

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

// Route é uma rota com middlewares próprios, aplicados na ordem da lista
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) Router {
	rt := &Router{router: httprouter.New()}
	rt.router.NotFound = http.HandlerFunc(notFound)

	for _, config := range configs {
		config(rt)
	}

	return *rt
}

// notFound diferencia widget inexistente de rota inexistente
func notFound(w http.ResponseWriter, r *http.Request) {
	if widget := strings.TrimPrefix(r.URL.Path, AnalyticsPrefix); widget != r.URL.Path {
		apiErrors.WriteError(w, apiErrors.ErrUnknownWidget, "Widget inexistente", map[string]string{"widget": widget})
		return
	}
	http.NotFound(w, r)
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
