package handlers

import (
	"net/http"
	"strings"

	"mission_control/viewer/middleware"
	"mission_control/viewer/views"

	"github.com/gorilla/mux"
)

// routes is the static page table. The empty path is deliberately absent
// so it falls through to not-found like every other unknown path.
var routes = map[string]views.Page{
	"/home":         views.PageHome,
	"/login":        views.PageLogin,
	"/profile":      views.PageProfile,
	"/server-error": views.PageServerError,
}

// Resolve returns the page a path is routed to.
func Resolve(path string) views.Page {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if page, ok := routes[path]; ok {
		return page
	}
	return views.PageNotFound
}

func NewRouter(p *Pages) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger)

	for path, page := range routes {
		handler := p.StaticHandler(page)
		if page == views.PageHome {
			handler = p.HomeHandler
		}
		r.HandleFunc(path, handler).Methods(http.MethodGet, http.MethodHead)
	}

	// mux skips middleware for its NotFoundHandler
	r.NotFoundHandler = middleware.RequestLogger(http.HandlerFunc(p.NotFoundHandler))
	return r
}
