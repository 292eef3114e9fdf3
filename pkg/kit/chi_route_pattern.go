package kit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ChiRoutePatternOrPath is a metrics path label: the matched chi
// pattern when routing resolved one, the raw path otherwise. Patterns
// keep the label set bounded; raw paths appear only for unrouted
// requests such as 404s.
func ChiRoutePatternOrPath(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if rp := rctx.RoutePattern(); rp != "" {
			return rp
		}
	}
	return r.URL.Path
}
