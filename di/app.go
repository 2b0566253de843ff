package di

import (
	"lodge/internal/workers/housekeeping"
	"lodge/transport/http"
)

// App bundles the HTTP server with the background workers that share its
// dependency graph.
type App struct {
	HTTP         *http.HTTP
	Housekeeping housekeeping.Listener
}
