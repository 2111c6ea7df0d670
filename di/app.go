package di

import (
	"casatente/scheduler"
	"casatente/transport/http"
)

// App bundles the long-running components built from a single object graph.
type App struct {
	HTTP      *http.HTTP
	Scheduler *scheduler.Scheduler
}
