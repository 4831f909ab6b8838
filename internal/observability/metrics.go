package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LoginAttempts counts login attempts by result ("success" or "failure").
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_login_attempts_total",
		Help: "Total number of login attempts by result",
	}, []string{"result"})

	// Registrations counts completed registrations.
	Registrations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkwell_registrations_total",
		Help: "Total number of completed registrations",
	})

	// PostWrites counts post mutations by action ("created", "updated", "deleted").
	PostWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_post_writes_total",
		Help: "Total number of post mutations by action",
	}, []string{"action"})

	// CommentsCreated counts created comments.
	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkwell_comments_created_total",
		Help: "Total number of created comments",
	})

	// SessionStoreErrors counts session store failures by operation.
	SessionStoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_session_store_errors_total",
		Help: "Total number of session store errors by operation",
	}, []string{"operation"})
)
