// Package metrics defines and registers all custom Prometheus metrics for the
// resource portal. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// init through promauto; HTTPMiddleware adds the per-request HTTP metrics.
package metrics

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/resourcehub/portal/internal/core/domain"
	"github.com/resourcehub/portal/internal/core/notify"
	"github.com/resourcehub/portal/internal/core/routing"
)

const namespace = "portal"

// ── Remote API metrics ────────────────────────────────────────────────────────

// APIRequestsTotal counts calls made through the API facade.
// Labels:
//   - operation: facade operation (e.g. "login", "list resources")
//   - outcome: "ok", "network_error", or the HTTP status class ("4xx", "5xx")
var APIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of remote API calls, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// APIRequestDuration measures remote call latency, including failed calls.
var APIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of remote API calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// ── Navigation metrics ────────────────────────────────────────────────────────

// GuardDecisionsTotal counts route guard outcomes.
// Labels:
//   - route: view name
//   - decision: "proceed", or "redirect_<view>"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of navigation decisions made by the route guard.",
	},
	[]string{"route", "decision"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsShownTotal counts notifications by type.
var NotificationsShownTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_shown_total",
		Help:      "Total number of notifications shown, by type.",
	},
	[]string{"type"},
)

// NotificationsActive tracks notifications not yet removed.
var NotificationsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifications_active",
		Help:      "Current number of notifications on screen.",
	},
)

var (
	httpOnce sync.Once
	httpMW   echo.MiddlewareFunc
)

// HTTPMiddleware returns the echo request metrics middleware. The collectors
// are registered once per process however many routers are built.
func HTTPMiddleware() echo.MiddlewareFunc {
	httpOnce.Do(func() {
		httpMW = echoprometheus.NewMiddleware(namespace)
	})
	return httpMW
}

// Handler serves the default registry.
func Handler() echo.HandlerFunc {
	return echoprometheus.NewHandler()
}

// Recorder feeds the collectors above from the portal's components. It
// satisfies apiclient.CallObserver and notify.Observer.
type Recorder struct{}

func (Recorder) ObserveCall(op string, status int, err error, elapsed time.Duration) {
	APIRequestsTotal.WithLabelValues(op, outcome(status, err)).Inc()
	APIRequestDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

func (Recorder) ObserveDecision(route string, action routing.Action) {
	decision := "proceed"
	if action.Kind == routing.Redirect {
		decision = "redirect_" + action.View
	}
	GuardDecisionsTotal.WithLabelValues(route, decision).Inc()
}

func (Recorder) Shown(n notify.Notification) {
	NotificationsShownTotal.WithLabelValues(string(n.Type)).Inc()
	NotificationsActive.Inc()
}

func (Recorder) Removed(notify.Notification) {
	NotificationsActive.Dec()
}

func outcome(status int, err error) string {
	if errors.Is(err, domain.ErrNetwork) || status == 0 {
		return "network_error"
	}
	if status >= 200 && status < 300 {
		return "ok"
	}
	return strconv.Itoa(status/100) + "xx"
}
