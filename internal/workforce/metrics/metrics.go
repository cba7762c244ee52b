// Package metrics exposes the Prometheus collectors of the service.
package metrics

import (
	"strings"
	"sync"
	"time"

	e "github.com/gartstein/workforce/internal/workforce/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "workforce_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "workforce_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	violationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "workforce_validation_violations_total",
		Help: "Count of rejected field values by field and kind",
	}, []string{"field", "kind"})

	assignmentChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "workforce_assignment_changes_total",
		Help: "Count of employee/work center link and unlink requests by outcome",
	}, []string{"operation", "changed"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveViolations counts every violation of a rejected request.
func ObserveViolations(violations []e.Violation) {
	for _, v := range violations {
		violationsTotal.WithLabelValues(v.Field, string(v.Kind)).Inc()
	}
}

// ObserveAssignment records a link or unlink request.
func ObserveAssignment(operation string, changed bool) {
	label := "false"
	if changed {
		label = "true"
	}
	assignmentChanges.WithLabelValues(operation, label).Inc()
}

// OtherRoute labels requests that match no registered route.
const OtherRoute = "other"

var (
	routesMu sync.RWMutex
	routes   = map[string]struct{}{}
)

// RegisterRoute adds pattern to the routes reported by RoutePattern.
// Path parameters such as "{id}" are stored as ":id".
func RegisterRoute(pattern string) {
	segments := strings.Split(pattern, "/")
	for i, s := range segments {
		if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
			segments[i] = ":id"
		}
	}
	routesMu.Lock()
	defer routesMu.Unlock()
	routes[strings.Join(segments, "/")] = struct{}{}
}

// RoutePattern replaces numeric path segments with ":id" and returns the
// result when it is a registered route, OtherRoute otherwise, so the path
// label stays bounded.
func RoutePattern(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		if s != "" && strings.Trim(s, "0123456789") == "" {
			segments[i] = ":id"
		}
	}
	pattern := strings.Join(segments, "/")

	routesMu.RLock()
	defer routesMu.RUnlock()
	if _, ok := routes[pattern]; ok {
		return pattern
	}
	return OtherRoute
}
