// Package metrics holds the application prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Entities and operations used as label values.
const (
	EntitySettings = "settings"
	EntityGame     = "game"
	EntityButton   = "button"
	EntityUpload   = "upload"
	EntitySession  = "session"

	OpCreate    = "create"
	OpUpdate    = "update"
	OpDelete    = "delete"
	OpDuplicate = "duplicate"
	OpLogin     = "login"
	OpLoginFail = "login_failed"
	OpLogout    = "logout"
)

var contentChanges = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Namespace: "gamelanding",
		Name:      "content_changes_total",
		Help:      "Successful admin changes, by entity and operation.",
	},
	[]string{"entity", "op"},
)

var uploadBytes = promauto.NewCounter( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Namespace: "gamelanding",
		Name:      "upload_bytes_total",
		Help:      "Bytes written by the upload endpoint.",
	},
)

// Record counts one change.
func Record(entity, op string) {
	contentChanges.WithLabelValues(entity, op).Inc()
}

// RecordUpload counts an upload of n bytes.
func RecordUpload(n int64) {
	Record(EntityUpload, OpCreate)
	uploadBytes.Add(float64(n))
}

// Changes returns the counter for entity and op, for tests and debugging.
func Changes(entity, op string) prometheus.Counter {
	return contentChanges.WithLabelValues(entity, op)
}
