package observability

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	attachments = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "errtag",
			Subsystem: "registry",
			Name:      "attachments_total",
			Help:      "Acceptable set attachments by result.",
		},
		[]string{"result"},
	)
	lookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "errtag",
			Subsystem: "registry",
			Name:      "lookups_total",
			Help:      "Registry lookups by whether a set was declared.",
		},
		[]string{"found"},
	)
	declarationFiles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "errtag",
			Subsystem: "config",
			Name:      "declaration_files_total",
			Help:      "Declaration files applied by result.",
		},
		[]string{"result"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(attachments, lookups, declarationFiles)
	})
}

func RecordAttachment(result string) {
	RegisterMetrics()
	attachments.WithLabelValues(result).Inc()
}

func RecordLookup(found bool) {
	RegisterMetrics()
	lookups.WithLabelValues(strconv.FormatBool(found)).Inc()
}

func RecordDeclarationFile(success bool) {
	RegisterMetrics()
	result := "ok"
	if !success {
		result = "error"
	}
	declarationFiles.WithLabelValues(result).Inc()
}
