package observability

import (
	"testing"

	"github.com/danmuck/errtag/internal/testutil/testlog"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()

	beforeOK := testutil.ToFloat64(attachments.WithLabelValues("ok"))
	beforeMiss := testutil.ToFloat64(lookups.WithLabelValues("false"))

	RecordAttachment("ok")
	RecordLookup(false)
	RecordDeclarationFile(true)

	if got := testutil.ToFloat64(attachments.WithLabelValues("ok")); got != beforeOK+1 {
		t.Fatalf("attachments ok: got=%v want=%v", got, beforeOK+1)
	}
	if got := testutil.ToFloat64(lookups.WithLabelValues("false")); got != beforeMiss+1 {
		t.Fatalf("lookups miss: got=%v want=%v", got, beforeMiss+1)
	}
}
