package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordUpstream(t *testing.T) {
	before := testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("metrics-test", "error"))

	RecordUpstream("metrics-test", 20*time.Millisecond, errors.New("boom"))
	RecordUpstream("metrics-test", 10*time.Millisecond, nil)

	assert.Equal(t, before+1, testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("metrics-test", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("metrics-test", "success")))
}

func TestRecordAnalysisAndHistory(t *testing.T) {
	RecordAnalysis("tea", "low")
	SetHistorySize("metrics-test", 7)
	SetAppInfo("9.9.9")

	assert.Equal(t, 1.0, testutil.ToFloat64(AnalysesTotal.WithLabelValues("tea", "low")))
	assert.Equal(t, 7.0, testutil.ToFloat64(HistoryEntries.WithLabelValues("metrics-test")))
	assert.Equal(t, 1.0, testutil.ToFloat64(AppInfo.WithLabelValues("9.9.9")))
}
