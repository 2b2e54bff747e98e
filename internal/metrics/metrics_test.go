package metrics

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/employees/:id", "200"))

	RecordHTTPRequest(http.MethodGet, "/employees/:id", http.StatusOK, 15*time.Millisecond)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/employees/:id", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordHTTPRequest_UnmatchedRoute(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))

	RecordHTTPRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestRecordStorageUpload(t *testing.T) {
	okBefore := testutil.ToFloat64(StorageUploadsTotal.WithLabelValues("local", "success"))
	errBefore := testutil.ToFloat64(StorageUploadsTotal.WithLabelValues("local", "error"))

	RecordStorageUpload("local", nil)
	RecordStorageUpload("local", errors.New("disk full"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(StorageUploadsTotal.WithLabelValues("local", "success")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(StorageUploadsTotal.WithLabelValues("local", "error")))
}

func TestRecordLeaveEvent(t *testing.T) {
	before := testutil.ToFloat64(LeaveEventsRecorded.WithLabelValues("pl"))
	RecordLeaveEvent("pl")
	assert.Equal(t, before+1, testutil.ToFloat64(LeaveEventsRecorded.WithLabelValues("pl")))
}
