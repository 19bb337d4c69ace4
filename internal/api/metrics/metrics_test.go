package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/resourcehub/portal/internal/core/domain"
	"github.com/resourcehub/portal/internal/core/notify"
	"github.com/resourcehub/portal/internal/core/routing"
)

func TestOutcome(t *testing.T) {
	cases := []struct {
		status int
		err    error
		want   string
	}{
		{200, nil, "ok"},
		{204, nil, "ok"},
		{401, &domain.ServerError{Status: 401}, "4xx"},
		{503, &domain.ServerError{Status: 503}, "5xx"},
		{0, &domain.NetworkError{Op: "x", Err: errors.New("refused")}, "network_error"},
	}
	for _, c := range cases {
		if got := outcome(c.status, c.err); got != c.want {
			t.Fatalf("outcome(%d, %v) = %s, want %s", c.status, c.err, got, c.want)
		}
	}
}

func TestRecorder_ObserveCall(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("test op", "4xx"))
	Recorder{}.ObserveCall("test op", 404, &domain.ServerError{Status: 404}, 10*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("test op", "4xx"))
	if after != before+1 {
		t.Fatalf("expected counter to grow by 1, got %v -> %v", before, after)
	}
}

func TestRecorder_Notifications(t *testing.T) {
	before := testutil.ToFloat64(NotificationsActive)
	shown := testutil.ToFloat64(NotificationsShownTotal.WithLabelValues(string(notify.TypeWarning)))

	n := notify.Notification{ID: "1", Type: notify.TypeWarning}
	Recorder{}.Shown(n)
	if got := testutil.ToFloat64(NotificationsActive); got != before+1 {
		t.Fatalf("expected active %v, got %v", before+1, got)
	}
	Recorder{}.Removed(n)
	if got := testutil.ToFloat64(NotificationsActive); got != before {
		t.Fatalf("expected active %v, got %v", before, got)
	}
	if got := testutil.ToFloat64(NotificationsShownTotal.WithLabelValues(string(notify.TypeWarning))); got != shown+1 {
		t.Fatalf("expected shown %v, got %v", shown+1, got)
	}
}

func TestRecorder_ObserveDecision(t *testing.T) {
	c := GuardDecisionsTotal.WithLabelValues("admin", "redirect_login")
	before := testutil.ToFloat64(c)
	Recorder{}.ObserveDecision("admin", routing.Action{Kind: routing.Redirect, View: routing.ViewLogin})
	if got := testutil.ToFloat64(c); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}
}
