package dashqueries

import (
	"testing"
	"time"

	"github.com/dalemusser/pulseboard/internal/app/store/docstore"
	"github.com/dalemusser/pulseboard/internal/domain/models"
	"github.com/dalemusser/pulseboard/internal/testutil"
)

func TestClassifyActivity(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]any
		want   models.ActivityType
	}{
		{"explicit user type", map[string]any{"type": "user"}, models.ActivityUser},
		{"register action", map[string]any{"action": "register"}, models.ActivityUser},
		{"signup event", map[string]any{"event": "signup"}, models.ActivityUser},
		{"explicit payment type", map[string]any{"type": "payment"}, models.ActivityPayment},
		{"amount alone implies payment", map[string]any{"amount": 12.5}, models.ActivityPayment},
		{"user beats amount", map[string]any{"type": "user", "amount": 12.5}, models.ActivityUser},
		{"report type", map[string]any{"type": "report"}, models.ActivityReport},
		{"report action", map[string]any{"action": "report"}, models.ActivityReport},
		{"unclassified is system", map[string]any{"type": "deploy"}, models.ActivitySystem},
		{"empty is system", map[string]any{}, models.ActivitySystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyActivity(docstore.Record{Fields: tt.fields})
			if got != tt.want {
				t.Errorf("classifyActivity = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActivityFeed_LimitAndOrder(t *testing.T) {
	f := testutil.NewFixtures(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 8; i++ {
		f.AddEvent("events", map[string]any{
			"type":      "system",
			"message":   "event",
			"timestamp": now.Add(-time.Duration(i) * time.Minute),
		})
	}

	items, err := ActivityFeed(ctx, f.Store(), "events", now)
	if err != nil {
		t.Fatalf("ActivityFeed: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("got %d items, want 5", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].Timestamp.After(items[i-1].Timestamp) {
			t.Errorf("items[%d] is newer than items[%d]", i, i-1)
		}
	}
}

func TestActivityFeed_MessageSanitized(t *testing.T) {
	f := testutil.NewFixtures(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f.AddEvent("events", map[string]any{
		"type":      "user",
		"message":   `<script>alert("x")</script>welcome`,
		"timestamp": now,
	})

	items, err := ActivityFeed(ctx, f.Store(), "events", now)
	if err != nil {
		t.Fatalf("ActivityFeed: %v", err)
	}
	if items[0].Message != "welcome" {
		t.Errorf("Message = %q, want markup stripped", items[0].Message)
	}
}

func TestActivityFeed_DefaultsAndMissingTimestamp(t *testing.T) {
	f := testutil.NewFixtures(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f.AddEvent("events", map[string]any{"type": "payment"})

	items, err := ActivityFeed(ctx, f.Store(), "events", now)
	if err != nil {
		t.Fatalf("ActivityFeed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Message != "Payment processed" {
		t.Errorf("Message = %q, want default payment message", items[0].Message)
	}
	if !items[0].Timestamp.Equal(now) {
		t.Errorf("Timestamp = %v, want now substituted", items[0].Timestamp)
	}
}
