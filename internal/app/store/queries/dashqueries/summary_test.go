package dashqueries

import (
	"errors"
	"testing"
	"time"

	"github.com/dalemusser/pulseboard/internal/testutil"
)

var now = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func TestSummary_Counts(t *testing.T) {
	f := testutil.NewFixtures(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Three users, two active within the last 24h.
	f.AddUser("users", "a@test.com", "A", now.Add(-time.Hour))
	f.AddUser("users", "b@test.com", "B", now.Add(-23*time.Hour))
	f.AddUser("users", "c@test.com", "C", now.Add(-48*time.Hour))

	paid := f.AddUser("users", "d@test.com", "D", time.Time{})
	f.AddPaidLink("paid", paid.ID)

	sum, err := Summary(ctx, f.Store(), "users", "paid", 12, now)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	if sum.TotalUsers != 4 {
		t.Errorf("TotalUsers = %d, want 4", sum.TotalUsers)
	}
	if sum.DailyActiveUsers != 2*12 {
		t.Errorf("DailyActiveUsers = %d, want %d", sum.DailyActiveUsers, 2*12)
	}
	if sum.PaidUsers != 1 {
		t.Errorf("PaidUsers = %d, want 1", sum.PaidUsers)
	}
	if sum.UsersGrowth != UsersGrowth || sum.DailyActiveGrowth != DailyActiveGrowth || sum.PaidUsersGrowth != PaidUsersGrowth {
		t.Errorf("growth = %d/%d/%d, want %d/%d/%d",
			sum.UsersGrowth, sum.DailyActiveGrowth, sum.PaidUsersGrowth,
			UsersGrowth, DailyActiveGrowth, PaidUsersGrowth)
	}
}

func TestSummary_WindowBoundary(t *testing.T) {
	f := testutil.NewFixtures(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Exactly on the cutoff counts; one nanosecond earlier does not.
	f.AddUser("users", "edge@test.com", "Edge", now.Add(-ActiveWindow))
	f.AddUser("users", "late@test.com", "Late", now.Add(-ActiveWindow-time.Nanosecond))

	sum, err := Summary(ctx, f.Store(), "users", "paid", 1, now)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.DailyActiveUsers != 1 {
		t.Errorf("DailyActiveUsers = %d, want 1", sum.DailyActiveUsers)
	}
}

func TestSummary_EmptyCollections(t *testing.T) {
	f := testutil.NewFixtures(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// An empty store is a success: zero counts with growth intact, which
	// is how callers tell "nothing there" apart from "read failed".
	sum, err := Summary(ctx, f.Store(), "users", "paid", 12, now)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.TotalUsers != 0 || sum.DailyActiveUsers != 0 || sum.PaidUsers != 0 {
		t.Errorf("counts = %d/%d/%d, want zeros", sum.TotalUsers, sum.DailyActiveUsers, sum.PaidUsers)
	}
	if sum.UsersGrowth != UsersGrowth {
		t.Errorf("UsersGrowth = %d, want %d", sum.UsersGrowth, UsersGrowth)
	}
}

func TestSummary_ReadFailure(t *testing.T) {
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := Summary(ctx, testutil.FailingStore{}, "users", "paid", 12, now)
	if !errors.Is(err, testutil.ErrStoreDown) {
		t.Fatalf("err = %v, want ErrStoreDown", err)
	}
}
