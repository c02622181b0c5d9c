package dashqueries

import (
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/pulseboard/internal/testutil"
)

func TestPaidUsers_ResolvesByDocumentID(t *testing.T) {
	f := testutil.NewFixtures(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := f.AddUser("users", "paid@test.com", "Paid User", now)
	f.AddPaidLink("paid", u.ID)

	users, err := PaidUsers(ctx, f.Store(), "paid", "users")
	if err != nil {
		t.Fatalf("PaidUsers: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("got %d users, want 1", len(users))
	}
	if users[0].Email != "paid@test.com" {
		t.Errorf("Email = %q, want paid@test.com", users[0].Email)
	}
}

func TestPaidUsers_FallsBackToUIDQuery(t *testing.T) {
	f := testutil.NewFixtures(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// The link references an external uid, not the user's document id.
	f.AddUserWithFields("users", map[string]any{
		"uid":   "firebase-uid-1",
		"email": "uid@test.com",
		"name":  "UID User",
	})
	f.AddPaidLink("paid", "firebase-uid-1")

	users, err := PaidUsers(ctx, f.Store(), "paid", "users")
	if err != nil {
		t.Fatalf("PaidUsers: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("got %d users, want 1", len(users))
	}
	if users[0].Name != "UID User" {
		t.Errorf("Name = %q, want UID User", users[0].Name)
	}
}

func TestPaidUsers_PlaceholderForUnresolved(t *testing.T) {
	f := testutil.NewFixtures(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f.AddPaidLink("paid", "abcdef1234567890")

	users, err := PaidUsers(ctx, f.Store(), "paid", "users")
	if err != nil {
		t.Fatalf("PaidUsers: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("got %d users, want 1", len(users))
	}
	if users[0].Name != "User abcdef12" {
		t.Errorf("Name = %q, want truncated placeholder", users[0].Name)
	}
	if users[0].Email != NoEmail {
		t.Errorf("Email = %q, want %q", users[0].Email, NoEmail)
	}
}

func TestPaidUsers_LinkWithoutReferenceUsesOwnID(t *testing.T) {
	f := testutil.NewFixtures(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	link := f.AddEvent("paid", map[string]any{"plan": "annual"})

	users, err := PaidUsers(ctx, f.Store(), "paid", "users")
	if err != nil {
		t.Fatalf("PaidUsers: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("got %d users, want 1", len(users))
	}
	if !strings.HasPrefix(users[0].Name, "User ") {
		t.Errorf("Name = %q, want placeholder from link id", users[0].Name)
	}
	if users[0].ID != link.ID {
		t.Errorf("ID = %q, want link id %q", users[0].ID, link.ID)
	}
}

func TestPaidUsers_LengthMatchesLinkCount(t *testing.T) {
	f := testutil.NewFixtures(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := f.AddUser("users", "one@test.com", "One", now.Add(-time.Hour))
	f.AddPaidLink("paid", u.ID)
	f.AddPaidLink("paid", "ghost-1")
	f.AddPaidLink("paid", "ghost-2")

	users, err := PaidUsers(ctx, f.Store(), "paid", "users")
	if err != nil {
		t.Fatalf("PaidUsers: %v", err)
	}
	if len(users) != 3 {
		t.Errorf("got %d users, want one per link", len(users))
	}
}

func TestPaidUsers_LengthHeldWhenLookupsError(t *testing.T) {
	f := testutil.NewFixtures(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// One link even points at a real user; with lookups erroring it
	// still cannot be resolved and must degrade to a placeholder.
	u := f.AddUser("users", "real@test.com", "Real User", now)
	f.AddPaidLink("paid", u.ID)
	f.AddPaidLink("paid", "abcdef1234567890")
	f.AddPaidLink("paid", "short")

	store := testutil.LookupFailingStore{Seed: f.Store()}
	users, err := PaidUsers(ctx, store, "paid", "users")
	if err != nil {
		t.Fatalf("PaidUsers: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("got %d users, want one per link despite lookup errors", len(users))
	}
	for i, user := range users {
		if !strings.HasPrefix(user.Name, "User ") {
			t.Errorf("users[%d].Name = %q, want placeholder", i, user.Name)
		}
		if user.Email != NoEmail {
			t.Errorf("users[%d].Email = %q, want %q", i, user.Email, NoEmail)
		}
	}
}

func TestPaidUsers_ReadFailure(t *testing.T) {
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := PaidUsers(ctx, testutil.FailingStore{}, "paid", "users")
	if err == nil {
		t.Fatal("expected error when the link collection is unreadable")
	}
}
