package usage

import (
	"context"
	"testing"
	"time"

	"keywordforge/internal/identity"
)

type fakeAPI struct {
	patches []identity.MetadataPatch
	ids     []string
}

func (f *fakeAPI) UpdateUserMetadata(_ context.Context, id string, patch identity.MetadataPatch) error {
	f.ids = append(f.ids, id)
	f.patches = append(f.patches, patch)
	return nil
}

func newTestLimiter(api MetadataWriter) *Limiter {
	l := NewLimiter(api, []string{"admin@example.com"})
	l.now = func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }
	return l
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		user *identity.User
		want Status
	}{
		{
			name: "anonymous is admitted with one run",
			user: nil,
			want: Status{Allowed: true, Remaining: 1},
		},
		{
			name: "fresh signed-in user has one run",
			user: &identity.User{ID: "user_1"},
			want: Status{Allowed: true, Remaining: 1},
		},
		{
			name: "free run already used",
			user: &identity.User{ID: "user_1", PublicMetadata: identity.PublicMetadata{FreeRunUsed: true}},
			want: Status{Allowed: false, Remaining: 0},
		},
		{
			name: "pro user is unlimited",
			user: &identity.User{ID: "user_1", PublicMetadata: identity.PublicMetadata{IsPro: true, FreeRunUsed: true}},
			want: Status{Allowed: true, Remaining: Unlimited, IsPro: true},
		},
		{
			name: "admin is unlimited even without pro flag",
			user: &identity.User{
				ID:             "user_9",
				EmailAddresses: []identity.EmailAddress{{EmailAddress: "Admin@Example.com"}},
				PublicMetadata: identity.PublicMetadata{FreeRunUsed: true},
			},
			want: Status{Allowed: true, Remaining: Unlimited, IsPro: true, IsAdmin: true},
		},
	}

	l := newTestLimiter(&fakeAPI{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Check(tt.user); got != tt.want {
				t.Errorf("Check() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// The server-side check alone does not block a second run before the
// metadata write lands: two checks against the same unmodified record
// are both admitted. This documents the accepted non-atomic gate.
func TestCheckRaceIsAdmitted(t *testing.T) {
	l := newTestLimiter(&fakeAPI{})
	user := &identity.User{ID: "user_1"}

	first := l.Check(user)
	second := l.Check(user)
	if !first.Allowed || !second.Allowed {
		t.Error("both pre-write checks should be admitted")
	}

	// Once the flag is visible, the user is blocked.
	user.PublicMetadata.FreeRunUsed = true
	if l.Check(user).Allowed {
		t.Error("check after persisted flag should be blocked")
	}
}

func TestIncrement(t *testing.T) {
	api := &fakeAPI{}
	l := newTestLimiter(api)

	// Free user: metadata is patched.
	if err := l.Increment(context.Background(), &identity.User{ID: "user_1"}); err != nil {
		t.Fatalf("Increment() error: %v", err)
	}
	if len(api.patches) != 1 || api.ids[0] != "user_1" {
		t.Fatalf("expected one patch for user_1, got %v", api.ids)
	}
	p := api.patches[0]
	if p.FreeRunUsed == nil || !*p.FreeRunUsed {
		t.Error("patch should set freeRunUsed")
	}
	if p.FreeRunDate == nil || *p.FreeRunDate != "2026-08-28T12:00:00Z" {
		t.Errorf("patch freeRunDate = %v", p.FreeRunDate)
	}

	// Anonymous, pro, and admin users are never tracked.
	l.Increment(context.Background(), nil)
	l.Increment(context.Background(), &identity.User{ID: "u", PublicMetadata: identity.PublicMetadata{IsPro: true}})
	l.Increment(context.Background(), &identity.User{
		ID:             "a",
		EmailAddresses: []identity.EmailAddress{{EmailAddress: "admin@example.com"}},
	})
	if len(api.patches) != 1 {
		t.Errorf("expected no additional patches, got %d", len(api.patches))
	}
}
