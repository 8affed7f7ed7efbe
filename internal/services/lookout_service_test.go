package services

import (
	"errors"
	"testing"

	"github.com/duet-app/duet/internal/models"
)

func newLookoutFixture(today string) (*LookoutService, *stubLookoutRepository) {
	resolver, _ := newLinkedResolver(10, 20)
	lookouts := &stubLookoutRepository{}
	return NewLookoutService(resolver, lookouts, FixedClock{Day: mustParseDay(today)}), lookouts
}

func TestCreateLookoutByPartner(t *testing.T) {
	t.Parallel()

	service, _ := newLookoutFixture("2025-03-01")
	lookout, err := service.CreateLookout(20, LookoutInput{
		Title:      "bring chocolate",
		ShowOnDate: mustParseDay("2025-03-05"),
		Priority:   2,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if lookout.TrackedAccountID != 10 {
		t.Fatalf("lookout must target the tracked account, got %d", lookout.TrackedAccountID)
	}
	if lookout.PartnerID == nil || *lookout.PartnerID != 20 {
		t.Fatalf("expected partner authorship, got %v", lookout.PartnerID)
	}
	if lookout.IsAdminCreated {
		t.Fatal("partner lookouts are not admin-created")
	}
}

func TestCreateLookoutForbiddenForTrackedPerson(t *testing.T) {
	t.Parallel()

	service, _ := newLookoutFixture("2025-03-01")
	input := LookoutInput{Title: "note", ShowOnDate: mustParseDay("2025-03-05")}

	if _, err := service.CreateLookout(10, input); !errors.Is(err, ErrPartnerRoleRequired) {
		t.Fatalf("expected partner-role error, got %v", err)
	}
}

func TestCreateLookoutValidation(t *testing.T) {
	t.Parallel()

	service, _ := newLookoutFixture("2025-03-01")

	if _, err := service.CreateLookout(20, LookoutInput{ShowOnDate: mustParseDay("2025-03-05")}); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("expected title error, got %v", err)
	}
	if _, err := service.CreateLookout(20, LookoutInput{Title: "note"}); !errors.Is(err, ErrShowDateRequired) {
		t.Fatalf("expected show-date error, got %v", err)
	}
	inverted := LookoutInput{
		Title:         "note",
		ShowOnDate:    mustParseDay("2025-03-05"),
		ShowUntilDate: dayPtr("2025-03-01"),
	}
	if _, err := service.CreateLookout(20, inverted); !errors.Is(err, ErrWindowInverted) {
		t.Fatalf("expected inverted-window error, got %v", err)
	}
}

func TestCreateAdminLookout(t *testing.T) {
	t.Parallel()

	service, _ := newLookoutFixture("2025-03-01")
	lookout, err := service.CreateAdminLookout(10, LookoutInput{
		Title:      "rough days ahead",
		ShowOnDate: mustParseDay("2025-03-05"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !lookout.IsAdminCreated {
		t.Fatal("expected admin-created flag")
	}
	if lookout.PartnerID != nil {
		t.Fatalf("admin lookouts carry no partner, got %v", lookout.PartnerID)
	}
}

func TestActiveLookoutsFiltersWindow(t *testing.T) {
	t.Parallel()

	service, lookouts := newLookoutFixture("2025-03-10")
	lookouts.lookouts = []models.Lookout{
		{ID: 1, TrackedAccountID: 10, Title: "current", ShowOnDate: mustParseDay("2025-03-01")},
		{ID: 2, TrackedAccountID: 10, Title: "future", ShowOnDate: mustParseDay("2025-04-01")},
		{ID: 3, TrackedAccountID: 99, Title: "other couple", ShowOnDate: mustParseDay("2025-03-01")},
	}

	active, err := service.ActiveLookouts(20)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(active) != 1 || active[0].Title != "current" {
		t.Fatalf("expected only the in-window lookout, got %+v", active)
	}
}

func TestMarkLookoutSeenIdempotent(t *testing.T) {
	t.Parallel()

	service, lookouts := newLookoutFixture("2025-03-10")
	lookouts.lookouts = []models.Lookout{
		{ID: 1, TrackedAccountID: 10, Title: "note", ShowOnDate: mustParseDay("2025-03-01")},
	}

	seen, err := service.MarkLookoutSeen(10, 1)
	if err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if !seen.IsSeen {
		t.Fatal("expected lookout marked seen")
	}

	again, err := service.MarkLookoutSeen(10, 1)
	if err != nil {
		t.Fatalf("second mark must be a no-op, got %v", err)
	}
	if !again.IsSeen {
		t.Fatal("expected lookout to stay seen")
	}
}

func TestMarkLookoutSeenOnlyForTrackedPerson(t *testing.T) {
	t.Parallel()

	service, lookouts := newLookoutFixture("2025-03-10")
	lookouts.lookouts = []models.Lookout{
		{ID: 1, TrackedAccountID: 10, Title: "note", ShowOnDate: mustParseDay("2025-03-01")},
	}

	if _, err := service.MarkLookoutSeen(20, 1); !errors.Is(err, ErrTrackedRoleRequired) {
		t.Fatalf("expected tracked-role error for partner, got %v", err)
	}
	if _, err := service.MarkLookoutSeen(10, 99); !errors.Is(err, ErrLookoutNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
