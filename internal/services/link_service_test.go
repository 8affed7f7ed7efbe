package services

import (
	"errors"
	"testing"

	"github.com/duet-app/duet/internal/models"
)

func newLinkFixture() (*LinkService, *stubLinkRepository, *stubAccountRepository) {
	links := &stubLinkRepository{}
	accounts := &stubAccountRepository{accounts: []models.Account{
		{ID: 10, Email: "tracked@example.com"},
		{ID: 20, Email: "partner@example.com"},
		{ID: 30, Email: "third@example.com"},
	}}
	return NewLinkService(links, accounts), links, accounts
}

func TestCreateLink(t *testing.T) {
	t.Parallel()

	service, _, _ := newLinkFixture()
	link, err := service.CreateLink(10, uintPtr(20))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if link.TrackedAccountID != 10 {
		t.Fatalf("unexpected tracked account: %d", link.TrackedAccountID)
	}
	if !link.HasPartner() || *link.PartnerID != 20 {
		t.Fatalf("expected partner 20, got %v", link.PartnerID)
	}
	if link.InviteCode == "" {
		t.Fatal("expected an invite code")
	}
}

func TestCreateLinkWithoutPartner(t *testing.T) {
	t.Parallel()

	service, _, _ := newLinkFixture()
	link, err := service.CreateLink(10, nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if link.HasPartner() {
		t.Fatalf("expected empty partner slot, got %v", link.PartnerID)
	}
}

func TestCreateLinkValidatesAccounts(t *testing.T) {
	t.Parallel()

	service, _, _ := newLinkFixture()
	if _, err := service.CreateLink(99, nil); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected account-not-found for tracked side, got %v", err)
	}
	if _, err := service.CreateLink(10, uintPtr(99)); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected account-not-found for partner side, got %v", err)
	}
}

func TestCreateLinkConflictsOnSecond(t *testing.T) {
	t.Parallel()

	service, _, _ := newLinkFixture()
	if _, err := service.CreateLink(10, nil); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := service.CreateLink(10, uintPtr(20)); !errors.Is(err, ErrLinkExists) {
		t.Fatalf("expected link-exists conflict, got %v", err)
	}
}

func TestReassignPartner(t *testing.T) {
	t.Parallel()

	service, _, _ := newLinkFixture()
	link, err := service.CreateLink(10, uintPtr(20))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := service.ReassignPartner(link.ID, uintPtr(30))
	if err != nil {
		t.Fatalf("reassign failed: %v", err)
	}
	if updated.PartnerID == nil || *updated.PartnerID != 30 {
		t.Fatalf("expected partner 30, got %v", updated.PartnerID)
	}

	cleared, err := service.ReassignPartner(link.ID, nil)
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if cleared.HasPartner() {
		t.Fatalf("expected cleared partner slot, got %v", cleared.PartnerID)
	}

	if _, err := service.ReassignPartner(99, uintPtr(30)); !errors.Is(err, ErrLinkNotFound) {
		t.Fatalf("expected link-not-found, got %v", err)
	}
}

func TestClaimLink(t *testing.T) {
	t.Parallel()

	service, _, _ := newLinkFixture()
	created, err := service.CreateLink(10, nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	claimed, err := service.ClaimLink(20, created.InviteCode)
	if err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if claimed.PartnerID == nil || *claimed.PartnerID != 20 {
		t.Fatalf("expected claimer as partner, got %v", claimed.PartnerID)
	}

	// Claiming again with the same account is a no-op.
	if _, err := service.ClaimLink(20, created.InviteCode); err != nil {
		t.Fatalf("repeat claim must succeed, got %v", err)
	}
	// A different account finds the slot taken.
	if _, err := service.ClaimLink(30, created.InviteCode); !errors.Is(err, ErrPartnerSlotTaken) {
		t.Fatalf("expected slot-taken conflict, got %v", err)
	}
	// The tracked person cannot claim their own link.
	if _, err := service.ClaimLink(10, created.InviteCode); !errors.Is(err, ErrPartnerSlotTaken) {
		t.Fatalf("expected conflict on self-claim, got %v", err)
	}
	if _, err := service.ClaimLink(20, "bogus"); !errors.Is(err, ErrLinkNotFound) {
		t.Fatalf("expected not-found for bogus code, got %v", err)
	}
}
