package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/launchhub/business-portal/internal/core/domain"
	"github.com/launchhub/business-portal/internal/core/ports"
)

func openCompetition(id uint, deadline time.Time) *domain.Competition {
	return &domain.Competition{ID: id, Title: "Spring Pitch", Deadline: deadline}
}

func TestCompetitionService_Enter(t *testing.T) {
	repo := newMemCompetitionRepo(openCompetition(1, time.Now().Add(24*time.Hour)))
	svc := NewCompetitionService(repo, zerolog.Nop())

	entry, err := svc.Enter(context.Background(), ports.EntryInput{
		CompetitionID: 1,
		EntrantID:     5,
		PitchSummary:  "A marketplace for surplus produce.",
	})
	if err != nil {
		t.Fatalf("enter: %v", err)
	}
	if entry.CompetitionID != 1 || entry.EntrantID != 5 {
		t.Fatalf("unexpected entry: %+v", entry)
	}

	entries, err := svc.Entries(context.Background(), 1)
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
}

func TestCompetitionService_EnterTwice(t *testing.T) {
	repo := newMemCompetitionRepo(openCompetition(1, time.Now().Add(24*time.Hour)))
	svc := NewCompetitionService(repo, zerolog.Nop())

	input := ports.EntryInput{CompetitionID: 1, EntrantID: 5, PitchSummary: "First."}
	if _, err := svc.Enter(context.Background(), input); err != nil {
		t.Fatalf("enter: %v", err)
	}
	if _, err := svc.Enter(context.Background(), input); !errors.Is(err, domain.ErrDuplicateEntry) {
		t.Fatalf("expected ErrDuplicateEntry, got %v", err)
	}
}

func TestCompetitionService_EnterPastDeadline(t *testing.T) {
	repo := newMemCompetitionRepo(openCompetition(1, time.Now().Add(-time.Minute)))
	svc := NewCompetitionService(repo, zerolog.Nop())

	_, err := svc.Enter(context.Background(), ports.EntryInput{CompetitionID: 1, EntrantID: 5})
	if !errors.Is(err, domain.ErrCompetitionClosed) {
		t.Fatalf("expected ErrCompetitionClosed, got %v", err)
	}
}

func TestCompetitionService_EnterClosed(t *testing.T) {
	comp := openCompetition(1, time.Now().Add(24*time.Hour))
	comp.Closed = true
	svc := NewCompetitionService(newMemCompetitionRepo(comp), zerolog.Nop())

	_, err := svc.Enter(context.Background(), ports.EntryInput{CompetitionID: 1, EntrantID: 5})
	if !errors.Is(err, domain.ErrCompetitionClosed) {
		t.Fatalf("expected ErrCompetitionClosed, got %v", err)
	}
}

func TestCompetitionService_EnterUnknownCompetition(t *testing.T) {
	svc := NewCompetitionService(newMemCompetitionRepo(), zerolog.Nop())

	_, err := svc.Enter(context.Background(), ports.EntryInput{CompetitionID: 404, EntrantID: 5})
	if !errors.Is(err, domain.ErrCompetitionNotFound) {
		t.Fatalf("expected ErrCompetitionNotFound, got %v", err)
	}
}

func TestCompetitionService_CloseExpired(t *testing.T) {
	now := time.Now().UTC()
	repo := newMemCompetitionRepo(
		openCompetition(1, now.Add(-time.Hour)),
		openCompetition(2, now.Add(time.Hour)),
		openCompetition(3, now.Add(-time.Minute)),
	)
	svc := NewCompetitionService(repo, zerolog.Nop())

	closed, err := svc.CloseExpired(context.Background(), now)
	if err != nil {
		t.Fatalf("close expired: %v", err)
	}
	if closed != 2 {
		t.Fatalf("expected 2 closed, got %d", closed)
	}

	still, err := repo.FindByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if still.Closed {
		t.Fatalf("future-deadline competition must stay open")
	}

	// A second sweep finds nothing left to close.
	closed, err = svc.CloseExpired(context.Background(), now)
	if err != nil {
		t.Fatalf("close expired: %v", err)
	}
	if closed != 0 {
		t.Fatalf("expected idempotent sweep, closed %d", closed)
	}
}
