package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/launchhub/business-portal/internal/core/domain"
	"github.com/launchhub/business-portal/internal/core/ports"
)

// CompetitionService implements pitch-competition tracking.
type CompetitionService struct {
	comps ports.CompetitionRepository
	log   zerolog.Logger
}

func NewCompetitionService(comps ports.CompetitionRepository, log zerolog.Logger) *CompetitionService {
	return &CompetitionService{comps: comps, log: log}
}

func (s *CompetitionService) Create(ctx context.Context, input ports.CompetitionInput) (*domain.Competition, error) {
	return s.comps.Create(ctx, &domain.Competition{
		Title:       input.Title,
		Description: input.Description,
		Deadline:    input.Deadline.UTC(),
	})
}

func (s *CompetitionService) List(ctx context.Context) ([]domain.Competition, error) {
	return s.comps.List(ctx)
}

// Enter records a user's submission. Closed or past-deadline competitions
// reject entries, and each user may enter a competition once.
func (s *CompetitionService) Enter(ctx context.Context, input ports.EntryInput) (*domain.Entry, error) {
	comp, err := s.comps.FindByID(ctx, input.CompetitionID)
	if err != nil {
		return nil, err
	}
	if !comp.AcceptsEntries(time.Now().UTC()) {
		return nil, domain.ErrCompetitionClosed
	}

	if _, err := s.comps.FindEntry(ctx, input.CompetitionID, input.EntrantID); err == nil {
		return nil, domain.ErrDuplicateEntry
	} else if !errors.Is(err, domain.ErrEntryNotFound) {
		return nil, err
	}

	return s.comps.CreateEntry(ctx, &domain.Entry{
		CompetitionID: input.CompetitionID,
		EntrantID:     input.EntrantID,
		PitchSummary:  input.PitchSummary,
		DeckURL:       input.DeckURL,
	})
}

func (s *CompetitionService) Entries(ctx context.Context, competitionID uint) ([]domain.Entry, error) {
	if _, err := s.comps.FindByID(ctx, competitionID); err != nil {
		return nil, err
	}
	return s.comps.ListEntries(ctx, competitionID)
}

// CloseExpired marks competitions past their deadline closed. Driven by the
// background worker.
func (s *CompetitionService) CloseExpired(ctx context.Context, now time.Time) (int, error) {
	expired, err := s.comps.ListExpiredOpen(ctx, now)
	if err != nil {
		return 0, err
	}

	closed := 0
	for i := range expired {
		expired[i].Closed = true
		if err := s.comps.Update(ctx, &expired[i]); err != nil {
			s.log.Error().Err(err).Uint("competition_id", expired[i].ID).Msg("close competition failed")
			continue
		}
		closed++
	}
	return closed, nil
}
