package service

import (
	"context"
	"time"

	"github.com/launchhub/business-portal/internal/core/domain"
)

// In-memory fakes shared by the service tests.

type memUserRepo struct {
	nextID uint
	users  map[uint]*domain.User
}

func newMemUserRepo(users ...*domain.User) *memUserRepo {
	r := &memUserRepo{nextID: 1, users: make(map[uint]*domain.User)}
	for _, u := range users {
		clone := *u
		r.users[u.ID] = &clone
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
	}
	return r
}

func (r *memUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, domain.ErrUserExists
		}
	}
	clone := *u
	clone.ID = r.nextID
	r.nextID++
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *memUserRepo) Update(_ context.Context, u *domain.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

type memRequestRepo struct {
	nextID   uint
	requests map[uint]*domain.AccountRequest
}

func newMemRequestRepo() *memRequestRepo {
	return &memRequestRepo{nextID: 1, requests: make(map[uint]*domain.AccountRequest)}
}

func (r *memRequestRepo) Create(_ context.Context, req *domain.AccountRequest) (*domain.AccountRequest, error) {
	clone := *req
	clone.ID = r.nextID
	r.nextID++
	r.requests[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memRequestRepo) FindByID(_ context.Context, id uint) (*domain.AccountRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	clone := *req
	return &clone, nil
}

func (r *memRequestRepo) ListPending(_ context.Context) ([]domain.AccountRequest, error) {
	var out []domain.AccountRequest
	for _, req := range r.requests {
		if req.Status == domain.RequestPending {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *memRequestRepo) Update(_ context.Context, req *domain.AccountRequest) error {
	if _, ok := r.requests[req.ID]; !ok {
		return domain.ErrRequestNotFound
	}
	clone := *req
	r.requests[req.ID] = &clone
	return nil
}

type memBusinessRepo struct {
	nextID     uint
	businesses map[uint]*domain.Business
}

func newMemBusinessRepo() *memBusinessRepo {
	return &memBusinessRepo{nextID: 1, businesses: make(map[uint]*domain.Business)}
}

func (r *memBusinessRepo) Create(_ context.Context, b *domain.Business) (*domain.Business, error) {
	clone := *b
	clone.ID = r.nextID
	r.nextID++
	r.businesses[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memBusinessRepo) FindByID(_ context.Context, id uint) (*domain.Business, error) {
	b, ok := r.businesses[id]
	if !ok {
		return nil, domain.ErrBusinessNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *memBusinessRepo) List(_ context.Context, includeArchived bool) ([]domain.Business, error) {
	var out []domain.Business
	for _, b := range r.businesses {
		if b.Archived && !includeArchived {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *memBusinessRepo) Update(_ context.Context, b *domain.Business) error {
	if _, ok := r.businesses[b.ID]; !ok {
		return domain.ErrBusinessNotFound
	}
	clone := *b
	r.businesses[b.ID] = &clone
	return nil
}

type memMessageRepo struct {
	nextID   uint
	messages map[uint]*domain.Message
}

func newMemMessageRepo() *memMessageRepo {
	return &memMessageRepo{nextID: 1, messages: make(map[uint]*domain.Message)}
}

func (r *memMessageRepo) Create(_ context.Context, m *domain.Message) (*domain.Message, error) {
	clone := *m
	clone.ID = r.nextID
	clone.CreatedAt = time.Now().UTC()
	r.nextID++
	r.messages[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memMessageRepo) FindByID(_ context.Context, id uint) (*domain.Message, error) {
	m, ok := r.messages[id]
	if !ok {
		return nil, domain.ErrMessageNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *memMessageRepo) ListByRecipient(_ context.Context, recipientID uint) ([]domain.Message, error) {
	var out []domain.Message
	for _, m := range r.messages {
		if m.RecipientID == recipientID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *memMessageRepo) Update(_ context.Context, m *domain.Message) error {
	if _, ok := r.messages[m.ID]; !ok {
		return domain.ErrMessageNotFound
	}
	clone := *m
	r.messages[m.ID] = &clone
	return nil
}

type memCompetitionRepo struct {
	nextID      uint
	nextEntryID uint
	comps       map[uint]*domain.Competition
	entries     map[uint]*domain.Entry
}

func newMemCompetitionRepo(comps ...*domain.Competition) *memCompetitionRepo {
	r := &memCompetitionRepo{
		nextID:      1,
		nextEntryID: 1,
		comps:       make(map[uint]*domain.Competition),
		entries:     make(map[uint]*domain.Entry),
	}
	for _, c := range comps {
		clone := *c
		r.comps[c.ID] = &clone
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
	}
	return r
}

func (r *memCompetitionRepo) Create(_ context.Context, c *domain.Competition) (*domain.Competition, error) {
	clone := *c
	clone.ID = r.nextID
	r.nextID++
	r.comps[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memCompetitionRepo) FindByID(_ context.Context, id uint) (*domain.Competition, error) {
	c, ok := r.comps[id]
	if !ok {
		return nil, domain.ErrCompetitionNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *memCompetitionRepo) List(_ context.Context) ([]domain.Competition, error) {
	var out []domain.Competition
	for _, c := range r.comps {
		out = append(out, *c)
	}
	return out, nil
}

func (r *memCompetitionRepo) Update(_ context.Context, c *domain.Competition) error {
	if _, ok := r.comps[c.ID]; !ok {
		return domain.ErrCompetitionNotFound
	}
	clone := *c
	r.comps[c.ID] = &clone
	return nil
}

func (r *memCompetitionRepo) ListExpiredOpen(_ context.Context, now time.Time) ([]domain.Competition, error) {
	var out []domain.Competition
	for _, c := range r.comps {
		if !c.Closed && !now.Before(c.Deadline) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memCompetitionRepo) CreateEntry(_ context.Context, e *domain.Entry) (*domain.Entry, error) {
	for _, existing := range r.entries {
		if existing.CompetitionID == e.CompetitionID && existing.EntrantID == e.EntrantID {
			return nil, domain.ErrDuplicateEntry
		}
	}
	clone := *e
	clone.ID = r.nextEntryID
	r.nextEntryID++
	r.entries[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memCompetitionRepo) FindEntry(_ context.Context, competitionID, entrantID uint) (*domain.Entry, error) {
	for _, e := range r.entries {
		if e.CompetitionID == competitionID && e.EntrantID == entrantID {
			clone := *e
			return &clone, nil
		}
	}
	return nil, domain.ErrEntryNotFound
}

func (r *memCompetitionRepo) ListEntries(_ context.Context, competitionID uint) ([]domain.Entry, error) {
	var out []domain.Entry
	for _, e := range r.entries {
		if e.CompetitionID == competitionID {
			out = append(out, *e)
		}
	}
	return out, nil
}

// memThrottle counts failures in memory with no window expiry; enough to
// drive the service's throttle branches.
type memThrottle struct {
	limit    int
	failures map[string]int
	err      error
}

func newMemThrottle(limit int) *memThrottle {
	return &memThrottle{limit: limit, failures: make(map[string]int)}
}

func (t *memThrottle) TooMany(_ context.Context, email string) (bool, error) {
	if t.err != nil {
		return false, t.err
	}
	return t.failures[email] >= t.limit, nil
}

func (t *memThrottle) RecordFailure(_ context.Context, email string) error {
	t.failures[email]++
	return nil
}

func (t *memThrottle) Reset(_ context.Context, email string) error {
	delete(t.failures, email)
	return nil
}
