// Package services holds the query and access rules on top of letter
// storage. Nothing here logs or renders; callers translate errors.
package services

import (
	"cmp"
	"context"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/dmitrijs2005/unspoken/internal/models"
	"github.com/dmitrijs2005/unspoken/internal/reminder"
	"github.com/dmitrijs2005/unspoken/internal/repositories/letters"
)

type LetterService struct {
	repo letters.Repository
	now  func() time.Time
	intN func(n int) int
}

func NewLetterService(repo letters.Repository) *LetterService {
	return &LetterService{
		repo: repo,
		now:  time.Now,
		intN: rand.IntN,
	}
}

// WithClock sets the time source used by ShouldRemind.
func (s *LetterService) WithClock(now func() time.Time) *LetterService {
	s.now = now
	return s
}

// WithRand sets the index picker used by RandomLetter. pick(n) must return a
// value in [0, n).
func (s *LetterService) WithRand(pick func(n int) int) *LetterService {
	s.intN = pick
	return s
}

// Save stores a new letter; blank messages fail with common.ErrValidation.
func (s *LetterService) Save(ctx context.Context, feeling, message string) (*models.Letter, error) {
	return s.repo.Insert(ctx, feeling, message)
}

func (s *LetterService) ListAll(ctx context.Context) ([]models.Letter, error) {
	return s.repo.ListAll(ctx)
}

// ByFeeling returns the letters tagged feeling, newest first, and how many
// there are.
func (s *LetterService) ByFeeling(ctx context.Context, feeling string) ([]models.Letter, int, error) {
	items, err := s.repo.ListByFeeling(ctx, feeling)
	if err != nil {
		return nil, 0, err
	}
	return items, len(items), nil
}

// RandomLetter picks one stored letter uniformly. It returns nil, nil when
// there is nothing to pick from.
func (s *LetterService) RandomLetter(ctx context.Context) (*models.Letter, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	picked := items[s.intN(len(items))]
	return &picked, nil
}

// FeelingCounts lists how many letters carry each feeling present in the
// store, sorted by feeling name.
func (s *LetterService) FeelingCounts(ctx context.Context) ([]models.FeelingCount, error) {
	counts, err := s.repo.CountByFeeling(ctx)
	if err != nil {
		return nil, err
	}
	// collation differs between engines
	slices.SortFunc(counts, func(a, b models.FeelingCount) int {
		return cmp.Compare(a.Feeling, b.Feeling)
	})
	return counts, nil
}

func (s *LetterService) LatestTimestamp(ctx context.Context) (time.Time, bool, error) {
	return s.repo.LatestTimestamp(ctx)
}

// ShouldRemind applies the reminder policy to the newest stored letter.
func (s *LetterService) ShouldRemind(ctx context.Context) (bool, error) {
	latest, ok, err := s.repo.LatestTimestamp(ctx)
	if err != nil {
		return false, err
	}
	return reminder.ShouldRemind(latest, ok, s.now()), nil
}
