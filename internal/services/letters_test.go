package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/unspoken/internal/common"
	"github.com/dmitrijs2005/unspoken/internal/models"
	"github.com/dmitrijs2005/unspoken/internal/repositories/letters"
	"github.com/dmitrijs2005/unspoken/internal/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	letters []models.Letter
	counts  []models.FeelingCount

	latest   time.Time
	latestOK bool

	err error

	insertedFeeling string
	insertedMessage string
}

func (f *fakeRepo) Insert(ctx context.Context, feeling, message string) (*models.Letter, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.insertedFeeling, f.insertedMessage = feeling, message
	return &models.Letter{ID: 1, Feeling: feeling, Message: message}, nil
}

func (f *fakeRepo) ListAll(ctx context.Context) ([]models.Letter, error) {
	return f.letters, f.err
}

func (f *fakeRepo) ListByFeeling(ctx context.Context, feeling string) ([]models.Letter, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Letter
	for _, l := range f.letters {
		if l.Feeling == feeling {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeRepo) LatestTimestamp(ctx context.Context) (time.Time, bool, error) {
	return f.latest, f.latestOK, f.err
}

func (f *fakeRepo) CountByFeeling(ctx context.Context) ([]models.FeelingCount, error) {
	return f.counts, f.err
}

var _ letters.Repository = (*fakeRepo)(nil)

func sampleLetters() []models.Letter {
	return []models.Letter{
		{ID: 3, Feeling: "Love", Message: "third"},
		{ID: 2, Feeling: "Regret", Message: "second"},
		{ID: 1, Feeling: "Love", Message: "first"},
	}
}

func TestSave_PassesThrough(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewLetterService(repo)

	l, err := svc.Save(context.Background(), "Hope", "  hi  ")
	require.NoError(t, err)
	assert.Equal(t, "Hope", repo.insertedFeeling)
	assert.Equal(t, "  hi  ", repo.insertedMessage)
	assert.Equal(t, int64(1), l.ID)
}

func TestByFeeling_CountMatchesLength(t *testing.T) {
	svc := NewLetterService(&fakeRepo{letters: sampleLetters()})

	items, n, err := svc.ByFeeling(context.Background(), "Love")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, items, n)

	items, n, err = svc.ByFeeling(context.Background(), "Anger")
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, items)
}

func TestRandomLetter_Empty(t *testing.T) {
	svc := NewLetterService(&fakeRepo{})

	l, err := svc.RandomLetter(context.Background())
	require.NoError(t, err)
	assert.Nil(t, l)
}

func TestRandomLetter_UsesPicker(t *testing.T) {
	svc := NewLetterService(&fakeRepo{letters: sampleLetters()}).
		WithRand(func(n int) int { return n - 1 })

	l, err := svc.RandomLetter(context.Background())
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Equal(t, int64(1), l.ID)
}

func TestRandomLetter_CoversEveryLetter(t *testing.T) {
	svc := NewLetterService(&fakeRepo{letters: sampleLetters()})

	seen := map[int64]int{}
	for i := 0; i < 600; i++ {
		l, err := svc.RandomLetter(context.Background())
		require.NoError(t, err)
		seen[l.ID]++
	}
	assert.Len(t, seen, 3)
	for id, n := range seen {
		// expected ~200 each
		assert.Greater(t, n, 100, "letter %d picked too rarely", id)
	}
}

func TestFeelingCounts_Sorted(t *testing.T) {
	svc := NewLetterService(&fakeRepo{counts: []models.FeelingCount{
		{Feeling: "Regret", Count: 1},
		{Feeling: "Anger", Count: 4},
		{Feeling: "Love", Count: 2},
	}})

	counts, err := svc.FeelingCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.FeelingCount{
		{Feeling: "Anger", Count: 4},
		{Feeling: "Love", Count: 2},
		{Feeling: "Regret", Count: 1},
	}, counts)
}

func TestShouldRemind_UsesClockAndLatest(t *testing.T) {
	morning := time.Date(2026, 10, 19, 9, 0, 0, 0, time.Local)

	svc := NewLetterService(&fakeRepo{latest: morning.Add(-time.Hour), latestOK: true}).
		WithClock(func() time.Time { return morning })
	due, err := svc.ShouldRemind(context.Background())
	require.NoError(t, err)
	assert.False(t, due)

	svc = NewLetterService(&fakeRepo{}).WithClock(func() time.Time { return morning })
	due, err = svc.ShouldRemind(context.Background())
	require.NoError(t, err)
	assert.True(t, due)
}

func TestService_PropagatesStorageErrors(t *testing.T) {
	boom := errors.Join(common.ErrStorage, errors.New("disk full"))
	svc := NewLetterService(&fakeRepo{err: boom})
	ctx := context.Background()

	_, err := svc.Save(ctx, "Love", "x")
	assert.ErrorIs(t, err, common.ErrStorage)
	_, _, err = svc.ByFeeling(ctx, "Love")
	assert.ErrorIs(t, err, common.ErrStorage)
	_, err = svc.RandomLetter(ctx)
	assert.ErrorIs(t, err, common.ErrStorage)
	_, err = svc.FeelingCounts(ctx)
	assert.ErrorIs(t, err, common.ErrStorage)
	_, err = svc.ShouldRemind(ctx)
	assert.ErrorIs(t, err, common.ErrStorage)
}

func TestEndToEnd_SQLite(t *testing.T) {
	ctx := context.Background()
	m, err := repomanager.Open(ctx, filepath.Join(t.TempDir(), "letters.db"))
	require.NoError(t, err)
	defer m.Close()

	svc := NewLetterService(m.Letters())

	_, err = svc.Save(ctx, "Love", "a")
	require.NoError(t, err)
	_, err = svc.Save(ctx, "Regret", "b")
	require.NoError(t, err)
	_, err = svc.Save(ctx, "Love", "c")
	require.NoError(t, err)

	_, err = svc.Save(ctx, "Love", "   ")
	require.ErrorIs(t, err, common.ErrValidation)

	counts, err := svc.FeelingCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.FeelingCount{
		{Feeling: "Love", Count: 2},
		{Feeling: "Regret", Count: 1},
	}, counts)

	loves, n, err := svc.ByFeeling(ctx, "Love")
	require.NoError(t, err)
	require.Equal(t, 2, n)
	assert.Equal(t, "c", loves[0].Message)
	assert.Equal(t, "a", loves[1].Message)

	none, n, err := svc.ByFeeling(ctx, "love")
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, none)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	latest, ok, err := svc.LatestTimestamp(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, latest.Equal(all[0].Timestamp))

	r, err := svc.RandomLetter(ctx)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Contains(t, []string{"a", "b", "c"}, r.Message)
}
