package letters

import (
	"context"
	"time"

	"github.com/dmitrijs2005/unspoken/internal/models"
)

// Repository describes the operations on stored letters.
type Repository interface {
	// Insert trims message, rejects it when blank, stamps it with the current
	// time and stores it. The returned letter carries the assigned id.
	Insert(ctx context.Context, feeling, message string) (*models.Letter, error)

	// ListAll returns every letter, newest first.
	ListAll(ctx context.Context) ([]models.Letter, error)

	// ListByFeeling returns letters whose feeling equals feeling exactly,
	// newest first.
	ListByFeeling(ctx context.Context, feeling string) ([]models.Letter, error)

	// LatestTimestamp returns the timestamp of the newest letter.
	// ok is false when there are no letters.
	LatestTimestamp(ctx context.Context) (ts time.Time, ok bool, err error)

	// CountByFeeling returns the number of letters per feeling present,
	// ordered by feeling.
	CountByFeeling(ctx context.Context) ([]models.FeelingCount, error)
}
