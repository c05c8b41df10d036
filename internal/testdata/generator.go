package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/jask/micasa/internal/countries"
	"github.com/jask/micasa/internal/database/repository"
)

var sampleComments = []string{"", "", "terrace please", "birthday dinner", "allergic to shellfish", "late arrival"}

// Reservations builds n plausible ledger rows spread over the week after
// start. The same seed always yields the same rows, apart from their IDs.
func Reservations(seed int64, start time.Time, n int) []repository.Reservation {
	rng := rand.New(rand.NewSource(seed))
	all := countries.All()
	out := make([]repository.Reservation, 0, n)
	for i := 0; i < n; i++ {
		c := all[rng.Intn(len(all))]
		at := start.AddDate(0, 0, rng.Intn(7)).Add(time.Duration(12*60+rng.Intn(40)*15) * time.Minute)
		out = append(out, repository.Reservation{
			ID:          uuid.NewString(),
			Reference:   fmt.Sprintf("%08X", seed<<16+int64(i)),
			Guests:      1 + rng.Intn(8),
			KidChair:    rng.Intn(5) == 0,
			ReservedAt:  at,
			CountryISO2: c.ISO2,
			DialCode:    c.DialCode,
			Phone:       fmt.Sprintf("6%08d", rng.Intn(100000000)),
			Email:       fmt.Sprintf("guest%d@example.com", i),
			Comment:     sampleComments[rng.Intn(len(sampleComments))],
			CreatedAt:   start.Add(-time.Duration(rng.Intn(72)) * time.Hour),
		})
	}
	return out
}

// Seed inserts n generated reservations into the ledger.
func Seed(ctx context.Context, repo *repository.ReservationRepo, seed int64, start time.Time, n int) error {
	for _, r := range Reservations(seed, start, n) {
		if err := repo.Insert(ctx, r); err != nil {
			return fmt.Errorf("seed %s: %w", r.Reference, err)
		}
	}
	return nil
}
