package reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Confirmation is what the guest sees after a successful submit.
type Confirmation struct {
	ID          string
	Reference   string
	SubmittedAt time.Time
	Draft       Draft
}

// Submitter accepts a complete draft. It is the one place a real booking
// backend would plug in.
type Submitter interface {
	Submit(ctx context.Context, d Draft) (Confirmation, error)
}

// NewConfirmation stamps a draft with a fresh id and reference code.
func NewConfirmation(d Draft, at time.Time) Confirmation {
	id := uuid.New()
	return Confirmation{
		ID:          id.String(),
		Reference:   fmt.Sprintf("%08X", id.ID()),
		SubmittedAt: at,
		Draft:       d,
	}
}

// Simulated confirms every valid draft without sending or storing it.
type Simulated struct {
	Now func() time.Time
}

func (s Simulated) Submit(ctx context.Context, d Draft) (Confirmation, error) {
	if err := ctx.Err(); err != nil {
		return Confirmation{}, err
	}
	if err := Validate(d); err != nil {
		return Confirmation{}, err
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return NewConfirmation(d, now().UTC()), nil
}
