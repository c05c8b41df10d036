package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jask/micasa/internal/database/repository"
	"github.com/jask/micasa/internal/reservation"
)

// ReservationService confirms drafts and, when a ledger is configured,
// records them before the guest sees the confirmation.
type ReservationService struct {
	Reservations *repository.ReservationRepo
	Now          func() time.Time
	// Confirm stamps drafts; nil means reservation.NewConfirmation.
	Confirm func(d reservation.Draft, at time.Time) reservation.Confirmation
}

// ledgerNow is UTC at the second precision the ledger keeps.
func ledgerNow() time.Time { return time.Now().UTC().Truncate(time.Second) }

// referenceAttempts bounds how often a clashing reference code is redrawn.
const referenceAttempts = 3

var _ reservation.Submitter = (*ReservationService)(nil)

func (s *ReservationService) Submit(ctx context.Context, d reservation.Draft) (reservation.Confirmation, error) {
	if err := reservation.Validate(d); err != nil {
		return reservation.Confirmation{}, err
	}
	now := ledgerNow
	if s.Now != nil {
		now = s.Now
	}
	confirm := reservation.NewConfirmation
	if s.Confirm != nil {
		confirm = s.Confirm
	}
	at := now()

	if s.Reservations == nil {
		conf := confirm(d, at)
		log.Printf("reservation %s confirmed (not stored)", conf.Reference)
		return conf, nil
	}

	var err error
	for attempt := 1; attempt <= referenceAttempts; attempt++ {
		conf := confirm(d, at)
		err = s.Reservations.Insert(ctx, reservationRow(conf))
		if err == nil {
			log.Printf("reservation %s recorded for %d guests at %s", conf.Reference, d.Guests, d.When.Format(time.RFC3339))
			return conf, nil
		}
		if !errors.Is(err, repository.ErrDuplicateReference) {
			break
		}
		log.Printf("reference %s taken, drawing another (attempt %d)", conf.Reference, attempt)
	}
	return reservation.Confirmation{}, fmt.Errorf("record reservation: %w", err)
}

func reservationRow(conf reservation.Confirmation) repository.Reservation {
	d := conf.Draft
	return repository.Reservation{
		ID:          conf.ID,
		Reference:   conf.Reference,
		Guests:      d.Guests,
		KidChair:    d.KidChair,
		ReservedAt:  d.When,
		CountryISO2: d.Country.ISO2,
		DialCode:    d.Country.DialCode,
		Phone:       d.Phone,
		Email:       d.Email,
		Comment:     d.Comment,
		CreatedAt:   conf.SubmittedAt,
	}
}
