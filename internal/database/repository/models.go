package repository

import "time"

// Reservation represents a reservations row.
type Reservation struct {
	ID          string
	Reference   string
	Guests      int
	KidChair    bool
	ReservedAt  time.Time
	CountryISO2 string
	DialCode    string
	Phone       string
	Email       string
	Comment     string
	CreatedAt   time.Time
}

// ReservationFilters narrows List. Zero values disable a filter.
type ReservationFilters struct {
	From  time.Time // inclusive
	To    time.Time // exclusive
	Email string
}
