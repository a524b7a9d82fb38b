package model

import (
	"strings"
	"time"
)

type Reservation struct {
	IDReservation      string    `json:"idReservation" db:"id_reservation"`
	EstValide          bool      `json:"estValide" db:"est_valide"`
	AnneeUniversitaire time.Time `json:"anneeUniversitaire" db:"annee_universitaire"`
}

type ReservationRequest struct {
	IDReservation      string `json:"idReservation" validate:"omitempty,max=64"`
	EstValide          bool   `json:"estValide"`
	AnneeUniversitaire Date   `json:"anneeUniversitaire" validate:"required"`
}

func (r ReservationRequest) Reservation() Reservation {
	return Reservation{
		IDReservation:      r.IDReservation,
		EstValide:          r.EstValide,
		AnneeUniversitaire: r.AnneeUniversitaire.Time,
	}
}

// Date accepts both 2006-01-02 and RFC3339.
type Date struct {
	time.Time `json:",inline"`
}

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return Date{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d *Date) UnmarshalJSON(b []byte) (err error) {
	s := strings.Trim(string(b), "\"")
	if s == "null" || s == "" {
		return nil
	}
	*d, err = ParseDate(s)
	return
}

func (d *Date) UnmarshalParam(param string) (err error) {
	*d, err = ParseDate(param)
	return
}

type EventType string

const (
	EventCreated EventType = "CREATED"
	EventUpdated EventType = "UPDATED"
	EventDeleted EventType = "DELETED"
)

type ReservationEvent struct {
	Type          EventType `json:"type"`
	IDReservation string    `json:"idReservation"`
	OccurredAt    time.Time `json:"occurredAt"`
}
