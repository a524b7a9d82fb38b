package handler

import (
	"context"
	"time"

	"github.com/tpfoyer/foyer-service/reservation/internal/model"
	"github.com/tpfoyer/foyer-service/reservation/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type ReservationService interface {
	RetrieveAllReservations(ctx context.Context) ([]model.Reservation, error)
	RetrieveReservation(ctx context.Context, id string) (model.Reservation, error)
	AddReservation(ctx context.Context, r *model.Reservation) (*model.Reservation, error)
	ModifyReservation(ctx context.Context, r model.Reservation) (model.Reservation, error)
	TrouverResSelonDateEtStatus(ctx context.Context, cutoff time.Time, valide bool) ([]model.Reservation, error)
	RemoveReservation(ctx context.Context, id string) error
}

var _ ReservationService = (*service.Service)(nil)
