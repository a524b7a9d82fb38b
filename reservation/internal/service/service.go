package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tpfoyer/foyer-service/reservation/internal/errs"
	"github.com/tpfoyer/foyer-service/reservation/internal/model"
	"github.com/tpfoyer/foyer-service/reservation/internal/repository"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type Publisher interface {
	Publish(ctx context.Context, event model.ReservationEvent) error
}

// Service mediates between callers and the reservation store. It keeps no
// state between calls and returns store errors as they are.
type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	publisher Publisher
	now       func() time.Time
}

type Option func(*Service)

func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:  log.Named("service"),
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) RetrieveAllReservations(ctx context.Context) ([]model.Reservation, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Reservation{}
	}
	return items, nil
}

func (s *Service) RetrieveReservation(ctx context.Context, id string) (model.Reservation, error) {
	res, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return model.Reservation{}, err
	}
	if !found {
		return model.Reservation{}, errs.ErrNotFound
	}
	return res, nil
}

// AddReservation persists r. A nil reservation is a no-op returning (nil, nil).
func (s *Service) AddReservation(ctx context.Context, r *model.Reservation) (*model.Reservation, error) {
	if r == nil {
		s.log.Debug("AddReservation: nil reservation ignored")
		return nil, nil
	}
	saved, err := s.repo.Save(ctx, *r)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, model.EventCreated, saved.IDReservation)
	return &saved, nil
}

func (s *Service) ModifyReservation(ctx context.Context, r model.Reservation) (model.Reservation, error) {
	saved, err := s.repo.Save(ctx, r)
	if err != nil {
		return model.Reservation{}, err
	}
	s.publish(ctx, model.EventUpdated, saved.IDReservation)
	return saved, nil
}

// TrouverResSelonDateEtStatus returns reservations whose academic year is
// strictly before cutoff and whose validity flag equals valide.
func (s *Service) TrouverResSelonDateEtStatus(ctx context.Context, cutoff time.Time, valide bool) ([]model.Reservation, error) {
	items, err := s.repo.FindAllByAnneeUniversitaireBeforeAndEstValide(ctx, cutoff, valide)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Reservation{}
	}
	return items, nil
}

func (s *Service) RemoveReservation(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, model.EventDeleted, id)
	return nil
}

func (s *Service) publish(ctx context.Context, typ model.EventType, id string) {
	if s.publisher == nil {
		return
	}
	event := model.ReservationEvent{
		Type:          typ,
		IDReservation: id,
		OccurredAt:    s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("publish reservation event",
			zap.String("type", string(typ)),
			zap.String("id", id),
			zap.Error(err))
	}
}
