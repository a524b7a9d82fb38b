package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tpfoyer/foyer-service/reservation/internal/errs"
	"github.com/tpfoyer/foyer-service/reservation/internal/model"
	repo_mocks "github.com/tpfoyer/foyer-service/reservation/internal/repository/mocks"
	"github.com/tpfoyer/foyer-service/reservation/internal/service"
	service_mocks "github.com/tpfoyer/foyer-service/reservation/internal/service/mocks"
)

func newService(t *testing.T, opts ...service.Option) (*service.Service, *repo_mocks.MockRepository) {
	t.Helper()
	c := gomock.NewController(t)
	repo := repo_mocks.NewMockRepository(c)
	return service.NewService(repo, zap.NewNop(), opts...), repo
}

func TestService_RetrieveAllReservations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name    string
		stored  []model.Reservation
		repoErr error
		wantIDs []string
		wantErr bool
	}{
		{
			name:    "single",
			stored:  []model.Reservation{{IDReservation: "1234", EstValide: true}},
			wantIDs: []string{"1234"},
		},
		{
			name:    "store order kept",
			stored:  []model.Reservation{{IDReservation: "b"}, {IDReservation: "a"}, {IDReservation: "c"}},
			wantIDs: []string{"b", "a", "c"},
		},
		{
			name:    "empty store",
			stored:  nil,
			wantIDs: []string{},
		},
		{
			name:    "store failure",
			repoErr: errors.New("db down"),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newService(t)
			repo.EXPECT().FindAll(ctx).Return(tt.stored, tt.repoErr)

			got, err := svc.RetrieveAllReservations(ctx)
			if tt.wantErr {
				require.ErrorIs(t, err, tt.repoErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.IDReservation)
			}
			require.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestService_RetrieveReservation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newService(t)

	repo.EXPECT().FindByID(ctx, "1234").Return(model.Reservation{IDReservation: "1234"}, true, nil)

	got, err := svc.RetrieveReservation(ctx, "1234")
	require.NoError(t, err)
	require.Equal(t, "1234", got.IDReservation)
}

func TestService_RetrieveReservationNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newService(t)

	repo.EXPECT().FindByID(ctx, "non-existing-id").Return(model.Reservation{}, false, nil)

	_, err := svc.RetrieveReservation(ctx, "non-existing-id")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_RetrieveReservationStoreError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newService(t)
	dbErr := errors.New("db internal")

	repo.EXPECT().FindByID(ctx, "1234").Return(model.Reservation{}, false, dbErr)

	_, err := svc.RetrieveReservation(ctx, "1234")
	require.Equal(t, dbErr, err)
	require.False(t, errors.Is(err, errs.ErrNotFound))
}

func TestService_AddReservation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newService(t)
	r := model.Reservation{IDReservation: "1234"}

	repo.EXPECT().Save(ctx, r).Return(r, nil)

	added, err := svc.AddReservation(ctx, &r)
	require.NoError(t, err)
	require.NotNil(t, added)
	require.Equal(t, "1234", added.IDReservation)
}

func TestService_AddReservationWithNil(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	// no repository call is expected; gomock fails the test on any call
	svc, _ := newService(t)

	require.NotPanics(t, func() {
		added, err := svc.AddReservation(ctx, nil)
		require.NoError(t, err)
		require.Nil(t, added)
	})
}

func TestService_AddThenRetrieve(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newService(t)
	r := model.Reservation{IDReservation: "1234", EstValide: true}

	gomock.InOrder(
		repo.EXPECT().Save(ctx, r).Return(r, nil),
		repo.EXPECT().FindByID(ctx, "1234").Return(r, true, nil),
	)

	_, err := svc.AddReservation(ctx, &r)
	require.NoError(t, err)
	got, err := svc.RetrieveReservation(ctx, r.IDReservation)
	require.NoError(t, err)
	require.Equal(t, r.IDReservation, got.IDReservation)
}

func TestService_ModifyReservation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newService(t)
	r := model.Reservation{IDReservation: "1234"}

	repo.EXPECT().Save(ctx, r).Return(r, nil)

	modified, err := svc.ModifyReservation(ctx, r)
	require.NoError(t, err)
	require.Equal(t, "1234", modified.IDReservation)
}

func TestService_ModifyReservationStoreError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newService(t)
	dbErr := errors.New("db internal")

	repo.EXPECT().Save(ctx, gomock.Any()).Return(model.Reservation{}, dbErr)

	_, err := svc.ModifyReservation(ctx, model.Reservation{IDReservation: "1234"})
	require.Equal(t, dbErr, err)
}

func TestService_TrouverResSelonDateEtStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newService(t)
	cutoff := time.Now()

	repo.EXPECT().
		FindAllByAnneeUniversitaireBeforeAndEstValide(ctx, cutoff, true).
		Return([]model.Reservation{{IDReservation: "1234"}}, nil)

	got, err := svc.TrouverResSelonDateEtStatus(ctx, cutoff, true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "1234", got[0].IDReservation)
}

func TestService_RemoveReservation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newService(t)

	repo.EXPECT().DeleteByID(ctx, "1234").Return(nil).Times(1)

	require.NoError(t, svc.RemoveReservation(ctx, "1234"))
}

func TestService_RemoveReservationMissing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newService(t)

	repo.EXPECT().DeleteByID(ctx, "non-existing-id").Return(nil).Times(1)

	require.NoError(t, svc.RemoveReservation(ctx, "non-existing-id"))
}

func TestService_Events(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := gomock.NewController(t)
	repo := repo_mocks.NewMockRepository(c)
	pub := service_mocks.NewMockPublisher(c)
	svc := service.NewService(repo, zap.NewNop(), service.WithPublisher(pub))
	r := model.Reservation{IDReservation: "1234"}

	eventOf := func(typ model.EventType) gomock.Matcher {
		return eventMatcher{typ: typ, id: "1234"}
	}

	gomock.InOrder(
		repo.EXPECT().Save(ctx, r).Return(r, nil),
		pub.EXPECT().Publish(ctx, eventOf(model.EventCreated)).Return(nil),
		repo.EXPECT().Save(ctx, r).Return(r, nil),
		pub.EXPECT().Publish(ctx, eventOf(model.EventUpdated)).Return(errors.New("broker down")),
		repo.EXPECT().DeleteByID(ctx, "1234").Return(nil),
		pub.EXPECT().Publish(ctx, eventOf(model.EventDeleted)).Return(nil),
	)

	_, err := svc.AddReservation(ctx, &r)
	require.NoError(t, err)
	// a failed publish never changes the result
	_, err = svc.ModifyReservation(ctx, r)
	require.NoError(t, err)
	require.NoError(t, svc.RemoveReservation(ctx, "1234"))
}

func TestService_NoEventOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := gomock.NewController(t)
	repo := repo_mocks.NewMockRepository(c)
	pub := service_mocks.NewMockPublisher(c)
	svc := service.NewService(repo, zap.NewNop(), service.WithPublisher(pub))
	dbErr := errors.New("db internal")

	repo.EXPECT().DeleteByID(ctx, "1234").Return(dbErr)

	require.Equal(t, dbErr, svc.RemoveReservation(ctx, "1234"))
}

type eventMatcher struct {
	typ model.EventType
	id  string
}

func (m eventMatcher) Matches(x interface{}) bool {
	e, ok := x.(model.ReservationEvent)
	return ok && e.Type == m.typ && e.IDReservation == m.id && !e.OccurredAt.IsZero()
}

func (m eventMatcher) String() string {
	return "event " + string(m.typ) + " for " + m.id
}
