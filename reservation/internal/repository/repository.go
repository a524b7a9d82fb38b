package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/tpfoyer/foyer-service/reservation/internal/errs"
	"github.com/tpfoyer/foyer-service/reservation/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	FindAll(ctx context.Context) ([]model.Reservation, error)
	FindByID(ctx context.Context, id string) (model.Reservation, bool, error)
	Save(ctx context.Context, r model.Reservation) (model.Reservation, error)
	DeleteByID(ctx context.Context, id string) error
	FindAllByAnneeUniversitaireBeforeAndEstValide(ctx context.Context, cutoff time.Time, valide bool) ([]model.Reservation, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

var _ Repository = (*repository)(nil)

const (
	reservationTableName = `reservation`
)

var (
	qb      = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	columns = []string{"id_reservation", "est_valide", "annee_universitaire"}
)

func (r *repository) FindAll(ctx context.Context) ([]model.Reservation, error) {
	q, args, err := qb.Select(columns...).
		From(reservationTableName).
		OrderBy("id_reservation").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Reservation, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (model.Reservation, bool, error) {
	q, args, err := qb.Select(columns...).
		From(reservationTableName).
		Where(sq.Eq{"id_reservation": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Reservation{}, false, err
	}
	var res model.Reservation
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, false, nil
		}
		return model.Reservation{}, false, err
	}
	return res, true, nil
}

// Save inserts the reservation or overwrites the row with the same id.
// An empty id gets a generated uuid.
func (r *repository) Save(ctx context.Context, res model.Reservation) (model.Reservation, error) {
	if res.IDReservation == "" {
		res.IDReservation = uuid.NewString()
	}
	q, args, err := qb.Insert(reservationTableName).
		Columns(columns...).
		Values(res.IDReservation, res.EstValide, res.AnneeUniversitaire.UTC()).
		Suffix("ON CONFLICT (id_reservation) DO UPDATE SET " +
			"est_valide = EXCLUDED.est_valide, " +
			"annee_universitaire = EXCLUDED.annee_universitaire " +
			"RETURNING id_reservation, est_valide, annee_universitaire").
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var saved model.Reservation
	if err := r.db.GetContext(ctx, &saved, q, args...); err != nil {
		r.log.Error("Save", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return model.Reservation{}, mapPgError(err)
	}
	return saved, nil
}

func (r *repository) DeleteByID(ctx context.Context, id string) error {
	q, args, err := qb.Delete(reservationTableName).
		Where(sq.Eq{"id_reservation": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		r.log.Debug("DeleteByID: nothing to delete", zap.String("id", id))
	}
	return nil
}

func (r *repository) FindAllByAnneeUniversitaireBeforeAndEstValide(ctx context.Context, cutoff time.Time, valide bool) ([]model.Reservation, error) {
	q, args, err := qb.Select(columns...).
		From(reservationTableName).
		Where(sq.Lt{"annee_universitaire": cutoff.UTC()}).
		Where(sq.Eq{"est_valide": valide}).
		OrderBy("id_reservation").
		ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("FindAllByAnneeUniversitaireBeforeAndEstValide", zap.String("query", q), zap.Any("args", args))

	items := make([]model.Reservation, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation, pgerrcode.StringDataRightTruncationDataException:
		return fmt.Errorf("%w: %s", errs.ErrInvalidReservation, pgErr.Message)
	}
	return err
}
