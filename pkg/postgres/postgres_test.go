package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tpfoyer/foyer-service/pkg/postgres"
)

func TestDB_DSN(t *testing.T) {
	cfg := postgres.DB{
		Host:     "db",
		Port:     "5432",
		User:     "foyer",
		Password: "p@ss",
		NameDB:   "foyer",
		SSLMode:  "disable",
	}
	require.Equal(t, "postgres://foyer:p%40ss@db:5432/foyer?sslmode=disable", cfg.DSN())
}
