package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseProbeRepository_CheckLiveness(t *testing.T) {
	t.Run("Banco respondendo", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT 1")).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(int64(1)))

		err := NewDatabaseProbeRepository(conn).CheckLiveness(context.Background())

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Banco fora do ar", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT 1")).
			WillReturnError(errors.New("connection refused"))

		err := NewDatabaseProbeRepository(conn).CheckLiveness(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDatabaseProbeRepository_GetDatabaseInfo(t *testing.T) {
	serverTime := time.Date(2025, 10, 1, 12, 30, 0, 0, time.UTC)

	conn, mock := newMockConnection(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT version(), current_timestamp")).
		WillReturnRows(sqlmock.NewRows([]string{"version", "current_timestamp"}).
			AddRow("PostgreSQL 15.4 on x86_64-pc-linux-gnu", serverTime))

	info, err := NewDatabaseProbeRepository(conn).GetDatabaseInfo(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "PostgreSQL 15.4 on x86_64-pc-linux-gnu", info.Version)
	assert.True(t, serverTime.Equal(info.ServerTime))
	assert.NoError(t, mock.ExpectationsWereMet())
}
