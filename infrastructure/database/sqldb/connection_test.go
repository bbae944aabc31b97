package sqldb

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

func TestConnection_ExecuteBindsNamedParameters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	conn := NewFromDB(db, "postgres")
	orderDate := time.Date(2013, 1, 5, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE h.orderdate >= $1 AND h.orderdate < $2 AND ($3 = '' OR pc.name = $4)")).
		WithArgs("2013-01-01", "2013-02-01", "Bikes", "Bikes").
		WillReturnRows(sqlmock.NewRows([]string{"SalesOrderID", "OrderDate", "LineAmount"}).
			AddRow(int64(1), orderDate, []byte("1000.00")).
			AddRow(int64(1), orderDate, []byte("500.00")))

	rows, err := conn.Execute(context.Background(),
		"SELECT * FROM t WHERE h.orderdate >= :start_date AND h.orderdate < :end_date AND (:categories_csv = '' OR pc.name = :categories_csv)",
		map[string]any{
			"start_date":     "2013-01-01",
			"end_date":       "2013-02-01",
			"categories_csv": "Bikes",
		},
	)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0]["SalesOrderID"])
	assert.Equal(t, orderDate, rows[0]["OrderDate"])
	assert.Equal(t, []byte("500.00"), rows[1]["LineAmount"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnection_ExecuteEmptyResult(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	conn := NewFromDB(db, "postgres")
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"SalesOrderID"}))

	rows, err := conn.Execute(context.Background(), "SELECT 1", nil)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestConnection_ExecuteWrapsQueryFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	conn := NewFromDB(db, "postgres")
	down := errors.New("connection refused")
	mock.ExpectQuery("SELECT").WillReturnError(down)

	_, err = conn.Execute(context.Background(), "SELECT 1", nil)
	require.Error(t, err)

	var connErr *ConnectivityError
	require.True(t, errors.As(err, &connErr))
	assert.Equal(t, "query", connErr.Op)
	assert.ErrorIs(t, err, down)
}

func TestConnection_PingFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	conn := NewFromDB(db, "postgres")
	mock.ExpectPing().WillReturnError(errors.New("timeout"))

	err = conn.Ping(context.Background())
	var connErr *ConnectivityError
	require.True(t, errors.As(err, &connErr))
	assert.Equal(t, "ping", connErr.Op)
}
