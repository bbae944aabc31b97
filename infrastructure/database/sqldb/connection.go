package sqldb

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-panel-api/internal/config"
	"github.com/vfg2006/sales-panel-api/internal/domain"
	"github.com/vfg2006/sales-panel-api/pkg/metrics"
)

// DataSource executa uma consulta com parâmetros nomeados (":nome") e devolve as linhas
// materializadas como mapas coluna -> valor. Os parâmetros nunca são concatenados no SQL.
type DataSource interface {
	Execute(ctx context.Context, query string, params map[string]any) ([]domain.Row, error)
}

type Conn interface {
	DataSource
	Close() error
	Ping(context.Context) error
}

type Connection struct {
	*sqlx.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sqlx.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, &ConnectivityError{Op: "open", Err: errors.Wrap(err, "sqldb: abrir conexão")}
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	conn := &Connection{DB: db}
	if err := conn.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return conn, nil
}

// NewFromDB embrulha um *sql.DB já aberto (usado em testes com sqlmock)
func NewFromDB(db *sql.DB, driver string) *Connection {
	return &Connection{DB: sqlx.NewDb(db, driver)}
}

func (c *Connection) Ping(ctx context.Context) error {
	if err := c.DB.PingContext(ctx); err != nil {
		return &ConnectivityError{Op: "ping", Err: errors.Wrap(err, "sqldb: ping")}
	}
	return nil
}

// Execute traduz os parâmetros nomeados para o formato posicional do driver,
// executa a consulta e libera a conexão logo após ler todas as linhas.
func (c *Connection) Execute(ctx context.Context, query string, params map[string]any) ([]domain.Row, error) {
	if params == nil {
		params = map[string]any{}
	}

	bound, args, err := sqlx.Named(query, params)
	if err != nil {
		return nil, errors.Wrap(err, "sqldb: vincular parâmetros")
	}
	bound, args, err = sqlx.In(bound, args...)
	if err != nil {
		return nil, errors.Wrap(err, "sqldb: expandir parâmetros")
	}
	bound = c.Rebind(bound)

	started := time.Now()
	rows, err := c.QueryxContext(ctx, bound, args...)
	if err != nil {
		metrics.DBQueryDuration.WithLabelValues("error").Observe(time.Since(started).Seconds())
		return nil, &ConnectivityError{Op: "query", Err: errors.Wrap(err, "sqldb: executar consulta")}
	}
	defer rows.Close()

	result := make([]domain.Row, 0)
	for rows.Next() {
		row := make(map[string]any)
		if err := rows.MapScan(row); err != nil {
			metrics.DBQueryDuration.WithLabelValues("error").Observe(time.Since(started).Seconds())
			return nil, &ConnectivityError{Op: "scan", Err: errors.Wrap(err, "sqldb: ler linha")}
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		metrics.DBQueryDuration.WithLabelValues("error").Observe(time.Since(started).Seconds())
		return nil, &ConnectivityError{Op: "iterate", Err: errors.Wrap(err, "sqldb: iterar linhas")}
	}

	metrics.DBQueryDuration.WithLabelValues("ok").Observe(time.Since(started).Seconds())
	metrics.DBRowsReturned.Add(float64(len(result)))

	return result, nil
}
