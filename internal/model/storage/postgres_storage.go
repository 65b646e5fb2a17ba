package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"
	// postgres driver
	_ "github.com/lib/pq"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/open-rates/internal/entity/rates"
	"max.ks1230/open-rates/internal/logger"
	"max.ks1230/open-rates/internal/model/customerr"
)

const (
	dsnTemplate    = "user=%s password=%s host=%s dbname=%s sslmode=disable"
	postgresSource = "postgres"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type config interface {
	Host() string
	Username() string
	Password() string
	Database() string
}

// PostgresStorage keeps every published snapshot in the rates table,
// one row per (date, base, quote).
type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config config) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return &PostgresStorage{db}, nil
}

func (s *PostgresStorage) SaveTable(ctx context.Context, table *rates.Table) error {
	if table.Len() == 0 {
		return nil
	}
	span, ctx := opentracing.StartSpanFromContext(ctx, "saveTablePostgres")
	defer span.Finish()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "save table")
	}
	defer func() {
		txErr := tx.Rollback()
		if txErr != nil && !errors.Is(txErr, sql.ErrTxDone) {
			logger.Error("error when transaction rollback", zap.Error(txErr))
		}
	}()

	if _, err = upsertQuery(table).RunWith(tx).ExecContext(ctx); err != nil {
		return errors.Wrap(err, "save table")
	}
	return errors.Wrap(tx.Commit(), "save table")
}

func (s *PostgresStorage) LoadTable(ctx context.Context, date time.Time) (*rates.Table, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "loadTablePostgres")
	defer span.Finish()

	day := rates.Day(date)
	query := psql.Select("base", "quote", "rate").
		From("rates").
		Where(sq.Eq{"date": day})

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, customerr.FetchFailed(postgresSource, errors.Wrap(err, "load table"))
	}
	defer func() {
		rowErr := rows.Close()
		if rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	table := rates.NewTable(day)
	for rows.Next() {
		var base, quote string
		var rate decimal.Decimal
		if err = rows.Scan(&base, &quote, &rate); err != nil {
			return nil, customerr.ParseFailed(postgresSource, errors.Wrap(err, "load table"))
		}
		table.Set(base, quote, rate)
	}
	if err = rows.Err(); err != nil {
		return nil, customerr.FetchFailed(postgresSource, errors.Wrap(err, "load table"))
	}
	return table, nil
}

// Fetch serves stored snapshots to lookups. Segment is "latest" or YYYY-MM-DD.
func (s *PostgresStorage) Fetch(ctx context.Context, segment string) (*rates.Table, error) {
	if segment != latestFile {
		date, err := time.Parse(rates.DateLayout, segment)
		if err != nil {
			return nil, customerr.InvalidArgument(fmt.Sprintf("bad segment %q", segment))
		}
		return s.LoadTable(ctx, date)
	}

	var latest sql.NullTime
	err := psql.Select("MAX(date)").From("rates").
		RunWith(s.db).QueryRowContext(ctx).Scan(&latest)
	if err != nil {
		return nil, customerr.FetchFailed(postgresSource, errors.Wrap(err, "find latest table"))
	}
	if !latest.Valid {
		return &rates.Table{}, nil
	}
	return s.LoadTable(ctx, latest.Time)
}

func (s *PostgresStorage) Close() {
	if err := s.db.Close(); err != nil {
		logger.Error("failed to close database", zap.Error(err))
	}
}

func upsertQuery(table *rates.Table) sq.InsertBuilder {
	query := psql.Insert("rates").
		Columns("date", "base", "quote", "rate").
		Suffix("ON CONFLICT(date, base, quote) DO UPDATE SET rate = EXCLUDED.rate")

	day := rates.Day(table.Date)
	for _, base := range sortedKeys(table.Rates) {
		block := table.Rates[base]
		for _, quote := range sortedKeys(block) {
			query = query.Values(day, base, quote, block[quote].String())
		}
	}
	return query
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
