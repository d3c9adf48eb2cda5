package sink

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/rbotha/hospitalforge/internal/hospital"
)

// Postgres bulk-loads every table into a Postgres database using COPY.
// Tables are created on first use and truncated before each load, so a rerun
// replaces the previous dataset.
type Postgres struct {
	DSN    string
	Logger zerolog.Logger
}

// Write connects, then loads each table in dataset order.
func (p *Postgres) Write(ctx context.Context, ds *hospital.Dataset) error {
	conn, err := pgx.Connect(ctx, p.DSN)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer func() { _ = conn.Close(ctx) }()

	for _, tbl := range ds.Tables() {
		if err := p.loadTable(ctx, conn, tbl); err != nil {
			return fmt.Errorf("load table %s: %w", tbl.Name, err)
		}
		p.Logger.Info().
			Str("table", tbl.Name).
			Int("rows", len(tbl.Rows)).
			Msg("table loaded")
	}
	return nil
}

func (p *Postgres) loadTable(ctx context.Context, conn *pgx.Conn, tbl hospital.Table) error {
	ddl := createTableDDL(tbl)
	if _, err := conn.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	if _, err := conn.Exec(ctx, "TRUNCATE "+pgx.Identifier{tbl.Name}.Sanitize()); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	copied, err := conn.CopyFrom(ctx,
		pgx.Identifier{tbl.Name},
		tbl.Columns,
		pgx.CopyFromRows(tbl.Rows),
	)
	if err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	if copied != int64(len(tbl.Rows)) {
		return fmt.Errorf("copied %d rows, expected %d", copied, len(tbl.Rows))
	}
	return nil
}

// createTableDDL derives column types from the first non-nil value seen in
// each column. Columns that never carry a value default to text.
func createTableDDL(tbl hospital.Table) string {
	types := make([]string, len(tbl.Columns))
	for i := range tbl.Columns {
		types[i] = "text"
		for _, row := range tbl.Rows {
			switch row[i].(type) {
			case nil:
				continue
			case int:
				types[i] = "bigint"
			case float64:
				types[i] = "double precision"
			case bool:
				types[i] = "boolean"
			}
			break
		}
	}

	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS ")
	b.WriteString(pgx.Identifier{tbl.Name}.Sanitize())
	b.WriteString(" (")
	for i, col := range tbl.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(pgx.Identifier{col}.Sanitize())
		b.WriteString(" ")
		b.WriteString(types[i])
	}
	b.WriteString(")")
	return b.String()
}
