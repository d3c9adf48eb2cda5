package sink

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rbotha/hospitalforge/internal/hospital"
)

// CSV writes one file per table under Dir, plus a manifest describing the
// run. Table content is a pure function of the dataset; only the manifest's
// run id varies between runs.
type CSV struct {
	Dir    string
	Logger zerolog.Logger
}

type manifest struct {
	RunID  string         `yaml:"run_id"`
	Seed   int64          `yaml:"seed"`
	Tables map[string]int `yaml:"tables"`
}

// Write persists every table as <name>.csv with a header row, then writes
// manifest.yaml with per-table row counts.
func (c *CSV) Write(ctx context.Context, ds *hospital.Dataset) error {
	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	m := manifest{
		RunID:  uuid.NewString(),
		Seed:   ds.Seed,
		Tables: make(map[string]int),
	}

	for _, tbl := range ds.Tables() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.writeTable(tbl); err != nil {
			return fmt.Errorf("write table %s: %w", tbl.Name, err)
		}
		m.Tables[tbl.Name] = len(tbl.Rows)
		c.Logger.Info().
			Str("table", tbl.Name).
			Int("rows", len(tbl.Rows)).
			Msg("table written")
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(c.Dir, "manifest.yaml"), data, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	c.Logger.Info().
		Str("run_id", m.RunID).
		Str("dir", c.Dir).
		Msg("dataset written")
	return nil
}

func (c *CSV) writeTable(tbl hospital.Table) error {
	f, err := os.Create(filepath.Join(c.Dir, tbl.Name+".csv"))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	buf := bufio.NewWriterSize(f, 1<<16)
	w := csv.NewWriter(buf)

	if err := w.Write(tbl.Columns); err != nil {
		return err
	}

	record := make([]string, len(tbl.Columns))
	for _, row := range tbl.Rows {
		for i, cell := range row {
			record[i] = hospital.FormatCell(cell)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	return f.Close()
}
