package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/san-kum/atlas/internal/analysis"
	"github.com/san-kum/atlas/internal/dynamo"
	"github.com/san-kum/atlas/internal/orbit"
)

// Table is a header plus rows of numbers, the on-disk shape of every run.
type Table struct {
	Columns []string
	Rows    [][]float64
}

func (t Table) check() error {
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("storage: row %d has %d values, header has %d", i, len(row), len(t.Columns))
		}
	}
	return nil
}

// Column returns the values of the named column.
func (t Table) Column(name string) ([]float64, bool) {
	idx := -1
	for i, c := range t.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}
	col := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		col[i] = row[idx]
	}
	return col, true
}

// WriteCSV writes floats at full precision so a reload is bit-exact.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for j, v := range row {
			record[j] = formatFloat(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	t := &Table{Columns: records[0], Rows: make([][]float64, 0, len(records)-1)}
	for i, record := range records[1:] {
		row := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %s: %w", i+1, t.Columns[j], err)
			}
			row[j] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func OrbitTable(xs []float64) Table {
	t := Table{Columns: []string{"step", "x"}, Rows: make([][]float64, len(xs))}
	for i, x := range xs {
		t.Rows[i] = []float64{float64(i), x}
	}
	return t
}

func SweepTable(samples []analysis.Sample) Table {
	t := Table{Columns: []string{"r", "x"}, Rows: make([][]float64, len(samples))}
	for i, s := range samples {
		t.Rows[i] = []float64{s.R, s.X}
	}
	return t
}

func PointTable(pts []orbit.Point) Table {
	t := Table{Columns: []string{"step", "x", "y"}, Rows: make([][]float64, len(pts))}
	for i, p := range pts {
		t.Rows[i] = []float64{float64(i), p.X, p.Y}
	}
	return t
}

func StateTable(states []dynamo.State, names ...string) Table {
	cols := append([]string{"step"}, names...)
	t := Table{Columns: cols, Rows: make([][]float64, len(states))}
	for i, s := range states {
		row := make([]float64, len(cols))
		row[0] = float64(i)
		copy(row[1:], s)
		t.Rows[i] = row
	}
	return t
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
