package convert

import (
	"cloud.google.com/go/bigtable"
	btpb "cloud.google.com/go/bigtable/apiv2/bigtablepb"
	"errors"
	"fmt"
	"github.com/litetable/bigtable-repro/internal/rows"
	"sort"
	"strings"
)

var errMalformedChunk = errors.New("malformed cell chunk")

// FlatRow flattens a client row. Families are ordered by name since the client hands
// them back as a map.
func FlatRow(r bigtable.Row) rows.FlatRow {
	families := make([]string, 0, len(r))
	size := 0
	for fam, items := range r {
		families = append(families, fam)
		size += len(items)
	}
	sort.Strings(families)

	flat := rows.FlatRow{
		Key:   r.Key(),
		Cells: make([]rows.Cell, 0, size),
	}
	for _, fam := range families {
		for _, item := range r[fam] {
			flat.Cells = append(flat.Cells, rows.Cell{
				Family:    fam,
				Qualifier: strings.TrimPrefix(item.Column, fam+":"),
				Timestamp: int64(item.Timestamp),
				Value:     item.Value,
				Labels:    item.Labels,
			})
		}
	}
	return flat
}

// RowMerger rebuilds rows from the cell chunks of a ReadRows stream. Row key, family
// and qualifier are only sent when they change, and a value may be split over several
// chunks.
type RowMerger struct {
	row       bigtable.Row
	key       string
	family    string
	qualifier string
	cell      bigtable.ReadItem
	splitting bool
	done      []rows.FlatRow
}

// Add folds one chunk into the row being built. A committed row is flattened and kept.
func (m *RowMerger) Add(c *btpb.ReadRowsResponse_CellChunk) error {
	if c.GetResetRow() {
		m.reset()
		return nil
	}

	if k := c.GetRowKey(); len(k) > 0 {
		if m.row != nil && string(k) != m.key {
			return fmt.Errorf("%w: row %q started before %q was committed", errMalformedChunk, k, m.key)
		}
		if m.row == nil {
			m.key = string(k)
			m.row = bigtable.Row{}
		}
	}
	if m.row == nil {
		return fmt.Errorf("%w: no row key", errMalformedChunk)
	}

	if !m.splitting {
		if f := c.GetFamilyName(); f != nil {
			m.family = f.GetValue()
		}
		if q := c.GetQualifier(); q != nil {
			m.qualifier = string(q.GetValue())
		}
		if m.family == "" {
			return fmt.Errorf("%w: row %q has a cell without family", errMalformedChunk, m.key)
		}
		m.cell = bigtable.ReadItem{
			Row:       m.key,
			Column:    m.family + ":" + m.qualifier,
			Timestamp: bigtable.Timestamp(c.GetTimestampMicros()),
			Labels:    c.GetLabels(),
		}
	}
	m.cell.Value = append(m.cell.Value, c.GetValue()...)

	m.splitting = c.GetValueSize() > 0
	if !m.splitting {
		m.row[m.family] = append(m.row[m.family], m.cell)
		m.cell = bigtable.ReadItem{}
	}

	if c.GetCommitRow() {
		if m.splitting {
			return fmt.Errorf("%w: row %q committed in the middle of a value", errMalformedChunk, m.key)
		}
		m.done = append(m.done, FlatRow(m.row))
		m.reset()
	}
	return nil
}

// Rows returns every committed row. A row left open means the stream ended early.
func (m *RowMerger) Rows() ([]rows.FlatRow, error) {
	if m.row != nil {
		return nil, fmt.Errorf("%w: row %q was never committed", errMalformedChunk, m.key)
	}
	return m.done, nil
}

func (m *RowMerger) reset() {
	m.row = nil
	m.key = ""
	m.family = ""
	m.qualifier = ""
	m.cell = bigtable.ReadItem{}
	m.splitting = false
}
