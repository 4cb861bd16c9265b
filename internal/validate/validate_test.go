package validate

import (
	"bytes"
	"context"
	"github.com/litetable/bigtable-repro/internal/rows"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"strings"
	"testing"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func row(key string, cells ...rows.Cell) rows.FlatRow {
	return rows.FlatRow{Key: key, Cells: cells}
}

func d(val ...byte) rows.Cell {
	return rows.Cell{Family: "d", Qualifier: "1", Timestamp: 1000, Value: val}
}

func TestNew(t *testing.T) {
	_, err := New(&Config{})
	require.EqualError(t, err, "family is required\nat least one accepted value is required")

	v, err := New(&Config{Family: "d", Accepted: []byte{1, 2}})
	require.NoError(t, err)
	require.NotNil(t, v)
}

func TestValidator_Check(t *testing.T) {
	tests := map[string]struct {
		rows       []rows.FlatRow
		valid      int
		missing    []string
		outOfRange []string
		logs       []string
	}{
		"no rows": {},
		"accepted values": {
			rows:  []rows.FlatRow{row("r1", d(1)), row("r2", d(2))},
			valid: 2,
		},
		"only the first byte counts": {
			rows:  []rows.FlatRow{row("r1", d(2, 9, 9))},
			valid: 1,
		},
		"only the first cell of the family counts": {
			rows:       []rows.FlatRow{row("r1", d(7), d(1))},
			outOfRange: []string{"r1"},
			logs:       []string{`Found row FlatRow{key=\"r1\"`},
		},
		"value out of range": {
			rows:       []rows.FlatRow{row("r1", d(1)), row("r3", d(3))},
			valid:      1,
			outOfRange: []string{"r3"},
			logs:       []string{`Found row FlatRow{key=\"r3\"`},
		},
		"empty value": {
			rows:       []rows.FlatRow{row("r1", d())},
			outOfRange: []string{"r1"},
		},
		"missing family": {
			rows: []rows.FlatRow{
				row("r4", rows.Cell{Family: "c", Qualifier: "count", Value: []byte{1}}),
				row("r5"),
			},
			missing: []string{"r4", "r5"},
			logs:    []string{"Unable to find cell in results"},
		},
		"other families are skipped": {
			rows: []rows.FlatRow{
				row("r1", rows.Cell{Family: "c", Value: []byte{9}}, d(2)),
			},
			valid: 1,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)

			var buf bytes.Buffer
			ctx := zerolog.New(&buf).WithContext(context.Background())

			v, err := New(&Config{Family: "d", Accepted: []byte{1, 2}})
			req.NoError(err)

			report := v.Check(ctx, tc.rows)
			req.Equal(len(tc.rows), report.Total)
			req.Equal(tc.valid, report.Valid)
			req.Equal(tc.missing, report.Missing)

			var got []string
			for _, a := range report.OutOfRange {
				got = append(got, a.Row.Key)
			}
			req.Equal(tc.outOfRange, got)
			req.Equal(report.Total, report.Valid+len(report.Missing)+len(report.OutOfRange))
			req.Equal(len(tc.missing) == 0 && len(tc.outOfRange) == 0, report.Clean())

			for _, l := range tc.logs {
				req.Contains(buf.String(), l)
			}
		})
	}
}

func TestValidator_CheckLogsAnomaliesAsErrors(t *testing.T) {
	req := require.New(t)

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	v, err := New(&Config{Family: "d", Accepted: []byte{1, 2}})
	req.NoError(err)

	v.Check(ctx, []rows.FlatRow{
		row("r1", d(1)),
		row("r3", d(3)),
		row("r4"),
		row("r5", d()),
	})

	req.Equal(3, strings.Count(buf.String(), `"level":"error"`))
	req.NotContains(buf.String(), `"level":"warn"`)
}
