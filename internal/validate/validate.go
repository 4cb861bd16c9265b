package validate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/litetable/bigtable-repro/internal/rows"
	"github.com/rs/zerolog"
)

// Anomaly is a row whose checked cell holds an unexpected value.
type Anomaly struct {
	Row    rows.FlatRow
	Reason string
}

// Report is the outcome of checking a result set. Every row lands in exactly one of
// Valid, Missing or OutOfRange.
type Report struct {
	Total      int
	Valid      int
	Missing    []string
	OutOfRange []Anomaly
}

// Clean reports whether every row passed.
func (r *Report) Clean() bool {
	return len(r.Missing) == 0 && len(r.OutOfRange) == 0
}

// Validator checks the first cell of one family in every row against a set of
// accepted single-byte values.
type Validator struct {
	family   string
	accepted []byte
}

type Config struct {
	Family   string
	Accepted []byte
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Family == "" {
		errGrp = append(errGrp, errors.New("family is required"))
	}
	if len(c.Accepted) == 0 {
		errGrp = append(errGrp, errors.New("at least one accepted value is required"))
	}
	return errors.Join(errGrp...)
}

func New(cfg *Config) (*Validator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Validator{
		family:   cfg.Family,
		accepted: cfg.Accepted,
	}, nil
}

// Check inspects every row independently. Anomalies are logged and reported, never
// returned as errors.
func (v *Validator) Check(ctx context.Context, results []rows.FlatRow) *Report {
	logger := zerolog.Ctx(ctx)
	report := &Report{Total: len(results)}

	for _, row := range results {
		cell, ok := row.FirstInFamily(v.family)
		if !ok {
			logger.Error().Str("row", row.Key).Str("family", v.family).Msg("Unable to find cell in results")
			report.Missing = append(report.Missing, row.Key)
			continue
		}

		if len(cell.Value) == 0 {
			report.OutOfRange = append(report.OutOfRange, Anomaly{Row: row, Reason: "empty value"})
			logger.Error().Msgf("Found row %s", row)
			continue
		}

		if !bytes.Contains(v.accepted, cell.Value[:1]) {
			report.OutOfRange = append(report.OutOfRange, Anomaly{
				Row:    row,
				Reason: fmt.Sprintf("value %d not accepted", cell.Value[0]),
			})
			logger.Error().Msgf("Found row %s", row)
			continue
		}

		report.Valid++
	}

	return report
}
