package repro

import (
	btpb "cloud.google.com/go/bigtable/apiv2/bigtablepb"
	"context"
	"errors"
	"github.com/google/uuid"
	"github.com/litetable/bigtable-repro/internal/loader"
	"github.com/litetable/bigtable-repro/internal/rows"
	"github.com/litetable/bigtable-repro/internal/validate"
	"github.com/rs/zerolog"
)

//go:generate mockgen -destination=repro_mock.go -package=repro -source=repro.go

type provisioner interface {
	Reset(ctx context.Context) error
}

type fixtures interface {
	MutateRows(tableName string) (*btpb.MutateRowsRequest, error)
	ReadRows(tableName string) (*btpb.ReadRowsRequest, error)
}

type bulkLoader interface {
	Load(ctx context.Context, req *btpb.MutateRowsRequest) (*loader.Result, error)
}

type rowsReader interface {
	Read(ctx context.Context, req *btpb.ReadRowsRequest) ([]rows.FlatRow, error)
}

type checker interface {
	Check(ctx context.Context, results []rows.FlatRow) *validate.Report
}

// Runner resets the table, loads the mutation fixture, runs the read fixture and
// checks what came back, in that order.
type Runner struct {
	provisioner  provisioner
	fixtures     fixtures
	loader       bulkLoader
	reader       rowsReader
	checker      checker
	tableName    string
	expectedRows int
}

type Config struct {
	Provisioner provisioner
	Fixtures    fixtures
	Loader      bulkLoader
	Reader      rowsReader
	Checker     checker
	// TableName is the fully qualified name stamped into both fixtures.
	TableName string
	// ExpectedRows, when positive, is the row count the read should return.
	ExpectedRows int
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Provisioner == nil {
		errGrp = append(errGrp, errors.New("provisioner is required"))
	}
	if c.Fixtures == nil {
		errGrp = append(errGrp, errors.New("fixtures are required"))
	}
	if c.Loader == nil {
		errGrp = append(errGrp, errors.New("loader is required"))
	}
	if c.Reader == nil {
		errGrp = append(errGrp, errors.New("reader is required"))
	}
	if c.Checker == nil {
		errGrp = append(errGrp, errors.New("checker is required"))
	}
	if c.TableName == "" {
		errGrp = append(errGrp, errors.New("table name is required"))
	}
	if c.ExpectedRows < 0 {
		errGrp = append(errGrp, errors.New("expected rows cannot be negative"))
	}
	return errors.Join(errGrp...)
}

func New(cfg *Config) (*Runner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Runner{
		provisioner:  cfg.Provisioner,
		fixtures:     cfg.Fixtures,
		loader:       cfg.Loader,
		reader:       cfg.Reader,
		checker:      cfg.Checker,
		tableName:    cfg.TableName,
		expectedRows: cfg.ExpectedRows,
	}, nil
}

// Result is everything a single run observed.
type Result struct {
	RunID  string
	Loaded *loader.Result
	Rows   []rows.FlatRow
	Report *validate.Report
}

// Run executes one repro. Anomalies in the data end up in the report; only failures
// to talk to the backend or to read the fixtures are returned.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	res := &Result{RunID: uuid.NewString()}

	logger := zerolog.Ctx(ctx).With().Str("run_id", res.RunID).Logger()
	ctx = logger.WithContext(ctx)

	logger.Info().Str("table", r.tableName).Msg("Starting repro run")

	if err := r.provisioner.Reset(ctx); err != nil {
		return nil, newError(errProvision, err, "table %s", r.tableName)
	}

	mutations, err := r.fixtures.MutateRows(r.tableName)
	if err != nil {
		return nil, newError(errFixture, err, "mutations")
	}
	if res.Loaded, err = r.loader.Load(ctx, mutations); err != nil {
		return nil, newError(errLoad, err, "%d entries", len(mutations.GetEntries()))
	}

	request, err := r.fixtures.ReadRows(r.tableName)
	if err != nil {
		return nil, newError(errFixture, err, "read request")
	}
	if res.Rows, err = r.reader.Read(ctx, request); err != nil {
		return nil, newError(errRead, err, "")
	}

	logger.Info().Msgf("read %d rows", len(res.Rows))
	if r.expectedRows > 0 && len(res.Rows) != r.expectedRows {
		logger.Warn().
			Int("expected", r.expectedRows).
			Int("actual", len(res.Rows)).
			Msg("Row count differs from the expected count")
	}

	res.Report = r.checker.Check(ctx, res.Rows)
	logger.Info().
		Int("total", res.Report.Total).
		Int("valid", res.Report.Valid).
		Int("missing", len(res.Report.Missing)).
		Int("out_of_range", len(res.Report.OutOfRange)).
		Msg("Repro run finished")

	return res, nil
}
