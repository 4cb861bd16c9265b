package provision

import (
	"cloud.google.com/go/bigtable"
	"context"
	"errors"
	"fmt"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"sort"
)

//go:generate mockgen -destination=provision_mock.go -package=provision -source=provision.go

type tableAdmin interface {
	DeleteTable(ctx context.Context, table string) error
	CreateTableFromConf(ctx context.Context, conf *bigtable.TableConf) error
	TableInfo(ctx context.Context, table string) (*bigtable.TableInfo, error)
}

// Provisioner resets the repro table to an empty table with a fixed set of families.
type Provisioner struct {
	admin    tableAdmin
	table    string
	families []string
}

type Config struct {
	Admin    tableAdmin
	Table    string
	Families []string
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Admin == nil {
		errGrp = append(errGrp, errors.New("admin client is required"))
	}
	if c.Table == "" {
		errGrp = append(errGrp, errors.New("table is required"))
	}
	if len(c.Families) == 0 {
		errGrp = append(errGrp, errors.New("at least one column family is required"))
	}
	return errors.Join(errGrp...)
}

func New(cfg *Config) (*Provisioner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Provisioner{
		admin:    cfg.Admin,
		table:    cfg.Table,
		families: cfg.Families,
	}, nil
}

// Reset deletes the table if it exists and creates it again. Any delete failure is
// treated as "did not exist". On create only AlreadyExists is absorbed.
func (p *Provisioner) Reset(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	if err := p.admin.DeleteTable(ctx, p.table); err != nil {
		logger.Debug().Err(err).Str("table", p.table).Msg("Delete table ignored")
	} else {
		logger.Debug().Str("table", p.table).Msg("Table deleted")
	}

	gc := make(map[string]bigtable.GCPolicy, len(p.families))
	for _, fam := range p.families {
		gc[fam] = bigtable.NoGcPolicy()
	}

	err := p.admin.CreateTableFromConf(ctx, &bigtable.TableConf{
		TableID:  p.table,
		Families: gc,
	})
	switch status.Code(err) {
	case codes.OK:
		logger.Debug().Str("table", p.table).Strs("families", p.families).Msg("Table created")
		return nil
	case codes.AlreadyExists:
		logger.Debug().Str("table", p.table).Msg("Table already exists")
		p.checkSchema(ctx)
		return nil
	default:
		return fmt.Errorf("failed to create table %s: %w", p.table, err)
	}
}

// checkSchema warns when a table we did not create carries different families. The
// table is still used as-is.
func (p *Provisioner) checkSchema(ctx context.Context) {
	logger := zerolog.Ctx(ctx)

	info, err := p.admin.TableInfo(ctx, p.table)
	if err != nil {
		logger.Warn().Err(err).Str("table", p.table).Msg("Unable to read existing table schema")
		return
	}

	if missing, extra := diff(p.families, info.Families); len(missing) > 0 || len(extra) > 0 {
		logger.Warn().
			Str("table", p.table).
			Strs("missing", missing).
			Strs("unexpected", extra).
			Msg("Existing table has a different schema")
	}
}

// diff returns the families wanted but not present, and present but not wanted.
func diff(want, got []string) (missing, extra []string) {
	have := make(map[string]bool, len(got))
	for _, f := range got {
		have[f] = true
	}
	wanted := make(map[string]bool, len(want))
	for _, f := range want {
		wanted[f] = true
		if !have[f] {
			missing = append(missing, f)
		}
	}
	for _, f := range got {
		if !wanted[f] {
			extra = append(extra, f)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return missing, extra
}
