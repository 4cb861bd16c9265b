package loader

import (
	btpb "cloud.google.com/go/bigtable/apiv2/bigtablepb"
	"context"
	"errors"
	"fmt"
	"github.com/litetable/bigtable-repro/internal/session"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"io"
)

//go:generate mockgen -destination=loader_mock.go -package=loader -source=loader.go

var errEmptyBatch = errors.New("mutation batch has no entries")

type rowMutator interface {
	MutateRows(ctx context.Context, in *btpb.MutateRowsRequest, opts ...grpc.CallOption) (btpb.Bigtable_MutateRowsClient, error)
}

// Loader submits a MutateRowsRequest as built, to the table its name points at.
type Loader struct {
	client rowMutator
}

type Config struct {
	Client rowMutator
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Client == nil {
		errGrp = append(errGrp, errors.New("data client is required"))
	}
	return errors.Join(errGrp...)
}

func New(cfg *Config) (*Loader, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Loader{client: cfg.Client}, nil
}

// Result summarises a bulk load.
type Result struct {
	Entries   int
	RowErrors int
}

// Load sends the whole batch in one MutateRows call. Row-level failures are counted
// and logged; only a failure of the call itself is returned.
func (l *Loader) Load(ctx context.Context, req *btpb.MutateRowsRequest) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	entries := req.GetEntries()
	if len(entries) == 0 {
		return nil, errEmptyBatch
	}
	table, err := session.ParseTableID(req.GetTableName())
	if err != nil {
		return nil, err
	}

	stream, err := l.client.MutateRows(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to apply %d mutations to %s: %w", len(entries), table, err)
	}

	res := &Result{Entries: len(entries)}
	for {
		msg, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to apply %d mutations to %s: %w", len(entries), table, err)
		}

		for _, e := range msg.GetEntries() {
			code := codes.Code(e.GetStatus().GetCode())
			if code == codes.OK {
				continue
			}
			res.RowErrors++

			var row string
			if i := e.GetIndex(); i >= 0 && i < int64(len(entries)) {
				row = string(entries[i].GetRowKey())
			}
			logger.Warn().
				Err(status.Error(code, e.GetStatus().GetMessage())).
				Str("row", row).
				Msg("Row mutation failed")
		}
	}

	logger.Debug().
		Str("table", table).
		Int("entries", res.Entries).
		Int("row_errors", res.RowErrors).
		Msg("Mutations applied")
	return res, nil
}
