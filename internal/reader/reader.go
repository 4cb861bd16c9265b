package reader

import (
	btpb "cloud.google.com/go/bigtable/apiv2/bigtablepb"
	"context"
	"errors"
	"fmt"
	"github.com/litetable/bigtable-repro/internal/convert"
	"github.com/litetable/bigtable-repro/internal/rows"
	"github.com/litetable/bigtable-repro/internal/session"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"io"
)

//go:generate mockgen -destination=reader_mock.go -package=reader -source=reader.go

type rowStreamer interface {
	ReadRows(ctx context.Context, in *btpb.ReadRowsRequest, opts ...grpc.CallOption) (btpb.Bigtable_ReadRowsClient, error)
}

// Reader sends a ReadRowsRequest as built and keeps every row in memory.
type Reader struct {
	client rowStreamer
}

type Config struct {
	Client rowStreamer
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Client == nil {
		errGrp = append(errGrp, errors.New("data client is required"))
	}
	return errors.Join(errGrp...)
}

func New(cfg *Config) (*Reader, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Reader{client: cfg.Client}, nil
}

// Read executes the request against the table its name points at. Row set, filter,
// limit and direction reach the backend untouched.
func (r *Reader) Read(ctx context.Context, req *btpb.ReadRowsRequest) ([]rows.FlatRow, error) {
	table, err := session.ParseTableID(req.GetTableName())
	if err != nil {
		return nil, err
	}

	stream, err := r.client.ReadRows(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from %s: %w", table, err)
	}

	merger := &convert.RowMerger{}
	for {
		msg, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read rows from %s: %w", table, err)
		}
		for _, c := range msg.GetChunks() {
			if err := merger.Add(c); err != nil {
				return nil, fmt.Errorf("failed to read rows from %s: %w", table, err)
			}
		}
	}

	out, err := merger.Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from %s: %w", table, err)
	}

	zerolog.Ctx(ctx).Debug().Str("table", table).Int("rows", len(out)).Msg("Rows read")
	return out, nil
}
