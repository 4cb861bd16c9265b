package fixture

import (
	btpb "cloud.google.com/go/bigtable/apiv2/bigtablepb"
	"embed"
	"errors"
	"fmt"
	"google.golang.org/protobuf/encoding/prototext"
	"os"
	"path"
)

const (
	dataDir = "data"

	// MutationsFile is the bundled MutateRowsRequest in protobuf text format.
	MutationsFile = "test-data.pb"
	// RequestFile is the bundled ReadRowsRequest in protobuf text format.
	RequestFile = "test-request.pb"
)

//go:embed data/*.pb
var bundled embed.FS

// Set holds the raw text of one mutation batch and one read request. Every accessor
// decodes a fresh message so callers can stamp table names without sharing state.
type Set struct {
	mutations []byte
	request   []byte
}

type Config struct {
	// MutationsPath replaces the bundled mutation batch when set.
	MutationsPath string
	// RequestPath replaces the bundled read request when set.
	RequestPath string
}

// New returns the bundled fixtures, with any configured file overriding its
// counterpart.
func New(cfg *Config) (*Set, error) {
	mutations, err := load(cfg.MutationsPath, MutationsFile)
	if err != nil {
		return nil, err
	}
	request, err := load(cfg.RequestPath, RequestFile)
	if err != nil {
		return nil, err
	}
	return FromBytes(mutations, request), nil
}

// FromBytes builds a Set from text-format messages held in memory.
func FromBytes(mutations, request []byte) *Set {
	return &Set{
		mutations: mutations,
		request:   request,
	}
}

func load(override, name string) ([]byte, error) {
	if override != "" {
		b, err := os.ReadFile(override)
		if err != nil {
			return nil, fmt.Errorf("failed to read fixture %s: %w", override, err)
		}
		return b, nil
	}

	b, err := bundled.ReadFile(path.Join(dataDir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read bundled fixture %s: %w", name, err)
	}
	return b, nil
}

// MutateRows decodes the mutation batch and points it at tableName.
func (s *Set) MutateRows(tableName string) (*btpb.MutateRowsRequest, error) {
	if tableName == "" {
		return nil, errors.New("table name is required")
	}

	req := &btpb.MutateRowsRequest{}
	if err := prototext.Unmarshal(s.mutations, req); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", MutationsFile, err)
	}
	req.TableName = tableName
	return req, nil
}

// ReadRows decodes the read request and points it at tableName.
func (s *Set) ReadRows(tableName string) (*btpb.ReadRowsRequest, error) {
	if tableName == "" {
		return nil, errors.New("table name is required")
	}

	req := &btpb.ReadRowsRequest{}
	if err := prototext.Unmarshal(s.request, req); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", RequestFile, err)
	}
	req.TableName = tableName
	return req, nil
}
