package session

import (
	"cloud.google.com/go/bigtable"
	btpb "cloud.google.com/go/bigtable/apiv2/bigtablepb"
	"context"
	"errors"
	"fmt"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"strings"
)

const maxMsgSize = 256 * 1024 * 1024 // 256 MiB

// Session is one plaintext connection shared by the admin client and the raw data client.
type Session struct {
	conn     *grpc.ClientConn
	admin    *bigtable.AdminClient
	data     btpb.BigtableClient
	project  string
	instance string
}

type Config struct {
	// Address is the host:port of the emulator or service.
	Address   string
	Project   string
	Instance  string
	UserAgent string
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Address == "" {
		errGrp = append(errGrp, errors.New("address is required"))
	}
	if c.Project == "" {
		errGrp = append(errGrp, errors.New("project is required"))
	}
	if c.Instance == "" {
		errGrp = append(errGrp, errors.New("instance is required"))
	}
	return errors.Join(errGrp...)
}

// Open dials the target without TLS or credentials and builds both clients on top of
// the same connection.
func Open(ctx context.Context, cfg *Config) (*Session, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(maxMsgSize),
			grpc.MaxCallSendMsgSize(maxMsgSize)),
	}
	if cfg.UserAgent != "" {
		dialOpts = append(dialOpts, grpc.WithUserAgent(cfg.UserAgent))
	}

	conn, err := grpc.NewClient(cfg.Address, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection to %s: %w", cfg.Address, err)
	}

	admin, err := bigtable.NewAdminClient(ctx, cfg.Project, cfg.Instance,
		option.WithGRPCConn(conn))
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create admin client: %w", err)
	}

	log.Debug().Msgf("Session open: %s (project=%s instance=%s)", cfg.Address, cfg.Project,
		cfg.Instance)

	return &Session{
		conn:     conn,
		admin:    admin,
		data:     btpb.NewBigtableClient(conn),
		project:  cfg.Project,
		instance: cfg.Instance,
	}, nil
}

// Admin returns the table admin client.
func (s *Session) Admin() *bigtable.AdminClient {
	return s.admin
}

// Data returns the raw data-plane client. Requests sent through it reach the backend
// exactly as built, table name included.
func (s *Session) Data() btpb.BigtableClient {
	return s.data
}

// InstanceName is the fully qualified instance resource name.
func (s *Session) InstanceName() string {
	return fmt.Sprintf("projects/%s/instances/%s", s.project, s.instance)
}

// TableName is the fully qualified resource name of the table id.
func (s *Session) TableName(id string) string {
	return s.InstanceName() + "/tables/" + id
}

// Close shuts down the admin client and the connection. The admin client closes the
// shared connection itself, so a "connection is closing" status is not an error here.
func (s *Session) Close() error {
	var errGrp []error
	for _, err := range []error{s.admin.Close(), s.conn.Close()} {
		if err != nil && status.Code(err) != codes.Canceled {
			errGrp = append(errGrp, err)
		}
	}
	return errors.Join(errGrp...)
}

// ParseTableID extracts the table id from
// projects/<project>/instances/<instance>/tables/<table>.
func ParseTableID(tableName string) (string, error) {
	paths := strings.Split(tableName, "/")
	if len(paths) != 6 || paths[0] != "projects" || paths[2] != "instances" ||
		paths[4] != "tables" {
		return "", fmt.Errorf("malformed table name %q", tableName)
	}
	if paths[5] == "" {
		return "", fmt.Errorf("table name %q has no table id", tableName)
	}
	return paths[5], nil
}
