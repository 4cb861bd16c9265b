package emulator

import (
	"cloud.google.com/go/bigtable/bttest"
	"errors"
	"fmt"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"net"
	"strconv"
	"sync"
)

const (
	serverName = "Bigtable Emulator"
	maxMsgSize = 256 * 1024 * 1024 // 256 MiB
)

// Server runs the in-memory Bigtable emulator as an app dependency.
type Server struct {
	mu      sync.Mutex
	address string
	opts    []grpc.ServerOption
	srv     *bttest.Server
}

type Config struct {
	Host string
	// Port 0 picks a free port; read it back with Addr after Start.
	Port int
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Host == "" {
		errGrp = append(errGrp, errors.New("host is required"))
	}
	if c.Port < 0 || c.Port > 65535 {
		errGrp = append(errGrp, fmt.Errorf("invalid port: %d", c.Port))
	}
	return errors.Join(errGrp...)
}

func New(cfg *Config) (*Server, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Server{
		address: net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		opts: []grpc.ServerOption{
			grpc.MaxRecvMsgSize(maxMsgSize),
			grpc.MaxSendMsgSize(maxMsgSize),
		},
	}, nil
}

// Start binds the listener and serves in the background. It does not block.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv != nil {
		return errors.New("emulator already started")
	}

	srv, err := bttest.NewServer(s.address, s.opts...)
	if err != nil {
		return fmt.Errorf("failed to start emulator on %s: %w", s.address, err)
	}
	s.srv = srv

	log.Info().Msgf("Cloud Bigtable emulator running on %s", srv.Addr)
	return nil
}

func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv == nil {
		return nil
	}
	log.Info().Msg("Stopping Bigtable emulator")
	s.srv.Close()
	s.srv = nil
	return nil
}

func (s *Server) Name() string {
	return serverName
}

// Addr is the address the emulator listens on, or the configured address before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv == nil {
		return s.address
	}
	return s.srv.Addr
}
