package emulator

import (
	"cloud.google.com/go/bigtable"
	"context"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"net"
	"testing"
)

func TestNew(t *testing.T) {
	tests := map[string]struct {
		cfg   *Config
		error string
		addr  string
	}{
		"invalid config": {
			cfg:   &Config{Port: -1},
			error: "host is required\ninvalid port: -1",
		},
		"valid config": {
			cfg:  &Config{Host: "localhost", Port: 9000},
			addr: "localhost:9000",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			got, err := New(test.cfg)
			if test.error != "" {
				req.Error(err)
				req.Nil(got)
				req.Equal(test.error, err.Error())
				return
			}

			req.NoError(err)
			req.Equal(test.addr, got.Addr())
		})
	}
}

func TestServer_Name(t *testing.T) {
	s := &Server{}
	require.Equal(t, "Bigtable Emulator", s.Name())
}

func TestServer_StartStop(t *testing.T) {
	req := require.New(t)

	s, err := New(&Config{Host: "127.0.0.1", Port: 0})
	req.NoError(err)

	req.NoError(s.Start())
	req.Error(s.Start(), "second start must fail")

	_, port, err := net.SplitHostPort(s.Addr())
	req.NoError(err)
	req.NotEqual("0", port)

	conn, err := grpc.NewClient(s.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	req.NoError(err)
	defer conn.Close()

	ctx := context.Background()
	admin, err := bigtable.NewAdminClient(ctx, "p", "i", option.WithGRPCConn(conn))
	req.NoError(err)
	req.NoError(admin.CreateTable(ctx, "reachable"))

	req.NoError(s.Stop())
	req.NoError(s.Stop(), "stop is idempotent")
}

func TestServer_StartAddressInUse(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()

	host, port, err := net.SplitHostPort(lis.Addr().String())
	require.NoError(t, err)

	s := &Server{address: net.JoinHostPort(host, port)}
	err = s.Start()
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to start emulator")
}
