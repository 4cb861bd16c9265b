package repro

import (
	"bytes"
	btpb "cloud.google.com/go/bigtable/apiv2/bigtablepb"
	"context"
	"errors"
	"github.com/litetable/bigtable-repro/internal/loader"
	"github.com/litetable/bigtable-repro/internal/rows"
	"github.com/litetable/bigtable-repro/internal/validate"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"testing"
)

const tableName = "projects/p/instances/i/tables/t"

type mocks struct {
	provisioner *Mockprovisioner
	fixtures    *Mockfixtures
	loader      *MockbulkLoader
	reader      *MockrowsReader
	checker     *Mockchecker
}

func newMocks(ctrl *gomock.Controller) *mocks {
	return &mocks{
		provisioner: NewMockprovisioner(ctrl),
		fixtures:    NewMockfixtures(ctrl),
		loader:      NewMockbulkLoader(ctrl),
		reader:      NewMockrowsReader(ctrl),
		checker:     NewMockchecker(ctrl),
	}
}

func (m *mocks) config(expected int) *Config {
	return &Config{
		Provisioner:  m.provisioner,
		Fixtures:     m.fixtures,
		Loader:       m.loader,
		Reader:       m.reader,
		Checker:      m.checker,
		TableName:    tableName,
		ExpectedRows: expected,
	}
}

func TestNew(t *testing.T) {
	_, err := New(&Config{ExpectedRows: -1})
	require.EqualError(t, err, "provisioner is required\nfixtures are required\nloader is required\n"+
		"reader is required\nchecker is required\ntable name is required\nexpected rows cannot be negative")
}

func TestRunner_Run(t *testing.T) {
	mutations := &btpb.MutateRowsRequest{TableName: tableName, Entries: []*btpb.MutateRowsRequest_Entry{{}}}
	request := &btpb.ReadRowsRequest{TableName: tableName}
	twoRows := []rows.FlatRow{{Key: "r1"}, {Key: "r2"}}
	report := &validate.Report{Total: 2, Valid: 2}
	denied := status.Error(codes.PermissionDenied, "denied")

	tests := map[string]struct {
		expected  int
		mockSetup func(m *mocks)
		sentinel  error
		logs      []string
		noLogs    []string
	}{
		"full run": {
			expected: 2,
			mockSetup: func(m *mocks) {
				gomock.InOrder(
					m.provisioner.EXPECT().Reset(gomock.Any()).Return(nil),
					m.fixtures.EXPECT().MutateRows(tableName).Return(mutations, nil),
					m.loader.EXPECT().Load(gomock.Any(), mutations).Return(&loader.Result{Entries: 1}, nil),
					m.fixtures.EXPECT().ReadRows(tableName).Return(request, nil),
					m.reader.EXPECT().Read(gomock.Any(), request).Return(twoRows, nil),
					m.checker.EXPECT().Check(gomock.Any(), twoRows).Return(report),
				)
			},
			logs:   []string{"read 2 rows", `"run_id":"`, "Repro run finished"},
			noLogs: []string{"Row count differs"},
		},
		"row count mismatch is only a warning": {
			expected: 12,
			mockSetup: func(m *mocks) {
				m.provisioner.EXPECT().Reset(gomock.Any()).Return(nil)
				m.fixtures.EXPECT().MutateRows(tableName).Return(mutations, nil)
				m.loader.EXPECT().Load(gomock.Any(), mutations).Return(&loader.Result{Entries: 1}, nil)
				m.fixtures.EXPECT().ReadRows(tableName).Return(request, nil)
				m.reader.EXPECT().Read(gomock.Any(), request).Return(twoRows, nil)
				m.checker.EXPECT().Check(gomock.Any(), twoRows).Return(report)
			},
			logs: []string{"Row count differs", `"expected":12`, `"actual":2`},
		},
		"no expectation skips the comparison": {
			mockSetup: func(m *mocks) {
				m.provisioner.EXPECT().Reset(gomock.Any()).Return(nil)
				m.fixtures.EXPECT().MutateRows(tableName).Return(mutations, nil)
				m.loader.EXPECT().Load(gomock.Any(), mutations).Return(&loader.Result{Entries: 1}, nil)
				m.fixtures.EXPECT().ReadRows(tableName).Return(request, nil)
				m.reader.EXPECT().Read(gomock.Any(), request).Return(nil, nil)
				m.checker.EXPECT().Check(gomock.Any(), gomock.Nil()).Return(&validate.Report{})
			},
			logs:   []string{"read 0 rows"},
			noLogs: []string{"Row count differs"},
		},
		"provision fails": {
			mockSetup: func(m *mocks) {
				m.provisioner.EXPECT().Reset(gomock.Any()).Return(denied)
			},
			sentinel: errProvision,
		},
		"mutation fixture fails": {
			mockSetup: func(m *mocks) {
				m.provisioner.EXPECT().Reset(gomock.Any()).Return(nil)
				m.fixtures.EXPECT().MutateRows(tableName).Return(nil, errors.New("bad text"))
			},
			sentinel: errFixture,
		},
		"load fails": {
			mockSetup: func(m *mocks) {
				m.provisioner.EXPECT().Reset(gomock.Any()).Return(nil)
				m.fixtures.EXPECT().MutateRows(tableName).Return(mutations, nil)
				m.loader.EXPECT().Load(gomock.Any(), mutations).Return(nil, denied)
			},
			sentinel: errLoad,
		},
		"request fixture fails": {
			mockSetup: func(m *mocks) {
				m.provisioner.EXPECT().Reset(gomock.Any()).Return(nil)
				m.fixtures.EXPECT().MutateRows(tableName).Return(mutations, nil)
				m.loader.EXPECT().Load(gomock.Any(), mutations).Return(&loader.Result{Entries: 1}, nil)
				m.fixtures.EXPECT().ReadRows(tableName).Return(nil, errors.New("bad text"))
			},
			sentinel: errFixture,
		},
		"read fails": {
			mockSetup: func(m *mocks) {
				m.provisioner.EXPECT().Reset(gomock.Any()).Return(nil)
				m.fixtures.EXPECT().MutateRows(tableName).Return(mutations, nil)
				m.loader.EXPECT().Load(gomock.Any(), mutations).Return(&loader.Result{Entries: 1}, nil)
				m.fixtures.EXPECT().ReadRows(tableName).Return(request, nil)
				m.reader.EXPECT().Read(gomock.Any(), request).Return(nil, denied)
			},
			sentinel: errRead,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			tc.mockSetup(m)

			var buf bytes.Buffer
			ctx := zerolog.New(&buf).WithContext(context.Background())

			r, err := New(m.config(tc.expected))
			req.NoError(err)

			got, err := r.Run(ctx)
			if tc.sentinel != nil {
				req.Error(err)
				req.Nil(got)
				req.ErrorIs(err, tc.sentinel)

				var stepErr *Error
				req.ErrorAs(err, &stepErr)
				return
			}

			req.NoError(err)
			req.NotEmpty(got.RunID)
			req.NotNil(got.Loaded)
			req.NotNil(got.Report)
			for _, l := range tc.logs {
				req.Contains(buf.String(), l)
			}
			for _, l := range tc.noLogs {
				req.NotContains(buf.String(), l)
			}
		})
	}
}

func TestRunner_RunKeepsCause(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	m.provisioner.EXPECT().Reset(gomock.Any()).Return(status.Error(codes.Unavailable, "down"))

	r, err := New(m.config(0))
	require.NoError(t, err)

	_, err = r.Run(context.Background())
	require.Equal(t, codes.Unavailable, status.Code(err))
	require.Contains(t, err.Error(), "table provisioning failed: table "+tableName)
}
