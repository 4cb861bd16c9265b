package main

import (
	"context"
	"github.com/litetable/bigtable-repro/internal/app"
	"github.com/litetable/bigtable-repro/internal/config"
	"github.com/litetable/bigtable-repro/internal/emulator"
	"github.com/litetable/bigtable-repro/internal/fixture"
	"github.com/litetable/bigtable-repro/internal/loader"
	"github.com/litetable/bigtable-repro/internal/logger"
	"github.com/litetable/bigtable-repro/internal/provision"
	"github.com/litetable/bigtable-repro/internal/reader"
	"github.com/litetable/bigtable-repro/internal/repro"
	"github.com/litetable/bigtable-repro/internal/session"
	"github.com/litetable/bigtable-repro/internal/validate"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"os"
	"time"
)

const (
	serviceName = "Bigtable Repro"
	stopTimeout = 5 * time.Second

	defaultEmulatorHost = "127.0.0.1"
	defaultEmulatorPort = 8086
)

var (
	configPath       string
	embeddedEmulator bool
	emulatorHost     string
	emulatorPort     int
)

var rootCmd = &cobra.Command{
	Use:   "bigtable-repro",
	Short: "Reproduce a filtered ReadRows row count against a Bigtable backend",
	Long: `Reset a table, bulk load the bundled mutation fixture, run the bundled filtered
read and check the first cell of family "d" in every row.

Without a subcommand this is the same as "run".`,
	SilenceUsage: true,
	RunE:         runRepro,
}

var runCmd = &cobra.Command{
	Use:          "run",
	Short:        "Run the repro once",
	SilenceUsage: true,
	RunE:         runRepro,
}

var emulatorCmd = &cobra.Command{
	Use:   "emulator",
	Short: "Serve an in-memory Bigtable emulator until interrupted",
	RunE:  runEmulator,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (yaml, json or toml)")
	for _, cmd := range []*cobra.Command{rootCmd, runCmd} {
		cmd.Flags().BoolVar(&embeddedEmulator, "embedded-emulator", false,
			"Start an in-process emulator on host:port and run against it")
	}

	emulatorCmd.Flags().StringVar(&emulatorHost, "host", defaultEmulatorHost, "Host to listen on")
	emulatorCmd.Flags().IntVar(&emulatorPort, "port", defaultEmulatorPort, "Port to listen on")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(emulatorCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Repro failed")
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.New(configPath)
	if err != nil {
		return nil, err
	}
	if f := cmd.Flags().Lookup("embedded-emulator"); f != nil && f.Changed {
		cfg.EmbeddedEmulator = embeddedEmulator
	}
	if err = logger.Init(cfg.LogLevel, cfg.LogPretty); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runRepro(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	_, err = execute(cmd.Context(), cfg)
	return err
}

func runEmulator(cmd *cobra.Command, _ []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}

	srv, err := emulator.New(&emulator.Config{
		Host: emulatorHost,
		Port: emulatorPort,
	})
	if err != nil {
		return err
	}

	application, err := app.CreateApp(&app.Config{
		ServiceName: "Bigtable Emulator",
		StopTimeout: stopTimeout,
	}, srv)
	if err != nil {
		return err
	}
	return application.Run(cmd.Context())
}

// execute runs one repro, inside an embedded emulator when configured.
func execute(ctx context.Context, cfg *config.Config) (*repro.Result, error) {
	var (
		deps []app.Dependency
		emu  *emulator.Server
	)
	if cfg.EmbeddedEmulator {
		var err error
		emu, err = emulator.New(&emulator.Config{Host: cfg.Host, Port: cfg.Port})
		if err != nil {
			return nil, err
		}
		deps = append(deps, emu)
	}

	application, err := app.CreateApp(&app.Config{
		ServiceName: serviceName,
		StopTimeout: stopTimeout,
	}, deps...)
	if err != nil {
		return nil, err
	}

	var result *repro.Result
	err = application.Execute(ctx, func(ctx context.Context) error {
		addr := cfg.Address()
		if emu != nil {
			addr = emu.Addr()
		}

		var runErr error
		result, runErr = reproduce(ctx, cfg, addr)
		return runErr
	})
	return result, err
}

// reproduce wires a session to the repro steps and runs them once.
func reproduce(ctx context.Context, cfg *config.Config, addr string) (*repro.Result, error) {
	sess, err := session.Open(ctx, &session.Config{
		Address:   addr,
		Project:   cfg.Project,
		Instance:  cfg.Instance,
		UserAgent: cfg.UserAgent,
	})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := sess.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close session")
		}
	}()

	fixtures, err := fixture.New(&fixture.Config{
		MutationsPath: cfg.MutationsFixture,
		RequestPath:   cfg.RequestFixture,
	})
	if err != nil {
		return nil, err
	}

	prov, err := provision.New(&provision.Config{
		Admin:    sess.Admin(),
		Table:    cfg.Table,
		Families: cfg.Families,
	})
	if err != nil {
		return nil, err
	}

	bulk, err := loader.New(&loader.Config{Client: sess.Data()})
	if err != nil {
		return nil, err
	}
	rd, err := reader.New(&reader.Config{Client: sess.Data()})
	if err != nil {
		return nil, err
	}

	checker, err := validate.New(&validate.Config{
		Family:   cfg.CheckFamily,
		Accepted: cfg.AcceptedBytes(),
	})
	if err != nil {
		return nil, err
	}

	runner, err := repro.New(&repro.Config{
		Provisioner:  prov,
		Fixtures:     fixtures,
		Loader:       bulk,
		Reader:       rd,
		Checker:      checker,
		TableName:    sess.TableName(cfg.Table),
		ExpectedRows: cfg.ExpectedRows,
	})
	if err != nil {
		return nil, err
	}

	return runner.Run(ctx)
}
