package app

import (
	"context"
	"errors"
	"fmt"
	"github.com/rs/zerolog/log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"
)

//go:generate mockgen -destination=./app_mock.go -package=app -source=app.go

// Dependency is something the application starts before doing any work and stops on the
// way out.
type Dependency interface {
	// Start must not block. Long-running work belongs in a goroutine owned by the dependency.
	Start() error
	// Stop releases whatever Start acquired.
	Stop() error
	// Name is used for logging only.
	Name() string
}

// Task is the work an application runs once its dependencies are up.
type Task func(ctx context.Context) error

type App struct {
	serviceName string
	deps        []Dependency
	// runCalled allows Run or Execute to be called once
	runCalled   *atomic.Bool
	stopTimeout time.Duration
	signals     []os.Signal
}

type Config struct {
	ServiceName string
	StopTimeout time.Duration
}

func (c *Config) validate() error {
	var errs []error
	if c.ServiceName == "" {
		errs = append(errs, errors.New("service name is required"))
	}
	if c.StopTimeout <= 0 {
		errs = append(errs, errors.New("stop timeout is required"))
	}
	return errors.Join(errs...)
}

// CreateApp creates a new application with the provided dependencies. They are started
// in order and stopped in reverse order.
func CreateApp(cfg *Config, deps ...Dependency) (*App, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &App{
		serviceName: cfg.ServiceName,
		deps:        deps,
		stopTimeout: cfg.StopTimeout,
		runCalled:   &atomic.Bool{},
		signals:     []os.Signal{os.Interrupt, syscall.SIGTERM},
	}, nil
}

// Run starts every dependency and blocks until ctx is cancelled or the process is
// signalled, then stops them.
func (a *App) Run(ctx context.Context) error {
	return a.Execute(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		log.Info().Msg("Shutdown requested for " + a.serviceName)
		return nil
	})
}

// Execute starts every dependency, runs task and stops the dependencies once task
// returns. A signal cancels the context handed to task.
func (a *App) Execute(ctx context.Context, task Task) error {
	if !a.runCalled.CompareAndSwap(false, true) {
		return errors.New("run has already been called")
	}

	ctx, stopSignals := signal.NotifyContext(ctx, a.signals...)
	defer stopSignals()

	started, err := a.start()
	if err != nil {
		return errors.Join(err, a.stop(started))
	}

	taskErr := a.runTask(ctx, task)
	return errors.Join(taskErr, a.stop(started))
}

func (a *App) start() (int, error) {
	for i, dep := range a.deps {
		log.Info().Msg("Starting dependency: " + dep.Name())
		if err := dep.Start(); err != nil {
			return i, fmt.Errorf("failure in Start() for dependency %s: %w", dep.Name(), err)
		}
	}
	return len(a.deps), nil
}

func (a *App) runTask(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", a.serviceName, r)
		}
	}()
	return task(ctx)
}

// stop stops the first n dependencies in reverse order. It gives up waiting after the
// stop timeout.
func (a *App) stop(n int) error {
	done := make(chan error, 1)
	go func() {
		var errs []error
		for i := n - 1; i >= 0; i-- {
			dep := a.deps[i]
			log.Info().Msg("Stopping dependency: " + dep.Name())
			if err := dep.Stop(); err != nil {
				errs = append(errs, fmt.Errorf("failure in Stop() for dependency %s: %w", dep.Name(), err))
			}
		}
		done <- errors.Join(errs...)
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(a.stopTimeout):
		return fmt.Errorf("%s: dependencies did not stop within %s", a.serviceName, a.stopTimeout)
	}
}
