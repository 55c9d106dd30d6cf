package app

import (
	"fmt"

	"github.com/bnema/zerowrap"

	"habitat/internal/adapters/out/docker"
	"habitat/internal/boundaries/in"
	"habitat/internal/boundaries/out"
	containerusecase "habitat/internal/usecase/container"
)

// Options selects how the kernel is built.
type Options struct {
	ConfigPath string
	Verbose    bool             // forces the debug log level
	Progress   out.ProgressSink // receives build output; nil discards it
}

// Kernel provides in-process service access for CLI execution.
// Building it does not contact the engine.
type Kernel struct {
	cfg          Config
	log          zerowrap.Logger
	runtime      *docker.Runtime
	containerSvc in.ContainerService
	cleanup      func()
}

// NewKernel loads configuration, initializes logging and wires the container service.
func NewKernel(opts Options) (*Kernel, error) {
	_, cfg, err := initConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		cfg.Logging.Level = "debug"
	}

	log, cleanup, err := initLogger(cfg)
	if err != nil {
		return nil, err
	}
	if cleanup == nil {
		cleanup = func() {}
	}

	runtime, err := docker.NewRuntime(docker.Config{
		Host:       cfg.Engine.Host,
		APIVersion: cfg.Engine.APIVersion,
	})
	if err != nil {
		cleanup()
		return nil, log.WrapErr(err, "failed to create Docker runtime")
	}

	containerSvc := containerusecase.NewService(runtime, opts.Progress, log, containerusecase.Config{
		DockerSocket:    cfg.Provision.DockerSocket,
		Display:         cfg.Provision.Display,
		StopTimeout:     cfg.Provision.StopTimeout,
		CompressContext: cfg.Build.CompressContext,
	})

	log.Debug().
		Str("engine_host", cfg.Engine.Host).
		Str("container", cfg.Container.Name).
		Msg("kernel initialized")

	return &Kernel{
		cfg:          cfg,
		log:          log,
		runtime:      runtime,
		containerSvc: containerSvc,
		cleanup:      cleanup,
	}, nil
}

// Config returns the loaded configuration.
func (k *Kernel) Config() Config {
	return k.cfg
}

// Logger returns the application logger.
func (k *Kernel) Logger() zerowrap.Logger {
	return k.log
}

// Container returns the container service.
func (k *Kernel) Container() in.ContainerService {
	return k.containerSvc
}

// Close releases the engine client and flushes log files.
func (k *Kernel) Close() error {
	defer k.cleanup()
	if err := k.runtime.Close(); err != nil {
		return fmt.Errorf("failed to close Docker client: %w", err)
	}
	return nil
}
