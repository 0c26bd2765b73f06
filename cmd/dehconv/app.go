package main

import (
	"go.uber.org/zap"

	"github.com/edge-classic/EDGE-classic-sub008/internal/config"
	"github.com/edge-classic/EDGE-classic-sub008/internal/editscript"
	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	"github.com/edge-classic/EDGE-classic-sub008/internal/logging"
	orchestrator "github.com/edge-classic/EDGE-classic-sub008/internal/orchestrators/conversion"
	"github.com/edge-classic/EDGE-classic-sub008/internal/pkg/clock"
	"github.com/edge-classic/EDGE-classic-sub008/internal/pkg/idgen"
	redisclient "github.com/edge-classic/EDGE-classic-sub008/internal/redis"
	"github.com/edge-classic/EDGE-classic-sub008/internal/repositories/lumps"
	"github.com/edge-classic/EDGE-classic-sub008/internal/services/conversion"
)

// app holds the wired dependencies of one command.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	service conversion.Service
	cleanup []func()
}

// openApp is replaced in tests.
var openApp = newApp

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if redisAddr != "" {
		cfg.Output.RedisAddr = redisAddr
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid flags")
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: logger}
	a.cleanup = append(a.cleanup, func() { _ = logger.Sync() })

	repo, err := a.repository()
	if err != nil {
		a.close()
		return nil, err
	}

	orch, err := orchestrator.New(&orchestrator.Config{
		Repository: repo,
		IDGen:      idgen.NewUUID("run"),
		Clock:      clock.New(),
		Logger:     logger,
	})
	if err != nil {
		a.close()
		return nil, errors.Wrap(err, "failed to create orchestrator")
	}
	a.service = orch
	return a, nil
}

func (a *app) repository() (lumps.Repository, error) {
	if !a.cfg.Output.UseRedis() {
		a.log.Debug("storing runs on disk", zap.String("dir", a.cfg.Output.Dir))
		return lumps.NewDir(&lumps.DirConfig{Root: a.cfg.Output.Dir})
	}

	client, err := redisclient.NewClient(a.cfg.Output.RedisAddr, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}
	a.cleanup = append(a.cleanup, func() {
		if err := client.Close(); err != nil {
			a.log.Warn("failed to close redis client", zap.Error(err))
		}
	})

	a.log.Debug("storing runs in redis", zap.String("addr", a.cfg.Output.RedisAddr))
	return lumps.NewRedis(&lumps.RedisConfig{
		Client:    client,
		KeyPrefix: a.cfg.Output.KeyPrefix,
		TTL:       a.cfg.Output.TTL,
	})
}

// close runs cleanups in reverse order.
func (a *app) close() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
}

// loadScript decodes an edit script. The config version applies when the
// script names none and override is negative.
func (a *app) loadScript(path string, override int) (*editscript.Script, error) {
	script := &editscript.Script{}
	if path != "" {
		var err error
		script, err = editscript.DecodeFile(path)
		if err != nil {
			return nil, err
		}
	}

	switch {
	case override >= 0:
		script.Version = override
	case !script.HasVersion:
		script.Version = a.cfg.Conversion.DoomVersion
	}
	return script, nil
}
