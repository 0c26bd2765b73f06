package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/edge-classic/EDGE-classic-sub008/internal/config"
	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) write(body string) string {
	path := filepath.Join(s.dir, "dehconv.toml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o644))
	return path
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load("")
	s.Require().NoError(err)

	s.Equal(21, cfg.Conversion.DoomVersion)
	s.Equal("ddf_out", cfg.Output.Dir)
	s.Equal("dehconv:", cfg.Output.KeyPrefix)
	s.Equal(7*24*time.Hour, cfg.Output.TTL)
	s.False(cfg.Output.UseRedis())
	s.Equal("info", cfg.Logging.Level)
	s.Equal("console", cfg.Logging.Format)
}

func (s *ConfigTestSuite) TestFileOverridesDefaults() {
	path := s.write(`
[conversion]
doom_version = 2021

[output]
redis_addr = "localhost:6379"
ttl = "1h"

[logging]
format = "json"
`)

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.Equal(2021, cfg.Conversion.DoomVersion)
	s.True(cfg.Output.UseRedis())
	s.Equal("localhost:6379", cfg.Output.RedisAddr)
	s.Equal(time.Hour, cfg.Output.TTL)
	s.Equal("dehconv:", cfg.Output.KeyPrefix)
	s.Equal("json", cfg.Logging.Format)
	s.Equal("info", cfg.Logging.Level)
}

func (s *ConfigTestSuite) TestEnvOverridesFile() {
	path := s.write("[logging]\nlevel = \"warn\"\n")
	s.T().Setenv("DEHCONV_LOGGING_LEVEL", "debug")
	s.T().Setenv("DEHCONV_OUTPUT_DIR", "/tmp/ddf")
	s.T().Setenv("DEHCONV_CONVERSION_DOOM_VERSION", "19")

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.Equal("debug", cfg.Logging.Level)
	s.Equal("/tmp/ddf", cfg.Output.Dir)
	s.Equal(19, cfg.Conversion.DoomVersion)
}

func (s *ConfigTestSuite) TestLoadErrors() {
	s.Run("missing file", func() {
		_, err := config.Load(filepath.Join(s.dir, "nope.toml"))
		s.Error(err)
	})

	s.Run("bad toml", func() {
		_, err := config.Load(s.write("[output\n"))
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("bad env value", func() {
		s.T().Setenv("DEHCONV_OUTPUT_TTL", "soon")
		_, err := config.Load("")
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{"version too high", func(c *config.Config) { c.Conversion.DoomVersion = 3000 }, "conversion.doom_version"},
		{"no output dir", func(c *config.Config) { c.Output.Dir = "" }, "output.dir"},
		{"negative ttl", func(c *config.Config) { c.Output.TTL = -time.Second }, "output.ttl"},
		{"bad level", func(c *config.Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg, err := config.Load("")
			s.Require().NoError(err)

			tc.mutate(cfg)
			err = cfg.Validate()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.field)
		})
	}
}

func (s *ConfigTestSuite) TestRedisNeedsNoDir() {
	cfg, err := config.Load("")
	s.Require().NoError(err)

	cfg.Output.Dir = ""
	cfg.Output.RedisAddr = "localhost:6379"
	s.NoError(cfg.Validate())
}
