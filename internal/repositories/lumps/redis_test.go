package lumps_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
	"github.com/edge-classic/EDGE-classic-sub008/internal/redis"
	"github.com/edge-classic/EDGE-classic-sub008/internal/repositories/lumps"
	"github.com/edge-classic/EDGE-classic-sub008/internal/testutils"
)

const testRunID = "run_1"

var testCreatedAt = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

func testRun() *lumps.Run {
	return lumps.NewRun(testRunID, testCreatedAt, []output.Lump{
		{Kind: output.LumpThings, Name: "DDFTHING", Text: "<THINGS>\n\n[IMP:3001]\nSPAWNHEALTH = 90;\n\n"},
		{Kind: output.LumpLanguage, Name: "DDFLANG", Text: "<LANGUAGES>\n\n[ENGLISH]\nGotClip = \"Ammo!\";\n\n"},
	})
}

type RedisLumpsTestSuite struct {
	suite.Suite
	client redis.Client
	mr     *miniredis.Miniredis
	repo   lumps.Repository
	ctx    context.Context
}

func TestRedisLumpsSuite(t *testing.T) {
	suite.Run(t, new(RedisLumpsTestSuite))
}

func (s *RedisLumpsTestSuite) SetupTest() {
	s.client, s.mr = testutils.CreateTestRedisClient(s.T())
	s.ctx = context.Background()

	repo, err := lumps.NewRedis(&lumps.RedisConfig{
		Client:    s.client,
		KeyPrefix: "dehconv:",
		TTL:       time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisLumpsTestSuite) TestNewRedis() {
	testCases := []struct {
		name    string
		config  *lumps.RedisConfig
		wantErr bool
	}{
		{name: "valid config", config: &lumps.RedisConfig{Client: s.client}},
		{name: "nil config", config: nil, wantErr: true},
		{name: "nil client", config: &lumps.RedisConfig{}, wantErr: true},
		{name: "negative ttl", config: &lumps.RedisConfig{Client: s.client, TTL: -time.Second}, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := lumps.NewRedis(tc.config)
			if tc.wantErr {
				s.Error(err)
				s.True(errors.IsInvalidArgument(err))
				s.Nil(repo)
			} else {
				s.NoError(err)
				s.NotNil(repo)
			}
		})
	}
}

func (s *RedisLumpsTestSuite) TestSaveAndLoad() {
	out, err := s.repo.Save(s.ctx, &lumps.SaveInput{Run: testRun()})
	s.Require().NoError(err)
	s.Equal("dehconv:run:run_1", out.Location)
	s.True(s.mr.Exists("dehconv:run:run_1"))
	s.Equal(time.Hour, s.mr.TTL("dehconv:run:run_1"))

	loaded, err := s.repo.Load(s.ctx, &lumps.LoadInput{ID: testRunID})
	s.Require().NoError(err)
	s.Equal(testRun(), loaded.Run)
}

func (s *RedisLumpsTestSuite) TestSaveReplacesLumps() {
	_, err := s.repo.Save(s.ctx, &lumps.SaveInput{Run: testRun()})
	s.Require().NoError(err)

	smaller := lumps.NewRun(testRunID, testCreatedAt, []output.Lump{
		{Kind: output.LumpSounds, Name: "DDFSFX", Text: "<SOUNDS>\n\n"},
	})
	_, err = s.repo.Save(s.ctx, &lumps.SaveInput{Run: smaller})
	s.Require().NoError(err)

	loaded, err := s.repo.Load(s.ctx, &lumps.LoadInput{ID: testRunID})
	s.Require().NoError(err)
	s.Len(loaded.Run.Lumps, 1)
	_, ok := loaded.Run.Lump(output.LumpThings)
	s.False(ok)
}

func (s *RedisLumpsTestSuite) TestLoadErrors() {
	_, err := s.repo.Load(s.ctx, &lumps.LoadInput{ID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Load(s.ctx, &lumps.LoadInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisLumpsTestSuite) TestLoadExpired() {
	_, err := s.repo.Save(s.ctx, &lumps.SaveInput{Run: testRun()})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Hour)

	_, err = s.repo.Load(s.ctx, &lumps.LoadInput{ID: testRunID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisLumpsTestSuite) TestLoadDetectsTampering() {
	_, err := s.repo.Save(s.ctx, &lumps.SaveInput{Run: testRun()})
	s.Require().NoError(err)

	s.mr.HSet("dehconv:run:run_1", "lump:DDFTHING", "<THINGS>\n\n")

	_, err = s.repo.Load(s.ctx, &lumps.LoadInput{ID: testRunID})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Equal(testRunID, errors.GetMeta(err)["run_id"])
}

func (s *RedisLumpsTestSuite) TestSaveRejectsBadRun() {
	_, err := s.repo.Save(s.ctx, &lumps.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, &lumps.SaveInput{Run: &lumps.Run{}})
	s.True(errors.IsInvalidArgument(err))
}
