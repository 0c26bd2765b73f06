package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "attack entry missing",
			expected: "NOT_FOUND: attack entry missing",
		},
		{
			name:     "resource exhausted error",
			code:     errors.CodeResourceExhausted,
			message:  "cast table full",
			expected: "RESOURCE_EXHAUSTED: cast table full",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWithEntity() {
	err := errors.NotFoundf("no attack for %s", "*IMP_FIREBALL").WithEntity("thing", 31)

	s.Assert().Equal("thing", err.Meta["entity"])
	s.Assert().Equal(31, err.Meta["id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to save lumps")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to save lumps", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.NotFound("run not found").WithMeta("run_id", "abc")
	wrapped := errors.Wrap(base, "failed to load run")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("abc", wrapped.Meta["run_id"])
	s.Assert().True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	base := fmt.Errorf("redis: nil")
	wrapped := errors.WrapWithCode(base, errors.CodeNotFound, "run not found")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Nil(errors.Wrap(nil, "nothing"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeInternal, "nothing"))
}

func (s *ErrorsTestSuite) TestIsMatchesCode() {
	err := errors.FailedPreconditionf("merge target %s missing", "*BRAIN_CUBE")
	s.Assert().True(errors.Is(err, errors.New(errors.CodeFailedPrecondition, "")))
	s.Assert().False(errors.Is(err, errors.New(errors.CodeNotFound, "")))
}

func (s *ErrorsTestSuite) TestIsFatal() {
	testCases := []struct {
		name  string
		err   error
		fatal bool
	}{
		{"nil", nil, false},
		{"out of range", errors.OutOfRangef("value %d", 5), false},
		{"unimplemented", errors.Unimplementedf("pointer %s", "A_Foo"), false},
		{"not found", errors.NotFound("attack"), true},
		{"resource exhausted", errors.ResourceExhaustedf("cast"), true},
		{"plain error", fmt.Errorf("boom"), true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.fatal, errors.IsFatal(tc.err))
		})
	}
}

func (s *ErrorsTestSuite) TestGetters() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal("", errors.GetMessage(nil))
	s.Assert().Nil(errors.GetMeta(nil))
	s.Assert().Equal("boom", errors.GetMessage(fmt.Errorf("boom")))
	s.Assert().Equal("cast table full", errors.GetMessage(errors.ResourceExhaustedf("cast table full")))
}
