package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuilderCollectsFields() {
	err := errors.NewValidationBuilder().
		RequiredField("World").
		Fieldf("Denominator", "must be positive, got %d", 0).
		Build()

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal("validation failed: Denominator: must be positive, got 0; World: is required",
		errors.GetMessage(err))

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Equal([]string{"is required"}, fields["World"])
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestRange() {
	testCases := []struct {
		name      string
		value     int
		shouldErr bool
	}{
		{"lower bound", 0, false},
		{"upper bound", 200, false},
		{"below", -1, true},
		{"above", 250, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.NewValidationBuilder().Range("Piety", tc.value, 0, 200).Build()
			if tc.shouldErr {
				s.Require().Error(err)
				s.Contains(err.Error(), "Piety: must be between 0 and 200")
			} else {
				s.NoError(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestMessagesAccumulatePerField() {
	err := errors.NewValidationBuilder().
		Field("Piety", "is odd").
		Range("Piety", 300, 0, 200).
		Build()

	s.Require().Error(err)
	s.Contains(err.Error(), "Piety: is odd, must be between 0 and 200, got 300")
}
