package validation

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
	validator *Validator
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) SetupTest() {
	s.validator = NewValidator()
}

type selection struct {
	Name     string   `json:"name" validate:"omitempty,dataset_name"`
	FixedIDs []string `json:"fixed_ids" validate:"omitempty,dive,transaction_id"`
}

func (s *ValidatorTestSuite) TestTransactionID() {
	testCases := []struct {
		name    string
		id      string
		isValid bool
	}{
		{"synthetic id", "TXN-100001", true},
		{"numeric id", "42", true},
		{"blank", "", false},
		{"surrounding whitespace", " TXN-1 ", false},
		{"control character", "TXN\x00", false},
		{"too long", strings.Repeat("x", MaxTransactionIDLength+1), false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.validator.Struct(selection{FixedIDs: []string{tc.id}})
			if tc.isValid {
				s.NoError(err)
			} else {
				s.Error(err)
			}
		})
	}
}

func (s *ValidatorTestSuite) TestDatasetName() {
	s.NoError(s.validator.Struct(selection{Name: "march export.csv"}))
	s.NoError(s.validator.Struct(selection{}))
	s.Error(s.validator.Struct(selection{Name: "../etc/passwd"}))
	s.Error(s.validator.Struct(selection{Name: `C:\data.csv`}))
}

func (s *ValidatorTestSuite) TestFieldNamesUseJSONTags() {
	err := s.validator.Struct(selection{FixedIDs: []string{"ok", ""}})

	var validationErrs validator.ValidationErrors
	s.Require().ErrorAs(err, &validationErrs)
	s.Equal("fixed_ids[1]", validationErrs[0].Field())
	s.Equal("transaction_id", validationErrs[0].Tag())
}

func (s *ValidatorTestSuite) TestGetValidatorIsShared() {
	s.Same(GetValidator(), GetValidator())
}
