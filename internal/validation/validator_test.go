package validation

import (
	"testing"

	"naplan-prep/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutRequest struct {
	ParentID string   `json:"parent_id" validate:"notblank"`
	BundleID string   `json:"bundle_id" validate:"required,max=64"`
	ChildIDs []string `json:"child_ids" validate:"min=1,max=10,dive,notblank"`
	Year     int      `json:"year_level" validate:"omitempty,yearlevel"`
}

func TestValidator_Struct(t *testing.T) {
	v := NewValidator()

	ok := checkoutRequest{ParentID: "p1", BundleID: "year3_a", ChildIDs: []string{"kid-1"}, Year: 5}
	assert.Empty(t, v.Struct(ok))

	errs := v.Struct(checkoutRequest{ParentID: "  ", ChildIDs: []string{}, Year: 4})
	require.Len(t, errs, 4)

	byField := map[string]domain.ValidationError{}
	for _, e := range errs {
		byField[e.Field] = e
	}
	assert.Equal(t, domain.CodeMissingField, byField["parent_id"].Code)
	assert.Equal(t, "cannot be blank", byField["parent_id"].Message)
	assert.Equal(t, domain.CodeMissingField, byField["bundle_id"].Code)
	assert.Nil(t, byField["bundle_id"].Value)
	assert.Equal(t, domain.CodeOutOfRange, byField["child_ids"].Code)
	assert.Equal(t, domain.CodeInvalidFormat, byField["year_level"].Code)
	assert.Equal(t, 4, byField["year_level"].Value)
}

func TestValidator_ValidateYearLevel(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateYearLevel("year", 0))
	for _, y := range []int{3, 5, 7, 9} {
		assert.Empty(t, v.ValidateYearLevel("year", y))
	}

	errs := v.ValidateYearLevel("year", 6)
	require.Len(t, errs, 1)
	assert.Equal(t, "year", errs[0].Field)
	assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
	assert.Contains(t, errs[0].Message, "3, 5, 7 or 9")
}

func TestValidator_ValidateID(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateID("bundleId", "year3_a"))

	errs := v.ValidateID("bundleId", " ")
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeMissingField, errs[0].Code)

	long := make([]byte, 65)
	for i := range long {
		long[i] = 'x'
	}
	errs = v.ValidateID("bundleId", string(long))
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeOutOfRange, errs[0].Code)
}
