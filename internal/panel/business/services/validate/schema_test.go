package validate_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"commerceadmin_api/internal/panel/business/models"
	"commerceadmin_api/internal/panel/business/services/validate"
)

func testSchema() *validate.Schema[models.ProductLine] {
	return validate.NewSchema(
		validate.Field[models.ProductLine]{
			Label:    "product line name",
			Required: true,
			MaxLen:   100,
			Value:    func(line models.ProductLine) string { return line.ProductLine },
		},
		validate.Field[models.ProductLine]{
			Label:    "text description",
			Required: true,
			MaxLen:   500,
			Value:    func(line models.ProductLine) string { return line.TextDescription },
		},
	)
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	err := testSchema().Validate(models.ProductLine{})
	require.Error(t, err)

	var validationErr *models.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Violations, 2)
	require.Equal(t, "product line name is required, text description is required", err.Error())
}

func TestValidate_TrimsWhitespaceForRequired(t *testing.T) {
	err := testSchema().Validate(models.ProductLine{
		ProductLine:     "   ",
		TextDescription: "ok",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "product line name is required")
}

func TestValidate_MaxLength(t *testing.T) {
	err := testSchema().Validate(models.ProductLine{
		ProductLine:     strings.Repeat("a", 101),
		TextDescription: "ok",
	})
	require.Error(t, err)
	require.Equal(t, "product line name must be less than 100 characters", err.Error())
}

func TestValidate_ValidDataPasses(t *testing.T) {
	err := testSchema().Validate(models.ProductLine{
		ProductLine:     "Sedans",
		TextDescription: "Four-door cars",
	})
	require.NoError(t, err)
}

func TestValidateImageFile(t *testing.T) {
	maxBytes := int64(5 * 1024 * 1024)

	require.NoError(t, validate.ValidateImageFile("car.png", 1024, maxBytes))
	require.NoError(t, validate.ValidateImageFile("CAR.JPG", 1024, maxBytes))

	err := validate.ValidateImageFile("car.bmp", maxBytes+1, maxBytes)
	require.Error(t, err)

	var validationErr *models.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Violations, 2)
}
