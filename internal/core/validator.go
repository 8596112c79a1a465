package core

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"evapcook/internal/types"
)

// Validator wraps go-playground/validator so handlers can validate request
// DTOs and receive structured AppErrors instead of raw validation errors.
type Validator struct {
	validate *validator.Validate
	logger   *slog.Logger
}

// NewValidator creates a new Validator.
func NewValidator(logger *slog.Logger) *Validator {
	return &Validator{
		validate: validator.New(),
		logger:   logger,
	}
}

// ValidateStruct validates the struct's `validate` tags and translates the
// first failure into a *types.AppError (400) naming the offending field and
// the rule it violated. Returns nil when the struct is valid.
func (v *Validator) ValidateStruct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return types.NewAppErrorWithDetails(
			types.ErrCodeValidationInvalidInput,
			"request validation failed",
			err,
			map[string]any{
				"field": fe.Field(),
				"rule":  fe.Tag(),
			},
		)
	}

	// Non-field validation failure (e.g. passing a non-struct) is a
	// programming error, not a client error.
	if v.logger != nil {
		v.logger.Error("validator invoked with invalid target", "error", err)
	}
	return types.NewAppError(types.ErrCodeInternalUnexpected, "request validation failed", err)
}
