package services

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/RichelleAnne09/agots-express-dashboard/models"
)

// requiredFieldOrder is the canonical reporting order. Missing fields are
// always listed in this order so the error message is deterministic no
// matter which checks actually fired.
var requiredFieldOrder = []string{"Name", "Price", "Description"}

// ValidationError aggregates every missing field of a draft. It is resolved
// locally; a draft that fails validation never reaches the upstream API.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Missing, ", ") + " are required."
}

// draftRules mirrors the editable fields of a MenuDraft with their
// validation tags. Category and Group are defaulted elsewhere and never
// fail presence checks.
type draftRules struct {
	Name        string `validate:"notblank"`
	Price       string `validate:"posint"`
	Description string `validate:"notblank"`
}

var draftValidator = newDraftValidator()

func newDraftValidator() *validator.Validate {
	v := validator.New()
	// notblank: empty and whitespace-only both count as missing.
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	// posint: the raw price input must parse to a positive integer.
	v.RegisterValidation("posint", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
		return err == nil && n > 0
	})
	return v
}

// ValidateDraft checks the draft's editable fields and returns nil when the
// draft can be saved, or a *ValidationError naming every missing field in
// canonical order. Pure: no network, no logging, no mutation.
func ValidateDraft(draft models.MenuDraft) error {
	err := draftValidator.Struct(draftRules{
		Name:        draft.Name,
		Price:       draft.Price,
		Description: draft.Description,
	})
	if err == nil {
		return nil
	}

	failed := make(map[string]bool)
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			failed[fe.Field()] = true
		}
	}

	missing := make([]string, 0, len(requiredFieldOrder))
	for _, field := range requiredFieldOrder {
		if failed[field] {
			missing = append(missing, field)
		}
	}
	return &ValidationError{Missing: missing}
}
