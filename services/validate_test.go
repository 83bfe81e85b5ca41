package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RichelleAnne09/agots-express-dashboard/models"
)

func TestValidateDraftAllMissing(t *testing.T) {
	err := ValidateDraft(models.MenuDraft{Name: "", Price: "", Description: ""})

	var vErr *ValidationError
	if assert.ErrorAs(t, err, &vErr) {
		assert.Equal(t, []string{"Name", "Price", "Description"}, vErr.Missing)
		assert.Equal(t, "Name, Price, Description are required.", vErr.Error())
	}
}

func TestValidateDraftValid(t *testing.T) {
	err := ValidateDraft(models.MenuDraft{
		Name:        "Adobo",
		Price:       "280",
		Description: "tasty",
	})
	assert.NoError(t, err)
}

func TestValidateDraftWhitespaceCountsAsMissing(t *testing.T) {
	err := ValidateDraft(models.MenuDraft{
		Name:        "   ",
		Price:       "280",
		Description: "\t",
	})

	var vErr *ValidationError
	if assert.ErrorAs(t, err, &vErr) {
		assert.Equal(t, []string{"Name", "Description"}, vErr.Missing)
	}
}

func TestValidateDraftPrice(t *testing.T) {
	cases := []struct {
		price string
		valid bool
	}{
		{"280", true},
		{" 180 ", true},
		{"0", false},
		{"-5", false},
		{"abc", false},
		{"", false},
	}

	for _, tc := range cases {
		err := ValidateDraft(models.MenuDraft{
			Name:        "Lumpia",
			Price:       tc.price,
			Description: "fried",
		})
		if tc.valid {
			assert.NoError(t, err, "price %q", tc.price)
			continue
		}
		var vErr *ValidationError
		if assert.ErrorAs(t, err, &vErr, "price %q", tc.price) {
			assert.Equal(t, []string{"Price"}, vErr.Missing)
			assert.Equal(t, "Price are required.", vErr.Error())
		}
	}
}

func TestValidateDraftCanonicalOrder(t *testing.T) {
	// Missing fields come back in canonical order no matter which ones
	// failed, so the error message is deterministic.
	err := ValidateDraft(models.MenuDraft{Name: "Sisig", Price: "", Description: ""})

	var vErr *ValidationError
	if assert.ErrorAs(t, err, &vErr) {
		assert.Equal(t, []string{"Price", "Description"}, vErr.Missing)
	}
}
