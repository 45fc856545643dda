package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	usecasecontract "github.com/mikiasgoitom/Notebook/internal/usecase/contract"
)

const maxNoteTitleLength = 200

// AppValidator implements the usecasecontract.IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecasecontract.IValidator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	return &AppValidator{validate: v}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidateNoteTitle checks if a note title is non-blank and within bounds.
func (av *AppValidator) ValidateNoteTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title must not be blank")
	}
	if len(title) > maxNoteTitleLength {
		return fmt.Errorf("title must be at most %d characters", maxNoteTitleLength)
	}
	return nil
}
