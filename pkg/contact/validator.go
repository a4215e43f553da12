package contact

import "github.com/go-playground/validator/v10"

// emailRules rejects anything that is not a single syntactically valid address.
// The domain must contain at least one dot; no DNS lookup is made.
const emailRules = "required,max=254,email"

// EmailValidator checks sender addresses before anything is sent.
type EmailValidator interface {
	IsValid(address string) bool
}

// EmailValidatorFunc adapts an ordinary function to the EmailValidator interface.
type EmailValidatorFunc func(address string) bool

// IsValid implements EmailValidator.
func (f EmailValidatorFunc) IsValid(address string) bool {
	return f(address)
}

type emailValidator struct {
	validate *validator.Validate
}

// NewEmailValidator returns an EmailValidator backed by go-playground/validator.
// The returned value is safe for concurrent use.
func NewEmailValidator() EmailValidator {
	return &emailValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *emailValidator) IsValid(address string) bool {
	return v.validate.Var(address, emailRules) == nil
}
