package forms

import (
	"goblog/models"
)

const passwordMinLength = 8

// ValidateRegister checks the registration form. Username uniqueness is
// checked separately at the service layer, where the store is available.
func ValidateRegister(req models.RegisterRequest) Errors {
	errs := Errors{}

	if req.Username == "" {
		errs.Add("username", "This field is required.")
	}
	if req.FirstName == "" {
		errs.Add("first_name", "This field is required.")
	}
	if req.LastName == "" {
		errs.Add("last_name", "This field is required.")
	}

	if err := validate.Var(req.Email, "required,email"); err != nil {
		errs.Add("email", "Enter a valid email address.")
	}

	if len(req.Password1) < passwordMinLength {
		errs.Add("password1", "Password must be at least 8 characters long.")
	}
	if req.Password1 != req.Password2 {
		errs.Add("password2", "The two password fields didn't match.")
	}

	return errs
}
