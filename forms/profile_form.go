package forms

import (
	"goblog/models"
)

// ValidateProfile checks profile fields plus the name/email fields that
// are persisted to the owning user.
func ValidateProfile(req models.ProfileRequest) Errors {
	errs := Errors{}

	if err := validate.Var(req.Email, "required,email"); err != nil {
		errs.Add("email", "Enter a valid email address.")
	}

	if req.Website != "" {
		if err := validate.Var(req.Website, "url"); err != nil {
			errs.Add("website", "Enter a valid URL.")
		}
	}

	if len(req.Bio) > 500 {
		errs.Add("bio", "Bio must be 500 characters or fewer.")
	}

	if len(req.Location) > 100 {
		errs.Add("location", "Location must be 100 characters or fewer.")
	}

	if len(req.Phone) > 20 {
		errs.Add("phone", "Phone number must be 20 characters or fewer.")
	}

	return errs
}
