package forms

import (
	"strings"

	"goblog/models"
)

const (
	commentMinLength = 10
	commentMaxLength = 1000
)

// ValidateComment enforces the comment content contract: at least 10
// characters once surrounding whitespace is stripped, at most 1000
// characters as stored.
func ValidateComment(req models.CommentRequest) Errors {
	errs := Errors{}

	content := strings.TrimSpace(req.Content)
	if len(content) < commentMinLength {
		errs.Add("content", "Comment must be at least 10 characters long.")
	}
	if len(req.Content) > commentMaxLength {
		errs.Add("content", "Comment must be 1000 characters or fewer.")
	}

	return errs
}
