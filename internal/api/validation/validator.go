package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"devfolio/internal/api/dto/v1/contact"
	"devfolio/internal/catalog"

	"github.com/go-playground/validator/v10"
)

var (
	// Deliberately loose local@domain.tld shape; real deliverability is the
	// webhook consumer's problem.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Markup fragments that have no business in a contact message.
	dangerousPatterns = regexp.MustCompile(`(?i)<script|javascript:|onerror=|onload=|onclick=|onmouseover=`)
)

// Outcome classifies a contact form validation result.
type Outcome int

const (
	// OutcomeValid means the submission passed every check.
	OutcomeValid Outcome = iota
	// OutcomeInvalid means a check failed; Result.Reason carries the
	// user-facing message.
	OutcomeInvalid
	// OutcomeBotDetected means the honeypot field was filled in. The caller
	// must answer with a fake success so automated submitters cannot tell
	// they were caught.
	OutcomeBotDetected
)

// Result is the outcome of validating one submission.
type Result struct {
	Outcome Outcome
	Reason  string
}

// User-facing messages, one per rule.
const (
	msgNameLength    = "Name must be between 2 and 100 characters"
	msgSubjectLength = "Subject must be between 3 and 200 characters"
	msgMessageLength = "Message must be between 10 and 5000 characters"
	msgInvalidEmail  = "Invalid email address"
	msgDangerous     = "Invalid characters detected"
)

// ValidateContactForm runs the submission checks in order and stops at the
// first failure. It sees raw, unsanitized values: length bounds apply to the
// input as submitted, and the dangerous-content scan must run before any
// stripping could mask its patterns.
func ValidateContactForm(req *contact.ContactRequest) Result {
	if strings.TrimSpace(req.Website) != "" {
		return Result{Outcome: OutcomeBotDetected}
	}

	if n := utf8.RuneCountInString(req.Name); n < 2 || n > 100 {
		return Result{Outcome: OutcomeInvalid, Reason: msgNameLength}
	}

	if n := utf8.RuneCountInString(req.Subject); n < 3 || n > 200 {
		return Result{Outcome: OutcomeInvalid, Reason: msgSubjectLength}
	}

	if n := utf8.RuneCountInString(req.Message); n < 10 || n > 5000 {
		return Result{Outcome: OutcomeInvalid, Reason: msgMessageLength}
	}

	if req.Email == "" || !emailRegex.MatchString(req.Email) || utf8.RuneCountInString(req.Email) > 254 {
		return Result{Outcome: OutcomeInvalid, Reason: msgInvalidEmail}
	}

	allFields := req.Name + req.Subject + req.Message
	if dangerousPatterns.MatchString(allFields) {
		return Result{Outcome: OutcomeInvalid, Reason: msgDangerous}
	}

	return Result{Outcome: OutcomeValid}
}

// ValidationError represents a single field binding error
type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

// FormatValidationError formats binding errors into a user-friendly response
func FormatValidationError(err error) []ValidationError {
	var errors []ValidationError
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			errors = append(errors, ValidationError{
				Field: e.Field(),
				Tag:   e.Tag(),
				Value: e.Param(),
			})
		}
	}
	return errors
}

// RegisterValidators registers custom validators used by query binding.
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("techcategory", validateTechCategory)
}

// validateTechCategory checks that a query value names a catalog category.
func validateTechCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // optional filter
	}
	return catalog.IsValidCategory(value)
}
