package validation

import (
	"fmt"
	"net/mail"
	"time"
	"unicode/utf8"
)

// Errors maps a field name to the list of messages recorded against it.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Any() bool {
	return len(e) > 0
}

// StringRule is one declarative constraint on a string field.
type StringRule struct {
	Required bool
	Max      int // maximum length in characters, 0 means unbounded
	Min      int // minimum length in characters
	Email    bool
	Date     bool
}

// RuleSet holds the rules for one entity+operation pair.
type RuleSet map[string]StringRule

// Shared rule sets. Register and update intentionally share field rules so
// the two paths cannot drift apart.
var (
	UserRegister = RuleSet{
		"name":     {Required: true, Max: 255},
		"email":    {Required: true, Email: true},
		"password": {Required: true, Min: 6},
	}

	UserLogin = RuleSet{
		"email":    {Required: true, Email: true},
		"password": {Required: true, Min: 6},
	}

	UserUpdate = RuleSet{
		"name":  {Required: true, Max: 255},
		"email": {Required: true, Email: true},
	}

	TransactionWrite = RuleSet{
		"name": {Required: true, Max: 255},
		"date": {Required: true, Date: true},
	}
)

// Validate checks the given field values against the rule set and returns
// the accumulated per-field messages.
func (rs RuleSet) Validate(fields map[string]string) Errors {
	errs := make(Errors)

	for field, rule := range rs {
		value := fields[field]

		if value == "" {
			if rule.Required {
				errs.Add(field, fmt.Sprintf("The %s field is required.", field))
			}
			continue
		}

		// Length limits count characters, not bytes.
		if rule.Max > 0 && utf8.RuneCountInString(value) > rule.Max {
			errs.Add(field, fmt.Sprintf("The %s field must not be greater than %d characters.", field, rule.Max))
		}

		if rule.Min > 0 && utf8.RuneCountInString(value) < rule.Min {
			errs.Add(field, fmt.Sprintf("The %s field must be at least %d characters.", field, rule.Min))
		}

		if rule.Email {
			if _, err := mail.ParseAddress(value); err != nil {
				errs.Add(field, fmt.Sprintf("The %s field must be a valid email address.", field))
			}
		}

		if rule.Date {
			if _, err := ParseDate(value); err != nil {
				errs.Add(field, fmt.Sprintf("The %s field must be a valid date.", field))
			}
		}
	}

	return errs
}

// CheckAmount records an error when an optional monetary amount is negative.
func CheckAmount(errs Errors, field string, amount *float64) {
	if amount != nil && *amount < 0 {
		errs.Add(field, fmt.Sprintf("The %s field must be at least 0.", field))
	}
}

// UniqueTaken records the duplicate-value error for a field.
func UniqueTaken(errs Errors, field string) {
	errs.Add(field, fmt.Sprintf("The %s has already been taken.", field))
}

// ParseDate parses a calendar date, accepting a plain date or a full
// RFC 3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, value)
}
