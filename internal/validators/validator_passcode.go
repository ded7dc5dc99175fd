package validators

import (
	"context"
	"errors"
	"unicode"
)

const (
	RuleLength           = "length"
	RuleCharacterClasses = "character_classes"
	RulePrintable        = "printable"
)

const (
	// PasscodeMinLength is the minimum passcode length in characters.
	PasscodeMinLength = 8
	// PasscodeMaxLength caps the passcode length so the sealing layer never
	// has to derive keys over unbounded input.
	PasscodeMaxLength = 120
)

type PasscodeValidator struct {
}

// NewPasscodeValidator returns a [Validator] that enforces the passcode
// creation rule set: length bounds plus required lowercase, uppercase, digit
// and special-character classes.
func NewPasscodeValidator() Validator {
	return &PasscodeValidator{}
}

// Validate checks a candidate passcode against the rule set. All violated
// rules are reported at once, joined with [errors.Join], so a caller can
// render the full checklist with [errors.Is].
func (v *PasscodeValidator) Validate(ctx context.Context, obj any, rules ...string) error {
	switch value := obj.(type) {
	case string:
		return v.validatePasscode(ctx, value, rules...)
	case *string:
		return v.validatePasscode(ctx, *value, rules...)
	default:
		return ErrUnsupportedType
	}
}

func (v *PasscodeValidator) validatePasscode(_ context.Context, passcode string, rules ...string) error {
	if len(rules) == 0 {
		rules = []string{RuleLength, RulePrintable, RuleCharacterClasses}
	}

	var violations []error
	for _, r := range rules {
		switch r {
		case RuleLength:
			violations = append(violations, checkLength(passcode)...)
		case RulePrintable:
			violations = append(violations, checkPrintable(passcode)...)
		case RuleCharacterClasses:
			violations = append(violations, checkCharacterClasses(passcode)...)
		default:
			return ErrUnknownRule
		}
	}

	return errors.Join(violations...)
}

func checkLength(passcode string) []error {
	// length is counted in characters, not bytes
	n := len([]rune(passcode))

	var violations []error
	if n < PasscodeMinLength {
		violations = append(violations, ErrPasscodeTooShort)
	}
	if n > PasscodeMaxLength {
		violations = append(violations, ErrPasscodeTooLong)
	}
	return violations
}

func checkPrintable(passcode string) []error {
	for _, r := range passcode {
		if unicode.IsControl(r) {
			return []error{ErrPasscodeNotPrintable}
		}
	}
	return nil
}

func checkCharacterClasses(passcode string) []error {
	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range passcode {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r) || r == ' ':
			hasSpecial = true
		}
	}

	var violations []error
	if !hasLower {
		violations = append(violations, ErrMissingLowercase)
	}
	if !hasUpper {
		violations = append(violations, ErrMissingUppercase)
	}
	if !hasDigit {
		violations = append(violations, ErrMissingDigit)
	}
	if !hasSpecial {
		violations = append(violations, ErrMissingSpecialChar)
	}
	return violations
}
