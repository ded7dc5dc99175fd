package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownRule     = errors.New("unknown rule for validation")

	ErrPasscodeTooShort     = errors.New("passcode is too short")
	ErrPasscodeTooLong      = errors.New("passcode is too long")
	ErrMissingLowercase     = errors.New("passcode needs a lowercase letter")
	ErrMissingUppercase     = errors.New("passcode needs an uppercase letter")
	ErrMissingDigit         = errors.New("passcode needs a digit")
	ErrMissingSpecialChar   = errors.New("passcode needs a special character")
	ErrPasscodeNotPrintable = errors.New("passcode contains control characters")
)
