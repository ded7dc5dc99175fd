package device

import "errors"

// ErrNoEnrollment is returned by [Authenticator.Enrollment] when the device
// has no biometric credentials enrolled. The verifier treats it as "silent
// evaluation unavailable" and falls back to the account password or custom
// passcode.
var ErrNoEnrollment = errors.New("no biometric enrollment on this device")
