package models

// LoginRequest authenticates the client against the session backend. On
// success the backend answers with a bearer token in the Authorization
// response header.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// VerifyPasswordRequest is the payload of the remote password-verification
// call. The password travels over TLS to the backend which owns the
// authoritative credential check; the lock core never hashes or stores it.
type VerifyPasswordRequest struct {
	Password string `json:"password"`
}

// Verdict values carried in [VerifyPasswordResponse.Result].
const (
	VerdictValidated = "validated"
	VerdictDenied    = "denied"
	VerdictUnknown   = "unknown"
)

// VerifyPasswordResponse is the backend's answer to a verification request.
// Result is one of "validated", "denied" or "unknown"; transport-level
// failures are mapped to the timeout outcome by the adapter, not carried in
// the body.
type VerifyPasswordResponse struct {
	Result string `json:"result"`
}

// UnlockDatabaseRequest carries the opaque proof obtained from a granted
// device challenge to the storage layer of the backend session.
type UnlockDatabaseRequest struct {
	Proof []byte `json:"proof"`
}
