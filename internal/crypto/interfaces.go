package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

import "github.com/MKhiriev/go-app-lock/models"

// KeyChainService owns all client-side cryptography of the app-lock core.
// It knows nothing about the network, the database, or the UI; its only job
// is sealing the custom passcode and fingerprinting biometric enrollment.
//
// Scheme:
//
//	salt = GenerateSealingSalt()                     (step 1)
//	key  = DeriveSealingKey(deviceSecret, salt)      (step 2)
//	blob = SealPasscode(passcode, key)               (step 3)
//
// The blob and salt are safe to persist in the local lock store: without the
// device secret they are random noise. Opening reverses step 3.
type KeyChainService interface {
	// GenerateSealingSalt generates a random 16-byte (128-bit) salt.
	// The salt is not a secret and is stored next to the sealed passcode;
	// it exists so identical device secrets yield different sealing keys.
	GenerateSealingSalt() ([]byte, error)

	// DeriveSealingKey derives a 256-bit sealing key from the device
	// secret and salt via Argon2id. The key exists only in process memory
	// and is never persisted.
	DeriveSealingKey(deviceSecret string, salt []byte) []byte

	// SealPasscode encrypts the cleartext passcode with the sealing key
	// using AES-256-GCM. The returned blob is nonce ‖ ciphertext.
	SealPasscode(passcode string, key []byte) ([]byte, error)

	// OpenPasscode unseals a blob produced by SealPasscode. Returns an
	// error if the blob is malformed, the key is wrong, or the ciphertext
	// is corrupted (authentication-tag mismatch).
	OpenPasscode(blob, key []byte) (string, error)

	// FingerprintEnrollment computes the opaque fingerprint of the
	// platform's biometric-enrollment descriptor. A changed fingerprint on
	// a later lock check is treated as a policy change requiring fallback
	// verification.
	FingerprintEnrollment(descriptor models.EnrollmentDescriptor) models.BiometricsFingerprint
}
