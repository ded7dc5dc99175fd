package models

import "time"

// StoredPasscode is the sealed representation of the custom app passcode as
// persisted in the local lock store. The cleartext never leaves the crypto
// layer: Blob is an AES-GCM ciphertext under a key derived from the device
// secret and Salt.
type StoredPasscode struct {
	// Blob is the nonce-prefixed AES-GCM ciphertext of the passcode.
	Blob []byte

	// Salt is the per-record Argon2id salt used to derive the sealing key.
	Salt []byte

	// CreatedAt is the time the passcode was first set.
	CreatedAt time.Time
}

// BiometricsFingerprint is an opaque snapshot of the device's
// biometric-enrollment descriptor, recorded on every successful unlock.
// A changed fingerprint on a later lock check means the enrolled biometrics
// were reconfigured and is treated as "needs account password", never as
// a silent grant.
type BiometricsFingerprint struct {
	// Digest is a SHA-256 over the enrollment descriptor.
	Digest []byte

	// RecordedAt is the time the snapshot was taken.
	RecordedAt time.Time
}

// Equal reports whether two fingerprints describe the same enrollment.
// An empty stored fingerprint (nothing recorded yet) never equals a live one.
func (f BiometricsFingerprint) Equal(other BiometricsFingerprint) bool {
	if len(f.Digest) == 0 || len(f.Digest) != len(other.Digest) {
		return false
	}
	for i := range f.Digest {
		if f.Digest[i] != other.Digest[i] {
			return false
		}
	}
	return true
}

// EnrollmentDescriptor is the raw, platform-supplied description of which
// biometric credentials are currently enrolled on the device. The lock core
// treats it as opaque bytes and only ever fingerprints it.
type EnrollmentDescriptor []byte
