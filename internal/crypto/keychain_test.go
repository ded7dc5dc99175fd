package crypto

import (
	"testing"

	"github.com/MKhiriev/go-app-lock/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSealingSalt_LengthAndUniqueness(t *testing.T) {
	k := NewKeyChainService()

	salt1, err := k.GenerateSealingSalt()
	require.NoError(t, err)
	salt2, err := k.GenerateSealingSalt()
	require.NoError(t, err)

	assert.Len(t, salt1, 16)
	assert.NotEqual(t, salt1, salt2, "salts must be unique per call")
}

func TestDeriveSealingKey_Deterministic(t *testing.T) {
	k := NewKeyChainService()
	salt := []byte("0123456789abcdef")

	key1 := k.DeriveSealingKey("device-secret", salt)
	key2 := k.DeriveSealingKey("device-secret", salt)

	assert.Len(t, key1, 32)
	assert.Equal(t, key1, key2, "same secret and salt must derive the same key")
}

func TestDeriveSealingKey_DiffersPerSaltAndSecret(t *testing.T) {
	k := NewKeyChainService()

	base := k.DeriveSealingKey("device-secret", []byte("0123456789abcdef"))
	otherSalt := k.DeriveSealingKey("device-secret", []byte("fedcba9876543210"))
	otherSecret := k.DeriveSealingKey("other-secret", []byte("0123456789abcdef"))

	assert.NotEqual(t, base, otherSalt)
	assert.NotEqual(t, base, otherSecret)
}

func TestSealOpenPasscode_RoundTrip(t *testing.T) {
	k := NewKeyChainService()
	salt, err := k.GenerateSealingSalt()
	require.NoError(t, err)
	key := k.DeriveSealingKey("device-secret", salt)

	blob, err := k.SealPasscode("Passc0de!", key)
	require.NoError(t, err)
	require.Greater(t, len(blob), 12, "blob must contain nonce plus ciphertext")

	got, err := k.OpenPasscode(blob, key)
	require.NoError(t, err)
	assert.Equal(t, "Passc0de!", got)
}

func TestOpenPasscode_WrongKey(t *testing.T) {
	k := NewKeyChainService()
	salt, err := k.GenerateSealingSalt()
	require.NoError(t, err)

	blob, err := k.SealPasscode("Passc0de!", k.DeriveSealingKey("device-secret", salt))
	require.NoError(t, err)

	_, err = k.OpenPasscode(blob, k.DeriveSealingKey("attacker-secret", salt))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unseal failed")
}

func TestOpenPasscode_TruncatedBlob(t *testing.T) {
	k := NewKeyChainService()
	key := k.DeriveSealingKey("device-secret", []byte("0123456789abcdef"))

	_, err := k.OpenPasscode([]byte{0x01, 0x02, 0x03}, key)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}

func TestFingerprintEnrollment_StableForSameDescriptor(t *testing.T) {
	k := NewKeyChainService()
	descriptor := models.EnrollmentDescriptor("face-id:2;touch-id:0")

	fp1 := k.FingerprintEnrollment(descriptor)
	fp2 := k.FingerprintEnrollment(descriptor)

	assert.Len(t, fp1.Digest, 32)
	assert.True(t, fp1.Equal(fp2))
	assert.False(t, fp1.RecordedAt.IsZero())
}

func TestFingerprintEnrollment_ChangesWithEnrollment(t *testing.T) {
	k := NewKeyChainService()

	before := k.FingerprintEnrollment(models.EnrollmentDescriptor("face-id:1"))
	after := k.FingerprintEnrollment(models.EnrollmentDescriptor("face-id:2"))

	assert.False(t, before.Equal(after), "re-enrollment must change the fingerprint")
}

func TestFingerprintEqual_EmptyNeverMatches(t *testing.T) {
	k := NewKeyChainService()
	live := k.FingerprintEnrollment(models.EnrollmentDescriptor("face-id:1"))

	var empty models.BiometricsFingerprint
	assert.False(t, empty.Equal(live))
	assert.False(t, live.Equal(empty))
}
