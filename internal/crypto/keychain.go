package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-app-lock/models"
	"golang.org/x/crypto/argon2"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	now func() time.Time
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
		now:          time.Now,
	}
}

// GenerateSealingSalt implements [KeyChainService]. It reads 16 random bytes
// from the OS CSPRNG and returns them as the sealing salt. Returns an error
// if the random read fails.
func (k *keyChainService) GenerateSealingSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveSealingKey implements [KeyChainService]. It derives a 256-bit
// sealing key from deviceSecret and salt using Argon2id with the parameters
// stored in the receiver.
func (k *keyChainService) DeriveSealingKey(deviceSecret string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(deviceSecret),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// SealPasscode implements [KeyChainService]. It encrypts the passcode with
// the sealing key using AES-256-GCM. A random 12-byte nonce is prepended to
// the ciphertext so that the opening side can locate it:
// blob = nonce ‖ ciphertext. Returns an error if cipher creation or the
// random nonce read fails.
func (k *keyChainService) SealPasscode(passcode string, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	// Prepend the nonce so OpenPasscode can split it out.
	ciphertext := gcm.Seal(nil, nonce, []byte(passcode), nil)
	return append(nonce, ciphertext...), nil
}

// OpenPasscode implements [KeyChainService]. It unseals a blob produced by
// [keyChainService.SealPasscode] using key and AES-256-GCM. The blob must be
// at least as long as the GCM nonce (12 bytes). Returns the cleartext
// passcode, or an error if the blob is too short, the key is wrong, or the
// ciphertext is corrupted (authentication-tag mismatch).
func (k *keyChainService) OpenPasscode(blob, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("sealed passcode too short")
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	// An error here almost always means the device secret changed,
	// producing a wrong sealing key.
	passcode, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("unseal failed: %w", err)
	}

	return string(passcode), nil
}

// FingerprintEnrollment implements [KeyChainService]. It computes
// SHA-256(descriptor) and timestamps the snapshot. The digest carries no
// biometric material itself; it only answers "did the enrollment change".
func (k *keyChainService) FingerprintEnrollment(descriptor models.EnrollmentDescriptor) models.BiometricsFingerprint {
	digest := sha256.Sum256(descriptor)
	return models.BiometricsFingerprint{
		Digest:     digest[:],
		RecordedAt: k.now(),
	}
}
