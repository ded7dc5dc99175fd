package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-app-lock/models"
)

const testHashKey = "test-secret-key"

func TestInitHasherPoolAndHash(t *testing.T) {
	InitHasherPool(testHashKey)

	data := []byte("test-data")

	sum1 := Hash(data)
	sum2 := Hash(data)

	if len(sum1) == 0 {
		t.Fatal("hash result is empty")
	}

	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	// verify against direct HMAC computation
	h := hmac.New(sha256.New, []byte(testHashKey))
	h.Write(data)
	expected := h.Sum(nil)

	if !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

func TestHashString_MatchesDirectHMAC(t *testing.T) {
	body, err := json.Marshal(models.VerifyPasswordRequest{Password: "secret"})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	got := HashString(string(body), testHashKey)

	h := hmac.New(sha256.New, []byte(testHashKey))
	h.Write(body)
	want := hex.EncodeToString(h.Sum(nil))

	if got != want {
		t.Fatalf("unexpected signature\nwant: %s\ngot:  %s", want, got)
	}
}

func TestHashString_DiffersPerKey(t *testing.T) {
	sig1 := HashString("same payload", "key-one")
	sig2 := HashString("same payload", "key-two")

	if sig1 == sig2 {
		t.Fatal("signatures with different keys must differ")
	}
}
