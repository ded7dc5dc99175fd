package http

import (
	"bytes"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/MKhiriev/go-app-lock/internal/app"
	"github.com/MKhiriev/go-app-lock/internal/utils"
)

// hashHeader carries the client's keyed HMAC-SHA256 digest of the raw
// request body.
const hashHeader = "HashSHA256"

// verifyHashing is an HTTP middleware that enforces payload integrity on
// the password-verification endpoint. The client sends the hex-encoded
// HMAC of the exact body bytes; a missing or mismatching digest rejects
// the request before the password ever reaches the service layer.
func (h *Handler) verifyHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.logger.Debug().Str("func", "*Handler.verifyHashing").Msg("checking hash begins")

		requestHash := r.Header.Get(hashHeader)
		if requestHash == "" {
			h.logger.Error().Str("func", "*Handler.verifyHashing").Msg("missing integrity hash header")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.verifyHashing").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		hashedBody := hex.EncodeToString(utils.Hash(body))
		if hashedBody != requestHash {
			h.logger.Error().Str("func", "*Handler.verifyHashing").
				Str("hash from request", requestHash).
				Str("hashed body", hashedBody).
				Msg("hashes are not equal")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		h.logger.Debug().Str("func", "*Handler.verifyHashing").
			Str("hash from request", requestHash).
			Str("hashed body", hashedBody).
			Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
