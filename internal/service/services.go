package service

import (
	"github.com/MKhiriev/go-app-lock/internal/adapter"
	"github.com/MKhiriev/go-app-lock/internal/crypto"
	"github.com/MKhiriev/go-app-lock/internal/device"
	"github.com/MKhiriev/go-app-lock/internal/logger"
	"github.com/MKhiriev/go-app-lock/internal/store"
	"github.com/MKhiriev/go-app-lock/internal/validators"
	"github.com/MKhiriev/go-app-lock/models"
)

// LockServices bundles the three collaborating parts of the app-lock core
// for one app-session lifetime.
type LockServices struct {
	Gate      LockGate
	Verifier  CredentialVerifier
	Presenter LockPresenter
}

// NewLockServices wires the lock core. The gate, verifier and presenter are
// constructed leaves-first; the passcode rule set is internal to the bundle.
func NewLockServices(cfg models.LockConfiguration, deviceSecret string, storages *store.ClientStorages, session adapter.SessionAdapter, probe adapter.HealthProbe, deviceAuth device.Authenticator, keychain crypto.KeyChainService, ui LockUserInterface, logger *logger.Logger) *LockServices {
	gate := NewLockGate(cfg, logger.GetChildLogger())
	verifier := NewLockVerifier(deviceAuth, session, keychain, storages.LockState, deviceSecret, logger.GetChildLogger())
	presenter := NewLockPresenter(cfg, gate, verifier, ui, probe, validators.NewPasscodeValidator(), logger.GetChildLogger())

	return &LockServices{
		Gate:      gate,
		Verifier:  verifier,
		Presenter: presenter,
	}
}
