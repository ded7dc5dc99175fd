package service

import (
	"context"

	"github.com/MKhiriev/go-app-lock/internal/config"
	"github.com/MKhiriev/go-app-lock/internal/logger"
	"github.com/MKhiriev/go-app-lock/internal/utils"
)

// Services is the dev-server service container consumed by the transport
// handlers.
type Services struct {
	Session SessionBackendService
	AppInfo AppInfoService
}

func NewServices(cfg config.App, logger *logger.Logger) *Services {
	// the transport-integrity middleware hashes request bodies with the
	// pooled HMAC hasher
	utils.InitHasherPool(cfg.HashKey)

	return &Services{
		Session: NewSessionBackend(cfg, logger.GetChildLogger()),
		AppInfo: NewAppInfo(cfg),
	}
}

type appInfoService struct {
	version string
}

func NewAppInfo(cfg config.App) AppInfoService {
	return &appInfoService{version: cfg.Version}
}

// GetAppVersion implements [AppInfoService].
func (a *appInfoService) GetAppVersion(ctx context.Context) string {
	if a.version == "" {
		return "N/A"
	}
	return a.version
}
