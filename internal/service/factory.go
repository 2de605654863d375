package service

import (
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/config"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/domain/bulletin"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/domain/vehicle"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// Repositories
	VehicleRepo  vehicle.Repository
	BulletinRepo bulletin.Repository
}
