package services

import (
	"log/slog"

	"github.com/Cari-app/cari-quizzies-sub001/internal/cache"
	"github.com/Cari-app/cari-quizzies-sub001/internal/events"
	"github.com/Cari-app/cari-quizzies-sub001/internal/repositories"
	"github.com/Cari-app/cari-quizzies-sub001/internal/utils"
)

type serviceManager struct {
	builder BuilderService
	player  PlayerService
	export  ExportService
}

// NewServiceManager wires every service over shared infrastructure.
func NewServiceManager(
	repo repositories.Repository,
	sessions cache.SessionStore,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *utils.Validator,
) ServiceManager {
	return &serviceManager{
		builder: NewBuilderService(repo, logger, validator),
		player:  NewPlayerService(repo, sessions, publisher, NewTimerScheduler(), SystemClock(), logger),
		export:  NewExportService(repo, logger),
	}
}

func (m *serviceManager) Builder() BuilderService { return m.builder }
func (m *serviceManager) Player() PlayerService   { return m.player }
func (m *serviceManager) Export() ExportService   { return m.export }
