package service

import (
	"github.com/MKhiriev/go-circuit-records/internal/config"
	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/internal/store"
	"github.com/MKhiriev/go-circuit-records/internal/utils"
	"github.com/MKhiriev/go-circuit-records/internal/validators"
	"github.com/MKhiriev/go-circuit-records/internal/workers"
)

type Services struct {
	AuthService         AuthService
	IdentityResolver    IdentityResolver
	BootstrapService    BootstrapService
	MemberService       MemberService
	FinanceService      FinanceService
	AnnouncementService AnnouncementService
	FileService         FileService
	StatsService        StatsService
	UserService         UserService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, hasher workers.PasswordHasher, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()
	ids := utils.NewUUIDGenerator()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, hasher, validator, ids, cfg.App, logger),
		IdentityResolver:    NewIdentityResolver(storages.UserRepository, cfg.App, logger),
		BootstrapService:    NewBootstrapService(storages.UserRepository, hasher, ids, cfg.App, logger),
		MemberService:       NewMemberService(storages.MemberRepository, validator, ids, logger),
		FinanceService:      NewFinanceService(storages.FinanceRepository, validator, ids, logger),
		AnnouncementService: NewAnnouncementService(storages.AnnouncementRepository, validator, ids, logger),
		FileService:         NewFileService(storages.FileRepository, storages.FileStorage, validator, ids, logger),
		StatsService:        NewStatsService(storages.StatsRepository, logger),
		UserService:         NewUserService(storages.UserRepository, logger),
		AppInfoService:      appInfoService,
	}, nil
}
