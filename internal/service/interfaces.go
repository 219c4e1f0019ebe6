package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-circuit-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers accounts and exchanges credentials for access tokens.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
}

// IdentityResolver turns a bearer token into the live user record.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (models.User, error)
}

// BootstrapService prepares the user store at process start.
type BootstrapService interface {
	EnsureDefaultAdmin(ctx context.Context) error
}

type MemberService interface {
	Create(ctx context.Context, creator models.User, in models.MemberInput) (models.Member, error)
	List(ctx context.Context, filter models.MemberFilter) ([]models.Member, error)
	Get(ctx context.Context, id string) (models.Member, error)
	Update(ctx context.Context, id string, in models.MemberInput) (models.Member, error)
	Delete(ctx context.Context, id string) error
}

type FinanceService interface {
	Create(ctx context.Context, creator models.User, in models.FinancialEntryInput) (models.FinancialEntry, error)
	List(ctx context.Context, filter models.FinanceFilter) ([]models.FinancialEntry, error)
}

type AnnouncementService interface {
	Create(ctx context.Context, creator models.User, in models.AnnouncementInput) (models.Announcement, error)
	List(ctx context.Context) ([]models.Announcement, error)
}

// FileService stores uploads and serves them back by category.
type FileService interface {
	Upload(ctx context.Context, uploader models.User, upload models.FileUpload) (models.StoredFile, error)
	List(ctx context.Context, category string) ([]models.StoredFile, error)
	Open(ctx context.Context, category, id string) (models.StoredFile, io.ReadCloser, error)
}

type StatsService interface {
	Dashboard(ctx context.Context) (models.DashboardStats, error)
}

// UserService holds the administrator operations on accounts.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	SetActive(ctx context.Context, id string, active bool) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
