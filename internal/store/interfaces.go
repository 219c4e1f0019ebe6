package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-circuit-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. The unique index on username is the
// authority on duplicates: CreateUser translates its violation into
// [ErrUsernameAlreadyExists].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SetUserActive(ctx context.Context, id string, active bool) (models.User, error)
}

// MemberRepository persists church members.
type MemberRepository interface {
	CreateMember(ctx context.Context, member models.Member) (models.Member, error)
	ListMembers(ctx context.Context, filter models.MemberFilter, limit uint64) ([]models.Member, error)
	GetMember(ctx context.Context, id string) (models.Member, error)
	UpdateMember(ctx context.Context, member models.Member) (models.Member, error)
	DeleteMember(ctx context.Context, id string) error
}

// FinanceRepository persists financial entries.
type FinanceRepository interface {
	CreateFinancialEntry(ctx context.Context, entry models.FinancialEntry) (models.FinancialEntry, error)
	ListFinancialEntries(ctx context.Context, filter models.FinanceFilter, limit uint64) ([]models.FinancialEntry, error)
}

// AnnouncementRepository persists announcements.
type AnnouncementRepository interface {
	CreateAnnouncement(ctx context.Context, announcement models.Announcement) (models.Announcement, error)
	ListAnnouncements(ctx context.Context, limit uint64) ([]models.Announcement, error)
}

// FileRepository persists the metadata of uploaded files. The content itself
// lives in a [FileStorage].
type FileRepository interface {
	CreateFile(ctx context.Context, file models.StoredFile) (models.StoredFile, error)
	ListFiles(ctx context.Context, category string, limit uint64) ([]models.StoredFile, error)
	GetFile(ctx context.Context, category, id string) (models.StoredFile, error)
}

// StatsRepository runs the aggregate queries of the dashboard.
type StatsRepository interface {
	CountMembers(ctx context.Context) (int64, error)
	CountMembersBySociety(ctx context.Context) (map[models.Society]int64, error)
	RecentFinancialEntries(ctx context.Context, limit uint64) ([]models.FinancialEntry, error)
}

// FileStorage keeps uploaded file content under slash-separated keys such as
// "minutes/0190c1a2-....pdf".
type FileStorage interface {
	Save(ctx context.Context, key string, content io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
