package store

import (
	"database/sql"

	"github.com/MKhiriev/go-circuit-records/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// Nullable columns scan into pointer fields: database/sql leaves the pointer
// nil for NULL and allocates it otherwise.

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.Role, &u.Society, &u.Organization, &u.CreatedAt, &u.IsActive)
	return u, err
}

func scanMember(row rowScanner) (models.Member, error) {
	var m models.Member
	err := row.Scan(
		&m.ID,
		&m.FullName,
		&m.DateOfBirth.Time,
		&m.Gender,
		&m.Title,
		&m.ResidentialAddress,
		&m.EmailAddress,
		&m.Occupation,
		&m.Society,
		&m.ClassAllocation,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}

func scanFinancialEntry(row rowScanner) (models.FinancialEntry, error) {
	var f models.FinancialEntry
	err := row.Scan(
		&f.ID,
		&f.Society,
		&f.Date.Time,
		&f.Pledges,
		&f.SpecialEffort,
		&f.SundayCollection,
		&f.CircuitEventsCollection,
		&f.Total,
		&f.CreatedBy,
		&f.CreatedAt,
	)
	return f, err
}

func scanAnnouncement(row rowScanner) (models.Announcement, error) {
	var a models.Announcement
	var deathDate sql.NullTime
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Content,
		&a.DeceasedName,
		&a.ClassLeaderName,
		&deathDate,
		&a.BurialLocation,
		&a.FinancialStatus,
		&a.AttendanceRecord,
		&a.CreatedBy,
		&a.CreatedAt,
	)
	if deathDate.Valid {
		ts := models.NewTimestamp(deathDate.Time)
		a.DeathDate = &ts
	}
	return a, err
}

func scanStoredFile(row rowScanner) (models.StoredFile, error) {
	var f models.StoredFile
	err := row.Scan(&f.ID, &f.OriginalName, &f.StoredName, &f.Category, &f.FilePath, &f.Size, &f.ContentType, &f.UploadedBy, &f.UploadedAt)
	return f, err
}

// timestampArg converts an optional timestamp into a driver argument.
func timestampArg(t *models.Timestamp) any {
	if t == nil {
		return nil
	}
	return t.Time
}
