package store

import (
	"strings"

	"github.com/MKhiriev/go-circuit-records/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	userColumns = `id, username, password_hash, full_name, role, society, organization, created_at, is_active`

	createUser = `INSERT INTO users (id, username, password_hash, full_name, role, society, organization, created_at, is_active)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING ` + userColumns + `;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	listUsers = `SELECT ` + userColumns + `
    FROM users
    ORDER BY created_at;`

	setUserActive = `UPDATE users
    SET is_active = $2
    WHERE id = $1
    RETURNING ` + userColumns + `;`

	memberColumns = `id, full_name, date_of_birth, gender, title, residential_address, email_address, occupation, society, class_allocation, created_at, created_by`

	createMember = `INSERT INTO members (` + memberColumns + `)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`

	getMember = `SELECT ` + memberColumns + `
    FROM members
    WHERE id = $1;`

	updateMember = `UPDATE members
    SET full_name = $2, date_of_birth = $3, gender = $4, title = $5, residential_address = $6,
        email_address = $7, occupation = $8, society = $9, class_allocation = $10
    WHERE id = $1
    RETURNING ` + memberColumns + `;`

	deleteMember = `DELETE FROM members WHERE id = $1;`

	financeColumns = `id, society, date, pledges, special_effort, sunday_collection, circuit_events_collection, total, created_by, created_at`

	createFinancialEntry = `INSERT INTO financial_entries (` + financeColumns + `)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	recentFinancialEntries = `SELECT ` + financeColumns + `
    FROM financial_entries
    ORDER BY created_at DESC
    LIMIT $1;`

	announcementColumns = `id, title, content, deceased_name, class_leader_name, death_date, burial_location, financial_status, attendance_record, created_by, created_at`

	createAnnouncement = `INSERT INTO announcements (` + announcementColumns + `)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	listAnnouncements = `SELECT ` + announcementColumns + `
    FROM announcements
    ORDER BY created_at DESC
    LIMIT $1;`

	fileColumns = `id, original_name, stored_name, category, file_path, size, content_type, uploaded_by, uploaded_at`

	createFile = `INSERT INTO files (` + fileColumns + `)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

	getFile = `SELECT ` + fileColumns + `
    FROM files
    WHERE category = $1 AND id = $2;`

	countMembers = `SELECT COUNT(*) FROM members;`

	countMembersBySociety = `SELECT society, COUNT(*)
    FROM members
    GROUP BY society;`
)

// psql is the statement builder for all dynamic queries; PostgreSQL wants
// numbered placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns free text into an ILIKE pattern matching it as a
// literal substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// buildListMembersQuery builds the member listing. Society narrows by exact
// value; Search matches full_name or email_address case-insensitively.
func buildListMembersQuery(filter models.MemberFilter, limit uint64) (string, []any, error) {
	query := psql.Select(memberColumns).
		From("members").
		OrderBy("created_at DESC").
		Limit(limit)

	if filter.Society != "" {
		query = query.Where(sq.Eq{"society": string(filter.Society)})
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := containsPattern(search)
		query = query.Where(sq.Or{
			sq.ILike{"full_name": pattern},
			sq.ILike{"email_address": pattern},
		})
	}

	return query.ToSql()
}

// buildListFinancialEntriesQuery builds the finance listing, newest date
// first. Both date bounds are inclusive.
func buildListFinancialEntriesQuery(filter models.FinanceFilter, limit uint64) (string, []any, error) {
	query := psql.Select(financeColumns).
		From("financial_entries").
		OrderBy("date DESC").
		Limit(limit)

	if filter.Society != "" {
		query = query.Where(sq.Eq{"society": string(filter.Society)})
	}
	if filter.StartDate != nil {
		query = query.Where(sq.GtOrEq{"date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		query = query.Where(sq.LtOrEq{"date": *filter.EndDate})
	}

	return query.ToSql()
}

// buildListFilesQuery builds the per-category file listing, newest first.
func buildListFilesQuery(category string, limit uint64) (string, []any, error) {
	return psql.Select(fileColumns).
		From("files").
		Where(sq.Eq{"category": category}).
		OrderBy("uploaded_at DESC").
		Limit(limit).
		ToSql()
}
