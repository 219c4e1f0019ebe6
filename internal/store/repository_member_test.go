package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var memberRowColumns = []string{
	"id", "full_name", "date_of_birth", "gender", "title", "residential_address",
	"email_address", "occupation", "society", "class_allocation", "created_at", "created_by",
}

func newTestMemberRepo(t *testing.T) (MemberRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewMemberRepository(db, logger.Nop()), mock
}

func testMember() models.Member {
	email := "thandi@example.org"
	return models.Member{
		ID:                 "m-1",
		FullName:           "Thandi Nkosi",
		DateOfBirth:        models.NewTimestamp(time.Date(1980, time.July, 12, 0, 0, 0, 0, time.UTC)),
		Gender:             "female",
		ResidentialAddress: "12 Church St",
		EmailAddress:       &email,
		Society:            models.SocietyEmbalenhle,
		CreatedAt:          time.Date(2026, time.May, 4, 9, 0, 0, 0, time.UTC),
		CreatedBy:          "u-1",
	}
}

func memberRow(m models.Member) *sqlmock.Rows {
	return sqlmock.NewRows(memberRowColumns).AddRow(
		m.ID, m.FullName, m.DateOfBirth.Time, m.Gender, nil, m.ResidentialAddress,
		*m.EmailAddress, nil, string(m.Society), nil, m.CreatedAt, m.CreatedBy,
	)
}

func TestCreateMember_Success(t *testing.T) {
	repo, mock := newTestMemberRepo(t)
	member := testMember()

	mock.ExpectExec("INSERT INTO members").
		WithArgs(member.ID, member.FullName, member.DateOfBirth.Time, member.Gender, nil, member.ResidentialAddress,
			sqlmock.AnyArg(), nil, sqlmock.AnyArg(), nil, member.CreatedAt, member.CreatedBy).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateMember(context.Background(), member)

	require.NoError(t, err)
	assert.Equal(t, member, created)
}

func TestCreateMember_DBError(t *testing.T) {
	repo, mock := newTestMemberRepo(t)

	mock.ExpectExec("INSERT INTO members").WillReturnError(errors.New("disk full"))

	_, err := repo.CreateMember(context.Background(), testMember())

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestListMembers_WithFilter(t *testing.T) {
	repo, mock := newTestMemberRepo(t)
	member := testMember()

	mock.ExpectQuery("SELECT (.+) FROM members WHERE society = \\$1 AND \\(full_name ILIKE \\$2 OR email_address ILIKE \\$3\\)").
		WithArgs("embalenhle", "%thandi%", "%thandi%").
		WillReturnRows(memberRow(member))

	members, err := repo.ListMembers(context.Background(), models.MemberFilter{
		Society: models.SocietyEmbalenhle,
		Search:  "thandi",
	}, 1000)

	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Thandi Nkosi", members[0].FullName)
	assert.Nil(t, members[0].Title)
	require.NotNil(t, members[0].EmailAddress)
	assert.Equal(t, "thandi@example.org", *members[0].EmailAddress)
	assert.True(t, member.DateOfBirth.Equal(members[0].DateOfBirth.Time))
}

func TestListMembers_Empty(t *testing.T) {
	repo, mock := newTestMemberRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM members").
		WillReturnRows(sqlmock.NewRows(memberRowColumns))

	members, err := repo.ListMembers(context.Background(), models.MemberFilter{}, 1000)

	require.NoError(t, err)
	assert.NotNil(t, members)
	assert.Empty(t, members)
}

func TestListMembers_QueryError(t *testing.T) {
	repo, mock := newTestMemberRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM members").WillReturnError(errors.New("timeout"))

	_, err := repo.ListMembers(context.Background(), models.MemberFilter{}, 1000)

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetMember(t *testing.T) {
	repo, mock := newTestMemberRepo(t)
	member := testMember()

	mock.ExpectQuery("SELECT (.+) FROM members WHERE id = \\$1").
		WithArgs("m-1").
		WillReturnRows(memberRow(member))

	got, err := repo.GetMember(context.Background(), "m-1")

	require.NoError(t, err)
	assert.Equal(t, "m-1", got.ID)
	assert.Equal(t, models.SocietyEmbalenhle, got.Society)
}

func TestGetMember_NotFound(t *testing.T) {
	repo, mock := newTestMemberRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM members WHERE id = \\$1").
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(memberRowColumns))

	_, err := repo.GetMember(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateMember(t *testing.T) {
	repo, mock := newTestMemberRepo(t)
	member := testMember()
	member.FullName = "Thandi Nkosi-Dlamini"

	mock.ExpectQuery("UPDATE members SET (.+) WHERE id = \\$1 RETURNING").
		WithArgs(member.ID, member.FullName, member.DateOfBirth.Time, member.Gender, nil, member.ResidentialAddress,
			sqlmock.AnyArg(), nil, sqlmock.AnyArg(), nil).
		WillReturnRows(memberRow(member))

	updated, err := repo.UpdateMember(context.Background(), member)

	require.NoError(t, err)
	assert.Equal(t, "Thandi Nkosi-Dlamini", updated.FullName)
	assert.Equal(t, "u-1", updated.CreatedBy)
}

func TestUpdateMember_NotFound(t *testing.T) {
	repo, mock := newTestMemberRepo(t)

	mock.ExpectQuery("UPDATE members").WillReturnRows(sqlmock.NewRows(memberRowColumns))

	_, err := repo.UpdateMember(context.Background(), testMember())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMember(t *testing.T) {
	repo, mock := newTestMemberRepo(t)

	mock.ExpectExec("DELETE FROM members WHERE id = \\$1").
		WithArgs("m-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteMember(context.Background(), "m-1"))
}

func TestDeleteMember_NotFound(t *testing.T) {
	repo, mock := newTestMemberRepo(t)

	mock.ExpectExec("DELETE FROM members WHERE id = \\$1").
		WithArgs("m-404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteMember(context.Background(), "m-404"), ErrNotFound)
}
