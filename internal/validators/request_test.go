package validators

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-circuit-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func validMemberInput() models.MemberInput {
	return models.MemberInput{
		FullName:           "Thandi Nkosi",
		DateOfBirth:        models.NewTimestamp(time.Date(1980, time.July, 12, 0, 0, 0, 0, time.UTC)),
		Gender:             "female",
		ResidentialAddress: "12 Church St",
		Society:            models.SocietySecunda,
	}
}

func TestValidate_RegisterRequest(t *testing.T) {
	v := NewRequestValidator()

	valid := models.RegisterRequest{
		Username: "alice",
		Password: "p@ss1234",
		FullName: "Alice A",
		Role:     models.RoleSecretary,
	}

	tests := []struct {
		name    string
		mutate  func(r *models.RegisterRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(*models.RegisterRequest) {}},
		{name: "valid with affiliation", mutate: func(r *models.RegisterRequest) {
			r.Society = ptr(models.SocietyKMT)
			r.Organization = ptr(models.OrganizationWesleyGuild)
		}},
		{name: "missing username", mutate: func(r *models.RegisterRequest) { r.Username = "" }, wantErr: "username"},
		{name: "missing password", mutate: func(r *models.RegisterRequest) { r.Password = "" }, wantErr: "password"},
		{name: "password over 72 bytes", mutate: func(r *models.RegisterRequest) { r.Password = strings.Repeat("x", 73) }, wantErr: "password"},
		{name: "missing full name", mutate: func(r *models.RegisterRequest) { r.FullName = "" }, wantErr: "full_name"},
		{name: "missing role", mutate: func(r *models.RegisterRequest) { r.Role = "" }, wantErr: "role"},
		{name: "unknown role", mutate: func(r *models.RegisterRequest) { r.Role = "bishop" }, wantErr: "role"},
		{name: "unknown society", mutate: func(r *models.RegisterRequest) { r.Society = ptr(models.Society("atlantis")) }, wantErr: "society"},
		{name: "unknown organization", mutate: func(r *models.RegisterRequest) {
			r.Organization = ptr(models.Organization("choir"))
		}, wantErr: "organization"},
		{name: "empty society", mutate: func(r *models.RegisterRequest) { r.Society = ptr(models.Society("")) }, wantErr: "society"},
		{name: "empty organization", mutate: func(r *models.RegisterRequest) {
			r.Organization = ptr(models.Organization(""))
		}, wantErr: "organization"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_RegisterRequest_EmptyAffiliationJSON(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "empty society",
			body:    `{"username":"alice","password":"p@ss1234","full_name":"Alice A","role":"secretary","society":""}`,
			wantErr: "society",
		},
		{
			name:    "empty organization",
			body:    `{"username":"alice","password":"p@ss1234","full_name":"Alice A","role":"secretary","organization":""}`,
			wantErr: "organization",
		},
		{
			name: "null affiliation is absent",
			body: `{"username":"alice","password":"p@ss1234","full_name":"Alice A","role":"secretary","society":null,"organization":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req models.RegisterRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			err := v.Validate(context.Background(), req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				assert.Nil(t, req.Society)
				assert.Nil(t, req.Organization)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_PointerForm(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), &models.LoginRequest{Username: "alice"})

	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "password")
}

func TestValidate_LoginRequest(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.LoginRequest{Username: "alice", Password: "x"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{}), ErrValidation)
}

func TestValidate_MemberInput(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name    string
		mutate  func(m *models.MemberInput)
		wantErr string
	}{
		{name: "valid", mutate: func(*models.MemberInput) {}},
		{name: "valid email", mutate: func(m *models.MemberInput) { m.EmailAddress = ptr("thandi@example.org") }},
		{name: "empty optional email", mutate: func(m *models.MemberInput) { m.EmailAddress = ptr("") }},
		{name: "invalid email", mutate: func(m *models.MemberInput) { m.EmailAddress = ptr("not-an-email") }, wantErr: "email_address"},
		{name: "missing date of birth", mutate: func(m *models.MemberInput) { m.DateOfBirth = models.Timestamp{} }, wantErr: "date_of_birth"},
		{name: "missing society", mutate: func(m *models.MemberInput) { m.Society = "" }, wantErr: "society"},
		{name: "unknown society", mutate: func(m *models.MemberInput) { m.Society = "atlantis" }, wantErr: "society"},
		{name: "missing address", mutate: func(m *models.MemberInput) { m.ResidentialAddress = "" }, wantErr: "residential_address"},
		{name: "missing gender", mutate: func(m *models.MemberInput) { m.Gender = "" }, wantErr: "gender"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validMemberInput()
			tt.mutate(&in)

			err := v.Validate(context.Background(), &in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_FinancialEntryInput(t *testing.T) {
	v := NewRequestValidator()

	in := models.FinancialEntryInput{
		Society: models.SocietyEvander,
		Date:    models.NewTimestamp(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)),
	}
	assert.NoError(t, v.Validate(context.Background(), in))

	in.Date = models.Timestamp{}
	err := v.Validate(context.Background(), in)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "date")
}

func TestValidate_AnnouncementInput(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.AnnouncementInput{Title: "Notice", Content: "Text"}))

	err := v.Validate(context.Background(), models.AnnouncementInput{Title: "Notice"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "content")
}

func TestValidate_Category(t *testing.T) {
	v := NewRequestValidator()

	for _, ok := range []string{"minutes", "quarterly-reports", "class_lists", "2026"} {
		assert.NoError(t, v.Validate(context.Background(), Category(ok)), ok)
	}

	for _, bad := range []string{"", ".", "..", "a/b", "../etc", "min utes", strings.Repeat("c", 65)} {
		err := v.Validate(context.Background(), Category(bad))
		assert.ErrorIs(t, err, ErrValidation, bad)
	}
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), 42)

	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.NotErrorIs(t, err, ErrValidation)
}
