package http

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-circuit-records/internal/app"
	"github.com/MKhiriev/go-circuit-records/internal/store"
	"github.com/MKhiriev/go-circuit-records/internal/validators"
	"github.com/MKhiriev/go-circuit-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const thandiJSON = `{
	"full_name": "Thandi Mokoena",
	"date_of_birth": "1990-02-01",
	"gender": "female",
	"residential_address": "12 Church Street, Secunda",
	"society": "secunda"
}`

func TestMembers_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.authenticate(secretaryUser())

	m.members.EXPECT().Create(gomock.Any(), secretaryUser(), gomock.Any()).DoAndReturn(
		func(_ context.Context, creator models.User, in models.MemberInput) (models.Member, error) {
			assert.Equal(t, "Thandi Mokoena", in.FullName)
			assert.Equal(t, models.SocietySecunda, in.Society)
			assert.True(t, time.Date(1990, time.February, 1, 0, 0, 0, 0, time.UTC).Equal(in.DateOfBirth.Time))

			member := models.Member{ID: "m-1", CreatedBy: creator.ID}
			member.Apply(in)
			return member, nil
		},
	)

	rr := serve(t, h.Init(), http.MethodPost, "/api/members", strings.NewReader(thandiJSON), bearer(testToken)...)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	member := decodeBody[models.Member](t, rr)
	assert.Equal(t, "m-1", member.ID)
	assert.Equal(t, "u-secretary", member.CreatedBy)
}

func TestMembers_Create_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.authenticate(secretaryUser())
	m.members.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Member{}, validators.ErrValidation)

	rr := serve(t, h.Init(), http.MethodPost, "/api/members", strings.NewReader(`{"full_name":""}`), bearer(testToken)...)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.ReasonValidationError, decodeBody[models.ErrorResponse](t, rr).Reason)
}

func TestMembers_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.authenticate(secretaryUser())
	m.members.EXPECT().List(gomock.Any(), models.MemberFilter{Society: models.SocietyKMT, Search: "mok"}).
		Return([]models.Member{{ID: "m-1"}, {ID: "m-2"}}, nil)

	rr := serve(t, h.Init(), http.MethodGet, "/api/members?society=kmt&search=mok", nil, bearer(testToken)...)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeBody[[]models.Member](t, rr), 2)
}

func TestMembers_List_UnknownSociety(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.authenticate(secretaryUser())

	rr := serve(t, h.Init(), http.MethodGet, "/api/members?society=atlantis", nil, bearer(testToken)...)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.ReasonValidationError, decodeBody[models.ErrorResponse](t, rr).Reason)
}

func TestMembers_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.authenticate(secretaryUser())
	m.members.EXPECT().Get(gomock.Any(), "missing").Return(models.Member{}, store.ErrNotFound)

	rr := serve(t, h.Init(), http.MethodGet, "/api/members/missing", nil, bearer(testToken)...)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, app.ReasonNotFound, decodeBody[models.ErrorResponse](t, rr).Reason)
}

func TestMembers_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.authenticate(secretaryUser())
	m.members.EXPECT().Update(gomock.Any(), "m-1", gomock.Any()).Return(models.Member{ID: "m-1", FullName: "Thandi Mokoena"}, nil)

	rr := serve(t, h.Init(), http.MethodPut, "/api/members/m-1", strings.NewReader(thandiJSON), bearer(testToken)...)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "m-1", decodeBody[models.Member](t, rr).ID)
}

func TestMembers_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.authenticate(secretaryUser())

	gomock.InOrder(
		m.members.EXPECT().Delete(gomock.Any(), "m-1").Return(nil),
		m.members.EXPECT().Delete(gomock.Any(), "m-1").Return(store.ErrNotFound),
	)

	router := h.Init()

	rr := serve(t, router, http.MethodDelete, "/api/members/m-1", nil, bearer(testToken)...)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Member deleted successfully", decodeBody[models.MessageResponse](t, rr).Message)

	rr = serve(t, router, http.MethodDelete, "/api/members/m-1", nil, bearer(testToken)...)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
