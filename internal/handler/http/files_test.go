package http

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"testing"

	"github.com/MKhiriev/go-circuit-records/internal/app"
	"github.com/MKhiriev/go-circuit-records/internal/store"
	"github.com/MKhiriev/go-circuit-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// multipartBody builds an upload form. An empty fileName omits the file part.
func multipartBody(t *testing.T, category, fileName, contentType, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if category != "" {
		require.NoError(t, mw.WriteField("category", category))
	}

	if fileName != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestFiles_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.authenticate(secretaryUser())

	m.files.EXPECT().Upload(gomock.Any(), secretaryUser(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.User, upload models.FileUpload) (models.StoredFile, error) {
			assert.Equal(t, "minutes", upload.Category)
			assert.Equal(t, "quarterly.pdf", upload.OriginalName)
			assert.Equal(t, "application/pdf", upload.ContentType)
			assert.Equal(t, int64(len("%PDF-1.7")), upload.Size)

			content, err := io.ReadAll(upload.Content)
			require.NoError(t, err)
			assert.Equal(t, "%PDF-1.7", string(content))

			return models.StoredFile{ID: "f-1"}, nil
		},
	)

	body, contentType := multipartBody(t, "minutes", "quarterly.pdf", "application/pdf", "%PDF-1.7")
	rr := serve(t, h.Init(), http.MethodPost, "/api/upload", body, append(bearer(testToken), "Content-Type", contentType)...)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	resp := decodeBody[models.UploadResponse](t, rr)
	assert.Equal(t, "f-1", resp.FileID)
	assert.Equal(t, "File uploaded successfully", resp.Message)
}

func TestFiles_Upload_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.authenticate(secretaryUser())

	body, contentType := multipartBody(t, "minutes", "", "", "")
	rr := serve(t, h.Init(), http.MethodPost, "/api/upload", body, append(bearer(testToken), "Content-Type", contentType)...)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.ReasonValidationError, decodeBody[models.ErrorResponse](t, rr).Reason)
}

func TestFiles_Upload_NotMultipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.authenticate(secretaryUser())

	rr := serve(t, h.Init(), http.MethodPost, "/api/upload", strings.NewReader(`{}`),
		append(bearer(testToken), "Content-Type", "application/json")...)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestFiles_Upload_TooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.authenticate(secretaryUser())

	content := strings.Repeat("x", int(testServerConfig.MaxUploadSize)+1024)
	body, contentType := multipartBody(t, "minutes", "huge.pdf", "application/pdf", content)
	rr := serve(t, h.Init(), http.MethodPost, "/api/upload", body, append(bearer(testToken), "Content-Type", contentType)...)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	resp := decodeBody[models.ErrorResponse](t, rr)
	assert.Equal(t, app.ReasonRequestTooLarge, resp.Reason)
	assert.Equal(t, app.MsgFileTooLarge, resp.Detail)
}

func TestFiles_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.authenticate(secretaryUser())
	m.files.EXPECT().List(gomock.Any(), "reports").Return([]models.StoredFile{{ID: "f-2"}, {ID: "f-1"}}, nil)

	rr := serve(t, h.Init(), http.MethodGet, "/api/files/reports", nil, bearer(testToken)...)

	require.Equal(t, http.StatusOK, rr.Code)
	files := decodeBody[[]models.StoredFile](t, rr)
	assert.Equal(t, "f-2", files[0].ID)
}

func TestFiles_Download(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.authenticate(secretaryUser())

	record := models.StoredFile{
		ID:           "f-1",
		OriginalName: "Quarterly Minutes.pdf",
		Category:     "minutes",
		Size:         8,
		ContentType:  "application/pdf",
	}
	m.files.EXPECT().Open(gomock.Any(), "minutes", "f-1").
		Return(record, io.NopCloser(strings.NewReader("%PDF-1.7")), nil)

	rr := serve(t, h.Init(), http.MethodGet, "/api/files/minutes/f-1", nil, bearer(testToken)...)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Quarterly Minutes.pdf"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "8", rr.Header().Get("Content-Length"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "%PDF-1.7", rr.Body.String())
}

func TestFiles_Download_TextIsNotCompressed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.authenticate(secretaryUser())

	content := strings.Repeat("minutes of the quarterly meeting\n", 64)
	record := models.StoredFile{
		ID:           "f-3",
		OriginalName: "minutes.txt",
		Category:     "minutes",
		Size:         int64(len(content)),
		ContentType:  "text/plain",
	}
	m.files.EXPECT().Open(gomock.Any(), "minutes", "f-3").
		Return(record, io.NopCloser(strings.NewReader(content)), nil)

	rr := serve(t, h.Init(), http.MethodGet, "/api/files/minutes/f-3", nil,
		append(bearer(testToken), "Accept-Encoding", "gzip")...)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, strconv.Itoa(len(content)), rr.Header().Get("Content-Length"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, content, rr.Body.String())
}

func TestFiles_List_IsCompressed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.authenticate(secretaryUser())
	m.files.EXPECT().List(gomock.Any(), "reports").Return([]models.StoredFile{{ID: "f-2"}}, nil)

	rr := serve(t, h.Init(), http.MethodGet, "/api/files/reports", nil,
		append(bearer(testToken), "Accept-Encoding", "gzip")...)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
}

func TestFiles_Download_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.authenticate(secretaryUser())
	m.files.EXPECT().Open(gomock.Any(), "minutes", "nope").Return(models.StoredFile{}, nil, store.ErrNotFound)

	rr := serve(t, h.Init(), http.MethodGet, "/api/files/minutes/nope", nil, bearer(testToken)...)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
