package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/services"
)

// stubReviewService, Feed'e gelen sorguyu kaydeder. Diğer metodlar çağrılmaz.
type stubReviewService struct {
	services.ReviewService
	got services.FeedQuery
}

func (s *stubReviewService) Feed(_ context.Context, q services.FeedQuery) (*models.ReviewFeed, error) {
	s.got = q
	return &models.ReviewFeed{}, nil
}

func TestReviewFeedQuery(t *testing.T) {
	tests := []struct {
		url  string
		want services.FeedQuery
	}{
		{"/api/reviews", services.FeedQuery{}},
		{"/api/reviews?source=Google&tag=Food&sort=relevant", services.FeedQuery{Source: "Google", Tag: "Food", Sort: "relevant"}},
		{"/api/reviews?tag=Dal+Baati&sort=lowest", services.FeedQuery{Tag: "Dal Baati", Sort: "lowest"}},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			svc := &stubReviewService{}
			rec := httptest.NewRecorder()
			NewReviewHandler(svc).Feed(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, svc.got)
		})
	}
}

type stubMenuService struct {
	services.MenuService
	category, search string
}

func (s *stubMenuService) Filter(_ context.Context, category, search string) ([]models.MenuItem, error) {
	s.category, s.search = category, search
	return []models.MenuItem{{Name: "Paneer Tikka"}}, nil
}

func TestMenuListQuery(t *testing.T) {
	svc := &stubMenuService{}
	rec := httptest.NewRecorder()
	NewMenuHandler(svc, nil, nil).List(rec, httptest.NewRequest(http.MethodGet, "/api/menu?category=Main+Course&q=paneer", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Main Course", svc.category)
	assert.Equal(t, "paneer", svc.search)

	var items []models.MenuItem
	decodeEnvelope(t, rec, &items)
	require.Len(t, items, 1)
}

// stubUploadService, hangi yolun çağrıldığını ve gelen dosyayı kaydeder.
type stubUploadService struct {
	route    string
	filename string
	data     []byte
}

func (s *stubUploadService) record(route string, r io.Reader, filename string) (*services.UploadResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s.route, s.filename, s.data = route, filename, data
	return &services.UploadResult{URL: "/api/uploads/x.png", Size: len(data)}, nil
}

func (s *stubUploadService) Upload(_ context.Context, r io.Reader, filename string) (*services.UploadResult, error) {
	return s.record("admin", r, filename)
}

func (s *stubUploadService) UploadPublic(_ context.Context, r io.Reader, filename string) (*services.UploadResult, error) {
	return s.record("public", r, filename)
}

func multipartBody(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadHandler(t *testing.T) {
	svc := &stubUploadService{}
	h := NewUploadHandler(svc, 4<<20, 64)

	post := func(handler http.HandlerFunc, field string, data []byte) *httptest.ResponseRecorder {
		body, contentType := multipartBody(t, field, "thali.png", data)
		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		handler(rec, req)
		return rec
	}

	rec := post(h.UploadPublic, "file", []byte("small"))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "public", svc.route)
	assert.Equal(t, "thali.png", svc.filename)
	assert.Equal(t, "small", string(svc.data))

	rec = post(h.Upload, "file", bytes.Repeat([]byte("a"), 2<<20))
	require.Equal(t, http.StatusCreated, rec.Code, "admin limit is larger")
	assert.Equal(t, "admin", svc.route)

	// Public sınırın üstündeki gövde (limit + multipart payı) okunmadan reddedilir.
	svc.route = ""
	rec = post(h.UploadPublic, "file", bytes.Repeat([]byte("a"), 2<<20))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "failed to parse multipart form", decodeEnvelope(t, rec, nil).Error)
	assert.Empty(t, svc.route)

	rec = post(h.Upload, "image", []byte("x"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "file is required", decodeEnvelope(t, rec, nil).Error)

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("plain"))
	req.Header.Set("Content-Type", "text/plain")
	rec = httptest.NewRecorder()
	h.Upload(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
