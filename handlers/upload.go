package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/services"
)

// multipartOverhead, form alanları ve boundary için dosya limitine eklenen pay.
const multipartOverhead = 1 << 20

// UploadHandler, resim yükleme endpoint'leri.
type UploadHandler struct {
	uploadService services.UploadService
	maxSize       int64
	publicMaxSize int64
}

// NewUploadHandler, constructor.
func NewUploadHandler(uploadService services.UploadService, maxSize, publicMaxSize int64) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		maxSize:       maxSize,
		publicMaxSize: publicMaxSize,
	}
}

type uploadFunc func(ctx context.Context, r io.Reader, filename string) (*services.UploadResult, error)

func (h *UploadHandler) handle(w http.ResponseWriter, r *http.Request, limit int64, upload uploadFunc) {
	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)
	if err := r.ParseMultipartForm(limit); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	result, err := upload(r.Context(), file, header.Filename)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, result)
}

// Upload godoc
// POST /api/admin/upload
// Multipart: "file" alanı. Menü, galeri, slider, personel ve logo resimleri için.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, h.maxSize, h.uploadService.Upload)
}

// UploadPublic godoc
// POST /api/uploads/review
// Ziyaretçinin yorumuna eklediği resim; daha düşük boyut limiti ve IP rate limit.
func (h *UploadHandler) UploadPublic(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, h.publicMaxSize, h.uploadService.UploadPublic)
}
