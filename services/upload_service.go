package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/pkg/imageutil"
	"github.com/akinalp/milan/pkg/metrics"
	"github.com/akinalp/milan/pkg/objectstore"
)

// UploadResult, yükleme sonucu.
type UploadResult struct {
	URL         string `json:"url"`
	Size        int    `json:"size"`
	ContentType string `json:"content_type"`
	Compressed  bool   `json:"compressed"`
}

// UploadService, resim yükleme iş mantığı interface'i.
type UploadService interface {
	// Upload, admin yüklemesi (UPLOAD_MAX_SIZE sınırı).
	Upload(ctx context.Context, r io.Reader, filename string) (*UploadResult, error)
	// UploadPublic, ziyaretçinin yorum resmi (UPLOAD_PUBLIC_MAX_SIZE sınırı).
	UploadPublic(ctx context.Context, r io.Reader, filename string) (*UploadResult, error)
}

type uploadService struct {
	store         objectstore.Store
	maxSize       int64
	publicMaxSize int64
	metrics       *metrics.Metrics
	logger        *zap.Logger
	now           func() time.Time
}

// NewUploadService, constructor.
func NewUploadService(
	store objectstore.Store,
	maxSize, publicMaxSize int64,
	m *metrics.Metrics,
	logger *zap.Logger,
) UploadService {
	return &uploadService{
		store:         store,
		maxSize:       maxSize,
		publicMaxSize: publicMaxSize,
		metrics:       m,
		logger:        logger.Named("upload"),
		now:           time.Now,
	}
}

func (s *uploadService) Upload(ctx context.Context, r io.Reader, filename string) (*UploadResult, error) {
	return s.upload(ctx, r, filename, s.maxSize, objectstore.ObjectName)
}

func (s *uploadService) UploadPublic(ctx context.Context, r io.Reader, filename string) (*UploadResult, error) {
	return s.upload(ctx, r, filename, s.publicMaxSize, objectstore.GuestObjectName)
}

// upload, boyut ve tür kontrolü → sıkıştırma → isimlendirme → depoya yazma.
// Ziyaretçi yüklemeleri GuestPrefix ile isimlenir; yorum silinirken sadece
// bu alandaki nesneler depodan kaldırılır.
func (s *uploadService) upload(
	ctx context.Context,
	r io.Reader,
	filename string,
	limit int64,
	nameFn func(string, time.Time) string,
) (*UploadResult, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > limit {
		s.metrics.Uploaded(false, len(data))
		return nil, fmt.Errorf("%w: file too large (max %dMB)", pkg.ErrBadRequest, limit/(1024*1024))
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: file is empty", pkg.ErrBadRequest)
	}

	res := imageutil.Compress(data)
	if !imageutil.IsImage(res.ContentType) {
		s.metrics.Uploaded(false, len(data))
		return nil, fmt.Errorf("%w: only image files are allowed", pkg.ErrBadRequest)
	}

	name := nameFn(uploadFilename(filename, res), s.now())
	url, err := s.store.Put(ctx, name, res.Data, res.ContentType)
	if err != nil {
		s.metrics.Uploaded(false, len(res.Data))
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	s.metrics.Uploaded(true, len(res.Data))
	s.logger.Info("image uploaded",
		zap.String("url", url),
		zap.Int("original_size", len(data)),
		zap.Int("stored_size", len(res.Data)),
		zap.Bool("compressed", res.Compressed),
	)

	return &UploadResult{
		URL:         url,
		Size:        len(res.Data),
		ContentType: res.ContentType,
		Compressed:  res.Compressed,
	}, nil
}

// uploadFilename, depolanacak dosya adını belirler.
// İsim yoksa rastgele üretilir; JPEG'e çevrilen resmin uzantısı ".jpg" olur.
func uploadFilename(filename string, res imageutil.Result) string {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		filename = uuid.NewString()
	}
	if res.Compressed {
		filename = strings.TrimSuffix(filename, path.Ext(filename)) + ".jpg"
	}
	return filename
}
