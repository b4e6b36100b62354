package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/akinalp/milan/pkg/objectstore"
)

// imageCleaner, kaydı silinen veya görseli değişen nesnelerin depodan silinmesi.
//
// Silme hatası ana işlemi bozmaz, sadece loglanır. Depoya ait olmayan URL'ler
// (elle girilmiş dış linkler) store tarafından atlanır.
type imageCleaner struct {
	store  objectstore.Store
	logger *zap.Logger
}

func newImageCleaner(store objectstore.Store, logger *zap.Logger) imageCleaner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return imageCleaner{store: store, logger: logger}
}

// remove, URL'deki nesneyi siler.
func (c imageCleaner) remove(ctx context.Context, url string) {
	if url == "" || c.store == nil {
		return
	}
	if err := c.store.Delete(ctx, url); err != nil {
		c.logger.Warn("failed to delete image", zap.String("url", url), zap.Error(err))
	}
}

// replaced, görsel değiştiyse eskisini siler.
func (c imageCleaner) replaced(ctx context.Context, oldURL, newURL string) {
	if oldURL != newURL {
		c.remove(ctx, oldURL)
	}
}
