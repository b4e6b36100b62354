package services

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// notifyTimeout, arka planda gönderilen bildirimin süre sınırı.
const notifyTimeout = 15 * time.Second

// notifyAsync, email bildirimini isteği bekletmeden gönderir.
// İstek context'inin iptali bildirimi iptal etmez; hata sadece loglanır.
func notifyAsync(ctx context.Context, logger *zap.Logger, what string, send func(context.Context) error) {
	bg := context.WithoutCancel(ctx)
	go func() {
		ctx, cancel := context.WithTimeout(bg, notifyTimeout)
		defer cancel()
		if err := send(ctx); err != nil {
			logger.Warn("notification failed", zap.String("kind", what), zap.Error(err))
		}
	}()
}
