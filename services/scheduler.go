package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/akinalp/milan/pkg/email"
	"github.com/akinalp/milan/pkg/metrics"
	"github.com/akinalp/milan/repository"
	"github.com/akinalp/milan/ws"
)

// Job isimleri (metrics label'ı olarak da kullanılır).
const (
	JobLowStockDigest = "low_stock_digest"
	JobCartPurge      = "cart_purge"
)

// cartPurgeSchedule, süresi dolmuş sepetlerin silinme sıklığı.
const cartPurgeSchedule = "@every 1h"

// jobTimeout, tek bir job çalışmasının üst süresi.
const jobTimeout = 2 * time.Minute

// errJobPanicked, panic ile biten job'un metrics'e yazılan hatası.
var errJobPanicked = errors.New("job panicked")

// Scheduler, periyodik arka plan işleri.
//
//   - Düşük stok özeti: eşiğin altındaki kalemler sahibe email ile gider,
//     bağlı admin panellerine stock_low event'i yayınlanır.
//   - Sepet temizliği: süresi dolmuş sepetler silinir (Redis'te no-op).
type Scheduler struct {
	cron      *cron.Cron
	stockRepo repository.StockRepository
	carts     repository.CartStore
	notifier  email.Notifier
	hub       ws.Publisher
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewScheduler, job'ları kaydeder ama başlatmaz. lowStockSchedule standart
// 5 alanlı cron ifadesidir; geçersizse hata döner.
func NewScheduler(
	lowStockSchedule string,
	stockRepo repository.StockRepository,
	carts repository.CartStore,
	notifier email.Notifier,
	hub ws.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) (*Scheduler, error) {
	logger = logger.Named("scheduler")
	cl := cronLogger{logger.Sugar()}
	s := &Scheduler{
		cron:      cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl))),
		stockRepo: stockRepo,
		carts:     carts,
		notifier:  notifier,
		hub:       hub,
		metrics:   m,
		logger:    logger,
	}

	if _, err := s.cron.AddFunc(lowStockSchedule, s.wrap(JobLowStockDigest, s.LowStockDigest)); err != nil {
		return nil, fmt.Errorf("invalid low stock schedule %q: %w", lowStockSchedule, err)
	}
	if _, err := s.cron.AddFunc(cartPurgeSchedule, s.wrap(JobCartPurge, s.PurgeCarts)); err != nil {
		return nil, fmt.Errorf("invalid cart purge schedule: %w", err)
	}
	return s, nil
}

// Start, cron'u kendi goroutine'inde başlatır.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop, yeni çalışmaları durdurur ve süren job'ların bitmesini ctx süresince bekler.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("scheduler stop timed out, jobs still running")
	}
}

func (s *Scheduler) wrap(name string, job func(ctx context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				s.metrics.JobRan(name, errJobPanicked)
				s.logger.Error("job panicked",
					zap.String("job", name),
					zap.Any("panic", r),
					zap.Stack("stack"),
				)
			}
		}()

		err := job(ctx)
		s.metrics.JobRan(name, err)
		if err != nil {
			s.logger.Error("job failed", zap.String("job", name), zap.Error(err))
		}
	}
}

// LowStockDigest, düşük stok kalemlerini toplar ve bildirir.
// Düşük kalem yoksa hiçbir şey göndermez.
func (s *Scheduler) LowStockDigest(ctx context.Context) error {
	items, err := s.stockRepo.ListLow(ctx)
	if err != nil {
		return fmt.Errorf("failed to list low stock: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	s.hub.Publish(ws.Event{Op: ws.OpStockLow, Data: items})
	if err := s.notifier.NotifyLowStock(ctx, items); err != nil {
		return err
	}

	s.logger.Info("low stock digest sent", zap.Int("items", len(items)))
	return nil
}

// PurgeCarts, süresi dolmuş sepetleri siler.
func (s *Scheduler) PurgeCarts(ctx context.Context) error {
	n, err := s.carts.PurgeExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge carts: %w", err)
	}
	if n > 0 {
		s.logger.Info("expired carts purged", zap.Int64("count", n))
	}
	return nil
}

// cronLogger, cron'un kendi loglarını zap'e yönlendirir. Her tetiklenmeyi
// Info ile yazdığı için Debug seviyesine indirilir.
type cronLogger struct {
	l *zap.SugaredLogger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debugw(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Errorw(msg, append(keysAndValues, "error", err)...)
}
