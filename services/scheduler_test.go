package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg/metrics"
	"github.com/akinalp/milan/repository"
	"github.com/akinalp/milan/ws"
)

func newSchedulerFixture(t *testing.T, notifier *fakeNotifier) (*Scheduler, repository.StockRepository, *recordingHub, *memCartStore) {
	t.Helper()
	stock := repository.NewSQLiteStockRepo(newTestDB(t))
	hub := &recordingHub{}
	carts := newMemCartStore()

	s, err := NewScheduler("0 9 * * *", stock, carts, notifier, hub, metrics.New(), zap.NewNop())
	require.NoError(t, err)
	return s, stock, hub, carts
}

func TestNewSchedulerRejectsBadSchedule(t *testing.T) {
	_, err := NewScheduler("every morning", nil, nil, nil, nil, metrics.New(), zap.NewNop())
	assert.ErrorContains(t, err, "invalid low stock schedule")
}

func TestLowStockDigest(t *testing.T) {
	notifier := newFakeNotifier()
	s, stock, hub, _ := newSchedulerFixture(t, notifier)
	ctx := context.Background()

	// Düşük stok yoksa sessiz.
	require.NoError(t, s.LowStockDigest(ctx))
	assert.Empty(t, hub.ops())
	assert.Empty(t, notifier.lowStock)

	require.NoError(t, stock.Create(ctx, &models.StockItem{Name: "Paneer", Quantity: 1, Unit: "kg", MinThreshold: 5}))
	require.NoError(t, stock.Create(ctx, &models.StockItem{Name: "Rice", Quantity: 40, Unit: "kg", MinThreshold: 5}))

	require.NoError(t, s.LowStockDigest(ctx))
	assert.Equal(t, []string{ws.OpStockLow}, hub.ops())
	require.Len(t, notifier.lowStock, 1)
	items := <-notifier.lowStock
	require.Len(t, items, 1)
	assert.Equal(t, "Paneer", items[0].Name)
}

func TestLowStockDigestNotifyError(t *testing.T) {
	notifier := newFakeNotifier()
	notifier.err = errors.New("resend down")
	s, stock, _, _ := newSchedulerFixture(t, notifier)
	ctx := context.Background()

	require.NoError(t, stock.Create(ctx, &models.StockItem{Name: "Milk", Quantity: 0, Unit: "L", MinThreshold: 10}))
	assert.ErrorContains(t, s.LowStockDigest(ctx), "resend down")
}

func TestPurgeCarts(t *testing.T) {
	s, _, _, carts := newSchedulerFixture(t, newFakeNotifier())
	carts.purged = 3

	assert.NoError(t, s.PurgeCarts(context.Background()))
}

func TestSchedulerStartStop(t *testing.T) {
	s, _, _, _ := newSchedulerFixture(t, newFakeNotifier())

	s.Start()
	s.Stop(context.Background())
}

// panickingStock, ListLow'da panic atan stok deposu.
type panickingStock struct {
	repository.StockRepository
}

func (panickingStock) ListLow(context.Context) ([]models.StockItem, error) {
	panic("stock table gone")
}

func TestSchedulerRecoversPanickingJob(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := metrics.New()
	s, err := NewScheduler("0 9 * * *", panickingStock{}, newMemCartStore(), newFakeNotifier(), &recordingHub{}, m, zap.New(core))
	require.NoError(t, err)

	for _, e := range s.cron.Entries() {
		assert.NotPanics(t, e.WrappedJob.Run)
	}

	panics := logs.FilterMessage("job panicked").All()
	require.Len(t, panics, 1)
	fields := panics[0].ContextMap()
	assert.Equal(t, JobLowStockDigest, fields["job"])
	assert.Equal(t, "stock table gone", fields["panic"])
	assert.Contains(t, fields, "stack")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `milan_jobs_runs_total{job="low_stock_digest",result="error"} 1`)
	assert.Contains(t, body, `milan_jobs_runs_total{job="cart_purge",result="ok"} 1`)
}
