// Package ws, admin paneline canlı bildirim taşıyan WebSocket katmanıdır.
//
// Mimari:
// - Hub: Tüm admin bağlantılarını yöneten merkezi yapı
// - Client: Her WebSocket bağlantısını temsil eder
// - Event: Server → admin paneli mesaj formatı
//
// Event akışı:
// 1. Ziyaretçi mesaj/yorum gönderir veya galeride like'lar → HTTP → Service → DB
// 2. Service, Hub'ın Publish metodunu çağırır
// 3. Hub, event'i bağlı tüm admin client'larına iletir
// 4. Her client'ın WritePump'ı event'i WebSocket'e yazar
package ws

// Event, WebSocket üzerinden iletilen bir mesajı temsil eder.
//
// Seq: Her outbound event'e verilen artan sayı. Panel eksik event'i
// fark ettiğinde ilgili listeyi HTTP ile yeniden çeker.
type Event struct {
	Op   string `json:"op"`
	Data any    `json:"d,omitempty"`
	Seq  int64  `json:"seq,omitempty"`
}

// Client → Server operasyonları
const (
	OpHeartbeat = "heartbeat" // Panel her 30sn'de gönderir
)

// Server → Client operasyonları
const (
	OpReady          = "ready"           // Bağlantı kurulduğunda ilk gönderilen
	OpHeartbeatAck   = "heartbeat_ack"   // Heartbeat'e yanıt
	OpMessageCreate  = "message_create"  // İletişim formundan yeni mesaj
	OpReviewCreate   = "review_create"   // Onay bekleyen yeni yorum
	OpGalleryLike    = "gallery_like"    // Galeri görseli like'landı
	OpGalleryReorder = "gallery_reorder" // Vitrin sıralaması değişti
	OpStockLow       = "stock_low"       // Düşük stok özeti (cron)
)

// ReadyData, bağlantı kurulduğunda gönderilen ilk event'in payload'ı.
type ReadyData struct {
	Username    string `json:"username"`
	Connections int    `json:"connections"`
}

// GalleryLikeData, gallery_like event payload'ı.
type GalleryLikeData struct {
	ID    string `json:"id"`
	Likes int    `json:"likes"`
}

// GalleryReorderData, gallery_reorder event payload'ı — vitrindeki id'ler sırasıyla.
type GalleryReorderData struct {
	IDs []string `json:"ids"`
}
