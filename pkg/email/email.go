// Package email, restoran sahibine giden bildirim email'lerini soyutlar.
//
// Service katmanı Notifier interface'ine bağımlıdır; concrete implementasyon
// Resend API'dir. Resend ayarlanmamışsa NewNopNotifier kullanılır —
// bildirimler sessizce atlanır, iş akışı etkilenmez.
package email

import (
	"context"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/akinalp/milan/models"
)

// Notifier, sahibe gönderilen bildirimler.
type Notifier interface {
	// NotifyNewMessage, iletişim formundan yeni mesaj geldiğinde.
	NotifyNewMessage(ctx context.Context, msg *models.CustomerMessage) error
	// NotifyPendingReview, onay bekleyen yeni bir yorum geldiğinde.
	NotifyPendingReview(ctx context.Context, review *models.Review) error
	// NotifyLowStock, günlük düşük stok özeti.
	NotifyLowStock(ctx context.Context, items []models.StockItem) error
}

// resendNotifier, Resend API ile email gönderen Notifier.
type resendNotifier struct {
	client     *resend.Client
	fromEmail  string
	ownerEmail string
	siteName   string
}

// NewResendNotifier, Resend client'ı ile yeni bir Notifier oluşturur.
//
// fromEmail Resend'de doğrulanmış domain altında olmalı.
// ownerEmail tüm bildirimlerin alıcısıdır.
func NewResendNotifier(apiKey, fromEmail, ownerEmail, siteName string) Notifier {
	return &resendNotifier{
		client:     resend.NewClient(apiKey),
		fromEmail:  fromEmail,
		ownerEmail: ownerEmail,
		siteName:   siteName,
	}
}

func (n *resendNotifier) send(ctx context.Context, subject, body string) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", n.siteName, n.fromEmail),
		To:      []string{n.ownerEmail},
		Subject: subject,
		Html:    wrapHTML(n.siteName, subject, body),
	}

	if _, err := n.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send %q email: %w", subject, err)
	}
	return nil
}

func (n *resendNotifier) NotifyNewMessage(ctx context.Context, msg *models.CustomerMessage) error {
	subject, body := RenderNewMessage(msg)
	return n.send(ctx, subject, body)
}

func (n *resendNotifier) NotifyPendingReview(ctx context.Context, review *models.Review) error {
	subject, body := RenderPendingReview(review)
	return n.send(ctx, subject, body)
}

func (n *resendNotifier) NotifyLowStock(ctx context.Context, items []models.StockItem) error {
	if len(items) == 0 {
		return nil
	}
	subject, body := RenderLowStock(items)
	return n.send(ctx, subject, body)
}

// nopNotifier, email ayarlanmadığında kullanılır.
type nopNotifier struct{}

// NewNopNotifier, hiçbir şey göndermeyen Notifier döner.
func NewNopNotifier() Notifier { return nopNotifier{} }

func (nopNotifier) NotifyNewMessage(context.Context, *models.CustomerMessage) error { return nil }
func (nopNotifier) NotifyPendingReview(context.Context, *models.Review) error      { return nil }
func (nopNotifier) NotifyLowStock(context.Context, []models.StockItem) error       { return nil }

// RenderNewMessage, yeni mesaj bildiriminin konu ve HTML gövdesini üretir.
// Kullanıcı girdisi HTML-escape edilir.
func RenderNewMessage(msg *models.CustomerMessage) (string, string) {
	subject := "New message from " + msg.Name
	var b strings.Builder
	b.WriteString(`<p style="color:#334155;font-size:15px;line-height:1.6;">`)
	fmt.Fprintf(&b, "<strong>%s</strong> (%s) wrote:", html.EscapeString(msg.Name), html.EscapeString(msg.Phone))
	b.WriteString("</p>")
	fmt.Fprintf(&b, `<blockquote style="border-left:3px solid #b91c1c;margin:0;padding:8px 16px;color:#475569;">%s</blockquote>`,
		strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>"))
	return subject, b.String()
}

// RenderPendingReview, onay bekleyen yorum bildirimini üretir.
func RenderPendingReview(r *models.Review) (string, string) {
	subject := fmt.Sprintf("New %d-star review awaiting approval", r.Rating)
	var b strings.Builder
	fmt.Fprintf(&b, `<p style="color:#334155;font-size:15px;"><strong>%s</strong> rated %s</p>`,
		html.EscapeString(r.UserName), strings.Repeat("★", r.Rating)+strings.Repeat("☆", 5-r.Rating))
	fmt.Fprintf(&b, `<blockquote style="border-left:3px solid #b91c1c;margin:0;padding:8px 16px;color:#475569;">%s</blockquote>`,
		html.EscapeString(r.Content))
	b.WriteString(`<p style="color:#64748b;font-size:13px;">Approve or delete it from the Reviews page of the admin panel.</p>`)
	return subject, b.String()
}

// RenderLowStock, düşük stok özetini tablo olarak üretir.
func RenderLowStock(items []models.StockItem) (string, string) {
	subject := fmt.Sprintf("Low stock: %d item(s) need restocking", len(items))
	var b strings.Builder
	b.WriteString(`<table cellpadding="6" style="border-collapse:collapse;font-size:14px;color:#334155;">`)
	b.WriteString(`<tr><th align="left">Item</th><th align="right">Quantity</th><th align="right">Minimum</th></tr>`)
	for _, it := range items {
		fmt.Fprintf(&b, `<tr><td>%s</td><td align="right">%s %s</td><td align="right">%s</td></tr>`,
			html.EscapeString(it.Name),
			formatQty(it.Quantity), html.EscapeString(it.Unit),
			formatQty(it.MinThreshold))
	}
	b.WriteString("</table>")
	return subject, b.String()
}

func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func wrapHTML(siteName, title, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="margin:0;padding:0;background-color:#fef2f2;font-family:Arial,Helvetica,sans-serif;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="padding:32px 0;">
    <tr>
      <td align="center">
        <table width="520" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;padding:32px;">
          <tr>
            <td>
              <h1 style="color:#991b1b;font-size:22px;margin:0 0 4px 0;">%s</h1>
              <h2 style="color:#1e293b;font-size:17px;margin:0 0 20px 0;">%s</h2>
              %s
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`, html.EscapeString(siteName), html.EscapeString(title), body)
}
