package handlers

import (
	"net/http"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/services"
)

// ReviewHandler, public yorum akışı ve admin moderasyonu.
type ReviewHandler struct {
	reviewService services.ReviewService
}

// NewReviewHandler, constructor.
func NewReviewHandler(reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Feed godoc
// GET /api/reviews?source=Google&tag=Food&sort=relevant
// Sadece onaylı yorumlar; yanıt etiket sayıları ve puan istatistiklerini de taşır.
func (h *ReviewHandler) Feed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	feed, err := h.reviewService.Feed(r.Context(), services.FeedQuery{
		Source: q.Get("source"),
		Tag:    q.Get("tag"),
		Sort:   q.Get("sort"),
	})
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, feed)
}

// Submit godoc
// POST /api/reviews
// Ziyaretçi yorumu onay bekler; yanıt 202 Accepted.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	review, err := h.reviewService.Submit(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusAccepted, review)
}

// AdminList godoc
// GET /api/admin/reviews
func (h *ReviewHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.ListAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, reviews)
}

// Create godoc
// POST /api/admin/reviews
// Admin başka platformlardan (Google, Zomato...) yorum aktarabilir.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	review, err := h.reviewService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, review)
}

// Update godoc
// PATCH /api/admin/reviews/{id}
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	review, err := h.reviewService.Update(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, review)
}

// SetApproved godoc
// PUT /api/admin/reviews/{id}/approval
// Body: { "approved": true }
func (h *ReviewHandler) SetApproved(w http.ResponseWriter, r *http.Request) {
	var req models.ApproveReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	review, err := h.reviewService.SetApproved(r.Context(), r.PathValue("id"), req.Approved)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, review)
}

// ToggleApproved godoc
// POST /api/admin/reviews/{id}/toggle
func (h *ReviewHandler) ToggleApproved(w http.ResponseWriter, r *http.Request) {
	review, err := h.reviewService.ToggleApproved(r.Context(), r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, review)
}

// Reply godoc
// PUT /api/admin/reviews/{id}/reply
// Boş response mevcut yanıtı siler.
func (h *ReviewHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var req models.ReplyReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	review, err := h.reviewService.Reply(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, review)
}

// Delete godoc
// DELETE /api/admin/reviews/{id}
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.reviewService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}
	deleted(w)
}
