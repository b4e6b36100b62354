package handlers

import (
	"context"
	"net/http"

	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/services"
)

// PageHandler, public sayfa aggregate'leri. Her sayfa tek istekle yüklenir.
type PageHandler struct {
	pageService services.PageService
}

// NewPageHandler, constructor.
func NewPageHandler(pageService services.PageService) *PageHandler {
	return &PageHandler{pageService: pageService}
}

func servePage[T any](w http.ResponseWriter, r *http.Request, load func(context.Context) (T, error)) {
	page, err := load(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, page)
}

// Home godoc
// GET /api/pages/home
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	servePage(w, r, h.pageService.Home)
}

// Menu godoc
// GET /api/pages/menu
func (h *PageHandler) Menu(w http.ResponseWriter, r *http.Request) {
	servePage(w, r, h.pageService.Menu)
}

// Gallery godoc
// GET /api/pages/gallery
func (h *PageHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	servePage(w, r, h.pageService.Gallery)
}

// About godoc
// GET /api/pages/about
func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	servePage(w, r, h.pageService.About)
}

// SiteInfo godoc
// GET /api/site
func (h *PageHandler) SiteInfo(w http.ResponseWriter, r *http.Request) {
	servePage(w, r, h.pageService.SiteInfo)
}
