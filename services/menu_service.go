package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/pkg/objectstore"
	"github.com/akinalp/milan/repository"
)

// CategoryAll, "filtre yok" anlamına gelen kategori.
const CategoryAll = "All"

// Ana sayfa ve menü sayfasında gösterilen öne çıkan yemek sayıları.
const (
	HomeFeaturedLimit = 6
	MenuFeaturedLimit = 4
)

// MenuService, menü iş mantığı interface'i.
type MenuService interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	Get(ctx context.Context, id string) (*models.MenuItem, error)
	// Filter, public menü sorgusu: kategori ve isim araması.
	Filter(ctx context.Context, category, search string) ([]models.MenuItem, error)
	Categories(ctx context.Context) ([]string, error)
	Featured(ctx context.Context, limit int) ([]models.MenuItem, error)
	Create(ctx context.Context, req *models.CreateMenuItemRequest) (*models.MenuItem, error)
	Update(ctx context.Context, id string, req *models.UpdateMenuItemRequest) (*models.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

type menuService struct {
	menuRepo repository.MenuRepository
	images   imageCleaner
}

// NewMenuService, constructor.
func NewMenuService(menuRepo repository.MenuRepository, store objectstore.Store, logger *zap.Logger) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		images:   newImageCleaner(store, logger.Named("menu")),
	}
}

func (s *menuService) List(ctx context.Context) ([]models.MenuItem, error) {
	return s.menuRepo.List(ctx)
}

func (s *menuService) Get(ctx context.Context, id string) (*models.MenuItem, error) {
	return s.menuRepo.GetByID(ctx, id)
}

func (s *menuService) Filter(ctx context.Context, category, search string) ([]models.MenuItem, error) {
	items, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterMenu(items, category, search), nil
}

func (s *menuService) Categories(ctx context.Context) ([]string, error) {
	items, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return MenuCategories(items), nil
}

func (s *menuService) Featured(ctx context.Context, limit int) ([]models.MenuItem, error) {
	items, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FeaturedItems(items, limit), nil
}

func (s *menuService) Create(ctx context.Context, req *models.CreateMenuItemRequest) (*models.MenuItem, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	isVeg := true
	if req.IsVeg != nil {
		isVeg = *req.IsVeg
	}

	item := &models.MenuItem{
		Name:       req.Name,
		Price:      req.Price,
		Category:   req.Category,
		IsVeg:      isVeg,
		Image:      req.Image,
		IsFeatured: req.IsFeatured,
	}
	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return item, nil
}

func (s *menuService) Update(ctx context.Context, id string, req *models.UpdateMenuItemRequest) (*models.MenuItem, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldImage := item.Image

	req.Apply(item)
	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.images.replaced(ctx, oldImage, item.Image)
	return item, nil
}

func (s *menuService) Delete(ctx context.Context, id string) error {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.menuRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.images.remove(ctx, item.Image)
	return nil
}

// FilterMenu, kategori (boş veya "All" = hepsi) ve isimde büyük/küçük harf
// duyarsız arama ile süzer. Sıra korunur.
func FilterMenu(items []models.MenuItem, category, search string) []models.MenuItem {
	category = strings.TrimSpace(category)
	query := strings.ToLower(strings.TrimSpace(search))

	out := make([]models.MenuItem, 0, len(items))
	for _, it := range items {
		if category != "" && category != CategoryAll && it.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(it.Name), query) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// MenuCategories, "All" ve ardından ilk görülme sırasıyla tekil kategoriler.
func MenuCategories(items []models.MenuItem) []string {
	seen := make(map[string]struct{}, len(items))
	cats := []string{CategoryAll}
	for _, it := range items {
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		cats = append(cats, it.Category)
	}
	return cats
}

// FeaturedItems, öne çıkan yemeklerin ilk limit tanesi.
func FeaturedItems(items []models.MenuItem, limit int) []models.MenuItem {
	out := []models.MenuItem{}
	for _, it := range items {
		if len(out) >= limit {
			break
		}
		if it.IsFeatured {
			out = append(out, it)
		}
	}
	return out
}
