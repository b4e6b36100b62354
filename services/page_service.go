package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/akinalp/milan/models"
)

// PageService, public sayfaların tek istekte ihtiyaç duyduğu veriyi toplar.
// Her aggregate kendi kaynaklarını errgroup ile paralel okur.
type PageService interface {
	Home(ctx context.Context) (*models.HomePage, error)
	Menu(ctx context.Context) (*models.MenuPage, error)
	Gallery(ctx context.Context) (*models.GalleryPage, error)
	About(ctx context.Context) (*models.AboutPage, error)
	SiteInfo(ctx context.Context) (*models.SiteInfo, error)
}

type pageService struct {
	menu       MenuService
	highlights HighlightService
	scans      ScanService
	reviews    ReviewService
	hero       SlideService
	makrana    SlideService
	gallery    GalleryService
	settings   SettingsService
	restaurant string
}

// NewPageService, constructor.
func NewPageService(
	menu MenuService,
	highlights HighlightService,
	scans ScanService,
	reviews ReviewService,
	hero, makrana SlideService,
	gallery GalleryService,
	settings SettingsService,
	restaurant string,
) PageService {
	return &pageService{
		menu:       menu,
		highlights: highlights,
		scans:      scans,
		reviews:    reviews,
		hero:       hero,
		makrana:    makrana,
		gallery:    gallery,
		settings:   settings,
		restaurant: restaurant,
	}
}

// contactAndLogo, iletişim ve logo okumasını gruba ekler.
func (s *pageService) contactAndLogo(ctx context.Context, g *errgroup.Group, contact *models.ContactInfo, logo *string) {
	g.Go(func() error {
		c, err := s.settings.GetContact(ctx)
		if err != nil {
			return err
		}
		*contact = *c
		return nil
	})
	g.Go(func() (err error) {
		*logo, err = s.settings.GetLogo(ctx)
		return err
	})
}

func (s *pageService) Home(ctx context.Context) (*models.HomePage, error) {
	var page models.HomePage
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		page.Featured, err = s.menu.Featured(ctx, HomeFeaturedLimit)
		return err
	})
	g.Go(func() (err error) {
		page.Reviews, err = s.reviews.ListApproved(ctx)
		return err
	})
	g.Go(func() (err error) {
		page.HeroImages, err = s.hero.URLs(ctx)
		return err
	})
	g.Go(func() (err error) {
		page.MakranaImages, err = s.makrana.URLs(ctx)
		return err
	})
	g.Go(func() (err error) {
		page.Showcase, err = s.gallery.Showcase(ctx)
		return err
	})
	s.contactAndLogo(ctx, g, &page.Contact, &page.LogoURL)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *pageService) Menu(ctx context.Context) (*models.MenuPage, error) {
	var (
		page  models.MenuPage
		items []models.MenuItem
	)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		page.Highlights, err = s.highlights.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		page.Scans, err = s.scans.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		items, err = s.menu.List(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	page.Items = items
	page.Categories = MenuCategories(items)
	page.Featured = FeaturedItems(items, MenuFeaturedLimit)
	return &page, nil
}

func (s *pageService) Gallery(ctx context.Context) (*models.GalleryPage, error) {
	images, err := s.gallery.List(ctx)
	if err != nil {
		return nil, err
	}
	return &models.GalleryPage{Images: images}, nil
}

func (s *pageService) About(ctx context.Context) (*models.AboutPage, error) {
	var page models.AboutPage
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		page.HeroImages, err = s.hero.URLs(ctx)
		return err
	})
	s.contactAndLogo(ctx, g, &page.Contact, &page.LogoURL)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *pageService) SiteInfo(ctx context.Context) (*models.SiteInfo, error) {
	info := models.SiteInfo{RestaurantName: s.restaurant}
	g, ctx := errgroup.WithContext(ctx)
	s.contactAndLogo(ctx, g, &info.Contact, &info.LogoURL)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &info, nil
}
