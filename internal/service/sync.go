package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/motorent/internal/logger"
	"github.com/motorent/internal/model"
	"github.com/motorent/internal/store"
	"go.uber.org/zap"
)

// SyncService performs the read-merge-write cycle between the application and
// the content store. Loads fan out one fetch per entity a page needs and
// tolerate individual failures: a failed part stays at its zero value so a
// partial page still renders. Saves fire one write per singleton in the group
// and report a single aggregate result; writes that already succeeded are
// never rolled back when a sibling fails.
type SyncService struct {
	store *store.Client
	log   *zap.Logger
}

// NewSyncService constructs a SyncService over the given store client.
func NewSyncService(client *store.Client) *SyncService {
	return &SyncService{store: client, log: logger.Get()}
}

type syncTask struct {
	name string
	run  func(ctx context.Context) error
}

// runAll 并发执行全部任务，返回失败任务的名称；不取消兄弟任务。
func (s *SyncService) runAll(ctx context.Context, tasks []syncTask) []string {
	results := make([]string, len(tasks))
	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Add(1)
		go func(i int, task syncTask) {
			defer wg.Done()
			if err := task.run(ctx); err != nil {
				s.log.Warn("content sync task failed",
					zap.String("part", task.name),
					zap.Error(err))
				results[i] = task.name
			}
		}(i, task)
	}
	wg.Wait()

	failed := make([]string, 0, len(tasks))
	for _, name := range results {
		if name != "" {
			failed = append(failed, name)
		}
	}
	return failed
}

// saveAll runs the group's writes concurrently and folds the outcome into a
// single error. When only part of the group failed, the message says which
// half landed and which did not, instead of one opaque notice.
func (s *SyncService) saveAll(ctx context.Context, tasks []syncTask) error {
	failed := s.runAll(ctx, tasks)
	if len(failed) == 0 {
		return nil
	}

	saved := make([]string, 0, len(tasks))
	failedSet := make(map[string]bool, len(failed))
	for _, name := range failed {
		failedSet[name] = true
	}
	for _, task := range tasks {
		if !failedSet[task.name] {
			saved = append(saved, task.name)
		}
	}

	if len(saved) > 0 {
		return fmt.Errorf("%s saved, %s failed", strings.Join(saved, ", "), strings.Join(failed, ", "))
	}
	return fmt.Errorf("%s failed", strings.Join(failed, ", "))
}

// AboutPage aggregates everything the about page renders.
type AboutPage struct {
	Meta    model.PageMeta
	Content model.AboutContent
}

// LoadAboutPage fetches the about page's meta and content concurrently.
// Failed parts are reported by name and left at their zero value.
func (s *SyncService) LoadAboutPage(ctx context.Context) (AboutPage, []string) {
	var page AboutPage
	failed := s.runAll(ctx, []syncTask{
		{"meta", func(ctx context.Context) error {
			return s.store.GetJSON(ctx, model.PageMetaPath(model.PageAbout), &page.Meta)
		}},
		{"content", func(ctx context.Context) error {
			return s.store.GetJSON(ctx, model.PathAboutContent, &page.Content)
		}},
	})
	return page, failed
}

// SaveAboutPage writes the about page's meta and content as one group.
func (s *SyncService) SaveAboutPage(ctx context.Context, meta model.PageMeta, content model.AboutContent) error {
	return s.saveAll(ctx, []syncTask{
		{"header", func(ctx context.Context) error {
			return s.store.PutJSON(ctx, model.PageMetaPath(model.PageAbout), meta, nil)
		}},
		{"content", func(ctx context.Context) error {
			return s.store.PutJSON(ctx, model.PathAboutContent, content, nil)
		}},
	})
}

// BikesPage aggregates the fleet listing page.
type BikesPage struct {
	Meta     model.PageMeta
	Vehicles []model.Vehicle
}

// LoadBikesPage fetches the bikes page meta and the fleet concurrently.
func (s *SyncService) LoadBikesPage(ctx context.Context) (BikesPage, []string) {
	var page BikesPage
	failed := s.runAll(ctx, []syncTask{
		{"meta", func(ctx context.Context) error {
			return s.store.GetJSON(ctx, model.PageMetaPath(model.PageBikes), &page.Meta)
		}},
		{"vehicles", func(ctx context.Context) error {
			items, err := store.List[model.Vehicle](ctx, s.store, model.PathVehicles)
			if err != nil {
				return err
			}
			page.Vehicles = items
			return nil
		}},
	})
	return page, failed
}

// ContactPage aggregates the contact page.
type ContactPage struct {
	Meta   model.PageMeta
	Info   model.ContactInfo
	Fields []model.ContactField
}

// LoadContactPage fetches meta, contact info and the dynamic form fields.
func (s *SyncService) LoadContactPage(ctx context.Context) (ContactPage, []string) {
	var page ContactPage
	failed := s.runAll(ctx, []syncTask{
		{"meta", func(ctx context.Context) error {
			return s.store.GetJSON(ctx, model.PageMetaPath(model.PageContact), &page.Meta)
		}},
		{"info", func(ctx context.Context) error {
			return s.store.GetJSON(ctx, model.PathContactInfo, &page.Info)
		}},
		{"fields", func(ctx context.Context) error {
			items, err := store.List[model.ContactField](ctx, s.store, model.PathContactFields)
			if err != nil {
				return err
			}
			page.Fields = items
			return nil
		}},
	})
	return page, failed
}

// SaveContactPage writes the contact page's meta and info as one group.
func (s *SyncService) SaveContactPage(ctx context.Context, meta model.PageMeta, info model.ContactInfo) error {
	return s.saveAll(ctx, []syncTask{
		{"header", func(ctx context.Context) error {
			return s.store.PutJSON(ctx, model.PageMetaPath(model.PageContact), meta, nil)
		}},
		{"contact info", func(ctx context.Context) error {
			return s.store.PutJSON(ctx, model.PathContactInfo, info, nil)
		}},
	})
}

// GalleryPage aggregates the gallery page.
type GalleryPage struct {
	Meta   model.PageMeta
	Images []model.GalleryImage
}

// LoadGalleryPage fetches the gallery meta and photos concurrently.
func (s *SyncService) LoadGalleryPage(ctx context.Context) (GalleryPage, []string) {
	var page GalleryPage
	failed := s.runAll(ctx, []syncTask{
		{"meta", func(ctx context.Context) error {
			return s.store.GetJSON(ctx, model.PageMetaPath(model.PageGallery), &page.Meta)
		}},
		{"images", func(ctx context.Context) error {
			items, err := store.List[model.GalleryImage](ctx, s.store, model.PathGallery)
			if err != nil {
				return err
			}
			page.Images = items
			return nil
		}},
	})
	return page, failed
}

// HomePage aggregates the landing page: slides, feature cards, policy cards
// and the shared footer. Slides are returned in store order; the core does
// not sort by the Order field.
type HomePage struct {
	Meta     model.PageMeta
	Slides   []model.HeroSlide
	Features []model.Feature
	Policies []model.Policy
	Footer   model.FooterSettings
}

// LoadHomePage fetches all landing-page entities concurrently.
func (s *SyncService) LoadHomePage(ctx context.Context) (HomePage, []string) {
	var page HomePage
	failed := s.runAll(ctx, []syncTask{
		{"meta", func(ctx context.Context) error {
			return s.store.GetJSON(ctx, model.PageMetaPath(model.PageInclude), &page.Meta)
		}},
		{"slides", func(ctx context.Context) error {
			items, err := store.List[model.HeroSlide](ctx, s.store, model.PathHeroSlides)
			if err != nil {
				return err
			}
			page.Slides = items
			return nil
		}},
		{"features", func(ctx context.Context) error {
			items, err := store.List[model.Feature](ctx, s.store, model.PathFeatures)
			if err != nil {
				return err
			}
			page.Features = items
			return nil
		}},
		{"policies", func(ctx context.Context) error {
			items, err := store.List[model.Policy](ctx, s.store, model.PathPolicies)
			if err != nil {
				return err
			}
			page.Policies = items
			return nil
		}},
		{"footer", func(ctx context.Context) error {
			return s.store.GetJSON(ctx, model.PathFooterSettings, &page.Footer)
		}},
	})
	return page, failed
}

// SavePageMeta writes a single page's metadata singleton.
func (s *SyncService) SavePageMeta(ctx context.Context, pageKey string, meta model.PageMeta) error {
	return s.saveAll(ctx, []syncTask{
		{"header", func(ctx context.Context) error {
			return s.store.PutJSON(ctx, model.PageMetaPath(pageKey), meta, nil)
		}},
	})
}

// SaveFooter writes the footer settings singleton.
func (s *SyncService) SaveFooter(ctx context.Context, footer model.FooterSettings) error {
	return s.saveAll(ctx, []syncTask{
		{"footer", func(ctx context.Context) error {
			return s.store.PutJSON(ctx, model.PathFooterSettings, footer, nil)
		}},
	})
}
