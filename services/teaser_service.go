package services

import (
	"context"
	"fmt"
	"time"

	"randevu.link/configs/configslog"
	"randevu.link/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Ana sayfa duyuru özetinin satır içi mesajları.
const (
	TeaserEmptyMessage = "Gösterilecek duyuru bulunmamaktadır."
	TeaserErrorMessage = "Duyurular yüklenirken bir sorun oluştu. Lütfen daha sonra tekrar deneyin."
)

// FeedItem /api/duyurular akışındaki tek duyuru.
type FeedItem struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Category    string    `json:"category"`
	Department  string    `json:"department"`
	PublishedAt time.Time `json:"published_at"`
}

// NewFeedItem katalog duyurusunu akış öğesine çevirir.
func NewFeedItem(a models.Announcement) FeedItem {
	return FeedItem{
		Slug:        a.Slug,
		Title:       a.Title,
		Summary:     a.Summary,
		Category:    a.Category,
		Department:  a.Department,
		PublishedAt: a.PublishedAt,
	}
}

// Teaser ana sayfada gösterilen özet; Message doluysa Items yerine o gösterilir.
type Teaser struct {
	Items   []FeedItem
	Message string
	Failed  bool
}

type ITeaserService interface {
	Load(ctx context.Context) Teaser
}

// TeaserService duyuru akışını HTTP ile çeker. Hata sayfayı düşürmez, satır içi mesaja dönüşür.
type TeaserService struct {
	feedURL string
	timeout time.Duration
	limit   int
}

// DefaultTeaserTimeout sıfır ya da negatif zaman aşımı verildiğinde kullanılır.
const DefaultTeaserTimeout = 3 * time.Second

func NewTeaserService(feedURL string, timeout time.Duration, limit int) *TeaserService {
	if limit <= 0 {
		limit = 6
	}
	if timeout <= 0 {
		timeout = DefaultTeaserTimeout
	}
	return &TeaserService{feedURL: feedURL, timeout: timeout, limit: limit}
}

func (s *TeaserService) fetch(ctx context.Context) ([]FeedItem, error) {
	timeout := s.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return nil, context.DeadlineExceeded
	}

	var items []FeedItem
	agent := fiber.Get(s.feedURL).Timeout(timeout)
	code, _, errs := agent.Struct(&items)
	if len(errs) > 0 {
		return nil, errs[0]
	}
	if code != fiber.StatusOK {
		return nil, fmt.Errorf("duyuru akışı %d döndü", code)
	}
	return items, nil
}

// Load ilk `limit` duyuruyu döner. Tek bir başarı ya da hata sonucu vardır, yeniden deneme yapılmaz.
func (s *TeaserService) Load(ctx context.Context) Teaser {
	items, err := s.fetch(ctx)
	if err != nil {
		configslog.Log.Warn("Duyuru akışı alınamadı", zap.String("url", s.feedURL), zap.Error(err))
		return Teaser{Message: TeaserErrorMessage, Failed: true}
	}
	if len(items) == 0 {
		return Teaser{Message: TeaserEmptyMessage}
	}
	if len(items) > s.limit {
		items = items[:s.limit]
	}
	return Teaser{Items: items}
}

var _ ITeaserService = (*TeaserService)(nil)
