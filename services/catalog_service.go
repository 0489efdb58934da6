package services

import (
	"context"
	"errors"
	"strings"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/pkg/filter"
	"randevu.link/pkg/markdown"
	"randevu.link/pkg/turkishsearch"
	"randevu.link/repositories"

	"go.uber.org/zap"
)

type CatalogServiceError string

func (e CatalogServiceError) Error() string { return string(e) }

const (
	ErrAcademicNotFound CatalogServiceError = "akademisyen bulunamadı"
	ErrUnitNotFound     CatalogServiceError = "birim bulunamadı"
	ErrTypeNotFound     CatalogServiceError = "randevu türü bulunamadı"
	ErrCatalogLoad      CatalogServiceError = "katalog verileri okunamadı"
)

// SearchEmptySection global aramada boş kalan her bölümün mesajı.
const SearchEmptySection = "Bu kategoride sonuç bulunamadı."

// SearchResults global arama sonuçları; her bölüm ayrı boş durum gösterir.
type SearchResults struct {
	Query         string
	Academics     []models.Academic
	Units         []models.Unit
	Departments   []models.Department
	Announcements []models.Announcement
}

func (r *SearchResults) Total() int {
	return len(r.Academics) + len(r.Units) + len(r.Departments) + len(r.Announcements)
}

// ICatalogService katalog listeleri, filtreler ve arama.
type ICatalogService interface {
	FilterAcademics(ctx context.Context, criteria filter.AcademicCriteria) (filter.Result[models.Academic], error)
	FilterAnnouncements(ctx context.Context, criteria filter.AnnouncementCriteria) (filter.Result[models.Announcement], error)
	LatestAnnouncements(ctx context.Context, limit int) ([]models.Announcement, error)
	ResolveAcademic(ctx context.Context, slug string) (*models.Academic, error)
	Academics(ctx context.Context) ([]models.Academic, error)
	GetUnit(ctx context.Context, slug string) (*models.Unit, error)
	Units(ctx context.Context) ([]models.Unit, error)
	Departments(ctx context.Context) ([]models.Department, error)
	Faculties(ctx context.Context) ([]models.Faculty, error)
	AppointmentTypes(ctx context.Context, forUnits bool) ([]models.AppointmentType, error)
	GetAppointmentType(ctx context.Context, slug string) (*models.AppointmentType, error)
	Search(ctx context.Context, query string) (*SearchResults, error)
}

type CatalogService struct {
	repo repositories.ICatalogRepository
}

func NewCatalogService(repo repositories.ICatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) FilterAcademics(ctx context.Context, criteria filter.AcademicCriteria) (filter.Result[models.Academic], error) {
	academics, err := s.repo.Academics(ctx)
	if err != nil {
		configslog.Log.Error("Akademisyenler okunamadı", zap.Error(err))
		return filter.Result[models.Academic]{}, ErrCatalogLoad
	}
	return filter.Academics(academics, criteria), nil
}

func (s *CatalogService) FilterAnnouncements(ctx context.Context, criteria filter.AnnouncementCriteria) (filter.Result[models.Announcement], error) {
	announcements, err := s.announcements(ctx)
	if err != nil {
		return filter.Result[models.Announcement]{}, err
	}
	return filter.Announcements(announcements, criteria), nil
}

// LatestAnnouncements yayın tarihine göre en yeni duyurular; limit <= 0 hepsini döner.
func (s *CatalogService) LatestAnnouncements(ctx context.Context, limit int) ([]models.Announcement, error) {
	announcements, err := s.announcements(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(announcements) > limit {
		announcements = announcements[:limit]
	}
	return announcements, nil
}

// announcements markdown içeriği HTML'e çevrilmiş duyurular.
func (s *CatalogService) announcements(ctx context.Context) ([]models.Announcement, error) {
	announcements, err := s.repo.Announcements(ctx)
	if err != nil {
		configslog.Log.Error("Duyurular okunamadı", zap.Error(err))
		return nil, ErrCatalogLoad
	}
	for i := range announcements {
		html, err := markdown.ToHTML(announcements[i].Content)
		if err != nil {
			configslog.Log.Warn("Duyuru içeriği işlenemedi", zap.String("slug", announcements[i].Slug), zap.Error(err))
			continue
		}
		announcements[i].ContentHTML = html
	}
	return announcements, nil
}

// ResolveAcademic önce kimliği birebir arar. Bulunamazsa kimlikteki "-" boşluğa çevrilir
// ve küçük harfli ismi bu metni içeren ilk akademisyen döner.
func (s *CatalogService) ResolveAcademic(ctx context.Context, slug string) (*models.Academic, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrAcademicNotFound
	}
	academic, err := s.repo.AcademicBySlug(ctx, slug)
	if err == nil {
		return academic, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		configslog.Log.Error("Akademisyen okunamadı", zap.String("slug", slug), zap.Error(err))
		return nil, ErrCatalogLoad
	}

	academics, err := s.repo.Academics(ctx)
	if err != nil {
		return nil, ErrCatalogLoad
	}
	needle := strings.ReplaceAll(slug, "-", " ")
	for i := range academics {
		if turkishsearch.Contains(academics[i].Name, needle) {
			return &academics[i], nil
		}
	}
	return nil, ErrAcademicNotFound
}

func (s *CatalogService) Academics(ctx context.Context) ([]models.Academic, error) {
	return s.repo.Academics(ctx)
}

func (s *CatalogService) GetUnit(ctx context.Context, slug string) (*models.Unit, error) {
	unit, err := s.repo.UnitBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, ErrCatalogLoad
	}
	return unit, nil
}

func (s *CatalogService) Units(ctx context.Context) ([]models.Unit, error) {
	return s.repo.Units(ctx)
}

func (s *CatalogService) Departments(ctx context.Context) ([]models.Department, error) {
	return s.repo.Departments(ctx)
}

func (s *CatalogService) Faculties(ctx context.Context) ([]models.Faculty, error) {
	return s.repo.Faculties(ctx)
}

// AppointmentTypes forUnits true ise yalnızca birim formunda sunulan türler döner.
func (s *CatalogService) AppointmentTypes(ctx context.Context, forUnits bool) ([]models.AppointmentType, error) {
	types, err := s.repo.AppointmentTypes(ctx)
	if err != nil || !forUnits {
		return types, err
	}
	out := types[:0]
	for _, t := range types {
		if t.ForUnits {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *CatalogService) GetAppointmentType(ctx context.Context, slug string) (*models.AppointmentType, error) {
	t, err := s.repo.AppointmentTypeBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTypeNotFound
		}
		return nil, ErrCatalogLoad
	}
	return t, nil
}

// Search akademisyenleri (isim/bölüm), birimleri (isim/açıklama), bölümleri (isim/fakülte)
// ve duyuruları (başlık/kategori) tarar.
func (s *CatalogService) Search(ctx context.Context, query string) (*SearchResults, error) {
	results := &SearchResults{Query: strings.TrimSpace(query)}

	academics, err := s.repo.Academics(ctx)
	if err != nil {
		return nil, ErrCatalogLoad
	}
	for _, a := range academics {
		if turkishsearch.ContainsAny(results.Query, a.FullName(), a.Department) {
			results.Academics = append(results.Academics, a)
		}
	}

	units, err := s.repo.Units(ctx)
	if err != nil {
		return nil, ErrCatalogLoad
	}
	for _, u := range units {
		if turkishsearch.ContainsAny(results.Query, u.Name, u.Description) {
			results.Units = append(results.Units, u)
		}
	}

	departments, err := s.repo.Departments(ctx)
	if err != nil {
		return nil, ErrCatalogLoad
	}
	for _, d := range departments {
		if turkishsearch.ContainsAny(results.Query, d.Name, d.FacultyName) {
			results.Departments = append(results.Departments, d)
		}
	}

	announcements, err := s.repo.Announcements(ctx)
	if err != nil {
		return nil, ErrCatalogLoad
	}
	for _, a := range announcements {
		if turkishsearch.ContainsAny(results.Query, a.Title, a.Category) {
			results.Announcements = append(results.Announcements, a)
		}
	}
	return results, nil
}

var _ ICatalogService = (*CatalogService)(nil)
