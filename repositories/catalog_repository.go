package repositories

import (
	"context"

	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICatalogRepository sabit katalog verilerine (akademisyenler, birimler, duyurular...) erişim.
type ICatalogRepository interface {
	Academics(ctx context.Context) ([]models.Academic, error)
	AcademicBySlug(ctx context.Context, slug string) (*models.Academic, error)
	Units(ctx context.Context) ([]models.Unit, error)
	UnitBySlug(ctx context.Context, slug string) (*models.Unit, error)
	Departments(ctx context.Context) ([]models.Department, error)
	Faculties(ctx context.Context) ([]models.Faculty, error)
	AppointmentTypes(ctx context.Context) ([]models.AppointmentType, error)
	AppointmentTypeBySlug(ctx context.Context, slug string) (*models.AppointmentType, error)
	Announcements(ctx context.Context) ([]models.Announcement, error)
}

// CatalogRepository ICatalogRepository'nin GORM uygulaması.
type CatalogRepository struct {
	academics     *BaseRepository[models.Academic]
	units         *BaseRepository[models.Unit]
	departments   *BaseRepository[models.Department]
	faculties     *BaseRepository[models.Faculty]
	types         *BaseRepository[models.AppointmentType]
	announcements *BaseRepository[models.Announcement]
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		academics:     NewBaseRepository[models.Academic](db, "id asc"),
		units:         NewBaseRepository[models.Unit](db, "id asc"),
		departments:   NewBaseRepository[models.Department](db, "name asc"),
		faculties:     NewBaseRepository[models.Faculty](db, "id asc"),
		types:         NewBaseRepository[models.AppointmentType](db, "sort_order asc, id asc"),
		announcements: NewBaseRepository[models.Announcement](db, "published_at desc, id desc"),
	}
}

func (r *CatalogRepository) Academics(ctx context.Context) ([]models.Academic, error) {
	return r.academics.FindAll(ctx, "")
}

func (r *CatalogRepository) AcademicBySlug(ctx context.Context, slug string) (*models.Academic, error) {
	return r.academics.FindBySlug(ctx, slug)
}

func (r *CatalogRepository) Units(ctx context.Context) ([]models.Unit, error) {
	return r.units.FindAll(ctx, "")
}

func (r *CatalogRepository) UnitBySlug(ctx context.Context, slug string) (*models.Unit, error) {
	return r.units.FindBySlug(ctx, slug)
}

// Departments bölümleri fakülte adlarıyla birlikte döner.
func (r *CatalogRepository) Departments(ctx context.Context) ([]models.Department, error) {
	departments, err := r.departments.FindAll(ctx, "")
	if err != nil {
		return nil, err
	}
	faculties, err := r.faculties.FindAll(ctx, "")
	if err != nil {
		configslog.Log.Warn("Fakülteler okunamadı, bölümler fakülte adı olmadan listelenecek", zap.Error(err))
		return departments, nil
	}
	names := make(map[string]string, len(faculties))
	for _, f := range faculties {
		names[f.Key] = f.Name
	}
	for i := range departments {
		departments[i].FacultyName = names[departments[i].FacultyKey]
	}
	return departments, nil
}

func (r *CatalogRepository) Faculties(ctx context.Context) ([]models.Faculty, error) {
	return r.faculties.FindAll(ctx, "")
}

func (r *CatalogRepository) AppointmentTypes(ctx context.Context) ([]models.AppointmentType, error) {
	return r.types.FindAll(ctx, "")
}

func (r *CatalogRepository) AppointmentTypeBySlug(ctx context.Context, slug string) (*models.AppointmentType, error) {
	return r.types.FindBySlug(ctx, slug)
}

func (r *CatalogRepository) Announcements(ctx context.Context) ([]models.Announcement, error) {
	return r.announcements.FindAll(ctx, "")
}

var _ ICatalogRepository = (*CatalogRepository)(nil)
var _ IBaseRepository[models.Academic] = (*BaseRepository[models.Academic])(nil)
