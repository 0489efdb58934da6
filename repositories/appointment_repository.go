package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"randevu.link/configs/configslog"
	"randevu.link/models"

	"go.uber.org/zap"
)

// AppointmentsSlotKey randevu koleksiyonunun saklandığı bilinen anahtar.
const AppointmentsSlotKey = "appointments"

// AppointmentPredicate Query için filtre; nil tüm kayıtları kabul eder.
type AppointmentPredicate func(a *models.Appointment) bool

// IAppointmentRepository randevu koleksiyonu üzerindeki işlemler.
type IAppointmentRepository interface {
	Append(ctx context.Context, appointment *models.Appointment) error
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error
	Query(ctx context.Context, predicate AppointmentPredicate) ([]models.Appointment, error)
	FindByID(ctx context.Context, id string) (*models.Appointment, error)
}

// CollectionAppointmentRepository koleksiyonun tamamını tek bir JSON belgesi olarak saklar.
// Her işlem belgeyi okur, bellekte değiştirir ve bütün olarak geri yazar. Kilit yoktur;
// eşzamanlı iki değişiklikte son yazan kazanır.
type CollectionAppointmentRepository struct {
	store      ISlotStore
	key        string
	quotaBytes int
}

// NewAppointmentRepository quotaBytes <= 0 ise kota uygulanmaz.
func NewAppointmentRepository(store ISlotStore, quotaBytes int) *CollectionAppointmentRepository {
	return &CollectionAppointmentRepository{
		store:      store,
		key:        AppointmentsSlotKey,
		quotaBytes: quotaBytes,
	}
}

func (r *CollectionAppointmentRepository) readAll(ctx context.Context) ([]models.Appointment, error) {
	raw, err := r.store.Load(ctx, r.key)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return []models.Appointment{}, nil
	}
	var appointments []models.Appointment
	if err := json.Unmarshal(raw, &appointments); err != nil {
		configslog.Log.Error("Randevu koleksiyonu çözümlenemedi", zap.String("key", r.key), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorageCorrupted, err)
	}
	return appointments, nil
}

func (r *CollectionAppointmentRepository) writeAll(ctx context.Context, appointments []models.Appointment) error {
	data, err := json.Marshal(appointments)
	if err != nil {
		return err
	}
	if r.quotaBytes > 0 && len(data) > r.quotaBytes {
		configslog.Log.Warn("Randevu koleksiyonu kotayı aşıyor, yazma reddedildi",
			zap.Int("bytes", len(data)), zap.Int("quota", r.quotaBytes))
		return ErrStorageQuotaExceeded
	}
	return r.store.Save(ctx, r.key, data)
}

// Append kaydı koleksiyonun sonuna ekler. Yazma reddedilirse koleksiyon değişmez.
func (r *CollectionAppointmentRepository) Append(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil || appointment.ID == "" {
		return ErrInvalidRecord
	}
	appointments, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	appointments = append(appointments, *appointment)
	if err := r.writeAll(ctx, appointments); err != nil {
		configslog.Log.Error("Randevu eklenemedi", zap.String("id", appointment.ID), zap.Error(err))
		return err
	}
	return nil
}

// UpdateStatus kaydın yalnızca durumunu değiştirip koleksiyonu yeniden yazar.
// Geçiş kuralları servis katmanındadır.
func (r *CollectionAppointmentRepository) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	appointments, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	index := -1
	for i := range appointments {
		if appointments[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return ErrNotFound
	}
	appointments[index].Status = status
	if err := r.writeAll(ctx, appointments); err != nil {
		configslog.Log.Error("Randevu durumu güncellenemedi",
			zap.String("id", id), zap.String("status", string(status)), zap.Error(err))
		return err
	}
	return nil
}

// Query eşleşen kayıtları CreatedAt'e göre yeniden eskiye sıralı döner.
func (r *CollectionAppointmentRepository) Query(ctx context.Context, predicate AppointmentPredicate) ([]models.Appointment, error) {
	appointments, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]models.Appointment, 0, len(appointments))
	for i := range appointments {
		if predicate == nil || predicate(&appointments[i]) {
			result = append(result, appointments[i])
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *CollectionAppointmentRepository) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	matches, err := r.Query(ctx, ByID(id))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrNotFound
	}
	return &matches[0], nil
}

var _ IAppointmentRepository = (*CollectionAppointmentRepository)(nil)

// --- Filtreler ---

func ByID(id string) AppointmentPredicate {
	return func(a *models.Appointment) bool { return a.ID == id }
}

func ByStatus(status models.AppointmentStatus) AppointmentPredicate {
	return func(a *models.Appointment) bool { return a.Status == status }
}

func ByKind(kind models.AppointmentKind) AppointmentPredicate {
	return func(a *models.Appointment) bool { return a.Kind() == kind }
}

func ByStudent(student string) AppointmentPredicate {
	return func(a *models.Appointment) bool { return a.Student == student }
}

func ByDate(date string) AppointmentPredicate {
	return func(a *models.Appointment) bool { return a.Date == date }
}

// And tüm filtreleri sağlayan kayıtları kabul eder; nil filtreler yok sayılır.
func And(predicates ...AppointmentPredicate) AppointmentPredicate {
	return func(a *models.Appointment) bool {
		for _, p := range predicates {
			if p != nil && !p(a) {
				return false
			}
		}
		return true
	}
}
