package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/pkg/queryparams"
	"randevu.link/pkg/turkishdate"
	"randevu.link/repositories"

	"go.uber.org/zap"
)

// AppointmentServiceError özel servis hataları
type AppointmentServiceError string

func (e AppointmentServiceError) Error() string { return string(e) }

const (
	ErrAppointmentNotFound       AppointmentServiceError = "randevu bulunamadı"
	ErrAppointmentCreationFailed AppointmentServiceError = "randevu kaydedilemedi"
	ErrAppointmentUpdateFailed   AppointmentServiceError = "randevu güncellenemedi"
	ErrAppointmentForbidden      AppointmentServiceError = "bu işlem için yetkiniz yok"
	ErrInvalidTransition         AppointmentServiceError = "randevu bu durumdan bu işlemle değiştirilemez"
	ErrAppInvalidInput           AppointmentServiceError = "geçersiz girdi verisi"
)

// Onay sayfasında eksik parametreler için kullanılan varsayılanlar.
const (
	DefaultConfirmationType     = "Genel Görüşme (30 dk)"
	DefaultConfirmationAcademic = "Prof. Dr. Ahmet Yılmaz (Bilgisayar Mühendisliği)"
	DefaultConfirmationDate     = "20 Mayıs 2023"
	DefaultConfirmationTime     = "10:30"
	DefaultConfirmationUnit     = "Öğrenci İşleri"
)

// Actor işlemi yapan rol. Kimlik doğrulama yoktur; rol URL alanından gelir.
type Actor string

const (
	ActorStudent  Actor = "student"
	ActorAcademic Actor = "academic"
	ActorUnit     Actor = "unit"
)

// Action durum geçişi isteği.
type Action string

const (
	ActionCancel   Action = "cancel"
	ActionConfirm  Action = "confirm"
	ActionReject   Action = "reject"
	ActionComplete Action = "complete"
)

type transition struct {
	from []models.AppointmentStatus
	to   models.AppointmentStatus
}

var transitions = map[Action]transition{
	ActionCancel:   {from: []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}, to: models.StatusCancelled},
	ActionConfirm:  {from: []models.AppointmentStatus{models.StatusPending}, to: models.StatusConfirmed},
	ActionReject:   {from: []models.AppointmentStatus{models.StatusPending}, to: models.StatusCancelled},
	ActionComplete: {from: []models.AppointmentStatus{models.StatusConfirmed}, to: models.StatusCompleted},
}

var actorActions = map[Actor][]Action{
	ActorStudent:  {ActionCancel},
	ActorAcademic: {ActionCancel, ActionConfirm, ActionReject, ActionComplete},
	ActorUnit:     {ActionCancel, ActionConfirm, ActionReject, ActionComplete},
}

// Can rolün eylemi yapıp yapamayacağı; kayıt türü ayrıca kontrol edilir.
func (a Actor) Can(action Action) bool {
	for _, allowed := range actorActions[a] {
		if allowed == action {
			return true
		}
	}
	return false
}

// Owns akademisyen yalnızca RND, birim yalnızca BRM kayıtlarını görür; öğrenci ikisini de.
func (a Actor) Owns(appointment *models.Appointment) bool {
	switch a {
	case ActorAcademic:
		return appointment.Kind() == models.KindAcademic
	case ActorUnit:
		return appointment.Kind() == models.KindUnit
	default:
		return true
	}
}

// NextStatus geçiş tablosunu uygular. Hedef durum mevcut durumla aynıysa değişiklik yoktur.
func NextStatus(current models.AppointmentStatus, action Action) (models.AppointmentStatus, error) {
	t, ok := transitions[action]
	if !ok {
		return current, fmt.Errorf("%w: bilinmeyen işlem %q", ErrAppInvalidInput, action)
	}
	if current == t.to {
		return current, nil
	}
	for _, from := range t.from {
		if from == current {
			return t.to, nil
		}
	}
	return current, ErrInvalidTransition
}

// NewAppointmentID "RND-20230517-4821" biçiminde kimlik üretir.
func NewAppointmentID(kind models.AppointmentKind, now time.Time) string {
	return fmt.Sprintf("%s-%s-%d", kind, now.Format("20060102"), 1000+rand.IntN(9000))
}

// ConfirmationInput onay sayfasının sorgu parametreleri.
type ConfirmationInput struct {
	ID       string `query:"id"`
	Type     string `query:"type"`
	Academic string `query:"academic"`
	Unit     string `query:"birim"`
	Date     string `query:"date"`
	Time     string `query:"time"`
	Notes    string `query:"notes"`
}

// WithDefaults eksik alanları varsayılanlarla doldurur. Birim randevusunda hedef Unit alanıdır;
// birim verilmemiş BRM kimliğinde academic değeri, o da yoksa varsayılan birim kullanılır.
func (in ConfirmationInput) WithDefaults() ConfirmationInput {
	if in.Type == "" {
		in.Type = DefaultConfirmationType
	}
	switch {
	case in.Kind() == models.KindUnit && in.Unit == "":
		in.Unit = in.Academic
		if in.Unit == "" {
			in.Unit = DefaultConfirmationUnit
		}
	case in.Kind() == models.KindAcademic && in.Academic == "":
		in.Academic = DefaultConfirmationAcademic
	}
	if in.Date == "" {
		in.Date = DefaultConfirmationDate
	}
	if in.Time == "" {
		in.Time = DefaultConfirmationTime
	}
	return in
}

// Kind birim parametresi ya da BRM öneki birim randevusu demektir.
func (in ConfirmationInput) Kind() models.AppointmentKind {
	if in.Unit != "" || strings.HasPrefix(in.ID, string(models.KindUnit)+"-") {
		return models.KindUnit
	}
	return models.KindAcademic
}

// StudentDashboard öğrenci ana sayfası özeti.
type StudentDashboard struct {
	Recent  []models.Appointment
	Total   int
	Pending int
}

// StaffDashboard akademisyen ve birim ana sayfası özeti.
type StaffDashboard struct {
	Total          int
	Today          string
	TodayConfirmed []models.Appointment
	Pending        []models.Appointment
	PendingCount   int
}

// IAppointmentService randevu iş kuralları.
type IAppointmentService interface {
	Confirm(ctx context.Context, input ConfirmationInput) (*models.Appointment, bool, error)
	GetAppointment(ctx context.Context, actor Actor, id string) (*models.Appointment, error)
	Apply(ctx context.Context, actor Actor, action Action, id string) (*models.Appointment, error)
	ListForActor(ctx context.Context, actor Actor, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	StatusCounts(ctx context.Context, actor Actor) (map[models.AppointmentStatus]int, error)
	StudentDashboard(ctx context.Context) (*StudentDashboard, error)
	StaffDashboard(ctx context.Context, actor Actor) (*StaffDashboard, error)
}

// AppointmentService IAppointmentService arayüzünü uygular.
type AppointmentService struct {
	repo              repositories.IAppointmentRepository
	studentName       string
	studentDepartment string
	now               func() time.Time
}

// NewAppointmentService öğrenci kimliği kimlik doğrulama olmadığı için sabittir.
func NewAppointmentService(repo repositories.IAppointmentRepository, studentName, studentDepartment string) *AppointmentService {
	return &AppointmentService{
		repo:              repo,
		studentName:       studentName,
		studentDepartment: studentDepartment,
		now:               time.Now,
	}
}

// WithClock testlerde sabit zaman kullanmak için.
func (s *AppointmentService) WithClock(now func() time.Time) *AppointmentService {
	s.now = now
	return s
}

func (s *AppointmentService) actorFilter(actor Actor) repositories.AppointmentPredicate {
	switch actor {
	case ActorAcademic:
		return repositories.ByKind(models.KindAcademic)
	case ActorUnit:
		return repositories.ByKind(models.KindUnit)
	default:
		return repositories.ByStudent(s.studentName)
	}
}

// Confirm onay sayfası açıldığında beklemede bir kayıt ekler. Kimlik yoksa üretilir;
// aynı kimlikle kayıt zaten varsa yeniden eklenmez ve created=false döner.
func (s *AppointmentService) Confirm(ctx context.Context, input ConfirmationInput) (*models.Appointment, bool, error) {
	input = input.WithDefaults()
	now := s.now()

	if input.ID != "" {
		existing, err := s.repo.FindByID(ctx, input.ID)
		if err == nil {
			return existing, false, nil
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, false, fmt.Errorf("%w: %w", ErrAppointmentCreationFailed, err)
		}
	} else {
		input.ID = NewAppointmentID(input.Kind(), now)
	}

	appointment := &models.Appointment{
		ID:                input.ID,
		Type:              input.Type,
		Date:              input.Date,
		Time:              input.Time,
		Status:            models.StatusPending,
		Student:           s.studentName,
		StudentDepartment: s.studentDepartment,
		Notes:             strings.TrimSpace(input.Notes),
		CreatedAt:         now.UTC(),
	}
	if input.Kind() == models.KindUnit {
		appointment.Unit = input.Unit
	} else {
		appointment.Academic = input.Academic
	}

	if err := s.repo.Append(ctx, appointment); err != nil {
		configslog.Log.Error("Randevu kaydedilemedi", zap.String("id", appointment.ID), zap.Error(err))
		return nil, false, fmt.Errorf("%w: %w", ErrAppointmentCreationFailed, err)
	}
	configslog.SLog.Infof("Randevu oluşturuldu: %s (%s %s)", appointment.ID, appointment.Date, appointment.Time)
	return appointment, true, nil
}

// GetAppointment rolün göremeyeceği kayıtlar bulunamadı olarak raporlanır.
func (s *AppointmentService) GetAppointment(ctx context.Context, actor Actor, id string) (*models.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	if !actor.Owns(appointment) || !s.actorFilter(actor)(appointment) {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

// Apply rolün eylemini kayda uygular. Değişiklik yoksa koleksiyon yeniden yazılmaz.
func (s *AppointmentService) Apply(ctx context.Context, actor Actor, action Action, id string) (*models.Appointment, error) {
	if !actor.Can(action) {
		return nil, ErrAppointmentForbidden
	}
	appointment, err := s.GetAppointment(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	next, err := NextStatus(appointment.Status, action)
	if err != nil {
		configslog.Log.Warn("Geçersiz durum geçişi",
			zap.String("id", id), zap.String("from", string(appointment.Status)),
			zap.String("action", string(action)), zap.String("actor", string(actor)))
		return nil, err
	}
	if next == appointment.Status {
		return appointment, nil
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrAppointmentUpdateFailed, err)
	}
	appointment.Status = next
	configslog.Log.Info("Randevu durumu değişti",
		zap.String("id", id), zap.String("status", string(next)), zap.String("actor", string(actor)))
	return appointment, nil
}

// ListForActor durum sekmesine göre filtrelenmiş, sayfalanmış liste. Boş ya da "all" filtre uygulamaz.
func (s *AppointmentService) ListForActor(ctx context.Context, actor Actor, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	predicate := s.actorFilter(actor)
	if status, ok := models.ParseStatus(params.Status); ok {
		predicate = repositories.And(predicate, repositories.ByStatus(status))
	}
	appointments, err := s.repo.Query(ctx, predicate)
	if err != nil {
		return nil, err
	}
	return queryparams.PaginateSlice(appointments, params), nil
}

// StatusCounts sekme rozetleri için durum başına kayıt sayısı.
func (s *AppointmentService) StatusCounts(ctx context.Context, actor Actor) (map[models.AppointmentStatus]int, error) {
	appointments, err := s.repo.Query(ctx, s.actorFilter(actor))
	if err != nil {
		return nil, err
	}
	counts := make(map[models.AppointmentStatus]int, len(models.AllStatuses))
	for _, a := range appointments {
		counts[a.Status]++
	}
	return counts, nil
}

const dashboardRecentLimit = 3

func (s *AppointmentService) StudentDashboard(ctx context.Context) (*StudentDashboard, error) {
	appointments, err := s.repo.Query(ctx, s.actorFilter(ActorStudent))
	if err != nil {
		return nil, err
	}
	d := &StudentDashboard{Total: len(appointments)}
	for _, a := range appointments {
		if a.Status == models.StatusPending {
			d.Pending++
		}
	}
	d.Recent = appointments[:min(dashboardRecentLimit, len(appointments))]
	return d, nil
}

// StaffDashboard bugünün onaylı randevularını saate göre sıralar.
// "Bugün" kaydın tarih metninin bugünün Türkçe tarihiyle birebir eşleşmesidir.
func (s *AppointmentService) StaffDashboard(ctx context.Context, actor Actor) (*StaffDashboard, error) {
	appointments, err := s.repo.Query(ctx, s.actorFilter(actor))
	if err != nil {
		return nil, err
	}
	d := &StaffDashboard{
		Total: len(appointments),
		Today: turkishdate.FromTime(s.now()).String(),
	}
	for _, a := range appointments {
		switch {
		case a.Status == models.StatusConfirmed && a.Date == d.Today:
			d.TodayConfirmed = append(d.TodayConfirmed, a)
		case a.Status == models.StatusPending:
			d.PendingCount++
			if len(d.Pending) < dashboardRecentLimit {
				d.Pending = append(d.Pending, a)
			}
		}
	}
	sort.SliceStable(d.TodayConfirmed, func(i, j int) bool {
		return turkishdate.TimeKey(d.TodayConfirmed[i].Time) < turkishdate.TimeKey(d.TodayConfirmed[j].Time)
	})
	return d, nil
}

var _ IAppointmentService = (*AppointmentService)(nil)

var actionMessages = map[Action]string{
	ActionConfirm:  "Randevu onaylandı.",
	ActionReject:   "Randevu reddedildi.",
	ActionCancel:   "Randevu iptal edildi.",
	ActionComplete: "Randevu tamamlandı olarak işaretlendi.",
}

// SuccessMessage işlem sonrası gösterilen flash mesajı.
func (a Action) SuccessMessage() string {
	return actionMessages[a]
}

// ActionErrorMessage Apply hatasının kullanıcıya gösterilecek karşılığı.
func ActionErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidTransition):
		return "Bu randevu mevcut durumunda bu işleme uygun değil."
	case errors.Is(err, ErrAppointmentNotFound):
		return "Randevu bulunamadı."
	case errors.Is(err, ErrAppointmentForbidden):
		return "Bu işlem için yetkiniz yok."
	case errors.Is(err, repositories.ErrStorageQuotaExceeded):
		return "Değişiklik kaydedilemedi: depolama alanı dolu."
	default:
		return "İşlem sırasında bir hata oluştu. Lütfen tekrar deneyin."
	}
}
