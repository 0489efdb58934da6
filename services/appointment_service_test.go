package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"randevu.link/models"
	"randevu.link/pkg/queryparams"
	"randevu.link/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testStudent    = "Ayşe Yılmaz"
	testDepartment = "Bilgisayar Mühendisliği"
)

// 17 Mayıs 2023 14:00
var testNow = time.Date(2023, time.May, 17, 14, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*AppointmentService, repositories.IAppointmentRepository) {
	t.Helper()
	repo := repositories.NewAppointmentRepository(repositories.NewMemorySlotStore(), 0)
	now := testNow
	svc := NewAppointmentService(repo, testStudent, testDepartment).WithClock(func() time.Time {
		now = now.Add(time.Minute)
		return now
	})
	return svc, repo
}

func seed(t *testing.T, repo repositories.IAppointmentRepository, id string, status models.AppointmentStatus, date, slot string, created time.Time) {
	t.Helper()
	a := &models.Appointment{
		ID:        id,
		Type:      DefaultConfirmationType,
		Date:      date,
		Time:      slot,
		Status:    status,
		Student:   testStudent,
		CreatedAt: created,
	}
	if a.Kind() == models.KindUnit {
		a.Unit = "Öğrenci İşleri"
	} else {
		a.Academic = DefaultConfirmationAcademic
	}
	require.NoError(t, repo.Append(context.Background(), a))
}

func TestConfirmCreatesPendingRecord(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	appointment, created, err := svc.Confirm(ctx, ConfirmationInput{
		Type:     "Genel Görüşme",
		Academic: "Ahmet Yılmaz",
		Date:     "20 Mayıs 2023",
		Time:     "10:30",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Regexp(t, regexp.MustCompile(`^RND-\d{8}-\d{4}$`), appointment.ID)
	assert.Equal(t, models.StatusPending, appointment.Status)

	all, err := repo.Query(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Genel Görüşme", all[0].Type)
	assert.Equal(t, "Ahmet Yılmaz", all[0].Academic)
	assert.Equal(t, "20 Mayıs 2023", all[0].Date)
	assert.Equal(t, "10:30", all[0].Time)
	assert.Equal(t, testStudent, all[0].Student)
	assert.Equal(t, testDepartment, all[0].StudentDepartment)
}

func TestConfirmAppliesDefaultsAndIsIdempotentPerID(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	first, created, err := svc.Confirm(ctx, ConfirmationInput{ID: "RND-20230517-4821"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, DefaultConfirmationType, first.Type)
	assert.Equal(t, DefaultConfirmationAcademic, first.Academic)
	assert.Equal(t, DefaultConfirmationDate, first.Date)
	assert.Equal(t, DefaultConfirmationTime, first.Time)

	again, created, err := svc.Confirm(ctx, ConfirmationInput{ID: "RND-20230517-4821"})
	require.NoError(t, err)
	assert.False(t, created, "aynı kimlikle yeniden yükleme kayıt eklememeli")
	assert.Equal(t, first.ID, again.ID)

	all, err := repo.Query(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestConfirmUnitAppointment(t *testing.T) {
	svc, _ := newTestService(t)
	appointment, _, err := svc.Confirm(context.Background(), ConfirmationInput{Unit: "Öğrenci İşleri", Type: "Belge Talebi (15 dk)"})
	require.NoError(t, err)
	assert.Regexp(t, `^BRM-\d{8}-\d{4}$`, appointment.ID)
	assert.Equal(t, models.KindUnit, appointment.Kind())
	assert.Empty(t, appointment.Academic)
	assert.Equal(t, "Öğrenci İşleri", appointment.Unit)
}

func TestConfirmUnitIDWithoutUnitKeepsTarget(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	input := ConfirmationInput{ID: "BRM-20230520-1234", Academic: "Kütüphane", Date: "22 Mayıs 2023", Time: "11:00"}
	rendered := input.WithDefaults()
	appointment, created, err := svc.Confirm(ctx, input)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.KindUnit, appointment.Kind())
	assert.Equal(t, "Kütüphane", appointment.Unit)
	assert.Equal(t, rendered.Unit, appointment.Unit)
	assert.Equal(t, "Kütüphane", appointment.TargetName())

	appointment, _, err = svc.Confirm(ctx, ConfirmationInput{ID: "BRM-20230520-5678"})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfirmationUnit, appointment.Unit)
	assert.Empty(t, appointment.Academic)
}

func TestConfirmSurfacesQuotaError(t *testing.T) {
	repo := repositories.NewAppointmentRepository(repositories.NewMemorySlotStore(), 10)
	svc := NewAppointmentService(repo, testStudent, testDepartment)

	appointment, created, err := svc.Confirm(context.Background(), ConfirmationInput{})
	assert.Nil(t, appointment)
	assert.False(t, created)
	assert.ErrorIs(t, err, ErrAppointmentCreationFailed)
	assert.ErrorIs(t, err, repositories.ErrStorageQuotaExceeded)
}

func TestNextStatusTable(t *testing.T) {
	cases := []struct {
		from   models.AppointmentStatus
		action Action
		want   models.AppointmentStatus
		err    error
	}{
		{models.StatusPending, ActionConfirm, models.StatusConfirmed, nil},
		{models.StatusPending, ActionReject, models.StatusCancelled, nil},
		{models.StatusPending, ActionCancel, models.StatusCancelled, nil},
		{models.StatusConfirmed, ActionCancel, models.StatusCancelled, nil},
		{models.StatusConfirmed, ActionComplete, models.StatusCompleted, nil},
		{models.StatusCancelled, ActionCancel, models.StatusCancelled, nil},
		{models.StatusCompleted, ActionComplete, models.StatusCompleted, nil},
		{models.StatusPending, ActionComplete, models.StatusPending, ErrInvalidTransition},
		{models.StatusConfirmed, ActionConfirm, models.StatusConfirmed, nil},
		{models.StatusCancelled, ActionConfirm, models.StatusCancelled, ErrInvalidTransition},
		{models.StatusCompleted, ActionCancel, models.StatusCompleted, ErrInvalidTransition},
		{models.StatusCancelled, ActionComplete, models.StatusCancelled, ErrInvalidTransition},
	}
	for _, tc := range cases {
		got, err := NextStatus(tc.from, tc.action)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, "%s + %s", tc.from, tc.action)
		} else {
			assert.NoError(t, err, "%s + %s", tc.from, tc.action)
		}
		assert.Equal(t, tc.want, got, "%s + %s", tc.from, tc.action)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	seed(t, repo, "RND-20230517-1001", models.StatusPending, "22 Mayıs 2023", "10:00", testNow)

	a, err := svc.Apply(ctx, ActorStudent, ActionCancel, "RND-20230517-1001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, a.Status)

	a, err = svc.Apply(ctx, ActorStudent, ActionCancel, "RND-20230517-1001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, a.Status)

	stored, err := repo.FindByID(ctx, "RND-20230517-1001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, stored.Status)
}

func TestApplyRoleGating(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	seed(t, repo, "RND-20230517-1001", models.StatusPending, "22 Mayıs 2023", "10:00", testNow)
	seed(t, repo, "BRM-20230517-2002", models.StatusPending, "22 Mayıs 2023", "11:00", testNow)

	_, err := svc.Apply(ctx, ActorStudent, ActionConfirm, "RND-20230517-1001")
	assert.ErrorIs(t, err, ErrAppointmentForbidden)

	_, err = svc.Apply(ctx, ActorAcademic, ActionConfirm, "BRM-20230517-2002")
	assert.ErrorIs(t, err, ErrAppointmentNotFound, "akademisyen birim kaydını göremez")

	_, err = svc.Apply(ctx, ActorUnit, ActionConfirm, "RND-20230517-1001")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	a, err := svc.Apply(ctx, ActorUnit, ActionConfirm, "BRM-20230517-2002")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, a.Status)

	a, err = svc.Apply(ctx, ActorAcademic, ActionConfirm, "RND-20230517-1001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, a.Status)

	a, err = svc.Apply(ctx, ActorAcademic, ActionComplete, "RND-20230517-1001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, a.Status)

	_, err = svc.Apply(ctx, ActorAcademic, ActionCancel, "RND-20230517-1001")
	assert.ErrorIs(t, err, ErrInvalidTransition, "tamamlanan randevu yeniden açılamaz")

	_, err = svc.Apply(ctx, ActorAcademic, ActionCancel, "RND-00000000-0000")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestListForActorFiltersByStatusAndKind(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	seed(t, repo, "RND-1", models.StatusPending, "22 Mayıs 2023", "10:00", testNow)
	seed(t, repo, "RND-2", models.StatusConfirmed, "23 Mayıs 2023", "10:00", testNow.Add(time.Hour))
	seed(t, repo, "BRM-3", models.StatusPending, "24 Mayıs 2023", "10:00", testNow.Add(2*time.Hour))

	res, err := svc.ListForActor(ctx, ActorStudent, queryparams.ListParams{Status: "all"})
	require.NoError(t, err)
	items := res.Data.([]models.Appointment)
	require.Len(t, items, 3)
	assert.Equal(t, "BRM-3", items[0].ID, "yeniden eskiye")

	res, err = svc.ListForActor(ctx, ActorAcademic, queryparams.ListParams{Status: "pending"})
	require.NoError(t, err)
	items = res.Data.([]models.Appointment)
	require.Len(t, items, 1)
	assert.Equal(t, "RND-1", items[0].ID)

	counts, err := svc.StatusCounts(ctx, ActorUnit)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[models.StatusPending])
	assert.Equal(t, 0, counts[models.StatusConfirmed])
}

func TestDashboards(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	seed(t, repo, "RND-1", models.StatusConfirmed, "17 Mayıs 2023", "15:30", testNow)
	seed(t, repo, "RND-2", models.StatusConfirmed, "17 Mayıs 2023", "09:00", testNow.Add(time.Hour))
	seed(t, repo, "RND-3", models.StatusConfirmed, "18 Mayıs 2023", "09:00", testNow.Add(2*time.Hour))
	seed(t, repo, "RND-4", models.StatusPending, "19 Mayıs 2023", "09:00", testNow.Add(3*time.Hour))
	seed(t, repo, "RND-5", models.StatusPending, "19 Mayıs 2023", "10:00", testNow.Add(4*time.Hour))

	student, err := svc.StudentDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, student.Total)
	assert.Equal(t, 2, student.Pending)
	require.Len(t, student.Recent, 3)
	assert.Equal(t, "RND-5", student.Recent[0].ID)

	staff, err := svc.StaffDashboard(ctx, ActorAcademic)
	require.NoError(t, err)
	assert.Equal(t, "17 Mayıs 2023", staff.Today)
	require.Len(t, staff.TodayConfirmed, 2)
	assert.Equal(t, "09:00", staff.TodayConfirmed[0].Time)
	assert.Equal(t, "15:30", staff.TodayConfirmed[1].Time)
	assert.Equal(t, 2, staff.PendingCount)
	assert.Equal(t, "RND-5", staff.Pending[0].ID)
}

func TestGetAppointmentHidesOtherKinds(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	seed(t, repo, "BRM-9", models.StatusPending, "22 Mayıs 2023", "10:00", testNow)

	_, err := svc.GetAppointment(ctx, ActorAcademic, "BRM-9")
	assert.True(t, errors.Is(err, ErrAppointmentNotFound))

	a, err := svc.GetAppointment(ctx, ActorStudent, "BRM-9")
	require.NoError(t, err)
	assert.Equal(t, "Öğrenci İşleri", a.Unit)
}
