package service

import (
	"sync"
	"testing"
	"time"

	"healthcareplus/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (m *fakeMailer) Send(setting *entity.MailSetting, to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

type fakeMailSettingRepo struct {
	setting *entity.MailSetting
}

func (r *fakeMailSettingRepo) Get(db *gorm.DB) (*entity.MailSetting, error) {
	return r.setting, nil
}

func (r *fakeMailSettingRepo) Save(db *gorm.DB, setting *entity.MailSetting) error {
	r.setting = setting
	return nil
}

func completeMailSetting() *entity.MailSetting {
	return &entity.MailSetting{
		MailServer:   "smtp.example.com",
		MailPort:     587,
		MailUseTLS:   true,
		MailUsername: "notify",
		MailPassword: "secret",
		DefaultName:  "Healthcare+",
		DefaultEmail: "notify@example.com",
	}
}

func testAppointment(email string) *entity.Appointment {
	return &entity.Appointment{
		ID:              uuid.New(),
		PatientName:     "Asha Rao",
		AppointmentDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "10:30",
		Status:          entity.StatusScheduled,
		Patient:         entity.Patient{FullName: "Asha Rao", Email: email},
		Doctor:          entity.Doctor{FullName: "Meera Iyer"},
	}
}

func TestNotifierSendsBookingConfirmation(t *testing.T) {
	mailer := &fakeMailer{}
	notifier := NewNotifier(nil, logrus.New(), mailer, &fakeMailSettingRepo{setting: completeMailSetting()})

	notifier.NotifyBookingConfirmed(testAppointment("asha@example.com"))
	notifier.Stop()

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "asha@example.com", mailer.sent[0].to)
	assert.Contains(t, mailer.sent[0].subject, "Booked")
	assert.Contains(t, mailer.sent[0].body, "Asha Rao")
	assert.Contains(t, mailer.sent[0].body, "Meera Iyer")
	assert.Contains(t, mailer.sent[0].body, "2025-03-10")
	assert.Contains(t, mailer.sent[0].body, "10:30")
}

func TestNotifierSkipsPatientWithoutEmail(t *testing.T) {
	mailer := &fakeMailer{}
	notifier := NewNotifier(nil, logrus.New(), mailer, &fakeMailSettingRepo{setting: completeMailSetting()})

	notifier.NotifyBookingConfirmed(testAppointment(""))
	notifier.Stop()

	assert.Empty(t, mailer.sent)
}

func TestNotifierSkipsWhenSettingsIncomplete(t *testing.T) {
	mailer := &fakeMailer{}
	notifier := NewNotifier(nil, logrus.New(), mailer, &fakeMailSettingRepo{setting: entity.DefaultMailSetting()})

	notifier.NotifyBookingConfirmed(testAppointment("asha@example.com"))
	notifier.Stop()

	assert.Empty(t, mailer.sent)
}

func TestNotifierStatusChangeRendersDisplayStatus(t *testing.T) {
	mailer := &fakeMailer{}
	notifier := NewNotifier(nil, logrus.New(), mailer, &fakeMailSettingRepo{setting: completeMailSetting()})

	appointment := testAppointment("asha@example.com")
	appointment.Status = entity.StatusCancelled
	notifier.NotifyStatusChanged(appointment)
	notifier.Stop()

	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].body, "Cancelled")
}

func TestNotifierIgnoresEnqueueAfterStop(t *testing.T) {
	mailer := &fakeMailer{}
	notifier := NewNotifier(nil, logrus.New(), mailer, &fakeMailSettingRepo{setting: completeMailSetting()})
	notifier.Stop()

	// must not panic on a closed queue
	notifier.NotifyBookingConfirmed(testAppointment("asha@example.com"))
	assert.Empty(t, mailer.sent)
}

func TestNotifierEnqueueConcurrentWithStop(t *testing.T) {
	mailer := &fakeMailer{}
	notifier := NewNotifier(nil, logrus.New(), mailer, &fakeMailSettingRepo{setting: completeMailSetting()})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				notifier.NotifyBookingConfirmed(testAppointment("asha@example.com"))
			}
		}()
	}

	// must not panic while producers are still enqueueing
	notifier.Stop()
	wg.Wait()
	notifier.Stop()
}
