package service

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"
	"time"

	"healthcareplus/internal/domain/entity"
	"healthcareplus/internal/domain/repository"
	"healthcareplus/internal/infrastructure/mail"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const notifyQueueSize = 256

var bookingConfirmedTmpl = template.Must(template.New("booking_confirmed").Parse(`
<html><body>
<p>Dear {{.PatientName}},</p>
<p>Your appointment with Dr. {{.DoctorName}} has been booked for
{{.Date}} at {{.Time}}.</p>
<p>Please arrive 15 minutes early and bring any previous medical records.</p>
<p>Healthcare+ Team</p>
</body></html>`))

var statusChangedTmpl = template.Must(template.New("status_changed").Parse(`
<html><body>
<p>Dear {{.PatientName}},</p>
<p>Your appointment with Dr. {{.DoctorName}} on {{.Date}} at {{.Time}}
is now: <b>{{.DisplayStatus}}</b>.</p>
<p>Healthcare+ Team</p>
</body></html>`))

var reminderTmpl = template.Must(template.New("reminder").Parse(`
<html><body>
<p>Dear {{.PatientName}},</p>
<p>This is a reminder of your appointment with Dr. {{.DoctorName}}
tomorrow, {{.Date}}, at {{.Time}}.</p>
<p>Healthcare+ Team</p>
</body></html>`))

type emailJob struct {
	to      string
	subject string
	tmpl    *template.Template
	data    map[string]string
}

// Notifier dispatches lifecycle emails off the request path. Delivery is
// best-effort: failures are logged and never reach the caller, so a slow
// or broken SMTP server cannot fail a booking.
type Notifier struct {
	db              *gorm.DB
	log             *logrus.Logger
	mailer          mail.Mailer
	mailSettingRepo repository.MailSettingRepository

	queue   chan emailJob
	wg      sync.WaitGroup
	mu      sync.Mutex
	stopped bool
}

func NewNotifier(db *gorm.DB, log *logrus.Logger, mailer mail.Mailer, mailSettingRepo repository.MailSettingRepository) *Notifier {
	n := &Notifier{
		db:              db,
		log:             log,
		mailer:          mailer,
		mailSettingRepo: mailSettingRepo,
		queue:           make(chan emailJob, notifyQueueSize),
	}

	n.wg.Add(1)
	go n.worker()

	return n
}

// Stop drains the queue and shuts the worker down. Safe to call more than
// once; enqueues racing Stop are dropped, never sent on the closed queue.
func (n *Notifier) Stop() {
	n.mu.Lock()
	if n.stopped {
		n.mu.Unlock()
		return
	}
	n.stopped = true
	close(n.queue)
	n.mu.Unlock()

	n.wg.Wait()
	n.log.Info("Notifier stopped")
}

// NotifyBookingConfirmed sends the booking confirmation to the patient.
// The appointment must have Patient and Doctor preloaded.
func (n *Notifier) NotifyBookingConfirmed(appointment *entity.Appointment) {
	n.enqueue(appointment, "Healthcare+ | Your Appointment is Booked!", bookingConfirmedTmpl, "")
}

// NotifyStatusChanged informs the patient of a status update.
func (n *Notifier) NotifyStatusChanged(appointment *entity.Appointment) {
	display := entity.DisplayStatus(appointment.Status, appointment.AppointmentDate, time.Now(), entity.PortalPatient)
	n.enqueue(appointment, "Healthcare+ | Appointment Update", statusChangedTmpl, display)
}

// NotifyReminder sends the next-day reminder.
func (n *Notifier) NotifyReminder(appointment *entity.Appointment) {
	n.enqueue(appointment, "Healthcare+ | Appointment Reminder", reminderTmpl, "")
}

func (n *Notifier) enqueue(appointment *entity.Appointment, subject string, tmpl *template.Template, displayStatus string) {
	if appointment.Patient.Email == "" {
		n.log.Debugf("Skipping notification for appointment %s: patient has no email", appointment.ID)
		return
	}

	job := emailJob{
		to:      appointment.Patient.Email,
		subject: subject,
		tmpl:    tmpl,
		data: map[string]string{
			"PatientName":   appointment.PatientName,
			"DoctorName":    appointment.Doctor.FullName,
			"Date":          appointment.AppointmentDate.Format("2006-01-02"),
			"Time":          appointment.AppointmentTime,
			"DisplayStatus": displayStatus,
		},
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.stopped {
		return
	}

	select {
	case n.queue <- job:
	default:
		n.log.Warnf("Notification queue full, dropping email to %s", job.to)
	}
}

func (n *Notifier) worker() {
	defer n.wg.Done()

	for job := range n.queue {
		if err := n.send(job); err != nil {
			n.log.Warnf("Failed to send notification to %s: %+v", job.to, err)
		}
	}
}

func (n *Notifier) send(job emailJob) error {
	setting, err := n.mailSettingRepo.Get(n.db)
	if err != nil {
		return fmt.Errorf("load mail settings: %w", err)
	}
	if !setting.IsComplete() {
		n.log.Debug("Mail settings incomplete, skipping notification")
		return nil
	}

	var body bytes.Buffer
	if err := job.tmpl.Execute(&body, job.data); err != nil {
		return fmt.Errorf("render notification body: %w", err)
	}

	return n.mailer.Send(setting, job.to, job.subject, body.String())
}
