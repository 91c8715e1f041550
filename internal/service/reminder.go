package service

import (
	"fmt"
	"time"

	"healthcareplus/config"
	"healthcareplus/internal/domain/repository"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReminderService sends next-day reminders for appointments that still
// occupy a slot. It runs once a day at the configured hour.
type ReminderService struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	notifier        *Notifier
	scheduler       *gocron.Scheduler
}

func NewReminderService(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	notifier *Notifier,
) *ReminderService {
	return &ReminderService{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
	}
}

// Start schedules the daily reminder run.
func (s *ReminderService) Start(cfg config.ReminderConfig) error {
	scheduler := gocron.NewScheduler(time.Local)

	at := fmt.Sprintf("%02d:00", cfg.Hour)
	if _, err := scheduler.Every(1).Day().At(at).Do(func() {
		if err := s.SendReminders(); err != nil {
			s.log.Errorf("Reminder run failed: %+v", err)
		}
	}); err != nil {
		return err
	}

	scheduler.StartAsync()
	s.scheduler = scheduler
	s.log.Infof("Appointment reminder job scheduled daily at %s", at)

	return nil
}

// Stop halts the scheduler.
func (s *ReminderService) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// SendReminders enqueues a reminder for every occupying appointment
// scheduled for tomorrow.
func (s *ReminderService) SendReminders() error {
	tomorrow := time.Now().AddDate(0, 0, 1)

	appointments, err := s.appointmentRepo.FindOccupyingByDate(s.db, tomorrow)
	if err != nil {
		return fmt.Errorf("find tomorrow's appointments: %w", err)
	}

	for i := range appointments {
		s.notifier.NotifyReminder(&appointments[i])
	}

	if len(appointments) > 0 {
		s.log.Infof("Queued %d appointment reminders for %s", len(appointments), tomorrow.Format("2006-01-02"))
	}

	return nil
}
