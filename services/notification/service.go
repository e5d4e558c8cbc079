package notification

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"glowbook/config"
	clientRepo "glowbook/database/repository/client"
	staffRepo "glowbook/database/repository/staff"
	"glowbook/models"
	"glowbook/services/tasks"
	"glowbook/utils"
)

// DefaultService is the production implementation backed by FCM and the
// asynq reminder queue.
type DefaultService struct {
	Clients   clientRepo.Repository
	Staff     staffRepo.Repository
	Reminders *asynq.Client
}

func NewDefaultService(clients clientRepo.Repository, staff staffRepo.Repository, reminders *asynq.Client) (*DefaultService, error) {
	if clients == nil || staff == nil {
		return nil, fmt.Errorf("notification service initialization error: client or staff repository is nil")
	}
	return &DefaultService{Clients: clients, Staff: staff, Reminders: reminders}, nil
}

func (s *DefaultService) SendClientPush(ctx context.Context, clientID, title, body string, data map[string]string) error {
	c, err := s.Clients.GetByID(ctx, clientID)
	if err != nil {
		return fmt.Errorf("SendClientPush: could not find client %s: %w", clientID, err)
	}
	if c == nil || c.FCMToken == "" {
		return fmt.Errorf("SendClientPush: client %s has no FCM token", clientID)
	}
	return s.send(ctx, c.FCMToken, title, body, data)
}

func (s *DefaultService) SendStaffPush(ctx context.Context, staffID, title, body string, data map[string]string) error {
	st, err := s.Staff.GetByID(ctx, staffID)
	if err != nil {
		return fmt.Errorf("SendStaffPush: could not find staff member %s: %w", staffID, err)
	}
	if st == nil || st.FCMToken == "" {
		return fmt.Errorf("SendStaffPush: staff member %s has no FCM token", staffID)
	}
	return s.send(ctx, st.FCMToken, title, body, data)
}

func (s *DefaultService) send(ctx context.Context, token, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("FCM client not initialized")
	}
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}

func (s *DefaultService) NotifyBookingConfirmed(ctx context.Context, clientID, staffID, date string, start, end int, bookingIDs []string) error {
	logger := utils.GetLogger()
	window := fmt.Sprintf("%s %s-%s", date, utils.FormatClock(start), utils.FormatClock(end))

	data := map[string]string{"date": date, "start": utils.FormatClock(start)}
	if len(bookingIDs) > 0 {
		data["bookingId"] = bookingIDs[0]
	}
	if err := s.SendClientPush(ctx, clientID, "Appointment confirmed", "Your appointment is booked for "+window, data); err != nil {
		logger.Warn("confirmation push to client failed", zap.String("clientID", clientID), zap.Error(err))
	}
	if err := s.SendStaffPush(ctx, staffID, "New appointment", "New booking at "+window, data); err != nil {
		logger.Warn("confirmation push to staff failed", zap.String("staffID", staffID), zap.Error(err))
	}

	return s.scheduleReminder(clientID, date, start, bookingIDs)
}

func (s *DefaultService) NotifyScheduleUpdate(ctx context.Context, staffID, summary string) error {
	return s.SendStaffPush(ctx, staffID, "Schedule updated", summary, map[string]string{"kind": "schedule_update"})
}

// scheduleReminder enqueues the reminder push a configured lead time before
// the appointment. Appointments starting sooner than the lead time get no
// reminder.
func (s *DefaultService) scheduleReminder(clientID, date string, start int, bookingIDs []string) error {
	if s.Reminders == nil {
		return nil
	}
	day, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return fmt.Errorf("invalid reminder date %q: %w", date, err)
	}
	startAt := time.Date(day.Year(), day.Month(), day.Day(), start/60, start%60, 0, 0, time.Local)
	fireAt := startAt.Add(-time.Duration(config.AppConfig.ReminderLeadMin) * time.Minute)
	if !fireAt.After(time.Now()) {
		return nil
	}

	bookingID := ""
	if len(bookingIDs) > 0 {
		bookingID = bookingIDs[0]
	}
	payload := models.ReminderPayload{
		Target:    "client",
		ID:        clientID,
		BookingID: bookingID,
		Title:     "Upcoming appointment",
		Body:      fmt.Sprintf("Your appointment starts at %s", utils.FormatClock(start)),
		FireDate:  fireAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Reminders.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
