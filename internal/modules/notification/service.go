package notification

import (
	"context"
	"log"

	"venuespace/internal/domain"
	"venuespace/internal/repository"
)

// Service persists notifications and pushes them to connected clients.
// The websocket push is best effort; the stored row is the source of
// truth.
type Service struct {
	repo *repository.NotificationRepository
	hub  *Hub
}

func NewService(repo *repository.NotificationRepository, hub *Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

func (s *Service) GetUserNotifications(ctx context.Context, userID int64, limit int) ([]domain.Notification, int64, error) {
	list, err := s.repo.GetByUserID(ctx, userID, limit, 0)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return list, unread, nil
}

func (s *Service) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	return s.repo.MarkRead(ctx, userID, notificationID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *Service) NotifyBookingCreated(ctx context.Context, hostUserID int64, b *domain.Booking) error {
	return s.deliver(ctx, hostUserID, domain.NotifyBookingCreated,
		"New booking request",
		"A new booking request is waiting for your confirmation.",
		b, 0)
}

func (s *Service) NotifyBookingConfirmed(ctx context.Context, clientUserID int64, b *domain.Booking) error {
	return s.deliver(ctx, clientUserID, domain.NotifyBookingConfirmed,
		"Booking confirmed",
		"Your booking has been confirmed by the venue.",
		b, 0)
}

func (s *Service) NotifyBookingCancelled(ctx context.Context, userID int64, b *domain.Booking, reason string) error {
	return s.deliver(ctx, userID, domain.NotifyBookingCancelled,
		"Booking cancelled",
		"Booking was cancelled: "+reason,
		b, 0)
}

func (s *Service) NotifyOptionRejected(ctx context.Context, clientUserID int64, b *domain.Booking, optionID int64, reason string) error {
	body := "One of your selected options was declined by the venue."
	if reason != "" {
		body = "Option declined: " + reason
	}
	return s.deliver(ctx, clientUserID, domain.NotifyOptionRejected,
		"Option declined", body, b, optionID)
}

func (s *Service) deliver(ctx context.Context, userID int64, kind, title, body string, b *domain.Booking, optionID int64) error {
	data := domain.NotificationData{}
	if b != nil {
		data.BookingID = &b.ID
		data.VenueID = &b.VenueID
	}
	if optionID != 0 {
		data.OptionID = &optionID
	}

	n := &domain.Notification{
		UserID: userID,
		Type:   kind,
		Title:  title,
		Body:   body,
		Data:   data.Encode(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		log.Printf("notification: failed to store %s for user %d: %v", kind, userID, err)
		return err
	}

	if s.hub != nil {
		s.hub.SendToUser(userID, n)
	}

	return nil
}
