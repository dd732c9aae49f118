package service

import (
	"fmt"

	"estacioneai/internal/db"
	"estacioneai/internal/repository"
)

// ContactService stores inbound contact messages and notifies the admin.
// Contact messages have no coupling to spots or reservations.
type ContactService struct {
	repo   *repository.Store
	sender *SenderService
}

func NewContactService(repo *repository.Store, sender *SenderService) *ContactService {
	return &ContactService{repo: repo, sender: sender}
}

func (s *ContactService) CreateContactMessage(msg db.ContactMessage) (db.ContactMessage, error) {
	stored, err := s.repo.CreateContactMessage(msg)
	if err != nil {
		return db.ContactMessage{}, fmt.Errorf("storing contact message: %w", err)
	}
	s.sender.SendContactNotification(stored)
	return stored, nil
}

func (s *ContactService) ListContactMessages() []db.ContactMessage {
	return s.repo.ListContactMessages()
}
