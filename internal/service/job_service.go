package service

import (
	"log"
	"time"
)

// JobService hosts the periodic maintenance work driven by cron.
type JobService struct {
	reservations *ReservationService
}

func NewJobService(reservations *ReservationService) *JobService {
	return &JobService{reservations: reservations}
}

// CompleteFinishedReservations moves active reservations past their end time
// to completed.
func (s *JobService) CompleteFinishedReservations() {
	updated := s.reservations.CompleteExpiredReservations(time.Now())
	if updated > 0 {
		log.Printf("Cron Job: marked %d reservations as completed", updated)
	}
}
