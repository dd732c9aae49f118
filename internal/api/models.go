package api

import "time"

type CreateReservationRequest struct {
	SpotID    string    `json:"spot_id"`
	UserID    string    `json:"user_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	// Optional contact details for the confirmation message.
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type UpdateReservationRequest struct {
	Status    *string    `json:"status"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

type UpdateSpotRequest struct {
	SpotNumber *string `json:"spot_number"`
	Sector     *string `json:"sector"`
	Status     *string `json:"status"`
	IsActive   *bool   `json:"is_active"`
}

type ContactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
