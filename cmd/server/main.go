package main

import (
	"log"
	"net/http"
	"os"

	"estacioneai/internal/api"
	"estacioneai/internal/config"
	"estacioneai/internal/repository"
	"estacioneai/internal/service"
	"estacioneai/internal/ws"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg := config.Load()

	store := repository.NewStore()
	if cfg.SeedSampleData {
		if err := repository.Seed(store); err != nil {
			log.Fatalf("Failed to seed store: %v", err)
		}
	}

	hub := ws.NewHub()
	sender := service.NewSenderService(cfg.AdminEmail)
	reservationSvc := service.NewReservationService(store, hub, sender)
	contactSvc := service.NewContactService(store, sender)
	statsSvc := service.NewStatsService(store)

	parkingHandler := api.NewParkingHandler(reservationSvc)
	reservationHandler := api.NewReservationHandler(reservationSvc)
	contactHandler := api.NewContactHandler(contactSvc)
	statsHandler := api.NewStatsHandler(statsSvc)
	wsHandler := api.NewWebSocketHandler(hub)

	r := mux.NewRouter()

	// Parking lots and spots
	r.HandleFunc("/api/parking-lots", parkingHandler.ListParkingLots).Methods("GET")
	r.HandleFunc("/api/parking-lots/{id}", parkingHandler.GetParkingLot).Methods("GET")
	r.HandleFunc("/api/spots", parkingHandler.ListSpots).Methods("GET")
	r.HandleFunc("/api/spots/available", parkingHandler.ListAvailableSpots).Methods("GET")
	r.HandleFunc("/api/spots/{id}", parkingHandler.GetSpot).Methods("GET")
	r.HandleFunc("/api/spots/{id}", parkingHandler.UpdateSpot).Methods("PATCH")
	r.HandleFunc("/api/spots/{id}/release", parkingHandler.ReleaseSpot).Methods("POST")

	// Reservations
	r.HandleFunc("/api/reservations", reservationHandler.ListReservations).Methods("GET")
	r.HandleFunc("/api/reservations", reservationHandler.CreateReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{id}", reservationHandler.GetReservation).Methods("GET")
	r.HandleFunc("/api/reservations/{id}", reservationHandler.UpdateReservation).Methods("PATCH")
	r.HandleFunc("/api/reservations/{id}", reservationHandler.DeleteReservation).Methods("DELETE")

	// Contact messages
	r.HandleFunc("/api/contact", contactHandler.CreateContactMessage).Methods("POST")
	r.HandleFunc("/api/contact", contactHandler.ListContactMessages).Methods("GET")

	// Dashboard
	r.HandleFunc("/api/dashboard/stats", statsHandler.DashboardStats).Methods("GET")

	// Real-time event feed
	r.HandleFunc("/ws", wsHandler.HandleWebSocket)

	jobSvc := service.NewJobService(reservationSvc)
	c := cron.New()
	if _, err := c.AddFunc("@every 1m", jobSvc.CompleteFinishedReservations); err != nil {
		log.Fatalf("Failed to schedule reservation expiry job: %v", err)
	}
	c.Start()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	log.Printf("Server running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handlers.LoggingHandler(os.Stdout, corsHandler(r))))
}
