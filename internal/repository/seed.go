package repository

import (
	"fmt"
	"log"

	"estacioneai/internal/db"
)

// Seed loads the sample lots and spot grid used for local development and
// demos. Spots start out available except for a handful marked occupied so
// the dashboard has something to show.
func Seed(store *Store) error {
	luz, err := store.CreateLot(db.ParkingLot{
		Name:         "Shopping Luz",
		Description:  "Estacionamento coberto e seguro no Shopping Luz",
		Address:      "Rua Ribeiro de Lima, 99 - Luz, São Paulo - SP",
		Latitude:     "-23.5450",
		Longitude:    "-46.6380",
		TotalSpots:   240,
		PricePerHour: "6.00",
		IsActive:     true,
	})
	if err != nil {
		return fmt.Errorf("seed lot: %w", err)
	}

	sectors := []string{"A", "B", "C", "D"}
	const spotsPerSector = 8
	for si, sector := range sectors {
		for i := 1; i <= spotsPerSector; i++ {
			status := db.SpotAvailable
			if i == 1 && si%2 == 0 {
				status = db.SpotOccupied
			}
			_, err := store.CreateSpot(db.ParkingSpot{
				SpotNumber:   fmt.Sprintf("%s%d", sector, i),
				Sector:       fmt.Sprintf("Setor %s", sector),
				ParkingLotID: luz.ID,
				Status:       status,
				IsActive:     true,
			})
			if err != nil {
				return fmt.Errorf("seed spot: %w", err)
			}
		}
	}

	_, err = store.CreateLot(db.ParkingLot{
		Name:         "Shopping Center Norte",
		Description:  "Grande estacionamento com vagas numeradas",
		Address:      "Travessa Casalbuono, 120 - Vila Guilherme, São Paulo - SP",
		Latitude:     "-23.5200",
		Longitude:    "-46.6200",
		TotalSpots:   200,
		PricePerHour: "5.50",
		IsActive:     true,
	})
	if err != nil {
		return fmt.Errorf("seed lot: %w", err)
	}

	_, err = store.CreateLot(db.ParkingLot{
		Name:         "Estacionamento Central",
		Description:  "Próximo à Av. Paulista, localização privilegiada",
		Address:      "Av. Paulista, 1000 - Bela Vista, São Paulo - SP",
		Latitude:     "-23.5505",
		Longitude:    "-46.6333",
		TotalSpots:   80,
		PricePerHour: "8.00",
		IsActive:     true,
	})
	if err != nil {
		return fmt.Errorf("seed lot: %w", err)
	}

	log.Printf("Seeded %d parking lots and %d spots", len(store.ListLots()), len(store.ListSpots("")))
	return nil
}
