package service

import (
	"context"
	"fmt"
	"log"

	"hotelbooking/internal/repository"
)

type JobService struct {
	Repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

// ReleaseCheckedOutRooms finds rooms still held by bookings whose checkout
// date has passed and flips them back to available.
func (s *JobService) ReleaseCheckedOutRooms(ctx context.Context) error {
	log.Println("Cron Job: Checking for rooms past their checkout date...")

	roomNumbers, err := s.Repo.GetRoomsPastCheckout(ctx)
	if err != nil {
		return fmt.Errorf("cron job: failed to get rooms past checkout: %w", err)
	}

	if len(roomNumbers) == 0 {
		log.Println("Cron Job: No rooms found past their checkout date.")
		return nil
	}

	log.Printf("Cron Job: Found %d rooms to release. Numbers: %v", len(roomNumbers), roomNumbers)

	if err := s.Repo.ReleaseRooms(ctx, roomNumbers); err != nil {
		return fmt.Errorf("cron job: failed to release rooms: %w", err)
	}

	log.Printf("Cron Job: Successfully released %d rooms.", len(roomNumbers))
	return nil
}
