package mocks

import (
	"context"

	"github.com/premek1996/cinema-booking-backend/internal/domain"
)

type MockHallRepo struct {
	domain.HallRepository
	GetAllFunc  func(ctx context.Context) ([]*domain.CinemaHall, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.CinemaHall, error)
	CreateFunc  func(ctx context.Context, hall *domain.CinemaHall) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockHallRepo) GetAll(ctx context.Context) ([]*domain.CinemaHall, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockHallRepo) GetById(ctx context.Context, id int) (*domain.CinemaHall, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockHallRepo) Create(ctx context.Context, hall *domain.CinemaHall) error {
	return m.CreateFunc(ctx, hall)
}

func (m *MockHallRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
