package mocks

import (
	"context"
	"time"

	"github.com/premek1996/cinema-booking-backend/internal/domain"
)

type MockScreeningRepo struct {
	domain.ScreeningRepository
	GetAllFunc          func(ctx context.Context) ([]*domain.Screening, error)
	GetByIdFunc         func(ctx context.Context, id int) (*domain.Screening, error)
	GetAllByMovieIdFunc func(ctx context.Context, movieId int) ([]*domain.Screening, error)
	GetAllByHallIdFunc  func(ctx context.Context, hallId int) ([]*domain.Screening, error)
	GetAllByDateFunc    func(ctx context.Context, date time.Time) ([]*domain.Screening, error)
	CreateFunc          func(ctx context.Context, screening *domain.Screening) error
	DeleteFunc          func(ctx context.Context, id int) error
}

func (m *MockScreeningRepo) GetAll(ctx context.Context) ([]*domain.Screening, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockScreeningRepo) GetById(ctx context.Context, id int) (*domain.Screening, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockScreeningRepo) GetAllByMovieId(ctx context.Context, movieId int) ([]*domain.Screening, error) {
	return m.GetAllByMovieIdFunc(ctx, movieId)
}

func (m *MockScreeningRepo) GetAllByHallId(ctx context.Context, hallId int) ([]*domain.Screening, error) {
	return m.GetAllByHallIdFunc(ctx, hallId)
}

func (m *MockScreeningRepo) GetAllByDate(ctx context.Context, date time.Time) ([]*domain.Screening, error) {
	return m.GetAllByDateFunc(ctx, date)
}

func (m *MockScreeningRepo) Create(ctx context.Context, screening *domain.Screening) error {
	return m.CreateFunc(ctx, screening)
}

func (m *MockScreeningRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
