// Package api holds the request and response types of the HTTP interface.
package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateMovieRequest struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description" validate:"required"`
	Genre           string `json:"genre" validate:"required"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,min=1"`
	ReleaseDate     Date   `json:"releaseDate" validate:"required,notfuture"`
	AgeRating       string `json:"ageRating" validate:"required,agerating"`
}

// UpdateMovieRequest carries a partial update. A nil field is left alone, a
// present field overwrites; the domain never clears a field.
type UpdateMovieRequest struct {
	Title           *string `json:"title" validate:"omitempty,min=1"`
	Description     *string `json:"description" validate:"omitempty,min=1"`
	Genre           *string `json:"genre" validate:"omitempty,min=1"`
	DurationMinutes *int    `json:"durationMinutes" validate:"omitempty,min=1"`
	ReleaseDate     *Date   `json:"releaseDate" validate:"omitempty,notfuture"`
	AgeRating       *string `json:"ageRating" validate:"omitempty,agerating"`
}

type MovieResponse struct {
	Id              int       `json:"id"`
	Uuid            uuid.UUID `json:"uuid"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Genre           string    `json:"genre"`
	DurationMinutes int       `json:"durationMinutes"`
	ReleaseDate     Date      `json:"releaseDate"`
	AgeRating       string    `json:"ageRating"`
}

type CreateCinemaHallRequest struct {
	Name        string `json:"name" validate:"required"`
	Rows        int    `json:"rows" validate:"required,min=1"`
	SeatsPerRow int    `json:"seatsPerRow" validate:"required,min=1"`
}

type CinemaHallResponse struct {
	Id          int            `json:"id"`
	Uuid        uuid.UUID      `json:"uuid"`
	Name        string         `json:"name"`
	Rows        int            `json:"rows"`
	SeatsPerRow int            `json:"seatsPerRow"`
	Seats       []SeatResponse `json:"seats"`
}

type SeatResponse struct {
	Id         int `json:"id"`
	RowNumber  int `json:"rowNumber"`
	SeatNumber int `json:"seatNumber"`
}

type CreateScreeningRequest struct {
	MovieId      int             `json:"movieId" validate:"required,min=1"`
	CinemaHallId int             `json:"cinemaHallId" validate:"required,min=1"`
	StartTime    time.Time       `json:"startTime" validate:"required,notpast"`
	Price        decimal.Decimal `json:"price" validate:"required,price"`
}

type ScreeningResponse struct {
	Id              int             `json:"id"`
	Uuid            uuid.UUID       `json:"uuid"`
	MovieId         int             `json:"movieId"`
	MovieTitle      string          `json:"movieTitle"`
	MovieGenre      string          `json:"movieGenre"`
	DurationMinutes int             `json:"durationMinutes"`
	CinemaHallId    int             `json:"cinemaHallId"`
	CinemaHallName  string          `json:"cinemaHallName"`
	HallCapacity    int             `json:"hallCapacity"`
	StartTime       time.Time       `json:"startTime"`
	EndTime         time.Time       `json:"endTime"`
	Price           decimal.Decimal `json:"price"`
}

type HealthcheckResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
}

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
}
