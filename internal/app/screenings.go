package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/premek1996/cinema-booking-backend/api"
	"github.com/premek1996/cinema-booking-backend/internal/domain"
)

func (app *Application) GetScreenings(w http.ResponseWriter, r *http.Request) {
	screenings, err := app.screeningRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeScreenings(w, r, screenings)
}

func (app *Application) GetScreeningById(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	screening, err := app.screeningRepo.GetById(r.Context(), id)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toScreeningResponse(screening), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetScreeningsByMovie(w http.ResponseWriter, r *http.Request) {
	movieId, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	screenings, err := app.screeningRepo.GetAllByMovieId(r.Context(), movieId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeScreenings(w, r, screenings)
}

func (app *Application) GetScreeningsByHall(w http.ResponseWriter, r *http.Request) {
	hallId, err := app.readIDParam(r, "hallId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	screenings, err := app.screeningRepo.GetAllByHallId(r.Context(), hallId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeScreenings(w, r, screenings)
}

// GetScreeningsByDate lists screenings starting on the given calendar day.
// A day with no screenings yields an empty list, not an error.
func (app *Application) GetScreeningsByDate(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(api.DateFormat, chi.URLParam(r, "date"))
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid date parameter, expected format %s", api.DateFormat))
		return
	}

	screenings, err := app.screeningRepo.GetAllByDate(r.Context(), date)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeScreenings(w, r, screenings)
}

// CreateScreening allocates a hall-time slot: it resolves the movie and
// hall, derives the end time from the movie duration, rejects any overlap
// with the hall's existing screenings, and persists the result. The unique
// (hall, startTime) constraint backstops concurrent submissions.
func (app *Application) CreateScreening(w http.ResponseWriter, r *http.Request) {
	var req api.CreateScreeningRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), req.MovieId)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	hall, err := app.hallRepo.GetById(r.Context(), req.CinemaHallId)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	startTime := req.StartTime
	endTime := movie.ScreeningEndTime(startTime)

	existing, err := app.screeningRepo.GetAllByHallId(r.Context(), hall.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	for _, s := range existing {
		if s.Overlaps(startTime, endTime) {
			app.domainErrorResponse(w, r, &domain.ScreeningConflictError{
				HallName:  hall.Name,
				StartTime: startTime,
				EndTime:   endTime,
			})
			return
		}
	}

	screening := &domain.Screening{
		UUID:            uuid.New(),
		MovieID:         movie.ID,
		HallID:          hall.ID,
		StartTime:       startTime,
		EndTime:         endTime,
		Price:           req.Price,
		MovieTitle:      movie.Title,
		MovieGenre:      movie.Genre,
		DurationMinutes: movie.DurationMinutes,
		HallName:        hall.Name,
		HallCapacity:    hall.Capacity(),
	}

	err = app.screeningRepo.Create(r.Context(), screening)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toScreeningResponse(screening), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteScreening(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.screeningRepo.Delete(r.Context(), id)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) writeScreenings(w http.ResponseWriter, r *http.Request, screenings []*domain.Screening) {
	resp := make([]api.ScreeningResponse, len(screenings))
	for i, screening := range screenings {
		resp[i] = toScreeningResponse(screening)
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toScreeningResponse(screening *domain.Screening) api.ScreeningResponse {
	return api.ScreeningResponse{
		Id:              screening.ID,
		Uuid:            screening.UUID,
		MovieId:         screening.MovieID,
		MovieTitle:      screening.MovieTitle,
		MovieGenre:      screening.MovieGenre,
		DurationMinutes: screening.DurationMinutes,
		CinemaHallId:    screening.HallID,
		CinemaHallName:  screening.HallName,
		HallCapacity:    screening.HallCapacity,
		StartTime:       screening.StartTime,
		EndTime:         screening.EndTime,
		Price:           screening.Price,
	}
}
