package app

import (
	"net/http"

	"github.com/premek1996/cinema-booking-backend/api"
	"github.com/premek1996/cinema-booking-backend/internal/domain"
)

func (app *Application) GetCinemaHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := app.hallRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.CinemaHallResponse, len(halls))
	for i, hall := range halls {
		resp[i] = toCinemaHallResponse(hall)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetCinemaHallById(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	hall, err := app.hallRepo.GetById(r.Context(), id)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toCinemaHallResponse(hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateCinemaHall(w http.ResponseWriter, r *http.Request) {
	var req api.CreateCinemaHallRequest

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

	hall := domain.NewCinemaHall(req.Name, req.Rows, req.SeatsPerRow)

	err = app.hallRepo.Create(r.Context(), hall)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toCinemaHallResponse(hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteCinemaHall(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.hallRepo.Delete(r.Context(), id)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toCinemaHallResponse(hall *domain.CinemaHall) api.CinemaHallResponse {
	seats := make([]api.SeatResponse, len(hall.Seats))
	for i, seat := range hall.Seats {
		seats[i] = api.SeatResponse{
			Id:         seat.ID,
			RowNumber:  seat.RowNumber,
			SeatNumber: seat.SeatNumber,
		}
	}

	return api.CinemaHallResponse{
		Id:          hall.ID,
		Uuid:        hall.UUID,
		Name:        hall.Name,
		Rows:        hall.Rows,
		SeatsPerRow: hall.SeatsPerRow,
		Seats:       seats,
	}
}
