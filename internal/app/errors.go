package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/premek1996/cinema-booking-backend/api"
	"github.com/premek1996/cinema-booking-backend/internal/domain"
	appvalidator "github.com/premek1996/cinema-booking-backend/internal/validator"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	message := "The server encountered a problem and could not process your request"
	app.errorResponse(w, r, http.StatusInternalServerError, message)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "The requested resource not found"
	app.errorResponse(w, r, http.StatusNotFound, message)
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := "The method is not supported for this resource"
	app.errorResponse(w, r, http.StatusMethodNotAllowed, message)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

// failedValidationResponse returns every violated field at once, one message
// per field, instead of failing on the first violation.
func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		app.serverErrorResponse(w, r, err)
		return
	}

	fieldErrors := make([]api.ValidationError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fieldErrors = append(fieldErrors, api.ValidationError{
			Field: fieldErr.Field(),
			Issue: appvalidator.ValidationMessage(fieldErr),
		})
	}

	resp := api.ValidationErrorResponse{
		Message:          "Validation failed",
		ValidationErrors: fieldErrors,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
	}

	err = app.writeJSON(w, http.StatusBadRequest, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

// domainErrorResponse maps domain errors onto caller-visible outcomes:
// missing entities to 404, uniqueness and scheduling conflicts to 409,
// anything unexpected to a generic 500 that leaks no internals.
func (app *Application) domainErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var conflictErr *domain.ScreeningConflictError

	switch {
	case errors.Is(err, domain.ErrMovieNotFound),
		errors.Is(err, domain.ErrHallNotFound),
		errors.Is(err, domain.ErrScreeningNotFound):
		app.errorResponse(w, r, http.StatusNotFound, err.Error())

	case errors.Is(err, domain.ErrMovieAlreadyExists),
		errors.Is(err, domain.ErrHallAlreadyExists),
		errors.Is(err, domain.ErrMovieInUse),
		errors.Is(err, domain.ErrHallInUse):
		app.errorResponse(w, r, http.StatusConflict, err.Error())

	case errors.As(err, &conflictErr):
		app.errorResponse(w, r, http.StatusConflict, err.Error())

	default:
		app.serverErrorResponse(w, r, err)
	}
}
