package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(otelchi.Middleware("cinema-booking-api", otelchi.WithChiRoutes(r)))

	r.Get("/healthcheck", app.Healthcheck)

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.GetMovies)
		r.Post("/", app.CreateMovie)
		r.Get("/{id}", app.GetMovieById)
		r.Patch("/{id}", app.UpdateMovie)
		r.Delete("/{id}", app.DeleteMovie)
	})

	r.Route("/halls", func(r chi.Router) {
		r.Get("/", app.GetCinemaHalls)
		r.Post("/", app.CreateCinemaHall)
		r.Get("/{id}", app.GetCinemaHallById)
		r.Delete("/{id}", app.DeleteCinemaHall)
	})

	r.Route("/screenings", func(r chi.Router) {
		r.Get("/", app.GetScreenings)
		r.Post("/", app.CreateScreening)
		r.Get("/movie/{movieId}", app.GetScreeningsByMovie)
		r.Get("/hall/{hallId}", app.GetScreeningsByHall)
		r.Get("/date/{date}", app.GetScreeningsByDate)
		r.Get("/{id}", app.GetScreeningById)
		r.Delete("/{id}", app.DeleteScreening)
	})

	return r
}
