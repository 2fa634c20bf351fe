package app

import (
	"net/http"

	"github.com/premek1996/cinema-booking-backend/api"
)

func (app *Application) Healthcheck(w http.ResponseWriter, r *http.Request) {
	resp := api.HealthcheckResponse{
		Status:      "available",
		Environment: app.config.Env,
		Version:     version,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
