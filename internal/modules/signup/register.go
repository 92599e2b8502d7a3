package signup

import (
	"log/slog"
	"net/http"

	"kegerator-server/internal/modules/signup/controller"
)

func RegisterFeature(mux *http.ServeMux, logger *slog.Logger) {
	signupController := controller.NewSignupController(logger)
	signupController.RegisterRoutes(mux)
}
