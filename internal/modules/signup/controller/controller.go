package controller

import (
	"log/slog"
	"net/http"
)

type SignupController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type signupControllerImpl struct {
	logger *slog.Logger
}

// NewSignupController returns a controller that records submissions to logger.
func NewSignupController(logger *slog.Logger) SignupController {
	return &signupControllerImpl{logger: logger}
}

func (c *signupControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /form", c.handleForm)
	mux.HandleFunc("POST /form", c.handleSubmit)
}
