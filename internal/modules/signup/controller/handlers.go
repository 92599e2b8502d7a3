package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"kegerator-server/internal/modules/signup/views"
	"kegerator-server/internal/utils"
)

// ErrMissingField is returned when a required form field is absent from the body.
var ErrMissingField = errors.New("missing form field")

type submission struct {
	Name  string
	Email string
}

func (c *signupControllerImpl) handleForm(w http.ResponseWriter, r *http.Request) {
	utils.WriteHTML(w, views.FormPage{})
}

func (c *signupControllerImpl) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		c.logger.Warn("signup: malformed form body", "error", err)
		utils.WriteText(w, http.StatusBadRequest, "Failed to deserialize form body")
		return
	}

	sub, err := decodeSubmission(r.PostForm)
	if err != nil {
		c.logger.Warn("signup: rejected submission", "error", err)
		utils.WriteText(w, http.StatusBadRequest, fmt.Sprintf("Failed to deserialize form body: %v", err))
		return
	}

	c.logger.Info("signup: name", "name", sub.Name)
	c.logger.Info("signup: email", "email", sub.Email)
	w.WriteHeader(http.StatusOK)
}

// decodeSubmission requires both keys to be present. Empty values are accepted.
func decodeSubmission(form url.Values) (submission, error) {
	var sub submission
	for _, field := range []struct {
		key string
		dst *string
	}{
		{"name", &sub.Name},
		{"email", &sub.Email},
	} {
		values, ok := form[field.key]
		if !ok || len(values) == 0 {
			return submission{}, fmt.Errorf("%w: %s", ErrMissingField, field.key)
		}
		*field.dst = values[0]
	}
	return sub, nil
}
