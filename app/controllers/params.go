package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// idParam reads the {id} route parameter as a uint. Zero means absent or
// malformed.
func idParam(r *http.Request) uint {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
