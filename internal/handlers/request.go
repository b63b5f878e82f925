package handlers

import (
	"net/http"
	"strconv"

	"github.com/nkiryanov/bankapi/internal/handlers/render"
)

// idFromRequest parses a numeric id from the named path segment
// Writes a 400 response and returns false if the value is not a number
func idFromRequest(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		render.ServiceError(w, "Invalid value for parameter "+name, http.StatusBadRequest)
		return 0, false
	}

	return id, true
}
