package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// pathID parses the {id} route variable.
func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
