package handler

import (
	"net/http"
	"strconv"

	"hospital-api/internal/delivery/dto"
	"hospital-api/pkg/response"
	"hospital-api/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
)

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

// decodeListQuery reads page, pageSize and sortBy from the query string.
// On failure it writes a 400 and returns false.
func decodeListQuery(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator) (*dto.ListQueryRequest, bool) {
	req := dto.NewListQueryRequest()
	if err := queryDecoder.Decode(&req, r.URL.Query()); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return nil, false
	}

	if err := v.Validate(&req); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return nil, false
	}

	return &req, true
}

// pathID parses the {id} route variable. On failure it writes a 400 and
// returns false.
func pathID(w http.ResponseWriter, r *http.Request, message string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id < 1 {
		response.Error(w, http.StatusBadRequest, message, nil)
		return 0, false
	}
	return id, true
}
