package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/betpicks/betsites-api/internal/domain"
	"github.com/betpicks/betsites-api/internal/usecases/listing"
	"github.com/betpicks/betsites-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ListRankItems returns every item ordered ascending by rank.
func ListRankItems(service listing.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := service.ListRankItems()
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

// GetRankItem returns a single item by id.
func GetRankItem(service listing.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		item, err := service.GetRankItem(id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

// CreateRankItem persists a new item and returns it with its generated id
// and timestamps.
func CreateRankItem(service listing.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item domain.RankItem
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			logrus.WithError(err).Warn("failed to decode create request")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		created, err := service.CreateRankItem(&item)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// UpdateRankItem merges the supplied fields onto the stored item. Omitted
// fields keep their previous values.
func UpdateRankItem(service listing.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdateRankItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.WithError(err).Warn("failed to decode update request")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		item, err := service.UpdateRankItem(id, &req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

// DeleteRankItem removes the item and answers with a confirmation message.
func DeleteRankItem(service listing.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteRankItem(id); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"message": "rank item deleted",
		})
	}
}

// writeServiceError maps listing errors onto API error codes. Anything
// unknown is a generic database/server failure; no internal detail leaves
// the process.
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "required fields are missing or invalid", validationErr.Fields)
		return
	}

	switch {
	case errors.Is(err, listing.ErrRankItemNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRankItemNotFound, "rank item not found", nil)
	case errors.Is(err, listing.ErrRankItemConflict):
		apiErrors.WriteError(w, apiErrors.ErrRankItemConflict, "site name or rank already in use", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "unexpected server error", nil)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("failed to encode response")
	}
}
