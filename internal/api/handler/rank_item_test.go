package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/betpicks/betsites-api/internal/api/handler"
	"github.com/betpicks/betsites-api/internal/api/handler/router"
	"github.com/betpicks/betsites-api/internal/domain"
	"github.com/betpicks/betsites-api/internal/usecases/listing"
	"github.com/betpicks/betsites-api/internal/usecases/listing/mocks"
)

func newTestRouter(service listing.ListingService) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.RankItems(service)...),
	)
	return rt
}

func doRequest(t *testing.T, h http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func sampleItem(rank int) *domain.RankItem {
	return &domain.RankItem{
		ID:           uuid.New().String(),
		SiteName:     "Acme Bet",
		Logo:         "http://x/a.png",
		Advantages:   []string{"Fast payouts"},
		WelcomeBonus: "100%",
		Payments:     []string{"Visa"},
		PromoCode:    "ACME100",
		Rank:         rank,
	}
}

func TestListRankItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockListingService(ctrl)
	rt := newTestRouter(mockService)

	t.Run("returns the listing ordered by rank", func(t *testing.T) {
		mockService.EXPECT().
			ListRankItems().
			Return([]*domain.RankItem{sampleItem(1), sampleItem(2)}, nil)

		rec := doRequest(t, rt, http.MethodGet, "/rankitems", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var items []domain.RankItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		require.Len(t, items, 2)
		assert.Equal(t, 1, items[0].Rank)
		assert.Equal(t, 2, items[1].Rank)
	})

	t.Run("answers 500 when the store fails", func(t *testing.T) {
		mockService.EXPECT().ListRankItems().Return(nil, listing.ErrDatabaseOperation)

		rec := doRequest(t, rt, http.MethodGet, "/rankitems", nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "SRV_002", decodeError(t, rec)["code"])
	})
}

func TestCreateRankItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockListingService(ctrl)
	rt := newTestRouter(mockService)

	t.Run("persists and answers 201 with the stored record", func(t *testing.T) {
		stored := sampleItem(1)
		mockService.EXPECT().
			CreateRankItem(gomock.Any()).
			Return(stored, nil)

		body := []byte(`{
			"siteName": "Acme Bet",
			"logo": "http://x/a.png",
			"advantages": ["Fast payouts"],
			"welcomeBonus": "100%",
			"payments": ["Visa"],
			"promoCode": "ACME100",
			"rank": 1
		}`)

		rec := doRequest(t, rt, http.MethodPost, "/rankitems", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var created domain.RankItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, stored.ID, created.ID)
		assert.Equal(t, "Acme Bet", created.SiteName)
	})

	t.Run("answers 400 on a malformed body", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodPost, "/rankitems", []byte("{not json"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VAL_001", decodeError(t, rec)["code"])
	})

	t.Run("answers 400 with field detail when required fields are missing", func(t *testing.T) {
		mockService.EXPECT().
			CreateRankItem(gomock.Any()).
			Return(nil, &domain.ValidationError{Fields: []domain.FieldError{
				{Field: "siteName", Message: "is required"},
			}})

		rec := doRequest(t, rt, http.MethodPost, "/rankitems", []byte(`{"rank": 1}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		out := decodeError(t, rec)
		assert.Equal(t, "VAL_002", out["code"])
		assert.NotEmpty(t, out["details"])
	})

	t.Run("answers 409 on a duplicate site name or rank", func(t *testing.T) {
		mockService.EXPECT().
			CreateRankItem(gomock.Any()).
			Return(nil, listing.ErrRankItemConflict)

		body := []byte(`{"siteName": "Acme Bet", "rank": 1}`)
		rec := doRequest(t, rt, http.MethodPost, "/rankitems", body)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "RES_002", decodeError(t, rec)["code"])
	})
}

func TestGetRankItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockListingService(ctrl)
	rt := newTestRouter(mockService)

	t.Run("returns the item", func(t *testing.T) {
		stored := sampleItem(1)
		mockService.EXPECT().GetRankItem(stored.ID).Return(stored, nil)

		rec := doRequest(t, rt, http.MethodGet, "/rankitems/"+stored.ID, nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var item domain.RankItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
		assert.Equal(t, stored.ID, item.ID)
	})

	t.Run("answers 404 for unknown or malformed ids", func(t *testing.T) {
		mockService.EXPECT().GetRankItem("not-a-uuid").Return(nil, listing.ErrRankItemNotFound)

		rec := doRequest(t, rt, http.MethodGet, "/rankitems/not-a-uuid", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "RES_001", decodeError(t, rec)["code"])
	})
}

func TestUpdateRankItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockListingService(ctrl)
	rt := newTestRouter(mockService)

	t.Run("applies a partial update and returns the merged record", func(t *testing.T) {
		stored := sampleItem(2)
		mockService.EXPECT().
			UpdateRankItem(stored.ID, gomock.Any()).
			DoAndReturn(func(_ string, req *domain.UpdateRankItemRequest) (*domain.RankItem, error) {
				require.NotNil(t, req.Rank)
				assert.Equal(t, 2, *req.Rank)
				assert.Nil(t, req.SiteName, "omitted fields must stay nil")
				return stored, nil
			})

		rec := doRequest(t, rt, http.MethodPut, "/rankitems/"+stored.ID, []byte(`{"rank": 2}`))

		assert.Equal(t, http.StatusOK, rec.Code)

		var item domain.RankItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
		assert.Equal(t, 2, item.Rank)
		assert.Equal(t, "Acme Bet", item.SiteName)
	})

	t.Run("answers 400 on a malformed body", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodPut, "/rankitems/"+uuid.New().String(), []byte("]["))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VAL_001", decodeError(t, rec)["code"])
	})

	t.Run("answers 404 for an unknown id", func(t *testing.T) {
		id := uuid.New().String()
		mockService.EXPECT().
			UpdateRankItem(id, gomock.Any()).
			Return(nil, listing.ErrRankItemNotFound)

		rec := doRequest(t, rt, http.MethodPut, "/rankitems/"+id, []byte(`{"rank": 3}`))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteRankItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockListingService(ctrl)
	rt := newTestRouter(mockService)

	t.Run("answers with a confirmation message", func(t *testing.T) {
		id := uuid.New().String()
		mockService.EXPECT().DeleteRankItem(id).Return(nil)

		rec := doRequest(t, rt, http.MethodDelete, "/rankitems/"+id, nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var out map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, "rank item deleted", out["message"])
	})

	t.Run("answers 404 for an unknown id", func(t *testing.T) {
		id := uuid.New().String()
		mockService.EXPECT().DeleteRankItem(id).Return(listing.ErrRankItemNotFound)

		rec := doRequest(t, rt, http.MethodDelete, "/rankitems/"+id, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
