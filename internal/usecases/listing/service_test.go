package listing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/betpicks/betsites-api/infrastructure/repository/mocks"
	"github.com/betpicks/betsites-api/internal/domain"
)

func validItem() *domain.RankItem {
	return &domain.RankItem{
		SiteName:     "Acme Bet",
		Logo:         "http://x/a.png",
		Advantages:   []string{"Fast payouts"},
		WelcomeBonus: "100%",
		Payments:     []string{"Visa"},
		PromoCode:    "ACME100",
		Rank:         1,
	}
}

func uniqueViolation(constraint string) error {
	return &pq.Error{Code: "23505", Constraint: constraint}
}

func TestRankItemService_CreateRankItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRankItemRepository(ctrl)
	service := &RankItemService{RankItemRepository: mockRepo}

	t.Run("assigns a uuid and persists the item", func(t *testing.T) {
		now := time.Now()
		mockRepo.EXPECT().
			CreateRankItem(gomock.Any()).
			DoAndReturn(func(item *domain.RankItem) (*domain.RankItem, error) {
				item.CreatedAt = now
				item.UpdatedAt = now
				return item, nil
			})

		created, err := service.CreateRankItem(validItem())
		require.NoError(t, err)

		_, err = uuid.Parse(created.ID)
		assert.NoError(t, err, "generated id must be a uuid")
		assert.Equal(t, "Acme Bet", created.SiteName)
		assert.Equal(t, now, created.CreatedAt)
	})

	t.Run("rejects an invalid item before touching the store", func(t *testing.T) {
		item := validItem()
		item.SiteName = ""

		_, err := service.CreateRankItem(item)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "siteName", validationErr.Fields[0].Field)
	})

	t.Run("maps a unique violation to a conflict", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateRankItem(gomock.Any()).
			Return(nil, uniqueViolation("rank_items_site_name_key"))

		_, err := service.CreateRankItem(validItem())
		assert.ErrorIs(t, err, ErrRankItemConflict)
	})

	t.Run("maps any other store failure to a database error", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateRankItem(gomock.Any()).
			Return(nil, assert.AnError)

		_, err := service.CreateRankItem(validItem())
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}

func TestRankItemService_GetRankItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRankItemRepository(ctrl)
	service := &RankItemService{RankItemRepository: mockRepo}

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		_, err := service.GetRankItem("not-a-uuid")
		assert.ErrorIs(t, err, ErrRankItemNotFound)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		id := uuid.New().String()
		mockRepo.EXPECT().GetRankItemByID(id).Return(nil, nil)

		_, err := service.GetRankItem(id)
		assert.ErrorIs(t, err, ErrRankItemNotFound)
	})

	t.Run("returns the stored item", func(t *testing.T) {
		id := uuid.New().String()
		stored := validItem()
		stored.ID = id
		mockRepo.EXPECT().GetRankItemByID(id).Return(stored, nil)

		item, err := service.GetRankItem(id)
		require.NoError(t, err)
		assert.Equal(t, stored, item)
	})
}

func TestRankItemService_UpdateRankItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRankItemRepository(ctrl)
	service := &RankItemService{RankItemRepository: mockRepo}

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		_, err := service.UpdateRankItem("123", &domain.UpdateRankItemRequest{})
		assert.ErrorIs(t, err, ErrRankItemNotFound)
	})

	t.Run("rejects a request blanking a required field", func(t *testing.T) {
		empty := ""
		_, err := service.UpdateRankItem(uuid.New().String(), &domain.UpdateRankItemRequest{SiteName: &empty})

		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("passes only the supplied fields through", func(t *testing.T) {
		id := uuid.New().String()
		newRank := 2
		req := &domain.UpdateRankItemRequest{Rank: &newRank}

		updated := validItem()
		updated.ID = id
		updated.Rank = newRank

		mockRepo.EXPECT().
			UpdateRankItem(id, req).
			DoAndReturn(func(_ string, got *domain.UpdateRankItemRequest) (*domain.RankItem, error) {
				assert.Nil(t, got.SiteName)
				assert.Nil(t, got.Advantages)
				require.NotNil(t, got.Rank)
				assert.Equal(t, 2, *got.Rank)
				return updated, nil
			})

		item, err := service.UpdateRankItem(id, req)
		require.NoError(t, err)
		assert.Equal(t, 2, item.Rank)
		assert.Equal(t, "Acme Bet", item.SiteName)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		id := uuid.New().String()
		mockRepo.EXPECT().UpdateRankItem(id, gomock.Any()).Return(nil, nil)

		_, err := service.UpdateRankItem(id, &domain.UpdateRankItemRequest{})
		assert.ErrorIs(t, err, ErrRankItemNotFound)
	})

	t.Run("duplicate rank maps to a conflict", func(t *testing.T) {
		id := uuid.New().String()
		mockRepo.EXPECT().
			UpdateRankItem(id, gomock.Any()).
			Return(nil, uniqueViolation("rank_items_rank_key"))

		_, err := service.UpdateRankItem(id, &domain.UpdateRankItemRequest{})
		assert.ErrorIs(t, err, ErrRankItemConflict)
	})
}

func TestRankItemService_DeleteRankItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRankItemRepository(ctrl)
	service := &RankItemService{RankItemRepository: mockRepo}

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		err := service.DeleteRankItem("xx")
		assert.ErrorIs(t, err, ErrRankItemNotFound)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		id := uuid.New().String()
		mockRepo.EXPECT().DeleteRankItem(id).Return(false, nil)

		err := service.DeleteRankItem(id)
		assert.ErrorIs(t, err, ErrRankItemNotFound)
	})

	t.Run("removes the item", func(t *testing.T) {
		id := uuid.New().String()
		mockRepo.EXPECT().DeleteRankItem(id).Return(true, nil)

		assert.NoError(t, service.DeleteRankItem(id))
	})
}

func TestRankItemService_ListRankItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRankItemRepository(ctrl)
	service := &RankItemService{RankItemRepository: mockRepo}

	t.Run("returns items in repository order", func(t *testing.T) {
		first := validItem()
		second := validItem()
		second.SiteName = "BetNordic"
		second.Rank = 2

		mockRepo.EXPECT().
			ListRankItems().
			Return([]*domain.RankItem{first, second}, nil)

		items, err := service.ListRankItems()
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.True(t, items[0].Rank <= items[1].Rank)
	})

	t.Run("maps store failures to a database error", func(t *testing.T) {
		mockRepo.EXPECT().ListRankItems().Return(nil, assert.AnError)

		_, err := service.ListRankItems()
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}
