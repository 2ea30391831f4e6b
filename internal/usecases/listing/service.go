// Package listing implements the operations over the ranked betting-site
// listing.
package listing

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/betpicks/betsites-api/infrastructure/repository"
	"github.com/betpicks/betsites-api/internal/domain"
)

type ListingService interface {
	ListRankItems() ([]*domain.RankItem, error)
	GetRankItem(id string) (*domain.RankItem, error)
	CreateRankItem(item *domain.RankItem) (*domain.RankItem, error)
	UpdateRankItem(id string, req *domain.UpdateRankItemRequest) (*domain.RankItem, error)
	DeleteRankItem(id string) error
}

type RankItemService struct {
	RankItemRepository repository.RankItemRepository
}

func NewRankItemService(rankItemRepository repository.RankItemRepository) ListingService {
	return &RankItemService{
		RankItemRepository: rankItemRepository,
	}
}

func (s *RankItemService) ListRankItems() ([]*domain.RankItem, error) {
	items, err := s.RankItemRepository.ListRankItems()
	if err != nil {
		logrus.WithError(err).Error("failed to list rank items")
		return nil, ErrDatabaseOperation
	}
	return items, nil
}

func (s *RankItemService) GetRankItem(id string) (*domain.RankItem, error) {
	if !isWellFormedID(id) {
		return nil, ErrRankItemNotFound
	}

	item, err := s.RankItemRepository.GetRankItemByID(id)
	if err != nil {
		logrus.WithError(err).WithField("id", id).Error("failed to fetch rank item")
		return nil, ErrDatabaseOperation
	}
	if item == nil {
		return nil, ErrRankItemNotFound
	}

	return item, nil
}

func (s *RankItemService) CreateRankItem(item *domain.RankItem) (*domain.RankItem, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	item.ID = uuid.New().String()

	created, err := s.RankItemRepository.CreateRankItem(item)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			logrus.WithError(err).WithField("site_name", item.SiteName).
				Warn("duplicate rank item rejected")
			return nil, ErrRankItemConflict
		}
		logrus.WithError(err).Error("failed to create rank item")
		return nil, ErrDatabaseOperation
	}

	return created, nil
}

func (s *RankItemService) UpdateRankItem(id string, req *domain.UpdateRankItemRequest) (*domain.RankItem, error) {
	if !isWellFormedID(id) {
		return nil, ErrRankItemNotFound
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	item, err := s.RankItemRepository.UpdateRankItem(id, req)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			logrus.WithError(err).WithField("id", id).
				Warn("duplicate rank item update rejected")
			return nil, ErrRankItemConflict
		}
		logrus.WithError(err).WithField("id", id).Error("failed to update rank item")
		return nil, ErrDatabaseOperation
	}
	if item == nil {
		return nil, ErrRankItemNotFound
	}

	return item, nil
}

func (s *RankItemService) DeleteRankItem(id string) error {
	if !isWellFormedID(id) {
		return ErrRankItemNotFound
	}

	deleted, err := s.RankItemRepository.DeleteRankItem(id)
	if err != nil {
		logrus.WithError(err).WithField("id", id).Error("failed to delete rank item")
		return ErrDatabaseOperation
	}
	if !deleted {
		return ErrRankItemNotFound
	}

	return nil
}

// isWellFormedID reports whether id parses as a UUID. Malformed ids never
// reach the store; they behave exactly like unknown ids.
func isWellFormedID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
