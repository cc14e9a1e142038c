package menu

import (
	"context"
	"fmt"

	"github.com/ikaro-souza/warlike-spiders/internal/domain"
)

type menuService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &menuService{repo: repo}
}

func (s *menuService) GetMenu(ctx context.Context) (*domain.Menu, error) {
	m, err := s.repo.FindMenu(ctx)
	if err != nil {
		return nil, err
	}

	for si := range m.Sections {
		for ii := range m.Sections[si].Items {
			item := &m.Sections[si].Items[ii]
			item.Href = itemHref(item.ID)
		}
		if err := m.Sections[si].Validate(); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (s *menuService) GetMenuItem(ctx context.Context, itemID string) (*domain.MenuItem, error) {
	item, err := s.repo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	item.Href = itemHref(item.ID)
	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

func itemHref(itemID string) string {
	return fmt.Sprintf("/menu/item/%s", itemID)
}
