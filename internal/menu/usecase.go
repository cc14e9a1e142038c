package menu

import (
	"context"

	"github.com/ikaro-souza/warlike-spiders/internal/domain"
)

type menuUseCase struct {
	service Service
}

func NewUseCase(service Service) UseCase {
	return &menuUseCase{service: service}
}

func (uc *menuUseCase) GetMenu(ctx context.Context) (*MenuResponse, error) {
	m, err := uc.service.GetMenu(ctx)
	if err != nil {
		return nil, err
	}

	sections := make([]MenuSectionDTO, 0, len(m.Sections))
	for _, section := range m.Sections {
		items := section.Items
		if items == nil {
			items = []domain.MenuItem{}
		}
		sections = append(sections, MenuSectionDTO{
			ID:        section.ID,
			Name:      section.Name,
			Highlight: section.Highlight,
			Items:     items,
		})
	}

	return &MenuResponse{
		ID:       m.ID,
		Sections: sections,
	}, nil
}

func (uc *menuUseCase) GetMenuItem(ctx context.Context, itemID string) (*domain.MenuItem, error) {
	return uc.service.GetMenuItem(ctx, itemID)
}
