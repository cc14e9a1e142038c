package menu

import "github.com/ikaro-souza/warlike-spiders/internal/domain"

type MenuResponse struct {
	ID       string           `json:"id"`
	Sections []MenuSectionDTO `json:"sections"`
}

type MenuSectionDTO struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Highlight bool              `json:"highlight"`
	Items     []domain.MenuItem `json:"items"`
}
