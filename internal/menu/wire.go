package menu

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/ikaro-souza/warlike-spiders/internal/menu/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLMenuRepository(db)
	svc := NewService(repo)
	uc := NewUseCase(svc)
	return NewController(uc, logger)
}
