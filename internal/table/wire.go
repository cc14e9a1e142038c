package table

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/ikaro-souza/warlike-spiders/internal/roster"
	"github.com/ikaro-souza/warlike-spiders/internal/table/repository"
)

func NewModule(db *sql.DB, rosterCache *roster.Cache, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLTableRepository(db)
	uc := NewUseCase(repo)
	return NewController(uc, rosterCache, logger)
}
