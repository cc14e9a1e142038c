package order

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/ikaro-souza/warlike-spiders/internal/draft"
	"github.com/ikaro-souza/warlike-spiders/internal/order/repository"
	"github.com/ikaro-souza/warlike-spiders/internal/roster"
)

type Module struct {
	Orders *Controller
	Drafts *DraftController
}

func NewModule(db *sql.DB, drafts *draft.Manager, rosterCache *roster.Cache, logger *zap.Logger) *Module {
	repo := repository.NewMySQLOrderRepository(db)
	uc := NewUseCase(repo, logger)

	return &Module{
		Orders: NewController(uc, logger),
		Drafts: NewDraftController(drafts, rosterCache, uc, logger),
	}
}
