package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ikaro-souza/warlike-spiders/internal/domain"
	"github.com/ikaro-souza/warlike-spiders/internal/errors"
)

type MySQLMenuRepository struct {
	db *sql.DB
}

func NewMySQLMenuRepository(db *sql.DB) *MySQLMenuRepository {
	return &MySQLMenuRepository{db: db}
}

// FindMenu loads the first menu with its sections and items. Highlighted
// sections come first; within a section items keep their configured
// position.
func (r *MySQLMenuRepository) FindMenu(ctx context.Context) (*domain.Menu, error) {
	var menuID string
	err := r.db.QueryRowContext(ctx, `SELECT id FROM menus ORDER BY id LIMIT 1`).Scan(&menuID)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("no menu configured")
	}
	if err != nil {
		return nil, fmt.Errorf("querying menu: %w", err)
	}

	query := `
		SELECT s.id, s.name, s.highlight,
		       i.id, i.name, i.description, i.unitary_price, i.image
		FROM menu_sections s
		LEFT JOIN menu_items i ON i.section_id = s.id
		WHERE s.menu_id = ?
		ORDER BY s.highlight DESC, s.position ASC, i.position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, menuID)
	if err != nil {
		return nil, fmt.Errorf("querying menu sections: %w", err)
	}
	defer rows.Close()

	menu := &domain.Menu{ID: menuID}
	sectionIndex := map[string]int{}

	for rows.Next() {
		var (
			sectionID   string
			sectionName string
			highlight   bool
			itemID      sql.NullString
			itemName    sql.NullString
			description sql.NullString
			price       sql.NullFloat64
			image       sql.NullString
		)
		err := rows.Scan(
			&sectionID, &sectionName, &highlight,
			&itemID, &itemName, &description, &price, &image,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning menu row: %w", err)
		}

		idx, ok := sectionIndex[sectionID]
		if !ok {
			menu.Sections = append(menu.Sections, domain.MenuSection{
				ID:        sectionID,
				Name:      sectionName,
				Highlight: highlight,
			})
			idx = len(menu.Sections) - 1
			sectionIndex[sectionID] = idx
		}

		if itemID.Valid {
			menu.Sections[idx].Items = append(menu.Sections[idx].Items, domain.MenuItem{
				ID:           itemID.String,
				Name:         itemName.String,
				Description:  description.String,
				UnitaryPrice: price.Float64,
				Image:        image.String,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating menu rows: %w", err)
	}

	return menu, nil
}

func (r *MySQLMenuRepository) FindItemByID(ctx context.Context, itemID string) (*domain.MenuItem, error) {
	query := `
		SELECT id, name, description, unitary_price, image
		FROM menu_items
		WHERE id = ?
	`

	var item domain.MenuItem
	err := r.db.QueryRowContext(ctx, query, itemID).Scan(
		&item.ID, &item.Name, &item.Description, &item.UnitaryPrice, &item.Image,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("menu item %s not found", itemID))
	}
	if err != nil {
		return nil, fmt.Errorf("querying menu item by id: %w", err)
	}

	return &item, nil
}
