package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListUsersByRoleQueryHandler struct {
	db *gorm.DB
}

func NewListUsersByRoleQueryHandler(db *gorm.DB) ListUsersByRoleQueryHandler {
	return ListUsersByRoleQueryHandler{db: db}
}

// Handle returns matching accounts ordered by registration time, oldest first,
// so dispatch can prefer long-registered riders. Never nil.
func (h ListUsersByRoleQueryHandler) Handle(ctx context.Context, query ListUsersByRoleQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx)
	stmt := `SELECT ` + userColumns + ` FROM users WHERE role = ?`
	args := []any{query.Role().String()}
	if a := query.Availability(); a != nil {
		stmt += ` AND availability = ?`
		args = append(args, a.String())
	}
	stmt += ` ORDER BY created_at, id`

	rows, err := tx.Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows, scanUser)
}
