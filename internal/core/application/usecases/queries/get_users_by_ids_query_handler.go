package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetUsersByIDsQueryHandler struct {
	db *gorm.DB
}

func NewGetUsersByIDsQueryHandler(db *gorm.DB) GetUsersByIDsQueryHandler {
	return GetUsersByIDsQueryHandler{db: db}
}

func (h GetUsersByIDsQueryHandler) Handle(ctx context.Context, query GetUsersByIDsQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ids := query.IDs()
	if len(ids) == 0 {
		return []UserView{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+userColumns+`
		FROM users
		WHERE id IN ?
		ORDER BY id
	`, raw).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows, scanUser)
}
