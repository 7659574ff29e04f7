// Package queries contains read-only use cases. Handlers read straight from
// the database with SQL and return flat views instead of aggregates.
package queries

import (
	"database/sql"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserView is an account as other services see it. The password hash never
// leaves the identity service.
type UserView struct {
	ID           kernel.UUID
	Name         string
	Contact      string
	Role         user.Role
	Address      *string
	Availability *user.Availability
	CreatedAt    time.Time
}

type ProductView struct {
	ID          kernel.UUID
	MerchantID  kernel.UUID
	Name        string
	Price       decimal.Decimal
	Description string
}

// LineItemView mirrors one element of the orders.items JSON column.
type LineItemView struct {
	ProductID   uuid.UUID       `json:"productID"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
}

type OrderView struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	MerchantID  kernel.UUID
	RiderID     *kernel.UUID
	Items       []LineItemView
	Destination string
	Status      order.Status
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}

const userColumns = `id, name, contact, role, address, availability, created_at`

const orderColumns = `id, customer_id, merchant_id, rider_id, items, destination, status, total_amount, created_at`

func scanUser(rows *sql.Rows) (UserView, error) {
	var (
		view         UserView
		id           uuid.UUID
		role         string
		availability *string
	)

	if err := rows.Scan(&id, &view.Name, &view.Contact, &role, &view.Address, &availability, &view.CreatedAt); err != nil {
		return UserView{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return UserView{}, err
	}
	view.ID = userID

	if view.Role, err = user.ParseRole(role); err != nil {
		return UserView{}, err
	}

	if availability != nil {
		a, parseErr := user.ParseAvailability(*availability)
		if parseErr != nil {
			return UserView{}, parseErr
		}
		view.Availability = &a
	}

	return view, nil
}

func scanProduct(rows *sql.Rows) (ProductView, error) {
	var (
		view       ProductView
		id         uuid.UUID
		merchantID uuid.UUID
	)

	if err := rows.Scan(&id, &merchantID, &view.Name, &view.Price, &view.Description); err != nil {
		return ProductView{}, err
	}

	productID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ProductView{}, err
	}
	view.ID = productID

	if view.MerchantID, err = kernel.UUIDFromBytes(merchantID[:]); err != nil {
		return ProductView{}, err
	}

	return view, nil
}

func scanOrder(rows *sql.Rows) (OrderView, error) {
	var (
		view       OrderView
		id         uuid.UUID
		customerID uuid.UUID
		merchantID uuid.UUID
		riderID    uuid.NullUUID
		items      []byte
		status     int
	)

	if err := rows.Scan(
		&id,
		&customerID,
		&merchantID,
		&riderID,
		&items,
		&view.Destination,
		&status,
		&view.TotalAmount,
		&view.CreatedAt,
	); err != nil {
		return OrderView{}, err
	}

	var err error
	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderView{}, err
	}
	if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderView{}, err
	}
	if view.MerchantID, err = kernel.UUIDFromBytes(merchantID[:]); err != nil {
		return OrderView{}, err
	}
	if riderID.Valid {
		rider, riderErr := kernel.UUIDFromBytes(riderID.UUID[:])
		if riderErr != nil {
			return OrderView{}, riderErr
		}
		view.RiderID = &rider
	}

	view.Status = order.Status(status)
	if err = view.Status.Validate(); err != nil {
		return OrderView{}, err
	}

	if err = sonic.ConfigStd.Unmarshal(items, &view.Items); err != nil {
		return OrderView{}, fmt.Errorf("order %s items: %w", view.ID, err)
	}

	return view, nil
}

func collect[T any](rows *sql.Rows, scan func(*sql.Rows) (T, error)) ([]T, error) {
	result := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
