// Package userrepo persists identity-service accounts.
package userrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the users table row. Names are unique across every role.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Contact      string    `gorm:"type:varchar(64);not null"`
	Role         string    `gorm:"type:varchar(16);not null;index"`
	Address      *string   `gorm:"type:varchar(256)"`
	Availability *string   `gorm:"type:varchar(16);index"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	var address *string
	if a := aggregate.Address(); a != nil {
		s := a.String()
		address = &s
	}

	var availability *string
	if a := aggregate.Availability(); a != nil {
		s := a.String()
		availability = &s
	}

	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Contact:      aggregate.Contact(),
		Role:         aggregate.Role().String(),
		Address:      address,
		Availability: availability,
		PasswordHash: aggregate.PasswordHash(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// ToDomain rebuilds a user aggregate from its row.
func ToDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	var address *kernel.Address
	if dto.Address != nil {
		a, addrErr := kernel.NewAddress(*dto.Address)
		if addrErr != nil {
			return nil, addrErr
		}
		address = &a
	}

	var availability *user.Availability
	if dto.Availability != nil {
		a, availErr := user.ParseAvailability(*dto.Availability)
		if availErr != nil {
			return nil, availErr
		}
		availability = &a
	}

	return user.RestoreUser(id, dto.Name, dto.Contact, role, address, availability, dto.PasswordHash, dto.CreatedAt)
}
