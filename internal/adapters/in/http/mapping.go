package http

import (
	"context"
	"strings"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/messages"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// UseCase is any command or query handler returning a value.
type UseCase[In any, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// Action is a command handler returning only an error.
type Action[In any] interface {
	Handle(ctx context.Context, in In) error
}

func parseID(field string, s string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(strings.TrimSpace(s))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return id, nil
}

// parseOptionalAddress returns nil for a blank address.
func parseOptionalAddress(s string) (*kernel.Address, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	addr, err := kernel.NewAddress(s)
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

func toUserInfo(v queries.UserView) messages.UserInfo {
	info := messages.UserInfo{
		UserID:        v.ID.String(),
		Name:          v.Name,
		ContactNumber: v.Contact,
		UserType:      v.Role.String(),
		Address:       v.Address,
		CreateTime:    v.CreatedAt.UnixMilli(),
	}
	if v.Availability != nil {
		status := v.Availability.String()
		info.Status = &status
	}
	return info
}

func toUserInfos(views []queries.UserView) []messages.UserInfo {
	infos := make([]messages.UserInfo, len(views))
	for i, v := range views {
		infos[i] = toUserInfo(v)
	}
	return infos
}

func toProductInfo(v queries.ProductView) messages.ProductInfo {
	return messages.ProductInfo{
		ProductID:   v.ID.String(),
		MerchantID:  v.MerchantID.String(),
		Name:        v.Name,
		Price:       v.Price.InexactFloat64(),
		Description: v.Description,
	}
}

func toOrderInfo(v queries.OrderView) messages.OrderInfo {
	info := messages.OrderInfo{
		OrderID:            v.ID.String(),
		CustomerID:         v.CustomerID.String(),
		MerchantID:         v.MerchantID.String(),
		ProductList:        make([]messages.LineItem, len(v.Items)),
		DestinationAddress: v.Destination,
		OrderStatus:        v.Status.String(),
		OrderTime:          v.CreatedAt.UnixMilli(),
		TotalAmount:        v.TotalAmount.InexactFloat64(),
	}
	if v.RiderID != nil {
		rider := v.RiderID.String()
		info.RiderID = &rider
	}
	for i, item := range v.Items {
		info.ProductList[i] = messages.LineItem{
			ProductID:   item.ProductID.String(),
			MerchantID:  info.MerchantID,
			Name:        item.Name,
			Price:       item.Price.InexactFloat64(),
			Description: item.Description,
			Quantity:    item.Quantity,
		}
	}
	return info
}

func toOrderInfos(views []queries.OrderView) []messages.OrderInfo {
	infos := make([]messages.OrderInfo, len(views))
	for i, v := range views {
		infos[i] = toOrderInfo(v)
	}
	return infos
}

// toOrderItems converts the submitted product list. A blank item merchant is
// left unset.
func toOrderItems(list []messages.LineItem) ([]commands.OrderItem, error) {
	items := make([]commands.OrderItem, 0, len(list))
	for _, li := range list {
		productID, err := parseID("productList.productID", li.ProductID)
		if err != nil {
			return nil, err
		}

		var merchantID *kernel.UUID
		if strings.TrimSpace(li.MerchantID) != "" {
			id, idErr := parseID("productList.merchantID", li.MerchantID)
			if idErr != nil {
				return nil, idErr
			}
			merchantID = &id
		}

		items = append(items, commands.OrderItem{
			ProductID:   productID,
			MerchantID:  merchantID,
			Name:        li.Name,
			Price:       decimal.NewFromFloat(li.Price),
			Description: li.Description,
			Quantity:    li.Quantity,
		})
	}
	return items, nil
}

func parseAvailability(s *string) (*user.Availability, error) {
	if s == nil {
		return nil, nil
	}
	a, err := user.ParseAvailability(*s)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
