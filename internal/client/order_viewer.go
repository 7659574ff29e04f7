package client

import (
	"context"
	"log/slog"

	"fooddelivery/internal/messages"
)

// UnknownName stands in for a user the identity service could not resolve.
const UnknownName = "unknown"

// Party is a user an order refers to. Known is false when the reference could
// not be resolved; the order is still shown.
type Party struct {
	ID      string
	Name    string
	Contact string
	Address *string
	Known   bool
}

// OrderView is an order with its customer, merchant and rider resolved.
type OrderView struct {
	Order    messages.OrderInfo
	Customer Party
	Merchant Party
	Rider    *Party
}

// OrderViewer joins orders with their parties on the consumer side. The order
// service stores user ids only and never checks them.
type OrderViewer struct {
	client *Client
	logger *slog.Logger
}

func NewOrderViewer(client *Client, logger *slog.Logger) *OrderViewer {
	return &OrderViewer{
		client: client,
		logger: logger.With("component", "order-viewer"),
	}
}

// View fetches an order and resolves its parties with one FetchUsersByIDs
// message. Only the order lookup can fail the call: a failed or partial
// identity lookup leaves the affected parties unknown.
func (v *OrderViewer) View(ctx context.Context, orderID string) (OrderView, error) {
	info, err := v.client.OrderDetails(ctx, orderID)
	if err != nil {
		return OrderView{}, err
	}

	ids := []string{info.CustomerID, info.MerchantID}
	if info.RiderID != nil {
		ids = append(ids, *info.RiderID)
	}

	users := make(map[string]messages.UserInfo, len(ids))
	found, err := v.client.UsersByIDs(ctx, ids...)
	if err != nil {
		v.logger.WarnContext(ctx, "resolving order parties failed", "orderID", orderID, "error", err)
	}
	for _, u := range found {
		users[u.UserID] = u
	}

	view := OrderView{
		Order:    info,
		Customer: partyOf(info.CustomerID, users),
		Merchant: partyOf(info.MerchantID, users),
	}
	if info.RiderID != nil {
		rider := partyOf(*info.RiderID, users)
		view.Rider = &rider
	}

	return view, nil
}

func partyOf(id string, users map[string]messages.UserInfo) Party {
	u, ok := users[id]
	if !ok {
		return Party{ID: id, Name: UnknownName}
	}
	return Party{ID: id, Name: u.Name, Contact: u.ContactNumber, Address: u.Address, Known: true}
}
