// Package client is a typed SDK over the message services. Every method sends
// one message through an rpc.Caller and decodes its reply; failures arrive as
// *rpc.Error.
package client

import (
	"context"
	"fmt"
	"net/http"

	"fooddelivery/internal/messages"
	"fooddelivery/internal/pkg/rpc"
)

// Client talks to all three services.
type Client struct {
	caller rpc.Caller
}

func New(caller rpc.Caller) *Client {
	return &Client{caller: caller}
}

// Identity service

func (c *Client) Register(ctx context.Context, req messages.UserRegister) (string, error) {
	return rpc.Invoke[string](ctx, c.caller, req)
}

func (c *Client) Login(ctx context.Context, name string, password string) (string, error) {
	return rpc.Invoke[string](ctx, c.caller, messages.UserLogin{Name: name, Password: password})
}

func (c *Client) UserByToken(ctx context.Context, token string) (messages.UserInfo, error) {
	return rpc.Invoke[messages.UserInfo](ctx, c.caller, messages.GetUserInfoByToken{UserToken: token})
}

// UsersByRole lists users of a role; status narrows riders by availability.
func (c *Client) UsersByRole(ctx context.Context, role string, status *string) ([]messages.UserInfo, error) {
	return rpc.Invoke[[]messages.UserInfo](ctx, c.caller, messages.ListUsersByRole{UserType: role, Status: status})
}

func (c *Client) Merchants(ctx context.Context) ([]messages.UserInfo, error) {
	return rpc.Invoke[[]messages.UserInfo](ctx, c.caller, messages.GetAllMerchants{})
}

func (c *Client) IdleRiders(ctx context.Context) ([]messages.UserInfo, error) {
	return rpc.Invoke[[]messages.UserInfo](ctx, c.caller, messages.GetAllIdleRiders{})
}

func (c *Client) UsersByIDs(ctx context.Context, ids ...string) ([]messages.UserInfo, error) {
	return rpc.Invoke[[]messages.UserInfo](ctx, c.caller, messages.FetchUsersByIDs{UserIDs: ids})
}

func (c *Client) SetRiderStatus(ctx context.Context, token string, status string) error {
	return c.expectSuccess(ctx, messages.UpdateRiderStatus{UserToken: token, NewStatus: status})
}

// Catalog service

func (c *Client) AddProduct(ctx context.Context, req messages.MerchantAddProduct) (string, error) {
	return rpc.Invoke[string](ctx, c.caller, req)
}

func (c *Client) RemoveProduct(ctx context.Context, token string, name string) error {
	return c.expectSuccess(ctx, messages.MerchantRemoveProduct{MerchantToken: token, Name: name})
}

func (c *Client) ProductsByMerchant(ctx context.Context, merchantID string) ([]messages.ProductInfo, error) {
	return rpc.Invoke[[]messages.ProductInfo](ctx, c.caller, messages.FetchProductsByMerchantID{MerchantID: merchantID})
}

// ProductsByName returns nil when the merchant has no product of that name.
func (c *Client) ProductsByName(ctx context.Context, merchantID string, name string) ([]messages.ProductInfo, error) {
	return rpc.Invoke[[]messages.ProductInfo](ctx, c.caller,
		messages.FetchProductsByNameAndMerchantID{MerchantID: merchantID, Name: name})
}

// Order service

func (c *Client) CreateOrder(ctx context.Context, req messages.CreateOrder) (string, error) {
	return rpc.Invoke[string](ctx, c.caller, req)
}

func (c *Client) UnassignedOrders(ctx context.Context) ([]messages.OrderInfo, error) {
	return rpc.Invoke[[]messages.OrderInfo](ctx, c.caller, messages.GetUnassignedOrders{})
}

func (c *Client) OrdersByUser(ctx context.Context, token string) ([]messages.OrderInfo, error) {
	return rpc.Invoke[[]messages.OrderInfo](ctx, c.caller, messages.QueryOrdersByUser{UserToken: token})
}

func (c *Client) OrderDetails(ctx context.Context, orderID string) (messages.OrderInfo, error) {
	return rpc.Invoke[messages.OrderInfo](ctx, c.caller, messages.GetOrderDetails{OrderID: orderID})
}

// AcceptOrder records riderID as the order's rider. Only the first acceptance
// succeeds; later ones fail with a 409 *rpc.Error.
func (c *Client) AcceptOrder(ctx context.Context, orderID string, riderID string) error {
	return c.expectSuccess(ctx, messages.UpdateRider{OrderID: orderID, NewRider: riderID})
}

func (c *Client) AdvanceOrder(ctx context.Context, token string, orderID string, status string) error {
	return c.expectSuccess(ctx, messages.UpdateOrderStatus{UserToken: token, OrderID: orderID, NewStatus: status})
}

func (c *Client) expectSuccess(ctx context.Context, msg rpc.Message) error {
	reply, err := rpc.Invoke[string](ctx, c.caller, msg)
	if err != nil {
		return err
	}
	if reply != messages.Success {
		return &rpc.Error{Kind: msg.Kind(), Status: http.StatusOK, Message: fmt.Sprintf("unexpected reply %q", reply)}
	}
	return nil
}
