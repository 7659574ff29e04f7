package messages

import "fooddelivery/internal/pkg/rpc"

const (
	KindCreateOrder         rpc.Kind = "CreateOrder"
	KindGetUnassignedOrders rpc.Kind = "GetUnassignedOrders"
	KindQueryOrdersByUser   rpc.Kind = "QueryOrdersByUser"
	KindGetOrderDetails     rpc.Kind = "GetOrderDetails"
	KindUpdateRider         rpc.Kind = "UpdateRider"
	KindUpdateOrderStatus   rpc.Kind = "UpdateOrderStatus"
)

func init() {
	for _, kind := range []rpc.Kind{
		KindCreateOrder, KindGetUnassignedOrders, KindQueryOrdersByUser,
		KindGetOrderDetails, KindUpdateRider, KindUpdateOrderStatus,
	} {
		rpc.Register(kind, rpc.Order)
	}
}

// CreateOrder replies with the new order id.
type CreateOrder struct {
	CustomerToken      string     `json:"customerToken"`
	MerchantID         string     `json:"merchantID"`
	ProductList        []LineItem `json:"productList"`
	DestinationAddress string     `json:"destinationAddress"`
}

func (CreateOrder) Kind() rpc.Kind { return KindCreateOrder }

// GetUnassignedOrders replies with the orders no rider has accepted yet.
type GetUnassignedOrders struct{}

func (GetUnassignedOrders) Kind() rpc.Kind { return KindGetUnassignedOrders }

// QueryOrdersByUser replies with the caller's orders: placed (customer),
// received (merchant) or accepted (rider).
type QueryOrdersByUser struct {
	UserToken string `json:"userToken"`
}

func (QueryOrdersByUser) Kind() rpc.Kind { return KindQueryOrdersByUser }

type GetOrderDetails struct {
	OrderID string `json:"orderID"`
}

func (GetOrderDetails) Kind() rpc.Kind { return KindGetOrderDetails }

// UpdateRider records a rider's acceptance and replies with Success. A second
// acceptance is rejected.
type UpdateRider struct {
	OrderID  string `json:"orderID"`
	NewRider string `json:"newRider"`
}

func (UpdateRider) Kind() rpc.Kind { return KindUpdateRider }

// UpdateOrderStatus advances an order and replies with Success.
type UpdateOrderStatus struct {
	UserToken string `json:"userToken"`
	OrderID   string `json:"orderID"`
	NewStatus string `json:"newStatus"`
}

func (UpdateOrderStatus) Kind() rpc.Kind { return KindUpdateOrderStatus }
