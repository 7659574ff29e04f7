// Package messages declares every message kind exchanged between the services,
// the service each kind is addressed to, and the shared reply DTOs.
//
// Identifiers travel as strings, times as Unix milliseconds and money as JSON
// numbers.
package messages

// Success is the literal reply of commands that return no value.
const Success = "Success"

// Wire names of roles, rider availability and order status.
const (
	RoleCustomer = "customer"
	RoleMerchant = "merchant"
	RoleRider    = "rider"

	RiderIdle       = "idle"
	RiderDelivering = "delivering"
	RiderOffDuty    = "offDuty"

	StatusAwaitingPreparation = "AwaitingPreparation"
	StatusAwaitingAssignment  = "AwaitingAssignment"
	StatusDelivering          = "Delivering"
	StatusCompleted           = "Completed"
)

type UserInfo struct {
	UserID        string  `json:"userID"`
	Name          string  `json:"name"`
	ContactNumber string  `json:"contactNumber"`
	UserType      string  `json:"userType"`
	Address       *string `json:"address"`
	Status        *string `json:"status"`
	CreateTime    int64   `json:"createTime"`
}

type ProductInfo struct {
	ProductID   string  `json:"productID"`
	MerchantID  string  `json:"merchantID"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// LineItem is a product snapshot inside an order. A missing quantity means one.
type LineItem struct {
	ProductID   string  `json:"productID"`
	MerchantID  string  `json:"merchantID"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity,omitempty"`
}

type OrderInfo struct {
	OrderID            string     `json:"orderID"`
	CustomerID         string     `json:"customerID"`
	MerchantID         string     `json:"merchantID"`
	RiderID            *string    `json:"riderID"`
	ProductList        []LineItem `json:"productList"`
	DestinationAddress string     `json:"destinationAddress"`
	OrderStatus        string     `json:"orderStatus"`
	OrderTime          int64      `json:"orderTime"`
	TotalAmount        float64    `json:"totalAmount"`
}
