package http

import (
	"context"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/messages"
)

// OrderHandlers serves the order-service message kinds.
type OrderHandlers struct {
	// Command handlers
	createOrder   UseCase[commands.CreateOrderCommand, kernel.UUID]
	assignRider   Action[commands.AssignRiderCommand]
	advanceStatus Action[commands.AdvanceOrderStatusCommand]

	// Query handlers
	unassignedOrders UseCase[queries.GetUnassignedOrdersQuery, []queries.OrderView]
	ordersByUser     UseCase[queries.GetOrdersByUserQuery, []queries.OrderView]
	orderByID        UseCase[queries.GetOrderByIDQuery, queries.OrderView]
}

func NewOrderHandlers(
	createOrder UseCase[commands.CreateOrderCommand, kernel.UUID],
	assignRider Action[commands.AssignRiderCommand],
	advanceStatus Action[commands.AdvanceOrderStatusCommand],
	unassignedOrders UseCase[queries.GetUnassignedOrdersQuery, []queries.OrderView],
	ordersByUser UseCase[queries.GetOrdersByUserQuery, []queries.OrderView],
	orderByID UseCase[queries.GetOrderByIDQuery, queries.OrderView],
) *OrderHandlers {
	return &OrderHandlers{
		createOrder:      createOrder,
		assignRider:      assignRider,
		advanceStatus:    advanceStatus,
		unassignedOrders: unassignedOrders,
		ordersByUser:     ordersByUser,
		orderByID:        orderByID,
	}
}

func (h *OrderHandlers) Register(s *Server) {
	s.Handle(messages.KindCreateOrder, Typed(h.CreateOrder))
	s.Handle(messages.KindGetUnassignedOrders, Typed(h.GetUnassignedOrders))
	s.Handle(messages.KindQueryOrdersByUser, Typed(h.QueryOrdersByUser))
	s.Handle(messages.KindGetOrderDetails, Typed(h.GetOrderDetails))
	s.Handle(messages.KindUpdateRider, Typed(h.UpdateRider))
	s.Handle(messages.KindUpdateOrderStatus, Typed(h.UpdateOrderStatus))
}

// CreateOrder replies with the new order id.
func (h *OrderHandlers) CreateOrder(ctx context.Context, req messages.CreateOrder) (string, error) {
	merchantID, err := parseID("merchantID", req.MerchantID)
	if err != nil {
		return "", err
	}
	items, err := toOrderItems(req.ProductList)
	if err != nil {
		return "", err
	}
	destination, err := kernel.NewAddress(req.DestinationAddress)
	if err != nil {
		return "", err
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerToken, merchantID, items, destination)
	if err != nil {
		return "", err
	}

	id, err := h.createOrder.Handle(ctx, cmd)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

func (h *OrderHandlers) GetUnassignedOrders(
	ctx context.Context,
	_ messages.GetUnassignedOrders,
) ([]messages.OrderInfo, error) {
	views, err := h.unassignedOrders.Handle(ctx, queries.NewGetUnassignedOrdersQuery())
	if err != nil {
		return nil, err
	}

	return toOrderInfos(views), nil
}

func (h *OrderHandlers) QueryOrdersByUser(
	ctx context.Context,
	req messages.QueryOrdersByUser,
) ([]messages.OrderInfo, error) {
	query, err := queries.NewGetOrdersByUserQuery(req.UserToken)
	if err != nil {
		return nil, err
	}

	views, err := h.ordersByUser.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	return toOrderInfos(views), nil
}

func (h *OrderHandlers) GetOrderDetails(ctx context.Context, req messages.GetOrderDetails) (messages.OrderInfo, error) {
	orderID, err := parseID("orderID", req.OrderID)
	if err != nil {
		return messages.OrderInfo{}, err
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return messages.OrderInfo{}, err
	}

	view, err := h.orderByID.Handle(ctx, query)
	if err != nil {
		return messages.OrderInfo{}, err
	}

	return toOrderInfo(view), nil
}

// UpdateRider records a rider's acceptance. The losing side of a race gets a
// conflict reply.
func (h *OrderHandlers) UpdateRider(ctx context.Context, req messages.UpdateRider) (string, error) {
	orderID, err := parseID("orderID", req.OrderID)
	if err != nil {
		return "", err
	}
	riderID, err := parseID("newRider", req.NewRider)
	if err != nil {
		return "", err
	}

	cmd, err := commands.NewAssignRiderCommand(orderID, riderID)
	if err != nil {
		return "", err
	}

	if err = h.assignRider.Handle(ctx, cmd); err != nil {
		return "", err
	}

	return messages.Success, nil
}

func (h *OrderHandlers) UpdateOrderStatus(ctx context.Context, req messages.UpdateOrderStatus) (string, error) {
	orderID, err := parseID("orderID", req.OrderID)
	if err != nil {
		return "", err
	}
	target, err := order.ParseStatus(req.NewStatus)
	if err != nil {
		return "", err
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(req.UserToken, orderID, target)
	if err != nil {
		return "", err
	}

	if err = h.advanceStatus.Handle(ctx, cmd); err != nil {
		return "", err
	}

	return messages.Success, nil
}
