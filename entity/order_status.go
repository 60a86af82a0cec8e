package entity

// OrderStatus is the closed set of lifecycle states an order can be in.
type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderAccepted       OrderStatus = "accepted"
	OrderPreparing      OrderStatus = "preparing"
	OrderReady          OrderStatus = "ready"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderAccepted, OrderPreparing,
		OrderReady, OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

func (s OrderStatus) String() string { return string(s) }

// IsTerminal reports whether no further transition is expected.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// restaurantOrderStatuses is the subset a restaurant operator may request.
// pending/confirmed happen on the customer side, delivered via the
// assignment cascade.
var restaurantOrderStatuses = map[OrderStatus]bool{
	OrderAccepted:       true,
	OrderPreparing:      true,
	OrderReady:          true,
	OrderOutForDelivery: true,
	OrderCancelled:      true,
}

// RestaurantSettable reports whether a restaurant operator may request s.
func (s OrderStatus) RestaurantSettable() bool {
	return restaurantOrderStatuses[s]
}

// orderTransitions is the legal-successor table. Requesting the current
// status again is always allowed (idempotent re-set).
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:        {OrderConfirmed, OrderAccepted, OrderCancelled},
	OrderConfirmed:      {OrderAccepted, OrderPreparing, OrderCancelled},
	OrderAccepted:       {OrderPreparing, OrderCancelled},
	OrderPreparing:      {OrderReady, OrderCancelled},
	OrderReady:          {OrderOutForDelivery, OrderCancelled},
	OrderOutForDelivery: {OrderDelivered},
}

// CanTransition reports whether to is a legal successor of s.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	if s == to {
		return true
	}
	for _, next := range orderTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}
