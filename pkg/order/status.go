package order

import "Meal-Prep-Backend/domain"

// statusFlow lists the allowed next statuses for each order status. Delivered
// and cancelled are terminal.
var statusFlow = map[string][]string{
	domain.OrderStatusReceived:  {domain.OrderStatusPreparing, domain.OrderStatusReady, domain.OrderStatusCancelled},
	domain.OrderStatusPreparing: {domain.OrderStatusReady, domain.OrderStatusCancelled},
	domain.OrderStatusReady:     {domain.OrderStatusDelivered, domain.OrderStatusCancelled},
	domain.OrderStatusDelivered: {},
	domain.OrderStatusCancelled: {},
}

func CanTransition(from, to string) bool {
	for _, allowed := range statusFlow[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
