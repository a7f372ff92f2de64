package service

import (
	"context"
	"errors"
	"log"

	"qrmesa/internal/domain"
)

// ChangeStatus applies the lifecycle transition rule and returns the
// order value carrying the new status. Closed orders (PAID, DELIVERED,
// CANCELLED) reject every transition except to PAID: a cancelled or
// delivered order may still be settled. No forward ordering is enforced
// among the open statuses.
func ChangeStatus(order domain.Order, status domain.OrderStatus) (domain.Order, error) {
	if !order.CanBeModified() && status != domain.StatusPaid {
		return domain.Order{}, ErrOrderClosed
	}
	return order.WithStatus(status), nil
}

// UpdateOrderStatus transitions an order to the requested status on
// behalf of principal. The permission check runs before any store
// access. On success the new status is persisted as a single-field
// update and OrderStatusChanged plus OrderUpdated are published, in
// that order, both carrying the full updated order.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID int, status domain.OrderStatus, principal domain.Principal) (*domain.Order, error) {
	if principal == nil || !principal.CanManageOrders() {
		return nil, ErrUnauthorized
	}

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	updated, err := ChangeStatus(*order, status)
	if err != nil {
		return nil, err
	}

	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.TopicOrderStatusChanged, &updated)
	s.publish(ctx, domain.TopicOrderUpdated, &updated)

	return &updated, nil
}

// publish is fire-and-forget: a notifier failure is logged and never
// surfaced to the caller.
func (s *OrderService) publish(ctx context.Context, topic domain.EventTopic, order *domain.Order) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(ctx, topic, order); err != nil {
		log.Printf("[qrmesa] publish %s for order %d failed: %v", topic, order.ID, err)
	}
}
