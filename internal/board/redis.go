package board

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"qrmesa/internal/domain"
)

// RedisBoard mirrors order snapshots into Redis for the dashboards:
// one hash per order, one set per status, and a daily revenue counter
// bumped the first time an order reaches PAID.
type RedisBoard struct {
	Client *redis.Client
}

func NewRedisBoard(client *redis.Client) *RedisBoard {
	return &RedisBoard{Client: client}
}

var allStatuses = []domain.OrderStatus{
	domain.StatusOpen,
	domain.StatusPending,
	domain.StatusPreparing,
	domain.StatusReady,
	domain.StatusDelivered,
	domain.StatusPaid,
	domain.StatusCancelled,
}

func orderKey(id int) string {
	return fmt.Sprintf("board:order:%d", id)
}

func statusKey(status domain.OrderStatus) string {
	return "board:status:" + string(status)
}

func (b *RedisBoard) ApplyOrder(ctx context.Context, order domain.Order) error {
	member := strconv.Itoa(order.ID)

	if err := b.Client.HSet(ctx, orderKey(order.ID), map[string]interface{}{
		"status":       string(order.Status),
		"table_id":     order.TableID,
		"total_amount": order.GetTotalAmount(),
		"item_count":   len(order.Items),
		"last_updated": time.Now().Unix(),
	}).Err(); err != nil {
		return err
	}
	b.Client.Expire(ctx, orderKey(order.ID), 24*time.Hour)

	// Membership is exclusive: the order sits in exactly one status set.
	for _, status := range allStatuses {
		if status == order.Status {
			continue
		}
		b.Client.SRem(ctx, statusKey(status), member)
	}
	if err := b.Client.SAdd(ctx, statusKey(order.Status), member).Err(); err != nil {
		return err
	}

	if order.Status == domain.StatusPaid {
		return b.recordRevenue(ctx, order)
	}
	return nil
}

// recordRevenue counts each order's total once, however many times its
// PAID snapshot is delivered.
func (b *RedisBoard) recordRevenue(ctx context.Context, order domain.Order) error {
	marker := fmt.Sprintf("board:paid:%d", order.ID)
	first, err := b.Client.SetNX(ctx, marker, "1", 7*24*time.Hour).Result()
	if err != nil || !first {
		return err
	}

	today := time.Now().Format("2006-01-02")
	dailyKey := "board:revenue:" + today
	if err := b.Client.IncrByFloat(ctx, dailyKey, order.GetTotalAmount()).Err(); err != nil {
		return err
	}
	b.Client.Expire(ctx, dailyKey, 40*24*time.Hour)
	return nil
}
