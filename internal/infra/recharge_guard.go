package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// rechargeGuardTTL keeps claimed days around long enough to block any
// same-day re-run, then lets Redis reclaim the key.
const rechargeGuardTTL = 48 * time.Hour

// RechargeDayGuard claims one recharge run per calendar day via SETNX.
type RechargeDayGuard struct {
	rdb *redis.Client
}

func NewRechargeDayGuard(rdb *redis.Client) *RechargeDayGuard {
	return &RechargeDayGuard{rdb: rdb}
}

// Acquire returns true when this caller is the first to claim the day.
func (g *RechargeDayGuard) Acquire(ctx context.Context, day string) (bool, error) {
	return g.rdb.SetNX(ctx, "recharge:"+day, 1, rechargeGuardTTL).Result()
}
