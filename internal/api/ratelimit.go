package api

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ignite/mailbox/internal/pkg/logger"
)

// SendThrottle caps how many emails a single sender may submit per minute.
// The check-and-increment runs as one Lua script so concurrent sends cannot
// slip past the limit between a GET and an INCR.
type SendThrottle struct {
	redis  *redis.Client
	limit  int
	window time.Duration
	script *redis.Script
}

const sendLimitLuaScript = `
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local ttl = tonumber(ARGV[2])

local current = tonumber(redis.call("GET", key) or "0")
if current + 1 > limit then
    return 0
end

local newVal = redis.call("INCR", key)
if newVal == 1 then
    redis.call("EXPIRE", key, ttl)
end
return 1
`

// NewSendThrottle creates a per-sender send throttle. A limit of zero or a
// nil client disables throttling.
func NewSendThrottle(redisClient *redis.Client, perMinute int) *SendThrottle {
	if redisClient == nil || perMinute <= 0 {
		return nil
	}
	return &SendThrottle{
		redis:  redisClient,
		limit:  perMinute,
		window: time.Minute,
		script: redis.NewScript(sendLimitLuaScript),
	}
}

// Allow reports whether the sender is under their per-minute quota and
// consumes one slot if so. Redis failures log and fail open: losing the
// throttle must not take down sending.
func (t *SendThrottle) Allow(ctx context.Context, sender string) (bool, error) {
	key := fmt.Sprintf("throttle:send:%s:%d", sender, time.Now().Unix()/int64(t.window.Seconds()))

	res, err := t.script.Run(ctx, t.redis, []string{key},
		t.limit, int(t.window.Seconds())).Int()
	if err != nil {
		logger.Warn("send throttle unavailable", "err", err)
		return true, err
	}
	return res == 1, nil
}
