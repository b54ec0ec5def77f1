package space

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Occupancy tracks how many clients are currently inside each space and
// enforces the per-space max_occupancy cap. Counters live in Redis so the cap
// holds across API replicas.
type Occupancy struct {
	rdb *redis.Client

	// SlotTTL bounds how long a leaked slot (client crash, missed leave)
	// counts against the cap.
	SlotTTL time.Duration
}

func NewOccupancy(rdb *redis.Client) *Occupancy {
	return &Occupancy{rdb: rdb, SlotTTL: 6 * time.Hour}
}

func occupancyKey(spaceID int) string {
	return fmt.Sprintf("space:%d:occupancy", spaceID)
}

var occupancyAcquireScript = redis.NewScript(`
-- KEYS[1] = occupancy counter key
-- ARGV[1] = max occupancy (int)
-- ARGV[2] = ttl_ms (int)
--
-- Returns:
--  1 if a slot was acquired
--  0 if the space is full
local current = redis.call('INCR', KEYS[1])
if current == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[2])
else
  -- Ensure TTL exists even if key already existed without TTL
  if redis.call('PTTL', KEYS[1]) < 0 then
    redis.call('PEXPIRE', KEYS[1], ARGV[2])
  end
end

if current > tonumber(ARGV[1]) then
  redis.call('DECR', KEYS[1])
  return 0
end
return 1
`)

var occupancyReleaseScript = redis.NewScript(`
-- KEYS[1] = occupancy counter key
-- Decrement, and delete if <= 0
local current = redis.call('DECR', KEYS[1])
if current <= 0 then
  redis.call('DEL', KEYS[1])
end
return 1
`)

// Join attempts to take an occupancy slot in the space.
// Returns false when the space is at capacity.
func (o *Occupancy) Join(ctx context.Context, spaceID, maxOccupancy int) (bool, error) {
	if o.rdb == nil {
		return false, fmt.Errorf("redis client is nil")
	}
	if maxOccupancy <= 0 {
		maxOccupancy = DefaultMaxOccupancy
	}

	res, err := occupancyAcquireScript.Run(ctx, o.rdb, []string{occupancyKey(spaceID)}, maxOccupancy, o.SlotTTL.Milliseconds()).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

// Leave releases a previously acquired slot.
func (o *Occupancy) Leave(ctx context.Context, spaceID int) error {
	if o.rdb == nil {
		return fmt.Errorf("redis client is nil")
	}
	_, err := occupancyReleaseScript.Run(ctx, o.rdb, []string{occupancyKey(spaceID)}).Result()
	return err
}
