package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	revokedKeyPrefix = "fitlog-revoked-token||"
	revokedSetKey    = "fitlog-revoked-tokens"
)

// Revoker keeps revoked token IDs in redis until the tokens expire.
type Revoker struct {
	redisClient *redis.Client
	now         func() time.Time
}

func NewRevoker(redisClient *redis.Client) *Revoker {
	return &Revoker{
		redisClient: redisClient,
		now:         time.Now,
	}
}

// Revoke marks the token as revoked until expiresAt. Already expired tokens are ignored.
func (r *Revoker) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}

	key := revokedKeyPrefix + tokenID
	if err := r.redisClient.Set(ctx, key, expiresAt.Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("set revoked token: %w", err)
	}

	// kept in a set so stale members can be cleaned up
	if err := r.redisClient.SAdd(ctx, revokedSetKey, tokenID).Err(); err != nil {
		return fmt.Errorf("add revoked token to set: %w", err)
	}

	return nil
}

func (r *Revoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := r.redisClient.Get(ctx, revokedKeyPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ScanAndClean removes set members whose revocation key has already expired.
func (r *Revoker) ScanAndClean(ctx context.Context) {
	cmd := r.redisClient.SMembers(ctx, revokedSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! revoker, scan and clean, get revoked tokens: %s", err)
		return
	}

	tokenIDs := cmd.Val()
	if len(tokenIDs) == 0 {
		log.Debugln("=> revoker, scan and clean abort, no revoked tokens")
		return
	}

	log.Debugf("=> revoker, scan and clean [%d revoked tokens] start ...", len(tokenIDs))
	for _, tokenID := range tokenIDs {
		exists, err := r.redisClient.Exists(ctx, revokedKeyPrefix+tokenID).Result()
		if err != nil {
			log.Errorf("=> revoker, scan and clean token %s: %s", tokenID, err)
			continue
		}
		if exists > 0 {
			continue
		}
		if err := r.redisClient.SRem(ctx, revokedSetKey, tokenID).Err(); err != nil {
			log.Errorf("=> revoker, clean token %s: %s", tokenID, err)
		}
	}
}
