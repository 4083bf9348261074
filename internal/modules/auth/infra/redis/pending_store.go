package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/itssoni10/ELance/internal/modules/auth/domain"
)

const (
	keyPrefix = "pending_signup:"

	// Records outlive the verify window so that a late verify still gets
	// the expired answer instead of "not found"; the TTL is housekeeping
	// for records nobody ever comes back for.
	recordTTL = 24 * time.Hour
)

// PendingStore keeps pending signups in Redis so they survive restarts and
// can be shared across instances.
type PendingStore struct {
	client *redis.Client
}

func NewPendingStore(client *redis.Client) *PendingStore {
	return &PendingStore{client: client}
}

func (s *PendingStore) Create(email, code string, profile domain.CapturedProfile, now time.Time) error {
	raw, err := json.Marshal(domain.PendingRegistration{
		Email:    email,
		Code:     code,
		Profile:  profile,
		IssuedAt: now,
	})
	if err != nil {
		return err
	}
	return s.client.Set(context.Background(), keyPrefix+email, raw, recordTTL).Err()
}

func (s *PendingStore) Get(email string) (*domain.PendingRegistration, error) {
	raw, err := s.client.Get(context.Background(), keyPrefix+email).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNoPendingSignup
	}
	if err != nil {
		return nil, err
	}
	var p domain.PendingRegistration
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Replace swaps the code and refreshes IssuedAt inside a WATCH transaction
// so a concurrent verify or signup on the same email cannot interleave with
// the read-modify-write.
func (s *PendingStore) Replace(email, newCode string, now time.Time) error {
	ctx := context.Background()
	key := keyPrefix + email

	txn := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return domain.ErrNoPendingSignup
		}
		if err != nil {
			return err
		}
		var p domain.PendingRegistration
		if err := json.Unmarshal(raw, &p); err != nil {
			return err
		}
		p.Code = newCode
		if now.After(p.IssuedAt) {
			p.IssuedAt = now
		}
		out, err := json.Marshal(p)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, recordTTL)
			return nil
		})
		return err
	}

	for i := 0; i < 3; i++ {
		err := s.client.Watch(ctx, txn, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return redis.TxFailedErr
}

func (s *PendingStore) Delete(email string) error {
	return s.client.Del(context.Background(), keyPrefix+email).Err()
}
