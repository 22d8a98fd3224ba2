package session

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists session fragments in Redis so wizard state survives
// process restarts. Same contract as MemoryStore: failures log and degrade,
// they never reach the caller.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(sessionID, key string) string {
	return "booking:" + sessionID + ":" + key
}

func (s *RedisStore) Save(ctx context.Context, sessionID, key string, fragment map[string]any) bool {
	merged := merge(s.Load(ctx, sessionID, key), fragment)
	raw, err := json.Marshal(merged)
	if err != nil {
		log.Printf("session %s: error saving %s data: %v", sessionID, key, err)
		return false
	}
	if err := s.client.Set(ctx, redisKey(sessionID, key), raw, 0).Err(); err != nil {
		log.Printf("session %s: error saving %s data: %v", sessionID, key, err)
		return false
	}
	return true
}

func (s *RedisStore) Load(ctx context.Context, sessionID, key string) map[string]any {
	raw, err := s.client.Get(ctx, redisKey(sessionID, key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("session %s: error retrieving %s data: %v", sessionID, key, err)
		}
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		log.Printf("session %s: error retrieving %s data: %v", sessionID, key, err)
		return nil
	}
	return m
}

func (s *RedisStore) LoadAll(ctx context.Context, sessionID string) Fragments {
	return Fragments{
		Search:       orEmpty(s.Load(ctx, sessionID, KeySearch)),
		Room:         orEmpty(s.Load(ctx, sessionID, KeyRoom)),
		Personal:     orEmpty(s.Load(ctx, sessionID, KeyPersonal)),
		Confirmation: orEmpty(s.Load(ctx, sessionID, KeyConfirmation)),
	}
}
