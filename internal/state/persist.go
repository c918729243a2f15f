package state

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Persister writes a container's full snapshot under a namespaced key and
// reads it back at construction time. Containers write the whole record on
// every mutation; the last write wins.
type Persister interface {
	Save(ctx context.Context, key string, value interface{}) error
	Load(ctx context.Context, key string, out interface{}) (bool, error)
	Delete(ctx context.Context, key string) error
}

type redisPersister struct {
	client *redis.Client
}

func NewRedisPersister(client *redis.Client) Persister {
	return &redisPersister{client: client}
}

func (p *redisPersister) Save(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return p.client.Set(ctx, key, data, 0).Err()
}

func (p *redisPersister) Load(ctx context.Context, key string, out interface{}) (bool, error) {
	data, err := p.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

func (p *redisPersister) Delete(ctx context.Context, key string) error {
	return p.client.Del(ctx, key).Err()
}

type memoryPersister struct {
	mu      sync.Mutex
	records map[string][]byte
}

// NewMemoryPersister keeps snapshots in process memory. Used in tests and
// when no Redis address is configured.
func NewMemoryPersister() Persister {
	return &memoryPersister{records: make(map[string][]byte)}
}

func (p *memoryPersister) Save(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.records[key] = data
	return nil
}

func (p *memoryPersister) Load(ctx context.Context, key string, out interface{}) (bool, error) {
	p.mu.Lock()
	data, ok := p.records[key]
	p.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

func (p *memoryPersister) Delete(ctx context.Context, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.records, key)
	return nil
}
