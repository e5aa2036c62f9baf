package repositories

import (
	"context"
	"sync"
)

// TokenBlocklistInterface - множество отозванных jti. Revoke идемпотентен;
// после возврата из Revoke каждый последующий IsRevoked обязан видеть отзыв.
type TokenBlocklistInterface interface {
	Revoke(ctx context.Context, jti string) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// InMemoryTokenBlocklist - реализация для одного инстанса и для тестов.
// Записи живут до перезапуска процесса.
type InMemoryTokenBlocklist struct {
	mu      sync.RWMutex
	revoked map[string]struct{}
}

func NewInMemoryTokenBlocklist() *InMemoryTokenBlocklist {
	return &InMemoryTokenBlocklist{revoked: make(map[string]struct{})}
}

func (b *InMemoryTokenBlocklist) Revoke(_ context.Context, jti string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[jti] = struct{}{}
	return nil
}

func (b *InMemoryTokenBlocklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.revoked[jti]
	return ok, nil
}
