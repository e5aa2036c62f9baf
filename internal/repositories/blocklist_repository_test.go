package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryTokenBlocklist_RevokeAndCheck(t *testing.T) {
	bl := NewInMemoryTokenBlocklist()
	ctx := context.Background()

	revoked, err := bl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, bl.Revoke(ctx, "jti-1"))

	revoked, err = bl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked, "после Revoke все последующие проверки видят отзыв")

	revoked, err = bl.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked, "отзыв одного jti не задевает другие")
}

func TestInMemoryTokenBlocklist_RevokeIdempotent(t *testing.T) {
	bl := NewInMemoryTokenBlocklist()
	ctx := context.Background()

	require.NoError(t, bl.Revoke(ctx, "jti-1"))
	require.NoError(t, bl.Revoke(ctx, "jti-1"))

	revoked, err := bl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestInMemoryTokenBlocklist_Concurrent(t *testing.T) {
	bl := NewInMemoryTokenBlocklist()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		jti := fmt.Sprintf("jti-%d", i)
		go func() {
			defer wg.Done()
			assert.NoError(t, bl.Revoke(ctx, jti))
		}()
		go func() {
			defer wg.Done()
			_, err := bl.IsRevoked(ctx, jti)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		revoked, err := bl.IsRevoked(ctx, fmt.Sprintf("jti-%d", i))
		require.NoError(t, err)
		assert.True(t, revoked)
	}
}
