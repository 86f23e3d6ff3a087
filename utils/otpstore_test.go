package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryOTPStorePutGet(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	err := store.Put(ctx, "+919876543210", OTPEntry{OTP: "123456"}, time.Minute)
	assert.NoError(t, err)

	entry, found, err := store.Get(ctx, "+919876543210")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "123456", entry.OTP)
	assert.False(t, entry.Verified)
}

func TestMemoryOTPStoreExpiry(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	err := store.Put(ctx, "key", OTPEntry{OTP: "000000"}, -time.Second)
	assert.NoError(t, err)

	_, found, err := store.Get(ctx, "key")
	assert.NoError(t, err)
	assert.False(t, found)

	// Expired entry is dropped on read
	store.mu.Lock()
	_, stillThere := store.entries["key"]
	store.mu.Unlock()
	assert.False(t, stillThere)
}

func TestMemoryOTPStoreVerifiedRoundTrip(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	assert.NoError(t, store.Put(ctx, "reset_+919876543210", OTPEntry{OTP: "654321"}, time.Minute))

	entry, found, _ := store.Get(ctx, "reset_+919876543210")
	assert.True(t, found)

	entry.Verified = true
	assert.NoError(t, store.Put(ctx, "reset_+919876543210", entry, time.Minute))

	entry, found, _ = store.Get(ctx, "reset_+919876543210")
	assert.True(t, found)
	assert.True(t, entry.Verified)
}

func TestMemoryOTPStoreDelete(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	assert.NoError(t, store.Put(ctx, "key", OTPEntry{OTP: "111111"}, time.Minute))
	assert.NoError(t, store.Delete(ctx, "key"))

	_, found, _ := store.Get(ctx, "key")
	assert.False(t, found)
}

func TestMemoryOTPStoreMissingKey(t *testing.T) {
	store := NewMemoryOTPStore()

	_, found, err := store.Get(context.Background(), "nope")
	assert.NoError(t, err)
	assert.False(t, found)
}
