package account

import (
	"context"
	"testing"

	"pawn/core"
	"pawn/pkg/number"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindZeroInitialized(t *testing.T) {
	ctx := context.Background()
	s := New()

	account, err := s.Find(ctx, "u1", core.NativeAssetID)
	require.Nil(t, err)
	assert.Equal(t, "u1", account.UserID)
	assert.True(t, account.Deposit.IsZero())
	assert.True(t, account.Interest.IsZero())
	assert.Equal(t, int64(0), account.Version)
}

func TestSaveVersioned(t *testing.T) {
	ctx := context.Background()
	s := New()

	account, _ := s.Find(ctx, "u1", core.NativeAssetID)
	account.Deposit = number.Decimal("100")
	require.Nil(t, s.Save(ctx, account, 0))
	assert.Equal(t, int64(1), account.Version)

	// stale version rejected
	stale := *account
	stale.Deposit = number.Decimal("1")
	assert.Equal(t, ErrVersionConflict, s.Save(ctx, &stale, 0))

	account.Deposit = number.Decimal("200")
	require.Nil(t, s.Save(ctx, account, 1))

	found, _ := s.Find(ctx, "u1", core.NativeAssetID)
	assert.True(t, found.Deposit.Equal(number.Decimal("200")))
	assert.Equal(t, int64(2), found.Version)
}

func TestFindReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := New()

	account, _ := s.Find(ctx, "u1", core.NativeAssetID)
	account.Deposit = number.Decimal("100")
	require.Nil(t, s.Save(ctx, account, 0))

	found, _ := s.Find(ctx, "u1", core.NativeAssetID)
	found.Deposit = number.Decimal("0")

	again, _ := s.Find(ctx, "u1", core.NativeAssetID)
	assert.True(t, again.Deposit.Equal(number.Decimal("100")))
}
