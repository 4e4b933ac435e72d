package account

import (
	"context"
	"errors"
	"sync"
	"time"

	"pawn/core"

	"github.com/shopspring/decimal"
)

// ErrVersionConflict the account changed under the caller
var ErrVersionConflict = errors.New("account version conflict")

type accountStore struct {
	mu       sync.RWMutex
	accounts map[string]*core.Account
}

// New new in-memory account store. Persistence beneath the ledger is an
// external concern; the store only guarantees copy-in copy-out rows and
// versioned saves.
func New() core.IAccountStore {
	return &accountStore{
		accounts: make(map[string]*core.Account),
	}
}

func key(userID, assetID string) string {
	return userID + "/" + assetID
}

func clone(account *core.Account) *core.Account {
	c := *account
	return &c
}

func (s *accountStore) Find(ctx context.Context, userID, assetID string) (*core.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if account, ok := s.accounts[key(userID, assetID)]; ok {
		return clone(account), nil
	}

	return &core.Account{
		UserID:   userID,
		AssetID:  assetID,
		Deposit:  decimal.Zero,
		Interest: decimal.Zero,
	}, nil
}

func (s *accountStore) Save(ctx context.Context, account *core.Account, version int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(account.UserID, account.AssetID)
	now := time.Now()

	existing, ok := s.accounts[k]
	if !ok {
		if version != 0 {
			return ErrVersionConflict
		}

		saved := clone(account)
		saved.Version = 1
		saved.CreatedAt = now
		saved.UpdatedAt = now
		s.accounts[k] = saved
		*account = *saved
		return nil
	}

	if existing.Version != version {
		return ErrVersionConflict
	}

	saved := clone(account)
	saved.Version = version + 1
	saved.CreatedAt = existing.CreatedAt
	saved.UpdatedAt = now
	s.accounts[k] = saved
	*account = *saved
	return nil
}

func (s *accountStore) All(ctx context.Context) ([]*core.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]*core.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, clone(account))
	}

	return accounts, nil
}
