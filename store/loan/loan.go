package loan

import (
	"context"
	"sort"
	"sync"
	"time"

	"pawn/core"
)

type loanStore struct {
	mu     sync.RWMutex
	loans  map[string][]*core.Loan
	nextID uint64
}

// New new in-memory loan store. Entries are kept in borrow order per
// borrower; Save replaces a borrower's entries in one step so a repayment
// applies all or nothing.
func New() core.ILoanStore {
	return &loanStore{
		loans: make(map[string][]*core.Loan),
	}
}

func clone(loan *core.Loan) *core.Loan {
	c := *loan
	return &c
}

func cloneAll(loans []*core.Loan) []*core.Loan {
	out := make([]*core.Loan, len(loans))
	for i, loan := range loans {
		out[i] = clone(loan)
	}
	return out
}

func (s *loanStore) Create(ctx context.Context, loan *core.Loan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	loan.ID = s.nextID
	loan.CreatedAt = time.Now()
	s.loans[loan.UserID] = append(s.loans[loan.UserID], clone(loan))
	return nil
}

func (s *loanStore) FindByUser(ctx context.Context, userID string) ([]*core.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAll(s.loans[userID]), nil
}

func (s *loanStore) Save(ctx context.Context, userID string, loans []*core.Loan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(loans) == 0 {
		delete(s.loans, userID)
		return nil
	}

	s.loans[userID] = cloneAll(loans)
	return nil
}

func (s *loanStore) Users(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]string, 0, len(s.loans))
	for userID := range s.loans {
		users = append(users, userID)
	}
	sort.Strings(users)

	return users, nil
}
