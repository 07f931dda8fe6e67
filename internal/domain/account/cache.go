package account

import (
	"context"
	"sync"

	"netbank/internal/infrastructure/corebank"
)

// Lister is the slice of the core-banking client the cache depends on.
type Lister interface {
	ListAccounts(ctx context.Context, customerID int64) ([]corebank.Account, error)
}

// Cache holds the account list of one customer plus the transient
// selection pointer. It is the only shared mutable resource of a
// session: views read snapshots, and all writes go through Refresh,
// Select and Invalidate.
//
// Staleness rules:
//   - Invalidate bumps the mutation epoch. A refresh issued before the
//     most recently completed mutation is never applied.
//   - Among refreshes, the last to complete wins; an in-flight refresh
//     result overwrites whatever completed before it.
type Cache struct {
	lister     Lister
	customerID int64

	mu         sync.Mutex
	accounts   []corebank.Account
	selectedID int64
	epoch      uint64
	listeners  []func()
}

// NewCache creates an empty cache for a customer. It holds no data
// until the first Refresh.
func NewCache(lister Lister, customerID int64) *Cache {
	return &Cache{lister: lister, customerID: customerID}
}

// CustomerID returns the owner of the cached accounts.
func (c *Cache) CustomerID() int64 {
	return c.customerID
}

// Refresh fetches the full account list and replaces the cached list
// wholesale. Failures (network, auth) are propagated, never swallowed,
// and leave the previous snapshot in place. Safe to call repeatedly;
// two refreshes with no intervening mutation yield the same list.
func (c *Cache) Refresh(ctx context.Context) error {
	c.mu.Lock()
	issuedEpoch := c.epoch
	c.mu.Unlock()

	accounts, err := c.lister.ListAccounts(ctx, c.customerID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if issuedEpoch != c.epoch {
		// A mutation completed while this refresh was in flight. Its
		// result predates the mutation and must not be served; the
		// mutation path triggers its own refresh.
		c.mu.Unlock()
		return nil
	}

	c.accounts = accounts
	if !c.selectionValidLocked() {
		if len(c.accounts) > 0 {
			c.selectedID = c.accounts[0].AccountID
		} else {
			c.selectedID = 0
		}
	}
	listeners := make([]func(), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
	return nil
}

// Invalidate marks every refresh currently in flight as stale. Called
// by the transaction orchestrator after any successful mutation.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.epoch++
	c.mu.Unlock()
}

// Select moves the selection pointer. Unknown IDs are a silent no-op:
// the input comes from a dropdown populated from this same list, so an
// absent ID is never worth failing over.
func (c *Cache) Select(accountID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, acc := range c.accounts {
		if acc.AccountID == accountID {
			c.selectedID = accountID
			return
		}
	}
}

// Accounts returns a point-in-time copy of the cached list.
func (c *Cache) Accounts() []corebank.Account {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := make([]corebank.Account, len(c.accounts))
	copy(snapshot, c.accounts)
	return snapshot
}

// Selected returns the currently selected account, if any.
func (c *Cache) Selected() (corebank.Account, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, acc := range c.accounts {
		if acc.AccountID == c.selectedID {
			return acc, true
		}
	}
	return corebank.Account{}, false
}

// SelectedID returns the selection pointer (0 when nothing is selected).
func (c *Cache) SelectedID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedID
}

// Subscribe registers fn to run after each applied snapshot. This is
// how views re-render on refresh completion instead of polling.
func (c *Cache) Subscribe(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

func (c *Cache) selectionValidLocked() bool {
	if c.selectedID == 0 {
		return false
	}
	for _, acc := range c.accounts {
		if acc.AccountID == c.selectedID {
			return true
		}
	}
	return false
}
