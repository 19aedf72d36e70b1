package ledger

import (
	"errors"
	"fmt"
	"sync"
)

// The escrow engine treats value movement as an external primitive supplied
// by the hosting environment. Ledger is that contract: every call either
// completes in full or fails without side effects, and debits require the
// authority the account was created under.
type Ledger interface {
	CreateAccount(key, asset, authority string) error
	Account(key string) (Account, error)
	Transfer(authority, from, to string, amount uint64) error
	Burn(authority, account string, amount uint64) error
}

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountExists     = errors.New("account already exists")
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrAssetMismatch     = errors.New("asset mismatch")
	ErrNotAuthorized     = errors.New("authority mismatch")
	ErrOverflow          = errors.New("balance overflow")
)

// Account is a read-only snapshot of a ledger entry.
type Account struct {
	Key       string
	Asset     string
	Authority string
	Balance   uint64
}

// InMemory is the reference Ledger used by the service binary and tests. The
// hosting environment serializes operations per lock record; the mutex here
// only protects the account table itself.
type InMemory struct {
	mu       sync.Mutex
	accounts map[string]*Account
}

func NewInMemory() *InMemory {
	return &InMemory{
		accounts: make(map[string]*Account),
	}
}

func (l *InMemory) CreateAccount(key, asset, authority string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.accounts[key]; ok {
		return fmt.Errorf("%w: %s", ErrAccountExists, key)
	}
	l.accounts[key] = &Account{
		Key:       key,
		Asset:     asset,
		Authority: authority,
	}
	return nil
}

func (l *InMemory) Account(key string) (Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc, ok := l.accounts[key]
	if !ok {
		return Account{}, fmt.Errorf("%w: %s", ErrAccountNotFound, key)
	}
	return *acc, nil
}

// Transfer moves amount between two accounts of the same asset. It fails
// closed: on any error neither balance changes.
func (l *InMemory) Transfer(authority, from, to string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	src, ok := l.accounts[from]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, from)
	}
	dst, ok := l.accounts[to]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, to)
	}
	if src.Authority != authority {
		return fmt.Errorf("%w: account %s", ErrNotAuthorized, from)
	}
	if src.Asset != dst.Asset {
		return fmt.Errorf("%w: %s -> %s", ErrAssetMismatch, src.Asset, dst.Asset)
	}
	if src.Balance < amount {
		return fmt.Errorf("%w: account %s holds %d, need %d", ErrInsufficientFunds, from, src.Balance, amount)
	}
	if dst.Balance+amount < dst.Balance {
		return fmt.Errorf("%w: account %s", ErrOverflow, to)
	}

	src.Balance -= amount
	dst.Balance += amount
	return nil
}

// Burn destroys amount held by the account.
func (l *InMemory) Burn(authority, account string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc, ok := l.accounts[account]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, account)
	}
	if acc.Authority != authority {
		return fmt.Errorf("%w: account %s", ErrNotAuthorized, account)
	}
	if acc.Balance < amount {
		return fmt.Errorf("%w: account %s holds %d, need %d", ErrInsufficientFunds, account, acc.Balance, amount)
	}

	acc.Balance -= amount
	return nil
}

// Mint credits amount to the account. It exists so operators and tests can
// fund source accounts; the escrow engine itself never mints.
func (l *InMemory) Mint(account string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc, ok := l.accounts[account]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, account)
	}
	if acc.Balance+amount < acc.Balance {
		return fmt.Errorf("%w: account %s", ErrOverflow, account)
	}

	acc.Balance += amount
	return nil
}
