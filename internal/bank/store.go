package bank

// Store holds the active account set. It is owned and mutated by exactly one
// session controller; it does no locking of its own.
type Store struct {
	accounts []*Account
}

// NewStore builds a store from the given accounts, deriving a handle for each.
func NewStore(accounts ...*Account) *Store {
	s := &Store{accounts: make([]*Account, 0, len(accounts))}
	for _, a := range accounts {
		s.Add(a)
	}
	return s
}

// Add derives the account's handle and appends it to the active set.
func (s *Store) Add(a *Account) {
	a.Handle = DeriveHandle(a.Owner)
	s.accounts = append(s.accounts, a)
}

// Find returns the account with the given handle, or false if none matches.
func (s *Store) Find(handle string) (*Account, bool) {
	for _, a := range s.accounts {
		if a.Handle == handle {
			return a, true
		}
	}
	return nil, false
}

// Remove deletes the account whose handle equals the given one and reports
// whether anything was removed. Lookup is strict equality on the handle, so
// only the intended account can ever be dropped.
func (s *Store) Remove(handle string) bool {
	for i, a := range s.accounts {
		if a.Handle == handle {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of active accounts.
func (s *Store) Len() int {
	return len(s.accounts)
}

// Accounts returns the active set in insertion order. The slice is a copy;
// the accounts themselves are shared.
func (s *Store) Accounts() []*Account {
	out := make([]*Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}
