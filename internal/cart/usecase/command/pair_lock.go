package command

import "sync"

type pairKey struct {
	userID    uint
	productID uint
}

// pairLocks serializes cart mutations per (user, product) pair.
// Mutations for different pairs proceed in parallel; two adds for the
// same pair are forced through the read-then-write protocol one at a
// time, which closes the check-then-act race inside this process.
type pairLocks struct {
	locks sync.Map // pairKey -> *sync.Mutex
}

func newPairLocks() *pairLocks {
	return &pairLocks{}
}

// Lock acquires the mutex for the pair and returns its unlock function
func (p *pairLocks) Lock(userID, productID uint) func() {
	key := pairKey{userID: userID, productID: productID}
	mu, _ := p.locks.LoadOrStore(key, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
