// Package roster caches the customers seated at the current table
// session so a customer id resolves to a display identity without a
// round-trip. It is a cache, not a source of truth: the table-session
// record on the server stays authoritative and every session fetch
// repopulates it.
package roster

import (
	"sync"

	"github.com/ikaro-souza/warlike-spiders/internal/domain"
)

type Cache struct {
	mu        sync.RWMutex
	customers []domain.TableSessionCustomer
}

func NewCache() *Cache {
	return &Cache{}
}

// SetRoster replaces the roster wholesale.
func (c *Cache) SetRoster(customers []domain.TableSessionCustomer) {
	copied := make([]domain.TableSessionCustomer, len(customers))
	copy(copied, customers)

	c.mu.Lock()
	c.customers = copied
	c.mu.Unlock()
}

// Roster returns the cached customers, empty if never populated.
func (c *Cache) Roster() []domain.TableSessionCustomer {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.TableSessionCustomer, len(c.customers))
	copy(out, c.customers)
	return out
}

// Resolve looks up a customer by id over the current roster.
func (c *Cache) Resolve(customerID string) (domain.TableSessionCustomer, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, customer := range c.customers {
		if customer.ID == customerID {
			return customer, true
		}
	}
	return domain.TableSessionCustomer{}, false
}
