// Package memory is the in-process entity store. One RWMutex guards all three
// collections: writes (including their foreign-key checks) are serialized,
// reads run concurrently and always see whole records.
package memory

import (
	"strings"
	"sync"

	"insurance_backoffice/internal/domain/entities"
)

// DB holds every collection. Records are never deleted and ids are
// sequential from 1, so a record lives at index id-1.
type DB struct {
	mu        sync.RWMutex
	customers []entities.Customer
	policies  []entities.Policy
	claims    []entities.Claim
	emails    map[string]int64
}

func NewDB() *DB {
	return &DB{emails: make(map[string]int64)}
}

func (db *DB) customerAt(id int64) (entities.Customer, bool) {
	if id <= 0 || id > int64(len(db.customers)) {
		return entities.Customer{}, false
	}
	return db.customers[id-1], true
}

func (db *DB) policyAt(id int64) (entities.Policy, bool) {
	if id <= 0 || id > int64(len(db.policies)) {
		return entities.Policy{}, false
	}
	return db.policies[id-1], true
}

func (db *DB) claimAt(id int64) (entities.Claim, bool) {
	if id <= 0 || id > int64(len(db.claims)) {
		return entities.Claim{}, false
	}
	return cloneClaim(db.claims[id-1]), true
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cloneClaim(c entities.Claim) entities.Claim {
	if c.SettledAmount != nil {
		amount := *c.SettledAmount
		c.SettledAmount = &amount
	}
	return c
}
