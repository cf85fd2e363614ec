package memory

import (
	"context"
	"sync"

	"github.com/sagarsuperuser/marketnav/store"
)

// DB keeps visits in process memory, dropping the oldest once retention is
// reached.
type DB struct {
	mu        sync.RWMutex
	visits    []*store.Visit
	retention int
}

func NewDB(retention int) store.Driver {
	if retention <= 0 {
		retention = 1
	}
	return &DB{
		visits:    make([]*store.Visit, 0, retention),
		retention: retention,
	}
}

func (d *DB) Close() error {
	return nil
}

func (d *DB) CreateVisit(ctx context.Context, create *store.CreateVisit) (*store.Visit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	visit := &store.Visit{
		ID:        create.ID,
		RouteName: create.RouteName,
		Path:      create.Path,
		View:      create.View,
		Role:      create.Role,
		CreatedAt: create.CreatedAt,
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.visits) == d.retention {
		copy(d.visits, d.visits[1:])
		d.visits = d.visits[:len(d.visits)-1]
	}
	d.visits = append(d.visits, visit)

	out := *visit
	return &out, nil
}

func (d *DB) ListVisits(ctx context.Context, find *store.FindVisit) ([]*store.Visit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	list := make([]*store.Visit, 0)
	// newest first
	for i := len(d.visits) - 1; i >= 0; i-- {
		v := d.visits[i]
		if find.RouteName != nil && v.RouteName != *find.RouteName {
			continue
		}
		if find.Role != nil && v.Role != *find.Role {
			continue
		}
		out := *v
		list = append(list, &out)
		if find.Limit != nil && len(list) == *find.Limit {
			break
		}
	}
	return list, nil
}
