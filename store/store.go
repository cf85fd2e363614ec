package store

import (
	"sync"

	"github.com/sagarsuperuser/marketnav/internal/common"
)

// Store records navigation visits on top of a Driver and keeps the latest
// visit per route in memory.
type Store struct {
	driver     Driver
	visitCache sync.Map // route name -> *Visit
	now        common.NowFunc
}

// New creates a new instance of Store.
func New(driver Driver, now common.NowFunc) *Store {
	return &Store{
		driver: driver,
		now:    now,
	}
}

func (s *Store) Close() error {
	return s.driver.Close()
}
