package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sagarsuperuser/marketnav/navigation"
)

// DefaultVisitLimit is used when FindVisit.Limit is unset.
const DefaultVisitLimit = 50

var ErrInvalidLimit = errors.New("limit must be positive")

// Visit is a successful navigation served by the API.
type Visit struct {
	ID        string            `json:"id"`
	RouteName string            `json:"route_name"`
	Path      string            `json:"path"`
	View      navigation.ViewID `json:"view"`
	Role      navigation.Role   `json:"role"`
	CreatedAt time.Time         `json:"created_at"`
}

type CreateVisit struct {
	ID        string
	RouteName string
	Path      string
	View      navigation.ViewID
	Role      navigation.Role
	CreatedAt time.Time
}

type FindVisit struct {
	RouteName *string
	Role      *navigation.Role

	// The maximum number of visits to return, newest first.
	Limit *int
}

// RecordVisit stores a visit to route.
func (s *Store) RecordVisit(ctx context.Context, route navigation.RouteDefinition) (*Visit, error) {
	visit, err := s.driver.CreateVisit(ctx, &CreateVisit{
		ID:        uuid.NewString(),
		RouteName: route.Name,
		Path:      route.Path,
		View:      route.View,
		Role:      route.Role,
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, err
	}

	s.visitCache.Store(visit.RouteName, visit)
	return visit, nil
}

// ListVisits returns visits matching find, newest first.
func (s *Store) ListVisits(ctx context.Context, find *FindVisit) ([]*Visit, error) {
	if find.Limit == nil {
		limit := DefaultVisitLimit
		find.Limit = &limit
	}
	if *find.Limit <= 0 {
		return nil, ErrInvalidLimit
	}
	return s.driver.ListVisits(ctx, find)
}

// LastVisit returns the most recent visit to the named route recorded by this
// process.
func (s *Store) LastVisit(routeName string) (*Visit, bool) {
	v, ok := s.visitCache.Load(routeName)
	if !ok {
		return nil, false
	}
	return v.(*Visit), true
}
