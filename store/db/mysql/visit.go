package mysql

import (
	"context"
	"strings"

	"github.com/sagarsuperuser/marketnav/store"
)

func (d *DB) CreateVisit(ctx context.Context, create *store.CreateVisit) (*store.Visit, error) {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO visits (id, route_name, path, view, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, create.ID, create.RouteName, create.Path, create.View, create.Role, create.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &store.Visit{
		ID:        create.ID,
		RouteName: create.RouteName,
		Path:      create.Path,
		View:      create.View,
		Role:      create.Role,
		CreatedAt: create.CreatedAt,
	}, nil
}

func (d *DB) ListVisits(ctx context.Context, find *store.FindVisit) ([]*store.Visit, error) {
	query, args := listVisitsQuery(find)
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*store.Visit, 0)
	for rows.Next() {
		var v store.Visit
		if err := rows.Scan(
			&v.ID,
			&v.RouteName,
			&v.Path,
			&v.View,
			&v.Role,
			&v.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func listVisitsQuery(find *store.FindVisit) (string, []any) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.RouteName; v != nil {
		where, args = append(where, "route_name = ?"), append(args, *v)
	}
	if v := find.Role; v != nil {
		where, args = append(where, "role = ?"), append(args, *v)
	}

	query := `
		SELECT id, route_name, path, view, role, created_at
		FROM visits
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_at DESC`
	if v := find.Limit; v != nil {
		query += " LIMIT ?"
		args = append(args, *v)
	}
	return query, args
}
