package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/rogerio-castellano/kitchen-inventory/internal/models"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	var expiration sql.NullTime
	if err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Quantity, &expiration); err != nil {
		return models.Product{}, err
	}
	if expiration.Valid {
		t := expiration.Time.UTC()
		p.ExpirationDate = &t
	}
	return p, nil
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

func expirationArg(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func rowsAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}
