package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/kitchen-inventory/internal/models"
)

const mysqlSchema = `CREATE TABLE IF NOT EXISTS Products (
	id INT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	category VARCHAR(255) NOT NULL DEFAULT '',
	quantity INT NOT NULL DEFAULT 0,
	expiration_date DATETIME(6) NULL
)`

// MySQLProductRepository expects a connection opened with parseTime and
// clientFoundRows, see db.MySQLDSN.
type MySQLProductRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewMySQLProductRepository(db *sql.DB, timeout time.Duration) *MySQLProductRepository {
	return &MySQLProductRepository{db: db, timeout: timeout}
}

func (r *MySQLProductRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, mysqlSchema); err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}
	return nil
}

func (r *MySQLProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	query := `INSERT INTO Products (name, category, quantity, expiration_date) VALUES (?, ?, ?, ?)`
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Category, p.Quantity, expirationArg(p.ExpirationDate))
	if err != nil {
		return models.Product{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Product{}, err
	}
	p.ID = int(id)
	return p, nil
}

func (r *MySQLProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, category, quantity, expiration_date FROM Products`
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

func (r *MySQLProductRepository) GetByID(ctx context.Context, id int) (models.Product, error) {
	query := `SELECT id, name, category, quantity, expiration_date FROM Products WHERE id = ?`
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *MySQLProductRepository) Update(ctx context.Context, p models.Product) (models.Product, error) {
	query := `UPDATE Products SET name = ?, category = ?, quantity = ?, expiration_date = ? WHERE id = ?`
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Category, p.Quantity, expirationArg(p.ExpirationDate), p.ID)
	if err != nil {
		return models.Product{}, err
	}
	if err := rowsAffected(res); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (r *MySQLProductRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM Products WHERE id = ?`
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return rowsAffected(res)
}
