package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/stockline/internal/domain"
	"github.com/footprint-tools/stockline/internal/store/schema"
)

// MemoryDSN opens a private in-memory database with foreign keys enforced.
// Nothing survives the process.
const MemoryDSN = ":memory:?_foreign_keys=on"

const dateLayout = "2006-01-02"

// Store keeps the inventory ledger in SQLite.
// It implements the domain.LedgerStore interface.
type Store struct {
	db    *sql.DB
	newID func() string
}

// New opens a fresh in-memory ledger.
func New() (*Store, error) {
	return Open(MemoryDSN)
}

// Open opens the database at dsn and creates the ledger tables in it.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// An in-memory database lives and dies with its connection; keep exactly one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err = db.Ping(); err != nil {
		CloseDB(db)
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = schema.Apply(db); err != nil {
		CloseDB(db)
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return NewWithDB(db), nil
}

// NewWithDB creates a Store from a connection that already has the schema.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db, newID: uuid.NewString}
}

func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CloseDB closes a database connection, reporting failures on stderr.
// Intended for defer statements.
func CloseDB(db *sql.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "store: close database: %v\n", err)
	}
}

func (s *Store) CreateProduct(name string) error {
	_, err := s.db.Exec(`INSERT INTO products (name) VALUES (?)`, name)
	if isConstraint(err, sqlite3.ErrConstraintPrimaryKey) {
		return fmt.Errorf("product %q: %w", name, domain.ErrDuplicate)
	}
	return err
}

func (s *Store) ProductExists(name string) (bool, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM products WHERE name = ?`, name).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AddBatch stores a purchased batch. An empty ID is replaced by a new UUID.
func (s *Store) AddBatch(b domain.Batch) error {
	if b.ID == "" {
		b.ID = s.newID()
	}

	_, err := s.db.Exec(
		`INSERT INTO batches (id, product, amount, remaining, price, date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		b.ID, b.Product, b.Amount, b.Remaining, b.Price, b.Date.Format(dateLayout),
	)
	return err
}

// AvailableBatches returns the product's batches dated on or before upTo that
// still hold stock, in consumption order: oldest date first, then purchase order.
func (s *Store) AvailableBatches(product string, upTo time.Time) ([]domain.Batch, error) {
	rows, err := s.db.Query(
		`SELECT id, product, amount, remaining, price, date
		 FROM batches
		 WHERE product = ? AND date <= ? AND remaining > 0
		 ORDER BY date ASC, seq ASC`,
		product, upTo.Format(dateLayout),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Batch
	for rows.Next() {
		var (
			b  domain.Batch
			ds string
		)
		if err := rows.Scan(&b.ID, &b.Product, &b.Amount, &b.Remaining, &b.Price, &ds); err != nil {
			return nil, err
		}
		if b.Date, err = parseDate(ds); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// RecordSale stores the sale and takes each draw out of its batch in one
// transaction. If any batch no longer has enough stock nothing is written and
// domain.ErrStaleBatch is returned.
func (s *Store) RecordSale(sale domain.Sale, draws []domain.BatchDraw) error {
	if sale.ID == "" {
		sale.ID = s.newID()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.Exec(
		`INSERT INTO sales (id, product, amount, price, cost, profit, date)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sale.ID, sale.Product, sale.Amount, sale.Price, sale.Cost, sale.Profit, sale.Date.Format(dateLayout),
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	for _, d := range draws {
		res, err := tx.Exec(
			`UPDATE batches SET remaining = remaining - ? WHERE id = ? AND remaining >= ?`,
			d.Amount, d.BatchID, d.Amount,
		)
		if err != nil {
			return fmt.Errorf("draw from batch %s: %w", d.BatchID, err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n != 1 {
			return fmt.Errorf("draw %d from batch %s: %w", d.Amount, d.BatchID, domain.ErrStaleBatch)
		}

		if _, err := tx.Exec(
			`INSERT INTO sale_draws (sale_id, batch_id, amount) VALUES (?, ?, ?)`,
			sale.ID, d.BatchID, d.Amount,
		); err != nil {
			return fmt.Errorf("record draw: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	return nil
}

// ProfitUpTo sums the profit of sales dated on or before upTo. No sales is 0.
func (s *Store) ProfitUpTo(product string, upTo time.Time) (int, error) {
	var total int
	err := s.db.QueryRow(
		`SELECT COALESCE(SUM(profit), 0) FROM sales WHERE product = ? AND date <= ?`,
		product, upTo.Format(dateLayout),
	).Scan(&total)
	return total, err
}

// sales lists a product's sales in date order.
func (s *Store) sales(product string) ([]domain.Sale, error) {
	rows, err := s.db.Query(
		`SELECT id, product, amount, price, cost, profit, date
		 FROM sales WHERE product = ? ORDER BY date ASC, rowid ASC`,
		product,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Sale
	for rows.Next() {
		var (
			sale domain.Sale
			ds   string
		)
		if err := rows.Scan(&sale.ID, &sale.Product, &sale.Amount, &sale.Price, &sale.Cost, &sale.Profit, &ds); err != nil {
			return nil, err
		}
		if sale.Date, err = parseDate(ds); err != nil {
			return nil, err
		}
		out = append(out, sale)
	}
	return out, rows.Err()
}

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("stored date %q: %w", s, err)
	}
	return t, nil
}

func isConstraint(err error, code sqlite3.ErrNoExtended) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.ExtendedCode == code
}

var _ domain.LedgerStore = (*Store)(nil)
