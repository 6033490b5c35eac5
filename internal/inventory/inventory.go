// Package inventory implements the stock ledger rules: products are bought in
// dated batches and sold first-in first-out, with profit tracked per sale.
package inventory

import (
	"errors"
	"fmt"
	"time"

	"github.com/footprint-tools/stockline/internal/domain"
	"github.com/footprint-tools/stockline/internal/log"
)

var (
	ErrProductExists   = errors.New("product already exists")
	ErrProductNotFound = errors.New("product does not exist")
	ErrNotEnoughStock  = errors.New("not enough stock")
)

// Service applies the ledger rules on top of a LedgerStore.
type Service struct {
	store  domain.LedgerStore
	logger domain.Logger
}

type Option func(*Service)

func WithLogger(l domain.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

func NewService(store domain.LedgerStore, opts ...Option) *Service {
	s := &Service{store: store, logger: log.NopLogger{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateProduct registers a new product name.
func (s *Service) CreateProduct(name string) error {
	exists, err := s.store.ProductExists(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if exists {
		return fmt.Errorf("create %s: %w", name, ErrProductExists)
	}

	if err := s.store.CreateProduct(name); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return fmt.Errorf("create %s: %w", name, ErrProductExists)
		}
		return fmt.Errorf("create %s: %w", name, err)
	}

	s.logger.Info("inventory: product %s created", name)
	return nil
}

// Purchase adds a batch of amount units bought at price each on date.
func (s *Service) Purchase(name string, amount, price int, date time.Time) error {
	if err := s.requireProduct(name); err != nil {
		return fmt.Errorf("purchase %s: %w", name, err)
	}

	err := s.store.AddBatch(domain.Batch{
		Product:   name,
		Amount:    amount,
		Remaining: amount,
		Price:     price,
		Date:      date,
	})
	if err != nil {
		return fmt.Errorf("purchase %s: %w", name, err)
	}

	s.logger.Debug("inventory: %s +%d at %d on %s", name, amount, price, date.Format("2006-01-02"))
	return nil
}

// Demand sells amount units at price each on date. Stock is drawn from
// batches dated on or before date, oldest first. Nothing is sold when
// the available stock is short.
func (s *Service) Demand(name string, amount, price int, date time.Time) error {
	if err := s.requireProduct(name); err != nil {
		return fmt.Errorf("demand %s: %w", name, err)
	}

	batches, err := s.store.AvailableBatches(name, date)
	if err != nil {
		return fmt.Errorf("demand %s: %w", name, err)
	}

	draws, cost, ok := drawFIFO(batches, amount)
	if !ok {
		return fmt.Errorf("demand %s: %d requested, %d available: %w",
			name, amount, available(batches), ErrNotEnoughStock)
	}

	sale := domain.Sale{
		Product: name,
		Amount:  amount,
		Price:   price,
		Cost:    cost,
		Profit:  amount*price - cost,
		Date:    date,
	}
	if err := s.store.RecordSale(sale, draws); err != nil {
		return fmt.Errorf("demand %s: %w", name, err)
	}

	s.logger.Debug("inventory: %s -%d at %d, cost %d, profit %d", name, amount, price, cost, sale.Profit)
	return nil
}

// Profit returns the summed profit of sales dated on or before date.
func (s *Service) Profit(name string, date time.Time) (int, error) {
	if err := s.requireProduct(name); err != nil {
		return 0, fmt.Errorf("profit %s: %w", name, err)
	}

	total, err := s.store.ProfitUpTo(name, date)
	if err != nil {
		return 0, fmt.Errorf("profit %s: %w", name, err)
	}
	return total, nil
}

func (s *Service) requireProduct(name string) error {
	exists, err := s.store.ProductExists(name)
	if err != nil {
		return err
	}
	if !exists {
		return ErrProductNotFound
	}
	return nil
}

// drawFIFO takes amount units from batches in order. It reports false when
// the batches hold fewer than amount units in total.
func drawFIFO(batches []domain.Batch, amount int) ([]domain.BatchDraw, int, bool) {
	if available(batches) < amount {
		return nil, 0, false
	}

	var (
		draws []domain.BatchDraw
		cost  int
		left  = amount
	)
	for _, b := range batches {
		if left == 0 {
			break
		}
		take := min(left, b.Remaining)
		if take == 0 {
			continue
		}
		draws = append(draws, domain.BatchDraw{BatchID: b.ID, Amount: take})
		cost += take * b.Price
		left -= take
	}
	return draws, cost, true
}

func available(batches []domain.Batch) int {
	total := 0
	for _, b := range batches {
		total += b.Remaining
	}
	return total
}
