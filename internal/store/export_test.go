package store

import "github.com/footprint-tools/stockline/internal/domain"

// Sales exposes the sale listing to the store_test package.
func Sales(s *Store, product string) ([]domain.Sale, error) {
	return s.sales(product)
}
