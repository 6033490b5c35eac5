package domain

import (
	"errors"
	"time"
)

// Batch is a purchased lot of a product. Remaining decreases as demand draws from it.
type Batch struct {
	ID        string
	Product   string
	Amount    int
	Remaining int
	Price     int
	Date      time.Time
}

// Sale is a fulfilled demand.
type Sale struct {
	ID      string
	Product string
	Amount  int
	Price   int // unit sale price
	Cost    int // total purchase cost of the drawn stock
	Profit  int // Amount*Price - Cost
	Date    time.Time
}

// BatchDraw is the quantity a sale takes from one batch.
type BatchDraw struct {
	BatchID string
	Amount  int
}

// ErrDuplicate is returned by a LedgerStore when a record with the same key exists.
var ErrDuplicate = errors.New("duplicate record")

// ErrStaleBatch is returned by RecordSale when a batch no longer holds the
// quantity a draw asks for.
var ErrStaleBatch = errors.New("batch stock changed")
