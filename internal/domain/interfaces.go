package domain

import (
	"io"
	"time"
)

// LedgerStore defines storage operations for the inventory ledger.
type LedgerStore interface {
	// CreateProduct registers a product name. Fails if it already exists.
	CreateProduct(name string) error

	// ProductExists reports whether a product has been registered.
	ProductExists(name string) (bool, error)

	// AddBatch records a purchased batch.
	AddBatch(batch Batch) error

	// AvailableBatches returns batches of a product dated on or before upTo
	// that still hold stock, oldest first.
	AvailableBatches(product string, upTo time.Time) ([]Batch, error)

	// RecordSale stores a sale and the batch draws that fulfilled it atomically.
	RecordSale(sale Sale, draws []BatchDraw) error

	// ProfitUpTo sums the profit of a product's sales dated on or before upTo.
	ProfitUpTo(product string, upTo time.Time) (int, error)

	// Close closes the store connection.
	Close() error
}

// ConfigProvider defines read operations on configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string
}

// Application represents the main application context with all dependencies.
type Application struct {
	SessionID string
	Store     LedgerStore
	Config    ConfigProvider
	Logger    Logger
	Output    OutputWriter
	Styler    Styler
}
