// Package ledger exposes the inventory ledger as dispatcher commands.
package ledger

import (
	"time"

	"github.com/footprint-tools/stockline/internal/dispatchers"
	"github.com/footprint-tools/stockline/internal/literal"
)

// Inventory is the subset of inventory.Service the commands call.
type Inventory interface {
	CreateProduct(name string) error
	Purchase(name string, amount, price int, date time.Time) error
	Demand(name string, amount, price int, date time.Time) error
	Profit(name string, date time.Time) (int, error)
}

// Controller registers NEW, PURCHASE, DEMAND and SALESREPORT.
type Controller struct {
	inv Inventory
}

func NewController(inv Inventory) *Controller {
	return &Controller{inv: inv}
}

func (c *Controller) Commands() []dispatchers.CommandSpec {
	name := dispatchers.StringArg("name").Describe("product name")
	amount := dispatchers.IntArg("amount").Positive().Describe("units")
	price := dispatchers.IntArg("price").Positive().Describe("price per unit")
	date := dispatchers.DateArg("date").NotInFuture().Describe(literal.DateLayout)

	return []dispatchers.CommandSpec{
		dispatchers.Command("NEW", "Registers a new product", c.newProduct, name),
		dispatchers.Command("PURCHASE", "Buys a batch of a product", c.purchase, name, amount, price, date),
		dispatchers.Command("DEMAND", "Sells a product, oldest stock first", c.demand, name, amount, price, date),
		dispatchers.Command("SALESREPORT", "Prints the profit made up to a date", c.salesReport, name, date),
	}
}

func (c *Controller) newProduct(args dispatchers.Args) (any, error) {
	return nil, c.inv.CreateProduct(args.String(0))
}

func (c *Controller) purchase(args dispatchers.Args) (any, error) {
	return nil, c.inv.Purchase(args.String(0), args.Int(1), args.Int(2), args.Date(3))
}

func (c *Controller) demand(args dispatchers.Args) (any, error) {
	return nil, c.inv.Demand(args.String(0), args.Int(1), args.Int(2), args.Date(3))
}

func (c *Controller) salesReport(args dispatchers.Args) (any, error) {
	profit, err := c.inv.Profit(args.String(0), args.Date(1))
	if err != nil {
		return nil, err
	}
	return profit, nil
}
