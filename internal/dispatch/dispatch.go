// Package dispatch maps named UI commands onto cart operations through
// an explicit table, keeping the cart decoupled from any rendering
// layer and testable without one.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"modernshop-backend/internal/domain"
	"modernshop-backend/internal/usecase"
)

// Cart command actions.
const (
	ActionAdd      = "cart.add"
	ActionRemove   = "cart.remove"
	ActionUpdate   = "cart.update"
	ActionIncrease = "cart.increase"
	ActionDecrease = "cart.decrease"
	ActionClear    = "cart.clear"
)

var (
	ErrUnknownAction  = errors.New("unknown cart action")
	ErrUnknownProduct = errors.New("unknown product")
)

// Command is one user intent aimed at the cart.
type Command struct {
	Action    string `json:"action"`
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// ProductFinder resolves product IDs to catalog products so cart.add
// snapshots price and title from the catalog, not from client input.
type ProductFinder interface {
	GetProductByID(ctx context.Context, id int) (domain.Product, bool)
}

type handlerFunc func(ctx context.Context, cmd Command) error

// Dispatcher routes commands to cart operations by action name.
type Dispatcher struct {
	cart    *usecase.CartUsecase
	catalog ProductFinder
	table   map[string]handlerFunc
}

func NewDispatcher(cart *usecase.CartUsecase, catalog ProductFinder) *Dispatcher {
	d := &Dispatcher{cart: cart, catalog: catalog}
	d.table = map[string]handlerFunc{
		ActionAdd:      d.add,
		ActionRemove:   d.remove,
		ActionUpdate:   d.update,
		ActionIncrease: d.increase,
		ActionDecrease: d.decrease,
		ActionClear:    d.clear,
	}
	return d
}

// Dispatch executes the command. Unknown actions are errors; mutations
// on product IDs absent from the cart stay no-ops, per cart semantics.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) error {
	h, ok := d.table[cmd.Action]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}
	return h(ctx, cmd)
}

// Actions lists the supported action names.
func (d *Dispatcher) Actions() []string {
	actions := make([]string, 0, len(d.table))
	for name := range d.table {
		actions = append(actions, name)
	}
	return actions
}

func (d *Dispatcher) add(ctx context.Context, cmd Command) error {
	product, ok := d.catalog.GetProductByID(ctx, cmd.ProductID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownProduct, cmd.ProductID)
	}
	quantity := cmd.Quantity
	if quantity < 1 {
		quantity = 1
	}
	d.cart.AddItem(product, quantity)
	return nil
}

func (d *Dispatcher) remove(_ context.Context, cmd Command) error {
	d.cart.RemoveItem(cmd.ProductID)
	return nil
}

func (d *Dispatcher) update(_ context.Context, cmd Command) error {
	d.cart.UpdateQuantity(cmd.ProductID, cmd.Quantity)
	return nil
}

func (d *Dispatcher) increase(_ context.Context, cmd Command) error {
	d.cart.IncreaseQuantity(cmd.ProductID)
	return nil
}

func (d *Dispatcher) decrease(_ context.Context, cmd Command) error {
	d.cart.DecreaseQuantity(cmd.ProductID)
	return nil
}

func (d *Dispatcher) clear(_ context.Context, _ Command) error {
	d.cart.Clear()
	return nil
}
