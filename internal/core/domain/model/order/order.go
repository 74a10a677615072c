package order

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrDeliveryAddressIsRequired is returned when creating an order without a delivery address.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("deliveryAddress")
	// ErrNoLineItems is returned when creating an order without any line items.
	ErrNoLineItems = errs.NewInvalidStateError("no valid items in cart")
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer's order in the system. It is the aggregate root
// that manages the order lifecycle from creation through courier assignment
// to delivery or cancellation.
//
// Order follows these invariants:
//   - Must have valid order, customer and restaurant identifiers
//   - Holds at least one line item; every line item was snapshotted from the
//     same restaurant's menu at creation time
//   - Total amount equals the sum of line subtotals computed at creation
//   - Status transitions follow the rules defined on Status
//   - No status or courier transition is permitted once the order is terminal
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.ID

	// customerID identifies the ordering customer
	customerID kernel.ID

	// restaurantID identifies the restaurant all line items came from
	restaurantID kernel.ID

	// courierID is the assigned courier's ID (nil if unassigned)
	courierID *kernel.ID

	// lineItems are the priced snapshots taken at creation time
	lineItems []LineItem

	// totalAmount is the sum of line subtotals at creation time
	totalAmount float64

	// status represents the current state in the order lifecycle
	status Status

	// deliveryAddress is the free-text destination address
	deliveryAddress string

	// createdAt is the creation timestamp
	createdAt time.Time

	// estimatedDeliveryTime is a free-text delivery estimate
	estimatedDeliveryTime string

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in pending status with no courier assigned.
// The total amount is computed as the sum of the line items' subtotals.
//
// Parameters:
//   - id: Unique identifier for the order
//   - customerID: The ordering customer
//   - restaurantID: The restaurant all line items belong to
//   - deliveryAddress: Free-text destination (must be non-empty)
//   - lineItems: Priced snapshots (must contain at least one item)
//   - estimatedDeliveryTime: Free-text delivery estimate
//
// Example:
//
//	item, _ := order.NewLineItem(menuItemID, "Margherita Pizza", 12.99, 2)
//	o, err := order.NewOrder(order.NextID(), customerID, restaurantID,
//	    "123 Main St", []order.LineItem{item}, "30-40 min")
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id, customerID, restaurantID kernel.ID,
	deliveryAddress string,
	lineItems []LineItem,
	estimatedDeliveryTime string,
) (*Order, error) {
	o := &Order{
		status:                StatusPending,
		createdAt:             time.Now().UTC(),
		estimatedDeliveryTime: estimatedDeliveryTime,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setDeliveryAddress(deliveryAddress),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// NextID generates a fresh order identifier.
// Unlike the other entities, order identifiers are assigned by the system.
func NextID() kernel.ID {
	return kernel.NewID()
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// preserving its status, total, courier assignment and timestamps.
// The stored total is kept as-is rather than recomputed, so historical
// orders are unaffected by any later pricing changes.
func RestoreOrder(
	id, customerID, restaurantID kernel.ID,
	courierID *kernel.ID,
	lineItems []LineItem,
	totalAmount float64,
	status Status,
	deliveryAddress string,
	createdAt time.Time,
	estimatedDeliveryTime string,
) (*Order, error) {
	o := &Order{
		createdAt:             createdAt,
		estimatedDeliveryTime: estimatedDeliveryTime,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setDeliveryAddress(deliveryAddress),
		o.setLineItems(lineItems),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		o.courierID = courierID
	}

	o.totalAmount = totalAmount
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

// RestaurantID returns the restaurant's identifier.
func (o *Order) RestaurantID() kernel.ID {
	return o.restaurantID
}

// CourierID returns the assigned courier's identifier.
// Returns nil if no courier is assigned.
func (o *Order) CourierID() *kernel.ID {
	return o.courierID
}

// LineItems returns the order's priced line-item snapshots.
func (o *Order) LineItems() []LineItem {
	return o.lineItems
}

// TotalAmount returns the order total computed at creation time.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryAddress returns the free-text destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// EstimatedDeliveryTime returns the free-text delivery estimate.
func (o *Order) EstimatedDeliveryTime() string {
	return o.estimatedDeliveryTime
}

// IsTerminal reports whether the order reached delivered or cancelled.
func (o *Order) IsTerminal() bool {
	return o.status.IsTerminal()
}

// AssignCourier attaches a courier to the order.
//
// Assignment (and reassignment) is permitted while the order is in any
// non-terminal status; a terminal order rejects assignment with an
// invalid-state error. Releasing the previously assigned courier is the
// workflow's responsibility, since the courier aggregate lives outside
// this one.
func (o *Order) AssignCourier(courierID kernel.ID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("cannot assign courier to order in terminal status " + o.status.String())
	}

	o.courierID = &courierID
	return nil
}

// ChangeStatus moves the order to target, enforcing the transition rules
// defined on Status: one step forward in the linear delivery flow, or
// cancellation from any non-terminal status.
//
// Returns an invalid-state error for illegal transitions, including any
// transition out of a terminal status.
func (o *Order) ChangeStatus(target Status) error {
	if err := o.status.CanTransitionTo(target); err != nil {
		return err
	}

	o.status = target
	return nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setLineItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrNoLineItems
	}

	total := 0.0
	for _, item := range items {
		total += item.Subtotal()
	}

	o.lineItems = items
	o.totalAmount = total
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
