package cartrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements CartRepository using GORM.
// Save rewrites the cart's item rows wholesale; carts are small enough that
// diffing rows is not worth the complexity.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the customer's cart with its items in insertion order.
func (r *GormCartRepository) Get(ctx context.Context, customerID kernel.ID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id") }).
		First(&dto, "customer_id = ?", customerID.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customerId", customerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save upserts the customer's cart, replacing its item rows.
func (r *GormCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	db := r.db.WithContext(ctx)

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(&CartDTO{CustomerID: dto.CustomerID}).Error; err != nil {
		return err
	}

	if err := db.Where("cart_customer_id = ?", dto.CustomerID).
		Delete(&CartItemDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Items) > 0 {
		if err := db.Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(c.CustomerID(), c)
	return nil
}

// Delete removes the customer's cart and its items. Deleting an absent cart
// is a no-op.
func (r *GormCartRepository) Delete(ctx context.Context, customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("cart_customer_id = ?", customerID.String()).
		Delete(&CartItemDTO{}).Error; err != nil {
		return err
	}

	return db.Where("customer_id = ?", customerID.String()).
		Delete(&CartDTO{}).Error
}
