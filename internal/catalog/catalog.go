// Package catalog serves the year's plan offering. The offering is
// read-mostly (mutated only by admin tooling), so reads go through a
// short-lived in-process cache.
package catalog

import (
	"fmt"
	"time"

	"github.com/gocongress/congress-api/internal/models"
	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

const cacheTTL = 5 * time.Minute

type Catalog struct {
	db    *gorm.DB
	cache *gocache.Cache
}

func New(db *gorm.DB) *Catalog {
	return &Catalog{
		db:    db,
		cache: gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// Plans returns every plan offered for the year, including disabled ones
// (the registration engine needs those for grandfathering), in category and
// display order.
func (c *Catalog) Plans(year int) ([]models.Plan, error) {
	key := fmt.Sprintf("plans:%d", year)
	if cached, ok := c.cache.Get(key); ok {
		return cached.([]models.Plan), nil
	}

	var plans []models.Plan
	err := c.db.Joins("PlanCategory").
		Where("plans.year = ?", year).
		Order("PlanCategory.ordinal, plans.display_order").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, plans, gocache.DefaultExpiration)
	return plans, nil
}

// Categories returns the year's plan categories in display order.
func (c *Catalog) Categories(year int) ([]models.PlanCategory, error) {
	key := fmt.Sprintf("categories:%d", year)
	if cached, ok := c.cache.Get(key); ok {
		return cached.([]models.PlanCategory), nil
	}

	var cats []models.PlanCategory
	err := c.db.Where("year = ?", year).Order("ordinal").Find(&cats).Error
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, cats, gocache.DefaultExpiration)
	return cats, nil
}

// Invalidate drops the cache; admin mutation endpoints call it after
// changing the offering.
func (c *Catalog) Invalidate() {
	c.cache.Flush()
}
