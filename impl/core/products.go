package core

import (
	"PharmaCS/entity"
	"PharmaCS/internal/lib/sl"
	"context"
	"fmt"
)

// SearchProducts is the direct catalog search used by the storefront.
func (c *Core) SearchProducts(ctx context.Context, query string) ([]entity.Product, error) {
	if c.catalog == nil {
		return nil, fmt.Errorf("catalog not initialized")
	}
	return c.catalog.SearchProducts(ctx, query)
}

// searchProducts shields the chat flow from catalog failures: any error is
// logged and collapsed into an empty result set.
func (c *Core) searchProducts(ctx context.Context, query string) []entity.Product {
	if c.catalog == nil {
		return []entity.Product{}
	}

	products, err := c.catalog.SearchProducts(ctx, query)
	if err != nil {
		c.log.With(sl.Err(err)).Error("product search")
		return []entity.Product{}
	}

	return products
}
