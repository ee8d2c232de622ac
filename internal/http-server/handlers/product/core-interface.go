package product

import (
	"PharmaCS/entity"
	"context"
)

type Core interface {
	SearchProducts(ctx context.Context, query string) ([]entity.Product, error)
}
