package repository

import (
	"PharmaCS/entity"
	"PharmaCS/internal/lib/terms"
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const maxSearchResults = 5

var searchFields = []string{"name", "description", "category", "brand"}

// SearchProducts runs a multi-term catalog search: every term matches against
// name, description, category or brand as a case-insensitive substring, only
// active products are eligible, results are capped at maxSearchResults in
// database order. A query with no usable terms returns no products rather
// than an arbitrary slice of the catalog.
func (m *MongoDB) SearchProducts(ctx context.Context, query string) ([]entity.Product, error) {
	searchTerms := terms.Split(query)
	if len(searchTerms) == 0 {
		return []entity.Product{}, nil
	}

	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(productsCollection)

	clauses := bson.A{}
	for _, term := range searchTerms {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
		for _, field := range searchFields {
			clauses = append(clauses, bson.D{{Key: field, Value: pattern}})
		}
	}
	filter := bson.D{
		{Key: "is_active", Value: true},
		{Key: "$or", Value: clauses},
	}

	opts := options.Find().SetLimit(maxSearchResults)
	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb find products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []entity.Product{}
	if err = cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("mongodb decode products: %w", err)
	}

	return products, nil
}
