package repository

import (
	"PharmaCS/entity"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetOrderForUser returns the order with the given id only when it belongs
// to the given user. No match is (nil, nil), not an error.
func (m *MongoDB) GetOrderForUser(ctx context.Context, orderID, userID string) (*entity.Order, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(ordersCollection)
	filter := bson.D{
		{Key: "_id", Value: orderID},
		{Key: "user_id", Value: userID},
	}

	var order entity.Order
	err = collection.FindOne(ctx, filter).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, m.findError(err)
	}

	return &order, nil
}

// LatestOrderForUser returns the user's most recently created order, or
// (nil, nil) when the user has none.
func (m *MongoDB) LatestOrderForUser(ctx context.Context, userID string) (*entity.Order, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(ordersCollection)
	filter := bson.D{{Key: "user_id", Value: userID}}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var order entity.Order
	err = collection.FindOne(ctx, filter, opts).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, m.findError(err)
	}

	return &order, nil
}
