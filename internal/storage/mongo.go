package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on a Mongo collection holding one document per
// storage key: {_id: <key>, value: <blob>}. The blob stays opaque to Mongo.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(col *mongo.Collection) *MongoStore {
	return &MongoStore{col: col}
}

type storedBlob struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

func (s *MongoStore) Load(ctx context.Context, key string) (string, bool, error) {
	var b storedBlob
	if err := s.col.FindOne(ctx, bson.M{"_id": key}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return "", false, nil
		}
		return "", false, err
	}
	return b.Value, true, nil
}

func (s *MongoStore) Save(ctx context.Context, key, value string) error {
	opts := options.Update().SetUpsert(true)
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value}}, opts)
	return err
}

// ConnectMongo opens a connection and returns the client. Caller should call
// client.Disconnect(ctx).
func ConnectMongo(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}
