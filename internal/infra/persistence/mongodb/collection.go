package mongodb

import (
	"context"

	"wildtrack/internal/domain/repository"
	"wildtrack/internal/errors"
	"wildtrack/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection implements repository.Collection for one MongoDB collection.
type collection struct {
	name string
	coll *mongo.Collection
}

// InsertOne always creates a new record and returns its assigned id.
func (c *collection) InsertOne(ctx context.Context, doc any) (string, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", repository.NewStoreError(c.name, "insert", err)
	}

	id, err := idToString(res.InsertedID)
	if err != nil {
		return "", repository.NewStoreError(c.name, "insert", err)
	}

	return id, nil
}

// UpsertByKey inserts doc only when nothing matches filter, and returns the
// id of the matching record either way. A single findOneAndUpdate with
// $setOnInsert keeps the check and the insert atomic, so concurrent callers
// racing on the same natural key still end up with at most one record, and an
// existing record is never modified.
func (c *collection) UpsertByKey(ctx context.Context, filter repository.Document, doc any) (string, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After).
		SetProjection(bson.M{"_id": 1})

	var idDoc struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	err := c.coll.FindOneAndUpdate(ctx, bson.M(filter), bson.M{"$setOnInsert": doc}, opts).Decode(&idDoc)
	if err != nil {
		return "", repository.NewStoreError(c.name, "upsert", err)
	}

	return idDoc.ID.Hex(), nil
}

// CountAll returns the number of records in the collection.
func (c *collection) CountAll(ctx context.Context) (int64, error) {
	count, err := c.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, repository.NewStoreError(c.name, "count", err)
	}

	return count, nil
}

// FindLatestByField returns the record with the extremal sortField value.
func (c *collection) FindLatestByField(ctx context.Context, sortField string, descending bool) (repository.Document, bool, error) {
	order := 1
	if descending {
		order = -1
	}

	var doc bson.M
	err := c.coll.FindOne(ctx, bson.D{}, options.FindOne().
		SetSort(bson.D{{Key: sortField, Value: order}})).
		Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, repository.NewStoreError(c.name, "find latest", err)
	}

	// Stringify the ObjectId so the document serializes cleanly to JSON.
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["_id"] = oid.Hex()
	}

	return model.NormalizeDocument(doc), true, nil
}

func idToString(id any) (string, error) {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex(), nil
	case string:
		return v, nil
	default:
		return "", errors.Errorf("unsupported id type %T", id)
	}
}
