// internal/app/store/docstore/mongo.go
package docstore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements Store over a MongoDB database.
type Mongo struct {
	db *mongo.Database
}

// NewMongo wraps the database as a document Store.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

// ListAll returns every record in the collection.
func (m *Mongo) ListAll(ctx context.Context, collection string) ([]Record, error) {
	cur, err := m.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur)
}

// GetByID returns the record whose _id matches id. Ids written as ObjectIDs
// are matched by their hex form; string ids are matched directly.
func (m *Mongo) GetByID(ctx context.Context, collection, id string) (Record, bool, error) {
	filter := bson.M{"_id": id}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		filter = bson.M{"_id": oid}
	}

	var raw bson.M
	err := m.db.Collection(collection).FindOne(ctx, filter).Decode(&raw)
	if err == mongo.ErrNoDocuments {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}
	return toRecord(raw), true, nil
}

// Query returns the records matching q, ordered and limited store-side.
func (m *Mongo) Query(ctx context.Context, collection string, q Query) ([]Record, error) {
	filter := bson.M{}
	for _, f := range q.Filters {
		filter[f.Field] = f.Value
	}

	opts := options.Find()
	if q.OrderBy != "" {
		order := 1
		if q.Descending {
			order = -1
		}
		opts.SetSort(bson.D{{Key: q.OrderBy, Value: order}})
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cur, err := m.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur)
}

func decodeAll(ctx context.Context, cur *mongo.Cursor) ([]Record, error) {
	defer cur.Close(ctx)

	var out []Record
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		out = append(out, toRecord(raw))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// toRecord lifts a decoded document into a Record, pulling _id out of the
// field map and stringifying it.
func toRecord(raw bson.M) Record {
	rec := Record{Fields: make(map[string]any, len(raw))}
	for k, v := range raw {
		if k == "_id" {
			rec.ID = stringifyID(v)
			continue
		}
		rec.Fields[k] = v
	}
	return rec
}

func stringifyID(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprintf("%v", id)
	}
}
