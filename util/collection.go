package util

import (
	"context"

	"portfolio-backend/model"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotConnected = errors.New("mongodb client is not connected")

// Collection stores one resource kind. Every method is a single round trip.
type Collection struct {
	name string
	coll *mongo.Collection
}

// NewCollection returns a handle on database.name. A nil client yields a
// handle that fails every call with ErrNotConnected.
func NewCollection(client *mongo.Client, database, name string) *Collection {
	c := &Collection{name: name}
	if client != nil {
		c.coll = client.Database(database).Collection(name)
	}
	return c
}

func (c *Collection) Name() string {
	return c.name
}

func (c *Collection) FindAll(ctx context.Context) ([]model.Document, error) {
	if c.coll == nil {
		return nil, ErrNotConnected
	}

	cursor, err := c.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrapf(err, "finding documents in '%s'", c.name)
	}
	defer cursor.Close(ctx)

	docs := make([]model.Document, 0)
	for cursor.Next(ctx) {
		var doc model.Document
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrapf(err, "decoding document from '%s'", c.name)
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrapf(err, "iterating documents in '%s'", c.name)
	}
	log.Debug().Str("collection", c.name).Int("count", len(docs)).Msg("FindAll: found documents")
	return docs, nil
}

// Insert stores doc under a freshly assigned identity and returns the stored
// document. A client-supplied "_id" is replaced.
func (c *Collection) Insert(ctx context.Context, doc model.Document) (model.Document, error) {
	if c.coll == nil {
		return nil, ErrNotConnected
	}

	stored := make(model.Document, len(doc)+1)
	for key, value := range doc {
		stored[key] = value
	}
	stored[model.IDField] = primitive.NewObjectID()

	if _, err := c.coll.InsertOne(ctx, stored); err != nil {
		return nil, errors.Wrapf(err, "inserting document into '%s'", c.name)
	}
	log.Debug().Str("collection", c.name).Interface("id", stored[model.IDField]).Msg("Insert: inserted document")
	return stored, nil
}

// UpdateByID sets the given fields on the document with identity id. A
// missing document is not an error: the acknowledgment reports zero matches.
func (c *Collection) UpdateByID(ctx context.Context, id string, fields model.Document) (*model.UpdateAck, error) {
	if c.coll == nil {
		return nil, ErrNotConnected
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing id '%s'", id)
	}

	set := make(bson.M, len(fields))
	for key, value := range fields {
		if key == model.IDField {
			continue
		}
		set[key] = value
	}

	res, err := c.coll.UpdateOne(ctx, bson.M{model.IDField: oid}, bson.M{"$set": set})
	if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
		return &model.UpdateAck{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "updating document '%s' in '%s'", id, c.name)
	}
	log.Debug().Str("collection", c.name).Str("id", id).Int64("modified", res.ModifiedCount).Msg("UpdateByID: updated document")
	return &model.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

// DeleteByID removes the document with identity id, if there is one.
func (c *Collection) DeleteByID(ctx context.Context, id string) (*model.DeleteAck, error) {
	if c.coll == nil {
		return nil, ErrNotConnected
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing id '%s'", id)
	}

	res, err := c.coll.DeleteOne(ctx, bson.M{model.IDField: oid})
	if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
		return &model.DeleteAck{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "deleting document '%s' from '%s'", id, c.name)
	}
	log.Debug().Str("collection", c.name).Str("id", id).Int64("deleted", res.DeletedCount).Msg("DeleteByID: deleted document")
	return &model.DeleteAck{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
