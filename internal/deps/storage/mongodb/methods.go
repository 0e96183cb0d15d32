package mongodb

import (
  "context"
  "errors"
  "fmt"

  log "github.com/sirupsen/logrus"
  "go.mongodb.org/mongo-driver/bson"
  "go.mongodb.org/mongo-driver/mongo"
  "go.mongodb.org/mongo-driver/mongo/options"
)

type InsertParams struct {
  Collection string
  Document   any
}

func (c *Client) Insert(ctx context.Context, params InsertParams) (id any, err error) {
  res, err := c.collection(params.Collection).InsertOne(ctx, params.Document)
  if err != nil {
    return nil, fmt.Errorf("c.collection.InsertOne: %w", err)
  }

  return res.InsertedID, nil
}

type UpdateParams struct {
  Collection string

  Filters map[string]any
  Update  bson.D
}

// Update applies the update to the first matching document and reports
// whether one matched.
func (c *Client) Update(ctx context.Context, params UpdateParams) (bool, error) {
  res, err := c.collection(params.Collection).UpdateOne(ctx, makeBsonDFilters(params.Filters), params.Update)
  if err != nil {
    return false, fmt.Errorf("c.collection.UpdateOne: %w", err)
  }

  return res.MatchedCount > 0, nil
}

type FindParams struct {
  Collection string

  Filters map[string]any
  SortBy  string
  Limit   int64
}

func (p *FindParams) toOptions() *options.FindOptions {
  opts := options.Find()

  if p.SortBy != "" {
    opts.SetSort(bson.D{{Key: p.SortBy, Value: 1}})
  }
  if p.Limit != 0 {
    opts.SetLimit(p.Limit)
  }
  return opts
}

// Find decodes every matching document with decode, in cursor order.
func (c *Client) Find(ctx context.Context, params FindParams, decode func(cursor *mongo.Cursor) error) error {
  cursor, err := c.collection(params.Collection).Find(ctx, makeBsonDFilters(params.Filters), params.toOptions())
  if err != nil {
    return fmt.Errorf("c.collection.Find: %w", err)
  }

  defer func() {
    if err := cursor.Close(ctx); err != nil {
      log.Errorf("mongodb.Find: cursor.Close: %v", err)
    }
  }()

  for cursor.Next(ctx) {
    if err = decode(cursor); err != nil {
      return fmt.Errorf("decode: %w", err)
    }
  }
  if err = cursor.Err(); err != nil {
    return fmt.Errorf("cursor.Err: %w", err)
  }

  return nil
}

type IncrementParams struct {
  Collection string

  Key   string
  Field string
}

// Increment atomically adds one to a counter document and returns the new
// value. Missing counters start at zero.
func (c *Client) Increment(ctx context.Context, params IncrementParams) (int64, error) {
  opts := options.
    FindOneAndUpdate().
    SetUpsert(true).
    SetReturnDocument(options.After)

  res := c.collection(params.Collection).FindOneAndUpdate(ctx,
    bson.D{{Key: "_id", Value: params.Key}},
    makeBsonDUpdate("$inc", map[string]any{params.Field: int64(1)}),
    opts,
  )

  doc := bson.M{}

  if err := res.Decode(&doc); err != nil {
    if errors.Is(err, mongo.ErrNoDocuments) {
      return 0, ErrNotFound
    }
    return 0, fmt.Errorf("res.Decode: %w", err)
  }

  switch value := doc[params.Field].(type) {
  case int64:
    return value, nil
  case int32:
    return int64(value), nil
  }
  return 0, fmt.Errorf("counter %q has type %T", params.Key, doc[params.Field])
}
