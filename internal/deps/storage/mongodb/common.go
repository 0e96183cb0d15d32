package mongodb

import (
  "errors"
  "sort"

  "go.mongodb.org/mongo-driver/bson"
)

var ErrNotFound = errors.New("document not found")

// makeBsonDFilters builds an equality filter. Keys are sorted so the
// same map always yields the same document.
func makeBsonDFilters(kv map[string]any) bson.D {
  keys := make([]string, 0, len(kv))
  for key := range kv {
    keys = append(keys, key)
  }
  sort.Strings(keys)

  out := bson.D{}

  for _, key := range keys {
    out = append(out, bson.E{
      Key:   key,
      Value: kv[key],
    })
  }

  return out
}

func makeBsonDUpdate(operator string, kv map[string]any) bson.D {
  return bson.D{{
    Key:   operator,
    Value: makeBsonDFilters(kv),
  }}
}
