package db

import (
	"context"
	"encoding/json"
	"errors"
)

const (
	CollectionProjects = "projects"
	CollectionExpenses = "expenses"
	CollectionGoals    = "goals"
	CollectionUsers    = "users"
)

// ErrNotFound is returned by Get, Replace, and Delete for an unknown id. A
// repeated delete on the same id surfaces it too.
var ErrNotFound = errors.New("document not found")

// Store is a persistent document collection: whole JSON documents keyed by
// collection name and id, replaced wholesale on update, last write wins.
// List returns documents in insertion order.
type Store interface {
	List(ctx context.Context, collection string) ([]json.RawMessage, error)
	Get(ctx context.Context, collection, id string) (json.RawMessage, error)
	Insert(ctx context.Context, collection, id string, doc json.RawMessage) error
	Replace(ctx context.Context, collection, id string, doc json.RawMessage) error
	Delete(ctx context.Context, collection, id string) error
	Close()
}
