package db

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, CollectionProjects, "a", json.RawMessage(`{"name":"first"}`)))
	require.NoError(t, s.Insert(ctx, CollectionProjects, "b", json.RawMessage(`{"name":"second"}`)))
	require.NoError(t, s.Insert(ctx, CollectionProjects, "c", json.RawMessage(`{"name":"third"}`)))

	docs, err := s.List(ctx, CollectionProjects)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.JSONEq(t, `{"name":"first"}`, string(docs[0]))
	assert.JSONEq(t, `{"name":"third"}`, string(docs[2]))
}

func TestMemoryStoreCollectionsAreIndependent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, CollectionProjects, "a", json.RawMessage(`{}`)))

	docs, err := s.List(ctx, CollectionGoals)
	require.NoError(t, err)
	assert.Empty(t, docs)

	_, err = s.Get(ctx, CollectionGoals, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreReplace(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, CollectionGoals, "g", json.RawMessage(`{"v":1}`)))
	require.NoError(t, s.Replace(ctx, CollectionGoals, "g", json.RawMessage(`{"v":2}`)))

	doc, err := s.Get(ctx, CollectionGoals, "g")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(doc))

	assert.ErrorIs(t, s.Replace(ctx, CollectionGoals, "missing", json.RawMessage(`{}`)), ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, CollectionExpenses, "e", json.RawMessage(`{}`)))
	require.NoError(t, s.Delete(ctx, CollectionExpenses, "e"))

	// second delete on the same id is NotFound, not a crash
	assert.ErrorIs(t, s.Delete(ctx, CollectionExpenses, "e"), ErrNotFound)

	docs, err := s.List(ctx, CollectionExpenses)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, CollectionProjects, "a", json.RawMessage(`{"n":1}`)))

	doc, err := s.Get(ctx, CollectionProjects, "a")
	require.NoError(t, err)
	doc[0] = 'X'

	again, err := s.Get(ctx, CollectionProjects, "a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":1}`, string(again))
}
