package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/swifttrack/backoffice/internal/domain/document"
)

type firestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps a Firestore client in the document store contract.
// The client is the single long-lived handle shared read-only across
// requests; the store itself serializes concurrent writes.
func NewFirestoreStore(client *firestore.Client) document.Store {
	return &firestoreStore{client: client}
}

func (s *firestoreStore) Get(ctx context.Context, collection, id string) (document.Record, error) {
	doc, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return document.Record{}, fmt.Errorf("%s/%s: %w", collection, id, document.ErrNotFound)
		}
		return document.Record{}, fmt.Errorf("%s/%s: %w: %v", collection, id, document.ErrUnavailable, err)
	}

	return document.Record{ID: doc.Ref.ID, Data: doc.Data()}, nil
}

func (s *firestoreStore) List(ctx context.Context, collection string) ([]document.Record, error) {
	iter := s.client.Collection(collection).Documents(ctx)
	return collect(collection, iter)
}

func (s *firestoreStore) Query(ctx context.Context, collection string, eq map[string]interface{}, in *document.InFilter, order *document.Order, limit int) ([]document.Record, error) {
	q := s.client.Collection(collection).Query

	for field, value := range eq {
		q = q.Where(field, "==", value)
	}
	if in != nil {
		q = q.Where(in.Field, "in", in.Values)
	}
	if order != nil {
		dir := firestore.Asc
		if order.Desc {
			dir = firestore.Desc
		}
		q = q.OrderBy(order.Field, dir)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	return collect(collection, q.Documents(ctx))
}

func (s *firestoreStore) Create(ctx context.Context, collection string, data document.Document) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, map[string]interface{}(data))
	if err != nil {
		return "", fmt.Errorf("%s: %w: %v", collection, document.ErrUnavailable, err)
	}
	return ref.ID, nil
}

func (s *firestoreStore) Update(ctx context.Context, collection, id string, data document.Document) error {
	// Field-path updates fail on absent documents; a merge Set would silently
	// create one instead.
	updates := make([]firestore.Update, 0, len(data))
	for field, value := range data {
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{field}, Value: value})
	}
	if len(updates) == 0 {
		_, err := s.Get(ctx, collection, id)
		return err
	}

	_, err := s.client.Collection(collection).Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("%s/%s: %w", collection, id, document.ErrNotFound)
		}
		return fmt.Errorf("%s/%s: %w: %v", collection, id, document.ErrUnavailable, err)
	}
	return nil
}

func (s *firestoreStore) Delete(ctx context.Context, collection, id string) error {
	// Firestore reports success when deleting an absent document; callers
	// rely on that contract.
	_, err := s.client.Collection(collection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("%s/%s: %w: %v", collection, id, document.ErrUnavailable, err)
	}
	return nil
}

func collect(collection string, iter *firestore.DocumentIterator) ([]document.Record, error) {
	var records []document.Record
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %v", collection, document.ErrUnavailable, err)
		}
		records = append(records, document.Record{ID: doc.Ref.ID, Data: doc.Data()})
	}
	return records, nil
}
