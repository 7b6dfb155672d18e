package docstore

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	databaseName   = "blog_data"
	collectionName = "scraped_texts"
)

// Document is the free-form record kept in the document store. Appends only;
// there is no update or delete path.
type Document struct {
	URL  string `bson:"url"`
	Text string `bson:"text"`
}

// Store appends {url, text} documents to MongoDB. The client is dialed on
// first use and reused until Close, normally the process lifetime.
type Store struct {
	uri string

	mu     sync.Mutex
	client *mongo.Client
}

func New(uri string) *Store {
	return &Store{uri: uri}
}

func (s *Store) connect(ctx context.Context) (*mongo.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		return s.client, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	s.client = client
	return client, nil
}

// SaveText appends one document to the scraped_texts collection.
func (s *Store) SaveText(ctx context.Context, url, text string) error {
	client, err := s.connect(ctx)
	if err != nil {
		return err
	}

	coll := client.Database(databaseName).Collection(collectionName)
	if _, err := coll.InsertOne(ctx, Document{URL: url, Text: text}); err != nil {
		return fmt.Errorf("mongo insert: %w", err)
	}
	return nil
}

// Ping verifies connectivity, dialing lazily like SaveText does.
func (s *Store) Ping(ctx context.Context) error {
	client, err := s.connect(ctx)
	if err != nil {
		return err
	}
	return client.Ping(ctx, nil)
}

// Close disconnects the client if one was ever dialed.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	return err
}
