package mongo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/constants"
	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
)

const (
	recordsCollection       = "records"
	notificationsCollection = "notification_log"
	opTimeout               = 10 * time.Second
)

var (
	ErrInvalidURI          = errors.New("invalid MongoDB connection URI")
	ErrEmbeddedCredentials = errors.New("connection URI must not contain a password")
	ErrNotInitialized      = errors.New("mongo store not connected, run 'rebill init' first")
)

type record struct {
	Name      string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type Store struct {
	uri      string
	dbName   string
	client   *mongo.Client
	database *mongo.Database
}

// New targets the database named in the URI path, or "rebill" when absent.
func New(uri string) *Store {
	return &Store{uri: uri, dbName: databaseName(uri)}
}

func databaseName(uri string) string {
	if u, err := url.Parse(uri); err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return constants.AppName
}

// ValidateURI checks the URI parses as a MongoDB connection string and
// carries no password.
func ValidateURI(uri string) (bool, error) {
	if strings.TrimSpace(uri) == "" {
		return false, fmt.Errorf("%w: URI cannot be empty", ErrInvalidURI)
	}
	if err := options.Client().ApplyURI(uri).Validate(); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}
	u, err := url.Parse(uri)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}
	if _, isSet := u.User.Password(); isSet {
		return false, ErrEmbeddedCredentials
	}
	return true, nil
}

func (s *Store) connect() error {
	if s.client != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	s.client = client
	s.database = client.Database(s.dbName)
	return nil
}

// Init connects and ensures the history index exists.
func (s *Store) Init() error {
	if err := s.connect(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err := s.database.Collection(notificationsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "sent_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create notification index: %w", err)
	}
	return nil
}

func (s *Store) Load() error {
	return s.connect()
}

func (s *Store) Close() error {
	if s.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	err := s.client.Disconnect(ctx)
	s.client = nil
	s.database = nil
	return err
}

func (s *Store) GetRecord(name string) ([]byte, bool, error) {
	if s.database == nil {
		return nil, false, ErrNotInitialized
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var rec record
	err := s.database.Collection(recordsCollection).FindOne(ctx, bson.M{"_id": name}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read record %s: %w", name, err)
	}
	return []byte(rec.Value), true, nil
}

func (s *Store) PutRecord(name string, value []byte) error {
	if s.database == nil {
		return ErrNotInitialized
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rec := record{Name: name, Value: string(value), UpdatedAt: time.Now().UTC()}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.database.Collection(recordsCollection).ReplaceOne(ctx, bson.M{"_id": name}, rec, opts); err != nil {
		return fmt.Errorf("failed to write record %s: %w", name, err)
	}
	return nil
}

func (s *Store) LogNotification(rec models.NotificationRecord) error {
	if s.database == nil {
		return ErrNotInitialized
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if _, err := s.database.Collection(notificationsCollection).InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("failed to log notification: %w", err)
	}
	return nil
}

func (s *Store) RecentNotifications(limit int) ([]models.NotificationRecord, error) {
	if s.database == nil {
		return nil, ErrNotInitialized
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "sent_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := s.database.Collection(notificationsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.NotificationRecord
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return out, nil
}

func (s *Store) GetConfigPath() string {
	return s.uri
}
