// Package mongo stores quotations as MongoDB documents keyed by ObjectID.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jsamuelsen/cctv-quotations/internal/domain"
	"github.com/jsamuelsen/cctv-quotations/internal/platform/telemetry"
)

// Name is the driver and health check name.
const Name = "mongo"

// Config configures the store.
type Config struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
	Logger         *slog.Logger
}

type document struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Product   string             `bson:"product"`
	Quantity  int                `bson:"quantity"`
	UnitPrice float64            `bson:"unitPrice"`
	Price     float64            `bson:"price"`
	GST       float64            `bson:"gst"`
	Total     float64            `bson:"total"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func fromDomain(q domain.Quotation) document {
	return document{
		Product:   string(q.Product),
		Quantity:  q.Quantity,
		UnitPrice: q.UnitPrice,
		Price:     q.Price,
		GST:       q.GST,
		Total:     q.Total,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func (d document) toDomain() *domain.Quotation {
	return &domain.Quotation{
		ID:        d.ID.Hex(),
		Product:   domain.Product(d.Product),
		Quantity:  d.Quantity,
		UnitPrice: d.UnitPrice,
		Price:     d.Price,
		GST:       d.GST,
		Total:     d.Total,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// Store implements ports.Store on a MongoDB collection.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
	logger *slog.Logger
}

// Open connects to MongoDB, pings the primary and ensures the createdAt index.
func Open(ctx context.Context, cfg *Config) (*Store, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI).SetConnectTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}

	s := &Store{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
		logger: logger.With(slog.String("component", "store.mongo")),
	}

	_, err = s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}},
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("creating mongo index: %w", err)
	}

	return s, nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.NewInvalidIDError(domain.EntityQuotation, id)
	}

	return oid, nil
}

// now truncates to the millisecond precision BSON dates keep.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (s *Store) fail(op, id string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.NewNotFoundError(domain.EntityQuotation, id)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("mongo %s: %w", op, err)
	}

	s.logger.Error("mongo operation failed", slog.String("op", op), slog.Any("error", err))

	return fmt.Errorf("mongo %s: %w", op, domain.NewUnavailableError(Name, err.Error()))
}

// Create implements ports.QuotationRepository.
func (s *Store) Create(ctx context.Context, q domain.Quotation) (_ *domain.Quotation, err error) {
	ctx, span := telemetry.StartStoreSpan(ctx, Name, "create")
	defer func() { telemetry.EndSpan(span, err) }()

	ts := now()
	q.CreatedAt = ts
	q.UpdatedAt = ts

	doc := fromDomain(q)
	doc.ID = primitive.NewObjectID()

	if _, err = s.coll.InsertOne(ctx, doc); err != nil {
		return nil, s.fail("create", "", err)
	}

	return doc.toDomain(), nil
}

// List implements ports.QuotationRepository.
func (s *Store) List(ctx context.Context) (_ []domain.Quotation, err error) {
	ctx, span := telemetry.StartStoreSpan(ctx, Name, "list")
	defer func() { telemetry.EndSpan(span, err) }()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, s.fail("list", "", err)
	}

	var docs []document
	if err = cur.All(ctx, &docs); err != nil {
		return nil, s.fail("list", "", err)
	}

	out := make([]domain.Quotation, 0, len(docs))
	for _, d := range docs {
		out = append(out, *d.toDomain())
	}

	return out, nil
}

// Get implements ports.QuotationRepository.
func (s *Store) Get(ctx context.Context, id string) (_ *domain.Quotation, err error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartStoreSpan(ctx, Name, "get")
	defer func() { telemetry.EndSpan(span, err) }()

	var doc document
	if err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, s.fail("get", id, err)
	}

	return doc.toDomain(), nil
}

// Update implements ports.QuotationRepository with a single findOneAndUpdate.
func (s *Store) Update(ctx context.Context, q domain.Quotation) (_ *domain.Quotation, err error) {
	oid, err := parseID(q.ID)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartStoreSpan(ctx, Name, "update")
	defer func() { telemetry.EndSpan(span, err) }()

	set := bson.M{
		"product":   string(q.Product),
		"quantity":  q.Quantity,
		"unitPrice": q.UnitPrice,
		"price":     q.Price,
		"gst":       q.GST,
		"total":     q.Total,
		"updatedAt": now(),
	}

	var doc document

	err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, s.fail("update", q.ID, err)
	}

	return doc.toDomain(), nil
}

// Delete implements ports.QuotationRepository with a single findOneAndDelete.
func (s *Store) Delete(ctx context.Context, id string) (_ *domain.Quotation, err error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartStoreSpan(ctx, Name, "delete")
	defer func() { telemetry.EndSpan(span, err) }()

	var doc document
	if err = s.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, s.fail("delete", id, err)
	}

	return doc.toDomain(), nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return Name }

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.client.Disconnect(ctx)
}
