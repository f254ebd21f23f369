package session

import (
	"context"
	"errors"
	"medical-portal/internal/app/contracts"
	"medical-portal/internal/app/models"
	"medical-portal/internal/pkg/constvars"
	"medical-portal/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type slotDocument struct {
	Slot      string     `bson:"_id"`
	Value     string     `bson:"value"`
	UpdatedAt time.Time  `bson:"updated_at"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty"`
}

type mongoSlotRepository struct {
	Collection *mongo.Collection
	TTL        time.Duration
	now        func() time.Time
}

func NewMongoSlotRepository(db *mongo.Database, ttl time.Duration) contracts.SessionSlotRepository {
	return &mongoSlotRepository{
		Collection: db.Collection(constvars.MongoCollectionSessionSlots),
		TTL:        ttl,
		now:        time.Now,
	}
}

// EnsureIndexes creates the TTL index that lets MongoDB expire slots on its
// own. Reads also skip expired documents because the TTL monitor is lazy.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(constvars.MongoCollectionSessionSlots).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	return err
}

func (r *mongoSlotRepository) Read(ctx context.Context, slot string) (string, error) {
	var document slotDocument
	err := r.Collection.FindOne(ctx, bson.M{"_id": slot}).Decode(&document)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", exceptions.ErrSessionSlotRead(exceptions.ErrMongoDBFindDocument(err), slot)
	}

	if document.ExpiresAt != nil && r.now().After(*document.ExpiresAt) {
		return "", nil
	}
	return document.Value, nil
}

func (r *mongoSlotRepository) Write(ctx context.Context, slot string, session *models.Session) error {
	value, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrSessionSlotWrite(exceptions.ErrCannotMarshalJSON(err), slot)
	}

	now := r.now()
	document := slotDocument{
		Slot:      slot,
		Value:     string(value),
		UpdatedAt: now,
	}
	if r.TTL > 0 {
		expiresAt := now.Add(r.TTL)
		document.ExpiresAt = &expiresAt
	}

	_, err = r.Collection.ReplaceOne(ctx, bson.M{"_id": slot}, document, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrSessionSlotWrite(exceptions.ErrMongoDBUpsertDocument(err), slot)
	}
	return nil
}

func (r *mongoSlotRepository) Delete(ctx context.Context, slot string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": slot})
	if err != nil {
		return exceptions.ErrSessionSlotDelete(exceptions.ErrMongoDBDeleteDocument(err), slot)
	}
	return nil
}
