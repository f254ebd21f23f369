package session

import (
	"context"
	"errors"
	"medical-portal/internal/pkg/constvars"
	"medical-portal/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoSlotRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 8, 30, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	newRepository := func(mt *mtest.T, ttl time.Duration) *mongoSlotRepository {
		return &mongoSlotRepository{Collection: mt.Coll, TTL: ttl, now: clock}
	}
	namespace := func(mt *mtest.T) string {
		return mt.DB.Name() + "." + mt.Coll.Name()
	}

	mt.Run("Read Returns Stored Value", func(mt *mtest.T) {
		repo := newRepository(mt, time.Hour)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "slot:client-1"},
			{Key: "value", Value: `{"user_id":"u-1"}`},
			{Key: "updated_at", Value: now.Add(-time.Minute)},
			{Key: "expires_at", Value: now.Add(time.Hour)},
		}))

		raw, err := repo.Read(ctx, "slot:client-1")
		require.NoError(t, err)
		assert.Equal(t, `{"user_id":"u-1"}`, raw)

		started := mt.GetStartedEvent()
		require.NotNil(t, started)
		assert.Equal(t, "find", started.CommandName)
		assert.Equal(t, "slot:client-1", started.Command.Lookup("filter", "_id").StringValue())
	})

	mt.Run("Read Without Expiry Returns Stored Value", func(mt *mtest.T) {
		repo := newRepository(mt, 0)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "slot:client-1"},
			{Key: "value", Value: `{"user_id":"u-2"}`},
			{Key: "updated_at", Value: now.Add(-24 * time.Hour)},
		}))

		raw, err := repo.Read(ctx, "slot:client-1")
		require.NoError(t, err)
		assert.Equal(t, `{"user_id":"u-2"}`, raw)
	})

	mt.Run("Missing Document Reads As Empty", func(mt *mtest.T) {
		repo := newRepository(mt, time.Hour)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		raw, err := repo.Read(ctx, "slot:missing")
		require.NoError(t, err)
		assert.Empty(t, raw)
	})

	mt.Run("Expired Document Reads As Empty", func(mt *mtest.T) {
		repo := newRepository(mt, time.Hour)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "slot:client-1"},
			{Key: "value", Value: `{"user_id":"u-1"}`},
			{Key: "updated_at", Value: now.Add(-2 * time.Hour)},
			{Key: "expires_at", Value: now.Add(-time.Second)},
		}))

		raw, err := repo.Read(ctx, "slot:client-1")
		require.NoError(t, err)
		assert.Empty(t, raw)
	})

	mt.Run("Read Error Is Wrapped", func(mt *mtest.T) {
		repo := newRepository(mt, time.Hour)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "cannot read",
		}))

		raw, err := repo.Read(ctx, "slot:client-1")
		assert.Empty(t, raw)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})

	mt.Run("Write Upserts Session Document", func(mt *mtest.T) {
		repo := newRepository(mt, 2*time.Hour)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: "slot:client-1"}}}},
		))

		session := sampleSession()
		require.NoError(t, repo.Write(ctx, "slot:client-1", session))

		started := mt.GetStartedEvent()
		require.NotNil(t, started)
		assert.Equal(t, "update", started.CommandName)

		updates, err := started.Command.Lookup("updates").Array().Values()
		require.NoError(t, err)
		require.Len(t, updates, 1)
		statement := updates[0].Document()
		assert.True(t, statement.Lookup("upsert").Boolean())
		assert.Equal(t, "slot:client-1", statement.Lookup("q", "_id").StringValue())

		replacement := statement.Lookup("u").Document()
		assert.Equal(t, "slot:client-1", replacement.Lookup("_id").StringValue())
		assert.True(t, replacement.Lookup("updated_at").Time().Equal(now))
		assert.True(t, replacement.Lookup("expires_at").Time().Equal(now.Add(2*time.Hour)))

		expected, err := json.Marshal(session)
		require.NoError(t, err)
		assert.JSONEq(t, string(expected), replacement.Lookup("value").StringValue())
	})

	mt.Run("Write Without TTL Omits Expiry", func(mt *mtest.T) {
		repo := newRepository(mt, 0)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		require.NoError(t, repo.Write(ctx, "slot:client-1", sampleSession()))

		started := mt.GetStartedEvent()
		require.NotNil(t, started)
		updates, err := started.Command.Lookup("updates").Array().Values()
		require.NoError(t, err)
		require.Len(t, updates, 1)
		_, lookupErr := updates[0].Document().Lookup("u").Document().LookupErr("expires_at")
		assert.Error(t, lookupErr)
	})

	mt.Run("Write Error Is Wrapped", func(mt *mtest.T) {
		repo := newRepository(mt, time.Hour)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := repo.Write(ctx, "slot:client-1", sampleSession())
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})

	mt.Run("Delete Removes Slot", func(mt *mtest.T) {
		repo := newRepository(mt, time.Hour)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		require.NoError(t, repo.Delete(ctx, "slot:client-1"))

		started := mt.GetStartedEvent()
		require.NotNil(t, started)
		assert.Equal(t, "delete", started.CommandName)
		deletes, err := started.Command.Lookup("deletes").Array().Values()
		require.NoError(t, err)
		require.Len(t, deletes, 1)
		assert.Equal(t, "slot:client-1", deletes[0].Document().Lookup("q", "_id").StringValue())
	})

	mt.Run("Delete Error Is Wrapped", func(mt *mtest.T) {
		repo := newRepository(mt, time.Hour)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "cannot delete",
		}))

		err := repo.Delete(ctx, "slot:client-1")
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
	})
}
