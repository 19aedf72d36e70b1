package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fluterlabs/reward-escrow/internal/db/model"
	"github.com/fluterlabs/reward-escrow/internal/types"
	"github.com/fluterlabs/reward-escrow/pkg"
)

func (db *Database) SaveNewEscrowLock(
	ctx context.Context, lockDoc *model.EscrowLockDocument,
) error {
	_, err := db.client.Database(db.dbName).
		Collection(model.EscrowLockCollection).
		InsertOne(ctx, lockDoc)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     lockDoc.ID,
						Message: "escrow lock already exists",
					}
				}
			}
		}
		return err
	}
	return nil
}

func (db *Database) GetEscrowLock(
	ctx context.Context, mainAsset, minter string,
) (*model.EscrowLockDocument, error) {
	key := pkg.DeriveEscrowKey(mainAsset, minter)
	filter := bson.M{"_id": key}

	res := db.client.Database(db.dbName).
		Collection(model.EscrowLockCollection).
		FindOne(ctx, filter)

	var lockDoc model.EscrowLockDocument
	if err := res.Decode(&lockDoc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     key,
				Message: "escrow lock not found",
			}
		}
		return nil, err
	}

	return &lockDoc, nil
}

func (db *Database) GetEscrowLocksByMainAsset(
	ctx context.Context, mainAsset string,
) ([]model.EscrowLockDocument, error) {
	filter := bson.M{}
	if mainAsset != "" {
		filter["main_asset"] = mainAsset
	}

	cursor, err := db.client.Database(db.dbName).
		Collection(model.EscrowLockCollection).
		Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var locks []model.EscrowLockDocument
	if err = cursor.All(ctx, &locks); err != nil {
		return nil, err
	}

	return locks, nil
}

// UpdateEscrowLockOnRedeem applies a redemption's accounting in one atomic
// update: remaining decreases by rewardAmount, the burned counter increases
// by burnAmount. The filter re-checks the state and the remaining value so a
// record that drifted since the read is never over-debited.
func (db *Database) UpdateEscrowLockOnRedeem(
	ctx context.Context, mainAsset, minter string,
	burnAmount, rewardAmount uint64,
) error {
	key := pkg.DeriveEscrowKey(mainAsset, minter)

	qualifiedStates := types.QualifiedStatesForRedeem()
	qualifiedStateStrs := make([]string, len(qualifiedStates))
	for i, state := range qualifiedStates {
		qualifiedStateStrs[i] = state.String()
	}

	filter := bson.M{
		"_id":                    key,
		"state":                  bson.M{"$in": qualifiedStateStrs},
		"remaining_reward_value": bson.M{"$gte": rewardAmount},
	}
	update := bson.M{
		"$inc": bson.M{
			"remaining_reward_value": -int64(rewardAmount),
			"burned_token_amount":    int64(burnAmount),
		},
	}

	res := db.client.Database(db.dbName).
		Collection(model.EscrowLockCollection).
		FindOneAndUpdate(ctx, filter, update)

	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return &NotFoundError{
				Key:     key,
				Message: "escrow lock not found, not active or remaining value too low",
			}
		}
		return res.Err()
	}

	return nil
}

// CloseEscrowLock is the terminal transition: state becomes CLOSED and the
// remaining value is zeroed. Records are never deleted.
func (db *Database) CloseEscrowLock(
	ctx context.Context, mainAsset, minter string,
) error {
	key := pkg.DeriveEscrowKey(mainAsset, minter)

	qualifiedStates := types.QualifiedStatesForReclaim()
	qualifiedStateStrs := make([]string, len(qualifiedStates))
	for i, state := range qualifiedStates {
		qualifiedStateStrs[i] = state.String()
	}

	filter := bson.M{
		"_id":   key,
		"state": bson.M{"$in": qualifiedStateStrs},
	}
	update := bson.M{
		"$set": bson.M{
			"state":                  types.StateClosed.String(),
			"remaining_reward_value": 0,
		},
	}

	res := db.client.Database(db.dbName).
		Collection(model.EscrowLockCollection).
		FindOneAndUpdate(ctx, filter, update)

	if res.Err() != nil {
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			return &NotFoundError{
				Key:     key,
				Message: "escrow lock not found or current state is not qualified states",
			}
		}
		return res.Err()
	}

	return nil
}

func (db *Database) FindExpiredEscrowLocks(
	ctx context.Context, now int64, limit uint64,
) ([]model.EscrowLockDocument, error) {
	client := db.client.Database(db.dbName).Collection(model.EscrowLockCollection)
	filter := bson.M{
		"state":           types.StateActive.String(),
		"expires_at":      bson.M{"$lte": now},
		"expiry_notified": false,
	}

	opts := options.Find().SetLimit(int64(limit))
	cursor, err := client.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var locks []model.EscrowLockDocument
	if err = cursor.All(ctx, &locks); err != nil {
		return nil, err
	}

	return locks, nil
}

func (db *Database) MarkExpiryNotified(
	ctx context.Context, mainAsset, minter string,
) error {
	key := pkg.DeriveEscrowKey(mainAsset, minter)
	filter := bson.M{"_id": key}
	update := bson.M{"$set": bson.M{"expiry_notified": true}}

	result, err := db.client.Database(db.dbName).
		Collection(model.EscrowLockCollection).
		UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to mark escrow lock %v as expiry notified: %w", key, err)
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     key,
			Message: "escrow lock not found",
		}
	}

	return nil
}
