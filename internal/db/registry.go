package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fluterlabs/reward-escrow/internal/db/model"
)

func (db *Database) SaveNewMinter(
	ctx context.Context, minterDoc *model.MinterDocument,
) error {
	return db.insertRegistryDoc(ctx, model.MinterCollection, minterDoc.ID, minterDoc, "minter already registered")
}

func (db *Database) GetMinter(
	ctx context.Context, minter string,
) (*model.MinterDocument, error) {
	res := db.client.Database(db.dbName).
		Collection(model.MinterCollection).
		FindOne(ctx, bson.M{"_id": minter})

	var minterDoc model.MinterDocument
	if err := res.Decode(&minterDoc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     minter,
				Message: "minter not found",
			}
		}
		return nil, err
	}

	return &minterDoc, nil
}

// IncrementMinterLockStats bumps the counters a successful Lock contributes.
// Unregistered minters are a valid no-op: registration is optional.
func (db *Database) IncrementMinterLockStats(
	ctx context.Context, minter string, rewardsLocked uint64,
) error {
	update := bson.M{
		"$inc": bson.M{
			"total_escrows_created": 1,
			"total_rewards_locked":  int64(rewardsLocked),
		},
	}
	_, err := db.client.Database(db.dbName).
		Collection(model.MinterCollection).
		UpdateOne(ctx, bson.M{"_id": minter}, update)
	return err
}

func (db *Database) IncrementMinterClaimStats(
	ctx context.Context, minter string, rewardsClaimed uint64,
) error {
	update := bson.M{
		"$inc": bson.M{
			"total_rewards_claimed": int64(rewardsClaimed),
		},
	}
	_, err := db.client.Database(db.dbName).
		Collection(model.MinterCollection).
		UpdateOne(ctx, bson.M{"_id": minter}, update)
	return err
}

func (db *Database) SaveNewDistributor(
	ctx context.Context, distributorDoc *model.DistributorDocument,
) error {
	return db.insertRegistryDoc(ctx, model.DistributorCollection, distributorDoc.ID, distributorDoc, "distributor already registered")
}

func (db *Database) GetDistributor(
	ctx context.Context, distributor string,
) (*model.DistributorDocument, error) {
	res := db.client.Database(db.dbName).
		Collection(model.DistributorCollection).
		FindOne(ctx, bson.M{"_id": distributor})

	var distributorDoc model.DistributorDocument
	if err := res.Decode(&distributorDoc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     distributor,
				Message: "distributor not found",
			}
		}
		return nil, err
	}

	return &distributorDoc, nil
}

func (db *Database) IncrementDistributorStats(
	ctx context.Context, distributor string, tokensBurned, rewardsRedeemed uint64,
) error {
	update := bson.M{
		"$inc": bson.M{
			"total_tokens_burned":    int64(tokensBurned),
			"total_rewards_redeemed": int64(rewardsRedeemed),
		},
	}
	_, err := db.client.Database(db.dbName).
		Collection(model.DistributorCollection).
		UpdateOne(ctx, bson.M{"_id": distributor}, update)
	return err
}

func (db *Database) insertRegistryDoc(
	ctx context.Context, collection, key string, doc any, dupMessage string,
) error {
	_, err := db.client.Database(db.dbName).
		Collection(collection).
		InsertOne(ctx, doc)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     key,
						Message: dupMessage,
					}
				}
			}
		}
		return err
	}
	return nil
}
