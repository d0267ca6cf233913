package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harivola/medbot-api/internal/models"
)

// EnsureIndexes creates the unique indexes registration relies on. Duplicate
// usernames or emails then fail at write time instead of racing a pre-read.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	return err
}

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection("users")}
}

func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var user models.User
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) Update(ctx context.Context, user *models.User) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if mongo.IsDuplicateKeyError(err) {
		// The unique username/email indexes also guard profile edits.
		return ErrDuplicate
	}
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type MongoCapsuleRepository struct {
	coll *mongo.Collection
}

func NewMongoCapsuleRepository(db *mongo.Database) *MongoCapsuleRepository {
	return &MongoCapsuleRepository{coll: db.Collection("capsules")}
}

func (r *MongoCapsuleRepository) List(ctx context.Context) ([]models.Capsule, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var capsules []models.Capsule
	if err := cursor.All(ctx, &capsules); err != nil {
		return nil, err
	}
	if capsules == nil {
		capsules = make([]models.Capsule, 0)
	}
	return capsules, nil
}

func (r *MongoCapsuleRepository) FindByBusinessID(ctx context.Context, id string) (models.Capsule, error) {
	var capsule models.Capsule
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&capsule)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return capsule, nil
}

// Upsert applies the fields with $set so stored keys outside the payload
// survive, and the upsert option folds the exists-check and the write into a
// single operation.
func (r *MongoCapsuleRepository) Upsert(ctx context.Context, id string, fields models.Capsule) (models.Capsule, bool, error) {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set}, options.Update().SetUpsert(true))
	if err != nil {
		return nil, false, err
	}

	stored, err := r.FindByBusinessID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return stored, result.UpsertedCount > 0, nil
}

type MongoPatientRepository struct {
	coll *mongo.Collection
}

func NewMongoPatientRepository(db *mongo.Database) *MongoPatientRepository {
	return &MongoPatientRepository{coll: db.Collection("patients")}
}

func (r *MongoPatientRepository) List(ctx context.Context) ([]models.Patient, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var patients []models.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, err
	}
	if patients == nil {
		patients = make([]models.Patient, 0)
	}
	return patients, nil
}

func (r *MongoPatientRepository) FindByBusinessID(ctx context.Context, id string) (*models.Patient, error) {
	var patient models.Patient
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&patient)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *MongoPatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	if patient.ObjectID.IsZero() {
		patient.ObjectID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, patient)
	return err
}

func (r *MongoPatientRepository) DeleteByBusinessID(ctx context.Context, id string) error {
	err := r.coll.FindOneAndDelete(ctx, bson.M{"id": id}).Err()
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}
