package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/menaget/ordermgmt/internal/domain"
	"github.com/menaget/ordermgmt/internal/port"
)

type userDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Email   string             `bson:"email"`
	Address string             `bson:"address,omitempty"`
}

type userRepository struct {
	users *mongo.Collection
}

func NewUser(db *mongo.Database) port.UserRepository {
	return &userRepository{
		users: db.Collection(usersCollection),
	}
}

func (r *userRepository) InsertUser(ctx context.Context, user domain.User) (domain.User, error) {
	var u domain.User

	doc := userDoc{
		ID:      primitive.NewObjectID(),
		Name:    user.Name,
		Email:   user.Email,
		Address: user.Address,
	}

	// A duplicate email violates the unique index; the write error propagates untranslated.
	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		return u, fmt.Errorf("users.InsertOne: %w", err)
	}

	return mapUserDocToDomain(doc), nil
}

func (r *userRepository) GetUser(ctx context.Context, userID primitive.ObjectID) (domain.User, error) {
	var u domain.User

	var doc userDoc
	if err := r.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return u, fmt.Errorf("users.FindOne: %w", domain.ErrNotFound)
		}
		return u, fmt.Errorf("users.FindOne: %w", err)
	}

	return mapUserDocToDomain(doc), nil
}

func (r *userRepository) GetUsersByIDs(ctx context.Context, userIDs []primitive.ObjectID) ([]domain.User, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	cursor, err := r.users.Find(ctx, bson.M{"_id": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, fmt.Errorf("users.Find: %w", err)
	}

	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("cursor.All: %w", err)
	}

	users := make([]domain.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, mapUserDocToDomain(doc))
	}

	return users, nil
}

func mapUserDocToDomain(doc userDoc) domain.User {
	return domain.User{
		ID:      doc.ID,
		Name:    doc.Name,
		Email:   doc.Email,
		Address: doc.Address,
	}
}
