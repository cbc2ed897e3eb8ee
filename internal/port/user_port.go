package port

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/menaget/ordermgmt/internal/domain"
)

type UserRepository interface {
	InsertUser(ctx context.Context, user domain.User) (domain.User, error)

	GetUser(ctx context.Context, userID primitive.ObjectID) (domain.User, error)
	GetUsersByIDs(ctx context.Context, userIDs []primitive.ObjectID) ([]domain.User, error)
}
