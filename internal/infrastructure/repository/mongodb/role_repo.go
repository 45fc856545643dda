package mongodb

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Notebook/internal/domain/contract"
	"github.com/mikiasgoitom/Notebook/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRoleRepository struct {
	collection *mongo.Collection
}

var _ contract.IRoleRepository = (*MongoRoleRepository)(nil)

func NewMongoRoleRepository(collection *mongo.Collection) *MongoRoleRepository {
	return &MongoRoleRepository{collection: collection}
}

// EnsureIndexes creates the unique role name index, guaranteeing at most
// one row per role name even under concurrent bootstrap.
func (r *MongoRoleRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoRoleRepository) GetRoleByName(ctx context.Context, name entity.UserRole) (*entity.Role, error) {
	var role entity.Role
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&role)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}

func (r *MongoRoleRepository) CreateRole(ctx context.Context, role *entity.Role) error {
	_, err := r.collection.InsertOne(ctx, role)
	return err
}
