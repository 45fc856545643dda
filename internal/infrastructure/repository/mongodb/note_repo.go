package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/mikiasgoitom/Notebook/internal/domain/contract"
	"github.com/mikiasgoitom/Notebook/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoNoteRepository struct {
	collection *mongo.Collection
}

var _ contract.INoteRepository = (*MongoNoteRepository)(nil)

func NewMongoNoteRepository(collection *mongo.Collection) *MongoNoteRepository {
	return &MongoNoteRepository{collection: collection}
}

func (r *MongoNoteRepository) CreateNote(ctx context.Context, note *entity.Note) error {
	_, err := r.collection.InsertOne(ctx, note)
	return err
}

func (r *MongoNoteRepository) GetNoteByID(ctx context.Context, id string) (*entity.Note, error) {
	var note entity.Note
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrNoteNotFound
		}
		return nil, err
	}
	return &note, nil
}

func (r *MongoNoteRepository) ListNotesByOwner(ctx context.Context, username string) ([]entity.Note, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"owner_username": username})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notes []entity.Note
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// UpdateNote updates an existing note and returns the updated note
func (r *MongoNoteRepository) UpdateNote(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	note.UpdatedAt = time.Now()
	filter := bson.M{"_id": note.ID}
	update := bson.M{"$set": note}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, contract.ErrNoteNotFound
	}
	var updatedNote entity.Note
	if err := r.collection.FindOne(ctx, filter).Decode(&updatedNote); err != nil {
		return nil, err
	}
	return &updatedNote, nil
}

func (r *MongoNoteRepository) DeleteNote(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return contract.ErrNoteNotFound
	}
	return nil
}
