package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/spotify-electron-api/internal/domain/entity"
	"github.com/oksasatya/spotify-electron-api/internal/domain/repository"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(UserCollection)}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) (bool, error) {
	_, err := r.coll.InsertOne(ctx, newUserDocument(u))
	return insertAcknowledged(err)
}

func (r *UserRepository) GetByName(ctx context.Context, name string) (*entity.User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return doc.toEntity()
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"name": u.Name}, bson.M{
		"$set": bson.M{
			"photo":            u.Photo,
			"playlists":        nonNil(u.Playlists),
			"saved_playlists":  nonNil(u.SavedPlaylists),
			"playback_history": nonNil(u.PlaybackHistory),
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) SetPhoto(ctx context.Context, name, photo string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"name": name}, bson.M{"$set": bson.M{"photo": photo}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, name string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// insertAcknowledged translates the outcome of an insert into the
// acknowledged flag reported to callers.
func insertAcknowledged(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, mongo.ErrUnacknowledgedWrite):
		return false, nil
	case mongo.IsDuplicateKeyError(err):
		return false, repository.ErrDuplicate
	default:
		return false, err
	}
}

var _ repository.UserRepository = (*UserRepository)(nil)
