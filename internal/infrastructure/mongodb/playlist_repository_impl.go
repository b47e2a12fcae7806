package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/spotify-electron-api/internal/domain/entity"
	"github.com/oksasatya/spotify-electron-api/internal/domain/repository"
)

type PlaylistRepository struct {
	coll *mongo.Collection
}

func NewPlaylistRepository(db *mongo.Database) *PlaylistRepository {
	return &PlaylistRepository{coll: db.Collection(PlaylistCollection)}
}

func (r *PlaylistRepository) Create(ctx context.Context, p *entity.PlaylistRecord) (bool, error) {
	_, err := r.coll.InsertOne(ctx, newPlaylistDocument(p))
	return insertAcknowledged(err)
}

func (r *PlaylistRepository) GetByName(ctx context.Context, name string) (*entity.PlaylistRecord, error) {
	var doc playlistDocument
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return doc.toEntity()
}

// Update keeps upload_date untouched; the rename and the field
// overwrite happen in a single document update.
func (r *PlaylistRepository) Update(ctx context.Context, name string, p *entity.PlaylistRecord) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"name": name}, bson.M{
		"$set": bson.M{
			"name":        p.Name,
			"photo":       p.Photo,
			"description": p.Description,
			"song_names":  nonNil(p.SongNames),
		},
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PlaylistRepository) Delete(ctx context.Context, name string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PlaylistRepository) List(ctx context.Context) ([]entity.PlaylistRecord, error) {
	return r.find(ctx, bson.M{})
}

func (r *PlaylistRepository) ListByNames(ctx context.Context, names []string) ([]entity.PlaylistRecord, error) {
	if len(names) == 0 {
		return []entity.PlaylistRecord{}, nil
	}
	return r.find(ctx, bson.M{"name": bson.M{"$in": names}})
}

func (r *PlaylistRepository) find(ctx context.Context, filter bson.M) ([]entity.PlaylistRecord, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []playlistDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]entity.PlaylistRecord, 0, len(docs))
	for _, d := range docs {
		p, err := d.toEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

var _ repository.PlaylistRepository = (*PlaylistRepository)(nil)
