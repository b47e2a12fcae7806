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

type SongRepository struct {
	coll *mongo.Collection
}

func NewSongRepository(db *mongo.Database) *SongRepository {
	return &SongRepository{coll: db.Collection(SongCollection)}
}

func (r *SongRepository) GetByName(ctx context.Context, name string) (*entity.Song, error) {
	var doc songDocument
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return doc.toEntity()
}

// GetByNames returns the songs that exist, in no particular order.
func (r *SongRepository) GetByNames(ctx context.Context, names []string) ([]entity.Song, error) {
	if len(names) == 0 {
		return []entity.Song{}, nil
	}
	cur, err := r.coll.Find(ctx, bson.M{"name": bson.M{"$in": names}})
	if err != nil {
		return nil, err
	}
	var docs []songDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]entity.Song, 0, len(docs))
	for _, d := range docs {
		s, err := d.toEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, nil
}

// Upsert is used by the seed command.
func (r *SongRepository) Upsert(ctx context.Context, s entity.Song) error {
	doc := songDocument{
		Name:          s.Name,
		Artist:        s.Artist,
		Photo:         s.Photo,
		Duration:      s.Duration,
		Genre:         s.Genre,
		NumberOfPlays: s.NumberOfPlays,
	}
	_, err := r.coll.ReplaceOne(ctx, bson.M{"name": s.Name}, doc, options.Replace().SetUpsert(true))
	return err
}

var _ repository.SongRepository = (*SongRepository)(nil)
