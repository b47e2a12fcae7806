package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/oksasatya/spotify-electron-api/config"
	app "github.com/oksasatya/spotify-electron-api/internal/application"
	"github.com/oksasatya/spotify-electron-api/internal/domain/entity"
	"github.com/oksasatya/spotify-electron-api/internal/infrastructure/mongodb"
	"github.com/oksasatya/spotify-electron-api/pkg/helpers"
)

var demoSongs = []entity.Song{
	{Name: "Blue Hour", Artist: "demoArtist", Duration: 214, Genre: "Pop"},
	{Name: "Night Drive", Artist: "demoArtist", Duration: 189, Genre: "Electronic"},
	{Name: "Paper Boats", Artist: "otherArtist", Duration: 242, Genre: "Folk"},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	gw, err := mongodb.NewGateway(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoMaxPoolSize, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongo: %v", err)
	}
	defer func() { _ = gw.Close(context.Background()) }()
	if err := gw.EnsureIndexes(ctx); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	songRepo := mongodb.NewSongRepository(gw.DB)
	for _, s := range demoSongs {
		if err := songRepo.Upsert(ctx, s); err != nil {
			log.Fatalf("failed to seed song %q: %v", s.Name, err)
		}
	}
	fmt.Printf("seeded %d songs\n", len(demoSongs))

	users := app.NewUserService(mongodb.NewUserRepository(gw.DB), nil, nil, logger)
	user, password := "demoUser", "password123"
	_, err = users.CreateUser(ctx, user, "", password)
	switch {
	case errors.Is(err, app.ErrUserAlreadyExists):
		existing, gerr := users.GetUser(ctx, user)
		if gerr != nil {
			log.Fatalf("failed to load existing user: %v", gerr)
		}
		if !helpers.PasswordMatches(existing.Password, password) {
			logger.WithField("user", user).Warn("existing demo user has a different password")
		}
	case err != nil:
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: name=%s password=%s\n", user, password)

	playlists := app.NewPlaylistService(mongodb.NewPlaylistRepository(gw.DB), app.NewSongCatalog(songRepo), nil, logger)
	names := make([]string, 0, len(demoSongs))
	for _, s := range demoSongs {
		names = append(names, s.Name)
	}
	playlist := "Demo Mix"
	if _, err := playlists.CreatePlaylist(ctx, playlist, "", "songs seeded for local development", names); err != nil && !errors.Is(err, app.ErrPlaylistAlreadyExists) {
		log.Fatalf("failed to seed playlist: %v", err)
	}
	if err := users.UpdateUser(ctx, user, "", []string{playlist}, nil, nil); err != nil {
		log.Fatalf("failed to link playlist to user: %v", err)
	}
	fmt.Printf("seeded playlist %q owned by %s\n", playlist, user)
}
