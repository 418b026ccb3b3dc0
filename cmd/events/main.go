package main

import (
	"context"
	"log"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/meower-media/notify/pkg/api/events"
	"github.com/meower-media/notify/pkg/db"
	"github.com/meower-media/notify/pkg/peers"
	"github.com/meower-media/notify/pkg/rdb"
	"github.com/meower-media/notify/pkg/users"
)

func main() {
	// Load dotenv
	godotenv.Load()

	// Initialise Sentry
	sentry.Init(sentry.ClientOptions{
		Dsn: os.Getenv("EVENTS_SENTRY_DSN"),
	})

	// Init MongoDB
	if err := db.Init(os.Getenv("MONGO_URI"), os.Getenv("MONGO_DB")); err != nil {
		panic(err)
	}

	// Init Redis
	if err := rdb.Init(os.Getenv("REDIS_URI")); err != nil {
		panic(err)
	}

	// Init token signing key
	if err := users.InitTokenSigningKey(); err != nil {
		panic(err)
	}

	// Consume inbound server pushes
	go peers.ListenServerPushes(context.Background())

	// Get expose address
	exposeAddr := os.Getenv("EVENTS_ADDRESS")
	if exposeAddr == "" {
		exposeAddr = ":3000"
	}

	// Create & run server
	server := events.NewServer()
	err := server.Run(exposeAddr)
	if err != nil {
		log.Fatalln(err)
	}
}
