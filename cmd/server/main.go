// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/hakubun/kanarush/internal/auth"
	"github.com/hakubun/kanarush/internal/events"
	"github.com/hakubun/kanarush/internal/game"
	"github.com/hakubun/kanarush/internal/handlers"
	"github.com/hakubun/kanarush/internal/history"
	"github.com/hakubun/kanarush/internal/lobby"
	"github.com/hakubun/kanarush/internal/middleware"
	"github.com/hakubun/kanarush/internal/presence"
	"github.com/hakubun/kanarush/internal/store"
)

func main() {
	auth.Init()

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	rdb, err := store.Connect()
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	sessionStore := store.NewRedisStore(rdb)
	coord := lobby.New(sessionStore, logger)
	bcast := events.NewRedisBroadcaster(rdb, logger)
	tracker := presence.NewTracker(sessionStore, coord, logger)

	engine := game.New(coord, bcast, logger)
	engine.History = history.NewRedisRecorder(rdb)

	srv := handlers.NewServer(coord, engine, bcast, tracker, logger)

	mux := http.NewServeMux()

	// lobby endpoints
	mux.Handle("/lobby/create", middleware.LogMiddleware(logger)(http.HandlerFunc(
		handlers.CreateLobbyHandler(srv),
	)))
	mux.Handle("/lobby/join", middleware.LogMiddleware(logger)(http.HandlerFunc(
		handlers.JoinLobbyHandler(srv),
	)))
	mux.Handle("/lobby/state", middleware.LogMiddleware(logger)(http.HandlerFunc(
		handlers.LobbyStateHandler(srv),
	)))

	// lobby ws
	mux.Handle("/lobby/ws", middleware.LogMiddleware(logger)(http.HandlerFunc(
		handlers.LobbyWSHandler(logger, srv),
	)))

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Infof("Running on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
