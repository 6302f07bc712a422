// Package server boots the shop: config, database, schema, cache,
// storage, then the HTTP stack.
package server

import (
	"net/http"

	"github.com/shashiranjanraj/tokoku/app/routes"
	"github.com/shashiranjanraj/tokoku/config"
	"github.com/shashiranjanraj/tokoku/database/schema"
	"github.com/shashiranjanraj/tokoku/pkg/cache"
	"github.com/shashiranjanraj/tokoku/pkg/database"
	"github.com/shashiranjanraj/tokoku/pkg/logger"
	"github.com/shashiranjanraj/tokoku/pkg/metrics"
	"github.com/shashiranjanraj/tokoku/pkg/middleware"
	"github.com/shashiranjanraj/tokoku/pkg/reqid"
	"github.com/shashiranjanraj/tokoku/pkg/router"
	"github.com/shashiranjanraj/tokoku/pkg/session"
	"github.com/shashiranjanraj/tokoku/pkg/storage"
	"github.com/shashiranjanraj/tokoku/pkg/ws"
)

// Start brings the shop up and blocks serving HTTP. The database and
// schema are mandatory; Redis and Mongo logging degrade to in-process
// fallbacks when unreachable.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}
	if err := schema.EnsureSchema(database.DB); err != nil {
		return err
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("server: redis unavailable, using in-process session store", "error", err)
	}
	session.UseRedisIfAvailable()

	storage.Connect()

	if uri := config.MongoLogURI(); uri != "" {
		if _, err := logger.EnableMongoSink(uri, config.MongoLogDB()); err != nil {
			logger.Warn("server: mongo log sink unavailable", "error", err)
		}
	}

	feed := ws.NewFeed()
	go feed.Run()

	addr := ":" + config.AppPort()
	logger.Info("server: listening", "addr", addr)
	return http.ListenAndServe(addr, Handler(feed))
}

// Handler builds the full HTTP stack. Split from Start so tests can mount
// the exact production handler on an httptest server.
func Handler(feed *ws.Feed) http.Handler {
	r := router.New()

	// Outermost to innermost: metrics wants total latency, recovery must
	// wrap everything that can panic, request id before any logging,
	// session before any handler touches the cart.
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(session.Middleware(session.DefaultOptions()))
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))

	routes.RegisterAPI(r, feed)

	return r.Handler()
}
