package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "eastask/internal/adapter/db"
	"eastask/internal/adapter/feed"
	httpadapter "eastask/internal/adapter/http"
	"eastask/internal/adapter/http/handlers"
	httpmiddleware "eastask/internal/adapter/http/middleware"
	"eastask/internal/adapter/localcache"
	"eastask/internal/adapter/notify"
	"eastask/internal/app/state"
	"eastask/internal/app/sync"
	"eastask/internal/config"
	"eastask/internal/core/domain"
	"eastask/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	cache, err := localcache.New(cfg.CacheDir)
	if err != nil {
		logger.Fatal("failed to prepare local cache", zap.Error(err))
	}

	store := state.NewStore()
	remote := dbadapter.NewRemoteStore(db)
	notifier := notify.NewWebhookNotifier(cfg.NotifyWebhookURL)
	syncer := sync.NewSyncer(store, remote, notifier, cache)

	// Run the change-feed watcher for the default workspace when one is
	// configured; every event triggers a full reload.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if sess := (domain.Session{UserID: cfg.DefaultUserID, WorkspaceID: cfg.DefaultWorkspaceID}); sess.Valid() {
		if err := syncer.LoadWorkspaceData(ctx, sess); err != nil {
			logger.Warn("initial workspace load failed", zap.Error(err))
		}
		poller := feed.NewPoller(db, cfg.FeedPollInterval)
		go func() {
			if err := syncer.Watch(ctx, sess, poller); err != nil && ctx.Err() == nil {
				logger.Warn("change feed watcher stopped", zap.Error(err))
			}
		}()
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(db)
	workspaceHandler := handlers.NewWorkspaceHandler(syncer)
	taskHandler := handlers.NewTaskHandler(syncer)
	pageHandler := handlers.NewPageHandler(syncer)
	activityHandler := handlers.NewActivityHandler(syncer)
	httpadapter.RegisterRoutes(r, healthHandler, workspaceHandler, taskHandler, pageHandler, activityHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
