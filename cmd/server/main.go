package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"contactsdemo/internal/access"
	"contactsdemo/internal/contacts"
	"contactsdemo/internal/platform/config"
	"contactsdemo/internal/platform/httpserver"
	"contactsdemo/internal/platform/logger"
	"contactsdemo/internal/platform/metrics"
	platformredis "contactsdemo/internal/platform/redis"
	"contactsdemo/internal/session"
	sessionservice "contactsdemo/internal/session/service"
	"contactsdemo/internal/social"
	httptransport "contactsdemo/internal/transport/http"
	"contactsdemo/pkg/contactsmanager"
	"contactsdemo/pkg/platform/journal"
	"contactsdemo/pkg/platform/journal/publisher"
	journalmemory "contactsdemo/pkg/platform/journal/store/memory"
	journalpostgres "contactsdemo/pkg/platform/journal/store/postgres"
)

// main wires dependencies and owns the server lifecycle. Business logic
// lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	if cfg.APIKeySource == "fallback" {
		log.Warn("using the bundled demo API key; set CM_API_KEY or a config file for real use")
	}

	notifier := session.NewNotifier()
	notifier.Subscribe(func(change session.Change) {
		log.Info("session changed", "registered", change.Registered, "user_id", change.UserID)
	})

	var store session.Store = session.NewInMemoryStore(notifier)
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		store = session.NewRedisStore(redisClient.Client, notifier)
		defer redisClient.Close()
		log.Info("session store backed by redis")
	} else {
		log.Info("session store in memory; set CM_REDIS_URL to persist across restarts")
	}

	var journalStore journal.Store = journalmemory.NewInMemoryStore()
	if cfg.PostgresURL != "" {
		db, err := sql.Open("postgres", cfg.PostgresURL)
		if err != nil {
			log.Error("postgres open failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		pgStore := journalpostgres.New(db)
		if err := pgStore.EnsureSchema(context.Background()); err != nil {
			log.Error("postgres schema setup failed", "error", err)
			os.Exit(1)
		}
		journalStore = pgStore
		log.Info("journal backed by postgres")
	}
	journalPub := publisher.NewPublisher(journalStore, publisher.WithAsyncBuffer(64))
	defer journalPub.Close()

	client := contactsmanager.New(cfg.UpstreamURL)
	bridge := access.NewBridge(client)
	sessions := sessionservice.New(store, bridge, client, journalPub, m, log, cfg.APIKey)
	contactsSvc := contacts.NewService(client)
	seeder := contacts.NewSeeder(client, journalPub, m, log)
	socialSvc := social.NewService(client)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:   log,
		Metrics:  m,
		Session:  sessions,
		Access:   bridge,
		Contacts: contactsSvc,
		Seeder:   seeder,
		Social:   socialSvc,
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting contactsdemo gateway", "addr", cfg.Addr, "upstream", cfg.UpstreamURL)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
