package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openlearn-dev/community-gov/src/govapi/config"
	"github.com/openlearn-dev/community-gov/src/govapi/data"
	"github.com/openlearn-dev/community-gov/src/govapi/governance"
	"github.com/openlearn-dev/community-gov/src/govapi/types"
	"github.com/openlearn-dev/community-gov/src/govapi/webserver"
)

func main() {
	cfg := config.Load()

	db := data.MustMySQL(cfg.MySQLDSN)
	if err := db.AutoMigrate(types.MigrateModels...); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := data.LoadSettings(db); err != nil {
		log.Printf("Failed to load settings: %v", err)
	}

	rdb := data.MustRedis(cfg.RedisURL)

	govCfg := governance.Config{
		Policy: governance.DefaultPolicy(),
		Weights: governance.WeightPolicy{
			ReputationFactor: cfg.ReputationFactor,
			BadgeBonus:       cfg.BadgeBonus,
			Floor:            cfg.WeightFloor,
			Ceiling:          cfg.WeightCeiling,
		},
		VotingWindowL1:   cfg.VotingWindowL1,
		VotingWindowL2:   cfg.VotingWindowL2,
		DefaultQuorum:    cfg.DefaultQuorum,
		DefaultThreshold: cfg.DefaultThreshold,
	}
	svc := governance.NewService(db, govCfg, nil, data.StreamNotifier{Rdb: rdb})

	ctx, cancel := context.WithCancel(context.Background())

	// Periodic sweep closing lapsed voting windows
	go svc.SweeperService(ctx, cfg.SweepInterval)

	// Pick up operator edits to the settings table without a restart
	go data.SettingsRefresher(ctx, db, 5*time.Minute)

	router := webserver.New(cfg, svc)
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Port)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()

	log.Printf("Community governance API listening on %s", cfg.Port)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	cancel()
	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
}
