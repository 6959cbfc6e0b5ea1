package server

import (
	"context"
	"errors"
	"fmt"
	"guessword/internal/broadcast"
	"guessword/internal/cheat"
	"guessword/internal/config"
	"guessword/internal/db"
	"guessword/internal/eventlog"
	"guessword/internal/events"
	"guessword/internal/guess"
	"guessword/internal/metrics"
	"guessword/internal/rooms"
	"guessword/internal/session"
	"guessword/internal/words"
	"guessword/internal/wshub"
	"log"
	"net"
	"net/http"
	"time"
)

type Server struct {
	Cfg      config.Config
	Rooms    *rooms.Store
	Session  *session.Coordinator
	Hub      *wshub.Hub
	Words    *words.Provider
	Detector *cheat.Detector
	Guesser  guess.Guesser
	Bus      *events.Bus
	DB       *db.DB // nil if no database configured
}

// New wires the room coordinator to a fresh hub and registry.
func New(cfg config.Config, provider *words.Provider, bus *events.Bus) *Server {
	hub := wshub.NewHub()
	store := rooms.NewStore(cfg.RoomTTL)
	return &Server{
		Cfg:      cfg,
		Rooms:    store,
		Session:  session.New(store, broadcast.NewBroadcaster(hub), provider, cfg.Game(), bus),
		Hub:      hub,
		Words:    provider,
		Detector: cheat.NewDetector(nil),
		Guesser:  guess.NewClient(cfg.GuessServiceURL, cfg.GuessTimeout),
		Bus:      bus,
	}
}

func Run(ctx context.Context, cfg config.Config) error {
	provider, err := words.Load()
	if err != nil {
		return err
	}
	log.Printf("[Words] Loaded %d words\n", provider.Size())

	bus := events.NewBus(1024)
	srv := New(cfg, provider, bus)
	metrics.RegisterRoomGauge(srv.Rooms.Count)

	sinks := []events.Sink{metrics.Sink{}}
	if cfg.Verbose {
		sinks = append(sinks, events.SinkFunc(func(_ context.Context, ev events.Event) error {
			log.Printf("[Events] %s room=%s conn=%s\n", ev.Type, ev.RoomID, ev.ConnectionID)
			return nil
		}))
	}

	// Optional database connection
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("[DB] Failed to connect: %v (running without database)\n", err)
		} else {
			defer database.Close()
			if err := database.Migrate(ctx); err != nil {
				log.Printf("[DB] Migration failed: %v\n", err)
			}
			srv.DB = database
			recorder := db.NewRecorder(database, 256)
			go recorder.Run(ctx)
			sinks = append(sinks, recorder)
			log.Println("[DB] Database connected and migrations applied")
		}
	} else {
		log.Println("[DB] DATABASE_URL not set, running without database")
	}

	if len(cfg.KafkaBrokers) > 0 {
		writer := eventlog.NewWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer writer.Close()
		sinks = append(sinks, writer)
		log.Printf("[Kafka] Publishing room events to %s\n", cfg.KafkaTopic)
	}

	go bus.Run(ctx, sinks...)

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       10 * time.Minute,
	}

	errs := make(chan error, 1)
	go func() {
		fmt.Printf("Server listening on http://localhost:%s\n", cfg.Port)
		if ip := lanIPv4(); ip != "" {
			fmt.Printf("Same network players can join at http://%s:%s\n", ip, cfg.Port)
		}
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Println("[Server] Shutting down")
	return httpSrv.Shutdown(shutdownCtx)
}

// lanIPv4 returns the first non-loopback IPv4 address of this host, or "".
func lanIPv4() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		log.Printf("[Server] listing interfaces: %v\n", err)
		return ""
	}
	return firstIPv4(addrs)
}

func firstIPv4(addrs []net.Addr) string {
	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipnet.IP.To4(); ip4 != nil {
			return ip4.String()
		}
	}
	return ""
}
