package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jakobmalmgren/Bonza-ai/internal/booking"
	"github.com/jakobmalmgren/Bonza-ai/internal/config"
	uuidgen "github.com/jakobmalmgren/Bonza-ai/internal/idgen/uuid"
	"github.com/jakobmalmgren/Bonza-ai/internal/logger"
	"github.com/jakobmalmgren/Bonza-ai/internal/seed"
	"github.com/jakobmalmgren/Bonza-ai/internal/store"
	"github.com/jakobmalmgren/Bonza-ai/internal/store/memory"
	redisstore "github.com/jakobmalmgren/Bonza-ai/internal/store/redis"
	"github.com/jakobmalmgren/Bonza-ai/internal/transport/web"
)

func newStorage(ctx context.Context, l *logger.Logger, conf *config.Config) (store.Store, error) {
	if conf.StoreBackend == config.BackendRedis {
		db := redisstore.New(redisstore.Config{
			L:        l,
			Addr:     conf.RedisAddr,
			Password: conf.RedisPass,
			DB:       conf.RedisDB,
		})

		if err := db.Ping(ctx); err != nil {
			return nil, fmt.Errorf("connect redis at %v: %w", conf.RedisAddr, err)
		}

		l.LogInfo("Using redis store at %v", conf.RedisAddr)

		return db, nil
	}

	l.LogInfo("Using in-memory store")

	return memory.New(memory.Config{L: l}), nil
}

func Run(l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	conf, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	storage, err := newStorage(ctx, l, conf)
	if err != nil {
		return err
	}

	if err := seed.Up(ctx, l, storage, conf.SeedFile); err != nil {
		return fmt.Errorf("seed inventory: %w", err)
	}

	l.LogInfo("Inventory seed has been applied")

	idGen := uuidgen.New()
	bookManager := booking.New(l, storage, idGen)

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      log.Default(),
		Host:              conf.Host,
		Port:              conf.Port,
		ReadHeaderTimeout: 20, //nolint:gomnd
		CORSOrigins:       conf.CORSOrigins,
		LivenessEndpoint:  "/liveness",
	}

	srv, err := web.New(ctx, webConf, bookManager)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*4) //nolint:gomnd
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Application is running on %v:%v...", conf.Host, conf.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.LogErrorf("Failed to run http server: %v", err.Error())

		cancel()
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
