package web

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jakobmalmgren/Bonza-ai/internal/booking"
	"github.com/jakobmalmgren/Bonza-ai/internal/logger"
)

type Server struct {
	srv      *http.Server
	engine   *gin.Engine
	l        *logger.Logger
	conf     Conf
	bManager *booking.Manager
}

type Conf struct {
	L                 *logger.Logger
	ServerLogger      *log.Logger
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	CORSOrigins       []string
	LivenessEndpoint  string
}

func New(ctx context.Context, conf Conf, bookingManager *booking.Manager) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	srv := &http.Server{ //nolint:exhaustruct
		Addr:              net.JoinHostPort(conf.Host, conf.Port),
		ReadHeaderTimeout: conf.ReadHeaderTimeout * time.Second, //nolint:durationcheck
		ErrorLog:          conf.ServerLogger,
		Handler:           engine,
		BaseContext: func(listener net.Listener) context.Context {
			return ctx
		},
	}

	server := &Server{
		srv:      srv,
		engine:   engine,
		l:        conf.L,
		conf:     conf,
		bManager: bookingManager,
	}

	engine.Use(server.loggerMiddleware(), server.recoverMiddleware())

	origins := conf.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	allowCredentials := true

	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false

			break
		}
	}

	engine.Use(cors.New(cors.Config{ //nolint:exhaustruct
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour, //nolint:gomnd
	}))

	server.addRoutes()

	return server, nil
}

func (s *Server) Srv() *http.Server {
	return s.srv
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
