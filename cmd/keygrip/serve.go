package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dmitrymomot/keygrip/pkg/config"
	"github.com/dmitrymomot/keygrip/pkg/cookie"
	"github.com/dmitrymomot/keygrip/pkg/httpserver"
	"github.com/dmitrymomot/keygrip/pkg/logger"
	"github.com/dmitrymomot/keygrip/pkg/secrets"
)

const sessionCookie = "session"

type ServeCmd struct {
	Addr            string        `default:":8080" help:"Listen address."`
	KeepKeys        int           `name:"keep-keys" default:"3" help:"Keys kept after a rotation, current included."`
	AllowRotate     bool          `name:"allow-rotate" help:"Expose POST /rotate to install a freshly generated key."`
	ShutdownTimeout time.Duration `name:"shutdown-timeout" default:"5s" help:"Graceful shutdown timeout."`
}

func (c *ServeCmd) Run(ctx context.Context, g *Globals, log *slog.Logger) error {
	if c.Addr == "" || c.ShutdownTimeout <= 0 {
		return errors.New("serve: address and a positive shutdown timeout are required")
	}

	grip, err := g.keyGrip(log)
	if err != nil {
		return err
	}

	cookieCfg, err := config.Load[cookie.Config]()
	if err != nil {
		return err
	}

	rs := newRotatingSigner(grip, c.KeepKeys)
	man, err := cookie.NewFromConfig(cookieCfg, rs)
	if err != nil {
		return err
	}

	srv := httpserver.New(
		httpserver.WithAddr(c.Addr),
		httpserver.WithShutdownTimeout(c.ShutdownTimeout),
		httpserver.WithLogger(log),
	)
	return srv.Run(ctx, newRouter(man.WithLogger(log), rs, c.AllowRotate, log))
}

func newRouter(man *cookie.Manager, rs *rotatingSigner, allowRotate bool, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(log, func(context.Context) error {
		if rs.Len() == 0 {
			return errNoKeys
		}
		return nil
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		id, err := man.GetSignedRotate(w, r, sessionCookie)
		state := "returning"
		switch {
		case err == nil:
		case errors.Is(err, cookie.ErrCookieNotFound), errors.Is(err, cookie.ErrInvalidSignature):
			id = uuid.NewString()
			state = "new"
			if err := man.SetSigned(w, sessionCookie, id); err != nil {
				log.ErrorContext(r.Context(), "failed to set session cookie", logger.Error(err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		default:
			log.ErrorContext(r.Context(), "failed to read session cookie", logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "session %s (%s)\n", id, state)
	})

	r.Delete("/", func(w http.ResponseWriter, _ *http.Request) {
		man.Delete(w, sessionCookie)
		w.WriteHeader(http.StatusNoContent)
	})

	if allowRotate {
		r.Post("/rotate", func(w http.ResponseWriter, r *http.Request) {
			key, err := secrets.GenerateKey(0)
			if err != nil {
				log.ErrorContext(r.Context(), "failed to generate key", logger.Error(err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			next, err := rs.Rotate(key)
			if err != nil {
				log.ErrorContext(r.Context(), "failed to rotate keys", logger.Error(err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			log.InfoContext(r.Context(), "rotated signing key", slog.Int("keys", next.Len()))
			w.WriteHeader(http.StatusNoContent)
		})
	}

	return r
}
