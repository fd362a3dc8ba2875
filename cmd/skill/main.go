package main

import (
	"bitbucket.org/sotavant/calepin-skill/internal/logger"
	"bitbucket.org/sotavant/calepin-skill/internal/notifier"
	"bitbucket.org/sotavant/calepin-skill/internal/skill"
	"bitbucket.org/sotavant/calepin-skill/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"net/http"
	"strings"
)

func main() {
	parseFlags()
	if err := run(); err != nil {
		panic(err)
	}
}

func gzipMiddleware(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ow := w

		acceptEncoding := r.Header.Get("Accept-Encoding")
		supportGzip := strings.Contains(acceptEncoding, "gzip")

		if supportGzip {
			cw := newCompressWriter(w)
			ow = cw
			defer func(cw *compressWriter) {
				err := cw.Close()
				if err != nil {
					logger.Log.Debug("compressWriterError", zap.Error(err))
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
			}(cw)
		}

		contentEncoding := r.Header.Get("Content-Encoding")

		sendsGzip := strings.Contains(contentEncoding, "gzip")
		if sendsGzip {
			cr, err := newCompressReader(r.Body)
			if err != nil {
				logger.Log.Debug("newCompressReaderError", zap.Error(err))
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			r.Body = cr
			defer func(cr *compressReader) {
				err := cr.Close()
				if err != nil {
					logger.Log.Debug("closeCompressReaderError", zap.Error(err))
					return
				}
			}(cr)
		}

		h.ServeHTTP(ow, r)
	}
}

func newRouter(a *app) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))
	r.Use(logger.RequestLogger)

	r.Handle("/", gzipMiddleware(a.webhook))

	return r
}

func run() error {
	if err := logger.Initialize(flagLogLevel); err != nil {
		return err
	}

	sender := notifier.New(notifier.Config{
		URL:     flagGatewayURL,
		Token:   gatewayToken,
		Timeout: flagGatewayTimeout,
	})
	sk := skill.New(store.NewMemoryStore(store.DefaultContacts), sender)

	logger.Log.Info("Running server", zap.String("address", flagRunAddr))

	return http.ListenAndServe(flagRunAddr, newRouter(newApp(sk)))
}
