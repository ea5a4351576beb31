// Command dlxserve runs the HTTP adapter: solve, uniqueness, validation,
// branch-hint, generation, and storage endpoints over the exact-cover
// engine, plus a minimal paste-a-matrix web page.
package main

import (
	"flag"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	httpadapter "github.com/jw013/dlx/internal/adapters/http"
	"github.com/jw013/dlx/internal/dlx"
	"github.com/jw013/dlx/internal/generator"
	"github.com/jw013/dlx/internal/hint"
	"github.com/jw013/dlx/internal/infrastructure/storage"
	"github.com/jw013/dlx/internal/ports"
	"github.com/jw013/dlx/internal/usecase"
	"github.com/jw013/dlx/internal/validator"
	"github.com/jw013/dlx/web"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	persist := flag.String("persist-path", "./data", "save directory")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	backend := flag.String("storage", "fs", "storage backend: fs|badger")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	_ = os.MkdirAll(*persist, 0o755)

	s := dlx.NewSolver()
	g := generator.New(s)
	v := validator.New()
	hn := hint.New()

	var st ports.Storage
	switch strings.ToLower(strings.TrimSpace(*backend)) {
	case "badger":
		b, err := storage.OpenBadger(*persist)
		if err != nil {
			logger.Error("open badger", "err", err)
			os.Exit(1)
		}
		defer b.Close()
		st = b
	default:
		st = storage.NewFS(*persist)
	}

	uc := usecase.NewService(s, g, v, hn, st)
	h := httpadapter.New(uc)

	tmpl := web.Templates()

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.ExecuteTemplate(w, "index.tmpl", map[string]any{}); err != nil {
			http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
		}
	})
	h.Register(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", *addr, "persist", *persist, "storage", *backend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
