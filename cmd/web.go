/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/labscan/db"
	"github.com/humaidq/labscan/ingest"
	"github.com/humaidq/labscan/metrics"
	"github.com/humaidq/labscan/routes"
	"github.com/humaidq/labscan/static"
	"github.com/humaidq/labscan/templates"
	"github.com/humaidq/labscan/translate"
)

const shutdownTimeout = 15 * time.Second

var CmdStart = &cli.Command{
	Name:    "start",
	Aliases: []string{"run"},
	Usage:   "Start the web server",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "port",
			Value: "8080",
			Usage: "the web server port",
		},
		&cli.StringFlag{
			Name:    "database-url",
			Sources: cli.EnvVars("DATABASE_URL"),
			Usage:   "PostgreSQL connection string for feedback storage (feedback is disabled when empty)",
		},
		&cli.StringFlag{
			Name:  "upload-dir",
			Value: "uploads",
			Usage: "directory uploaded reports are written to while processing",
		},
		&cli.BoolFlag{
			Name:  "keep-uploads",
			Usage: "keep uploaded reports after processing",
		},
	}, extractionFlags()...),
	Action: start,
}

// extractionFlags are shared by commands that read report files.
func extractionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "tesseract",
			Value: "tesseract",
			Usage: "tesseract binary used for image OCR",
		},
		&cli.StringFlag{
			Name:  "tesseract-lang",
			Value: "eng",
			Usage: "tesseract language pack",
		},
		&cli.StringFlag{
			Name:    "tessdata-dir",
			Sources: cli.EnvVars("TESSDATA_PREFIX"),
			Usage:   "tesseract tessdata directory",
		},
		&cli.StringFlag{
			Name:    "translate-url",
			Sources: cli.EnvVars("TRANSLATE_URL"),
			Usage:   "OpenAI-compatible endpoint used to translate results (e.g., http://localhost:11434)",
		},
		&cli.StringFlag{
			Name:    "translate-model",
			Sources: cli.EnvVars("TRANSLATE_MODEL"),
			Usage:   "model name sent to the translation endpoint",
		},
	}
}

func newExtractor(cmd *cli.Command) *ingest.Extractor {
	return ingest.NewExtractor(ingest.Config{
		Tesseract:     cmd.String("tesseract"),
		TesseractLang: cmd.String("tesseract-lang"),
		TessdataDir:   cmd.String("tessdata-dir"),
	}, nil)
}

// newTranslator returns the configured translation client, or a
// passthrough when no endpoint is set.
func newTranslator(cmd *cli.Command) (translate.Translator, error) {
	url := cmd.String("translate-url")
	model := cmd.String("translate-model")

	if url == "" && model == "" {
		return translate.Passthrough{}, nil
	}

	client, err := translate.NewClient(translate.Config{URL: url, Model: model})
	if err != nil {
		return nil, fmt.Errorf("failed to configure translation: %w", err)
	}

	appLogger.Info("Translation enabled", "url", url, "model", model)

	return client, nil
}

func start(ctx context.Context, cmd *cli.Command) (err error) {
	env, err := resolveRuntimeEnv(os.Getenv(runtimeEnvVar))
	if err != nil {
		return err
	}

	secret, err := csrfSecret(env, os.Getenv("CSRF_SECRET"))
	if err != nil {
		return err
	}

	if databaseURL := cmd.String("database-url"); databaseURL != "" {
		if err := exportDatabaseURL(databaseURL); err != nil {
			return fmt.Errorf("failed to set DATABASE_URL: %w", err)
		}

		appLogger.Info("Connecting to database")

		if err := db.Init(ctx); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		appLogger.Info("Syncing database schema")

		if err := db.SyncSchema(); err != nil {
			return fmt.Errorf("failed to sync schema: %w", err)
		}
	} else {
		appLogger.Warn("No database configured, feedback is disabled")
	}

	uploadDir := cmd.String("upload-dir")
	if err := os.MkdirAll(uploadDir, 0o700); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	translator, err := newTranslator(cmd)
	if err != nil {
		return err
	}

	analyzer := &routes.Analyzer{
		Extractor:   newExtractor(cmd),
		Translator:  translator,
		UploadDir:   uploadDir,
		KeepUploads: cmd.Bool("keep-uploads"),
	}

	f, err := newApp(analyzer, secret, env)
	if err != nil {
		return err
	}

	port := cmd.String("port")
	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", port),
		Handler:           f,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		// OCR of a large scan can take a while.
		WriteTimeout: 3 * time.Minute,
		ErrorLog:     requestStdLogger,
	}

	return serve(ctx, srv)
}

// newApp builds the flamego application with every route mounted.
func newApp(analyzer *routes.Analyzer, secret string, env runtimeEnv) (*flamego.Flame, error) {
	fs, err := template.EmbedFS(templates.Templates, ".", []string{".html"})
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	f := flamego.New()
	f.Use(flamego.Recovery())
	f.Use(routes.RequestLogger)
	f.Use(flamego.Static(flamego.StaticOptions{
		FileSystem: http.FS(static.Static),
	}))
	f.Map(analyzer)
	configureEmptyNotFoundHandler(f)

	f.Get("/metrics", metrics.Handler().ServeHTTP)

	f.Group("/api", func() {
		f.Get("/health", routes.APIHealth)
		f.Get("/languages", routes.APILanguages)
		f.Post("/analyze", routes.APIAnalyze)
		f.Post("/feedback", routes.APIFeedback)
		f.Options("/{**}", func() {})
	}, routes.APICORS())

	f.Group("", func() {
		f.Get("/", routes.Index)
		f.Post("/analyze", csrf.Validate, routes.AnalyzeForm)
		f.Post("/feedback", csrf.Validate, routes.SubmitFeedback)
	},
		session.Sessioner(session.Options{
			Cookie: session.CookieOptions{
				Name:     "labscan_session",
				HTTPOnly: true,
				Secure:   env == runtimeProduction,
				SameSite: http.SameSiteLaxMode,
			},
		}),
		csrf.Csrfer(csrf.Options{Secret: secret}),
		template.Templater(template.Options{FileSystem: fs}),
		routes.CSRFInjector(),
		routes.NoCacheHeaders(),
	)

	return f, nil
}

// configureEmptyNotFoundHandler answers unknown paths with a bare 404.
func configureEmptyNotFoundHandler(f *flamego.Flame) {
	f.NotFound(func(c flamego.Context) {
		c.ResponseWriter().WriteHeader(http.StatusNotFound)
	})
}

// serve runs srv until ctx is cancelled or the process is interrupted.
func serve(ctx context.Context, srv *http.Server) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		appLogger.Info("Starting web server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("web server failed: %w", err)
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down web server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down web server: %w", err)
	}

	return nil
}
