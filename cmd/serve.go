package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	grpcreflect "github.com/bufbuild/connect-grpcreflect-go"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/BreweryTracker/pkg/auth"
	"droscher.com/BreweryTracker/pkg/autosync"
	"droscher.com/BreweryTracker/pkg/integrations"
	"droscher.com/BreweryTracker/pkg/integrations/nominatim"
	"droscher.com/BreweryTracker/pkg/integrations/untappd-web"
	"droscher.com/BreweryTracker/pkg/server"
	"droscher.com/BreweryTracker/pkg/server/grpc/api/v1/apiv1connect"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".BreweryTracker.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(cliCtx *Context) error {
	logger := newLogger(true, cliCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	env, err := openEnvironment(s.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.loadCollection(ctx); err != nil {
		return err
	}

	syncer := autosync.New(env.store, env.repo, logger)
	defer syncer.Close()

	if _, err := syncer.LoadSettings(ctx); err != nil {
		logger.Warn("could not load sync settings", zap.Error(err))
	}

	if env.conf.Sync.AutoSync() {
		stopSync := syncer.Start(ctx, env.conf.Sync.Interval)
		defer stopSync()
	}

	authManager := auth.NewAuthManager(env.conf.Auth, logger)
	interceptors := connect.WithInterceptors(authManager.GrpcAuthInterceptor())

	finder := integrations.GetIntegration(untappdweb.IntegrationName, env.conf.Integrations, logger)
	geocoder := integrations.GetGeocoder(nominatim.IntegrationName, env.conf.Integrations, logger)

	mux := http.NewServeMux()

	path, handler := apiv1connect.NewBreweryServiceHandler(server.NewBreweryServer(env.store, syncer, finder, geocoder, logger), interceptors)
	mux.Handle(path, handler)

	reflector := grpcreflect.NewStaticReflector(grpchealth.HealthV1ServiceName, apiv1connect.BreweryServiceName)
	checker := grpchealth.NewStaticChecker(apiv1connect.BreweryServiceName)
	mux.Handle(grpchealth.NewHandler(checker))
	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))

	address := fmt.Sprintf(":%d", env.conf.Server.Port)

	// Configure CORS first
	corsHandler := configureCORS(mux)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()

		_ = svr.Shutdown(shutdownCtx)
	}()

	logger.Info("serving brewery tracker", zap.String("address", address), zap.Bool("auth", authManager.Enabled()))

	err = svr.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(mux *http.ServeMux) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"connect-accept-encoding",
			"connect-content-encoding",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-encoding",
			"content-length",
			"content-type",
			"custom-header-1",
			"date",
			"grpc-accept-encoding",
			"grpc-encoding",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
			"grpc-timeout",
			"keep-alive",
			"origin",
			"referer",
			"user-agent",
			"x-accept-content-transfer-encoding",
			"x-accept-response-streaming",
			"x-grpc-web",
			"x-user-agent",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
		},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false, // Handle OPTIONS requests in CORS middleware
	})

	// Apply CORS to the main mux, then wrap with h2c
	corsHandler := corsOpts.Handler(mux)

	return corsHandler
}
