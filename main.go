package main

import (
	"context"
	"io"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin"
	foundation "github.com/estafette/estafette-foundation"
	"github.com/fsnotify/fsnotify"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	jaeger "github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"

	"github.com/devopsinfo/devops-badge-api/pkg/api"
	"github.com/devopsinfo/devops-badge-api/pkg/clients/devopsapi"
	"github.com/devopsinfo/devops-badge-api/pkg/services/infos"
)

var (
	version   string
	branch    string
	revision  string
	buildDate string
	goVersion = runtime.Version()
)

var (
	// flags
	apiAddress               = kingpin.Flag("api-listen-address", "The address to listen on for api HTTP requests.").Default(":5000").Envar("API_LISTEN_ADDRESS").String()
	prometheusMetricsAddress = kingpin.Flag("metrics-listen-address", "The address to listen on for Prometheus metrics requests.").Default(":9001").Envar("METRICS_LISTEN_ADDRESS").String()
	prometheusMetricsPath    = kingpin.Flag("metrics-path", "The path to listen for Prometheus metrics requests.").Default("/metrics").Envar("METRICS_PATH").String()
	configFilePath           = kingpin.Flag("config-file-path", "The path to the yaml config file.").Default("/configs/config.yaml").Envar("CONFIG_FILE_PATH").String()
)

func main() {

	// parse command line parameters
	kingpin.Parse()

	// configure json logging
	initLogging()

	// send traces to jaeger, configured through JAEGER_* environment variables
	closer := initJaeger()
	defer closer.Close()

	// create channel to receive OS signals for graceful shutdown
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	// start prometheus
	go startPrometheus()

	configReader := api.NewConfigReader()
	config, err := configReader.ReadConfigFromFile(*configFilePath)
	if err != nil {
		log.Fatal().Err(err).Msgf("Failed reading configuration from %v", *configFilePath)
	}

	// reload the config when the mounted file changes
	foundation.WatchForFileChanges(*configFilePath, func(event fsnotify.Event) {
		freshConfig, err := configReader.ReadConfigFromFile(*configFilePath)
		if err != nil {
			log.Warn().Err(err).Msg("Failed reloading configuration, keeping the previous one")
			return
		}
		*config = *freshConfig
	})

	// handle api requests
	srv := handleRequests(config)

	// wait for a signal (this hangs until a signal arrives)
	<-sigs
	log.Debug().Msg("Shutting down...")

	// shut down gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Graceful server shutdown failed")
	}

	log.Info().Msg("Server gracefully stopped")
}

func initLogging() {

	// log as severity for stackdriver logging to recognize the level
	zerolog.LevelFieldName = "severity"

	// set some default fields added to all logs
	log.Logger = zerolog.New(os.Stdout).With().
		Timestamp().
		Str("app", "devops-badge-api").
		Str("version", version).
		Logger()

	// use zerolog for any logs sent via standard log library
	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)

	// log startup message
	log.Info().
		Str("branch", branch).
		Str("revision", revision).
		Str("buildDate", buildDate).
		Str("goVersion", goVersion).
		Msg("Starting devops-badge-api...")
}

func initJaeger() io.Closer {

	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger config from environment variables failed")
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "devops-badge-api"
	}

	closer, err := cfg.InitGlobalTracer(cfg.ServiceName, jaegercfg.Logger(jaeger.StdLogger))
	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger tracer failed")
	}

	return closer
}

func startPrometheus() {
	log.Debug().
		Str("port", *prometheusMetricsAddress).
		Str("path", *prometheusMetricsPath).
		Msg("Serving Prometheus metrics...")

	http.Handle(*prometheusMetricsPath, promhttp.Handler())

	if err := http.ListenAndServe(*prometheusMetricsAddress, nil); err != nil {
		log.Fatal().Err(err).Msg("Starting Prometheus listener failed")
	}
}

func createRouter() *gin.Engine {

	// run gin in release mode and other defaults
	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = log.Logger
	gin.DisableConsoleColor()

	// creates a router without any middleware by default
	router := gin.New()

	// logging middleware
	router.Use(api.ZeroLogMiddleware())

	// middleware to handle tracing
	router.Use(api.OpenTracingMiddleware())

	// recovery middleware recovers from any panics and writes a 500 if there was one
	router.Use(gin.Recovery())

	// gzip middleware
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// liveness and readiness
	router.GET("/liveness", func(c *gin.Context) {
		c.String(http.StatusOK, "I'm alive!")
	})
	router.GET("/readiness", func(c *gin.Context) {
		c.String(http.StatusOK, "I'm ready!")
	})

	return router
}

func handleRequests(config *api.APIConfig) *http.Server {

	// upstream build server client with tracing, metrics and logging decorators
	devopsapiClient := devopsapi.NewClient(config)
	devopsapiClient = devopsapi.NewTracingClient(devopsapiClient)
	devopsapiClient = devopsapi.NewMetricsClient(devopsapiClient,
		api.NewRequestCounter("devopsapi_client"),
		api.NewRequestHistogram("devopsapi_client"))
	devopsapiClient = devopsapi.NewLoggingClient(devopsapiClient)

	agentNameCache := infos.NewAgentNameCache(devopsapiClient)

	infosService := infos.NewService(config, devopsapiClient, agentNameCache)
	infosService = infos.NewTracingService(infosService)
	infosService = infos.NewMetricsService(infosService,
		api.NewRequestCounter("infos_service"),
		api.NewRequestHistogram("infos_service"))
	infosService = infos.NewLoggingService(infosService)

	log.Debug().
		Str("port", *apiAddress).
		Msg("Serving api calls...")

	// create and init router
	router := createRouter()

	infosHandler := infos.NewHandler(infosService)
	router.GET("/api/v1/badges", infosHandler.GetFieldTypes)
	router.GET("/api/v1/badges/:project/:definition/:type", infosHandler.GetBadge)
	router.DELETE("/api/v1/agents/cache", infosHandler.ClearAgentNameCache)

	// instantiate servers instead of using router.Run in order to handle graceful shutdown
	srv := &http.Server{
		Addr:           *apiAddress,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Starting gin router failed")
		}
	}()

	return srv
}
