package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/qdm12/goservices"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/guestbook/internal/backend"
	"github.com/qdm12/guestbook/internal/config"
	"github.com/qdm12/guestbook/internal/constants"
	"github.com/qdm12/guestbook/internal/guestbook"
	"github.com/qdm12/guestbook/internal/health"
	"github.com/qdm12/guestbook/internal/metrics"
	"github.com/qdm12/guestbook/internal/models"
	"github.com/qdm12/guestbook/internal/noop"
	"github.com/qdm12/guestbook/internal/resolver"
	"github.com/qdm12/guestbook/internal/server"
	"github.com/qdm12/guestbook/internal/shoutrrr"
	"github.com/qdm12/guestbook/internal/tui"
	"github.com/qdm12/log"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	signalCtx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(signalCtx)
	defer cancel()

	errorCh := make(chan error, 1)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, logger, buildInfo, time.Now)
	}()

	var err error
	select {
	case <-signalCtx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
		err = waitForExit(errorCh, logger)
	case err = <-errorCh:
		stop()
	}

	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// waitForExit waits for the program to exit after a signal,
// and returns an error if it exits with an error or takes too long.
func waitForExit(errorCh <-chan error, logger log.LeveledLogger) (err error) {
	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	defer timer.Stop()

	select {
	case err = <-errorCh:
		if err != nil {
			return err
		}
		logger.Info("Shutdown successful")
		return nil
	case <-timer.C:
		return fmt.Errorf("%w: after %s", errShutdownTimedOut, shutdownGracePeriod)
	}
}

func _main(ctx context.Context, reader *reader.Reader, args []string, logger log.LoggerInterface,
	buildInfo models.BuildInformation, timeNow func() time.Time) (err error) {
	terminal := false
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Println(buildInfo.VersionString())
			return nil
		case "healthcheck":
			// Running the program in a separate instance through the Docker
			// built-in healthcheck, in an ephemeral fashion to query the
			// long running instance of the program about its status

			var healthSettings config.Health
			healthSettings.Read(reader)
			healthSettings.SetDefaults()
			err = healthSettings.Validate()
			if err != nil {
				return fmt.Errorf("health settings: %w", err)
			}

			client := health.NewClient()
			return client.Query(ctx, *healthSettings.ServerAddress)
		case "tui":
			terminal = true
		default:
			return fmt.Errorf("%w: %s", errCommandUnknown, args[1])
		}
	}

	if !terminal {
		printSplash(buildInfo)
	}

	config, err := readConfig(reader, logger, terminal)
	if err != nil {
		return err
	}

	resolver, err := resolver.New(config.Resolver.ToResolverSettings())
	if err != nil {
		return fmt.Errorf("creating resolver: %w", err)
	}

	httpClient := backend.NewHTTPClient(config.Client.Timeout, resolver)
	defer httpClient.CloseIdleConnections()

	var exchangeLogger backend.DebugLogger
	if *config.Logger.Level == log.LevelDebug {
		exchangeLogger = logger.New(log.SetComponent("backend"))
	}
	backendClient, err := backend.New(httpClient, config.Backend.URL, exchangeLogger)
	if err != nil {
		return fmt.Errorf("creating backend client: %w", err)
	}

	metrics, err := metrics.New()
	if err != nil {
		return fmt.Errorf("creating metrics: %w", err)
	}

	viewLogger := logger.New(log.SetComponent("guestbook"))
	view := guestbook.New(backendClient, config.Backend.Key, constants.Palette(),
		guestbook.RandomIntn(), viewLogger, metrics)
	poller := guestbook.NewPoller(view, config.Poll.Period, viewLogger, timeNow)

	if terminal {
		return tui.Run(ctx, view, poller, backendClient.BaseURL())
	}

	shoutrrrSettings := shoutrrr.Settings{
		Addresses:    config.Shoutrrr.Addresses,
		DefaultTitle: config.Shoutrrr.DefaultTitle,
		Logger:       logger.New(log.SetComponent("shoutrrr")),
	}
	shoutrrrClient, err := shoutrrr.New(shoutrrrSettings)
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	healthServer, err := createHealthServer(poller, logger,
		*config.Health.ServerAddress, timeNow)
	if err != nil {
		return fmt.Errorf("creating health server: %w", err)
	}

	server, err := createServer(config, logger, view, metrics)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	servicesSequence, err := goservices.NewSequence(goservices.SequenceSettings{
		ServicesStart: []goservices.Service{poller, healthServer, server},
		ServicesStop:  []goservices.Service{server, healthServer, poller},
	})
	if err != nil {
		return fmt.Errorf("creating services sequence: %w", err)
	}

	runError, startErr := servicesSequence.Start(ctx)
	if startErr != nil {
		shoutrrrClient.Notify(startErr.Error())
		return fmt.Errorf("starting services: %w", startErr)
	}

	shoutrrrClient.Notify("Launched with backend " + backendClient.BaseURL())

	select {
	case <-ctx.Done():
	case err = <-runError:
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("exiting due to critical error: %w", err)
	}

	err = servicesSequence.Stop()
	if err != nil {
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("stopping failed: %w", err)
	}

	return nil
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "qdm12",
		Repository: "guestbook",
		Emails:     []string{"quentin.mcgaw@gmail.com"},
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
		// Sponsor information
		PaypalUser:    "qmcgaw",
		GithubSponsor: "qdm12",
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface,
	terminal bool) (config config.Config, err error) {
	err = config.Read(reader, logger)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	if terminal {
		// log lines would be drawn over the terminal page
		level := log.LevelError
		config.Logger.Level = &level
	}
	logger.Patch(config.Logger.ToOptions()...)
	if terminal {
		return config, nil
	}
	logger.Info(config.String())

	return config, nil
}

//nolint:ireturn
func createHealthServer(poller health.StatusGetter,
	logger log.LoggerInterface, serverAddress string,
	timeNow func() time.Time) (
	healthServer goservices.Service, err error) {
	if !health.IsDocker() {
		return noop.New("healthcheck server", logger), nil
	}
	healthLogger := logger.New(log.SetComponent("healthcheck server"))
	isHealthy := health.MakeIsHealthy(poller, healthLogger, timeNow)
	return health.NewServer(serverAddress, healthLogger, isHealthy)
}

//nolint:ireturn
func createServer(config config.Config, logger log.LoggerInterface,
	view server.View, metrics *metrics.Metrics) (
	service goservices.Service, err error) {
	if !*config.Server.Enabled {
		return noop.New("http server", logger), nil
	}

	backendURL, err := url.Parse(config.Backend.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing backend URL: %w", err)
	}

	settings := server.Settings{
		Address:       config.Server.ListeningAddress,
		RootURL:       config.Server.RootURL,
		RefreshPeriod: config.Poll.Period,
		BackendURL:    backendURL,
	}
	if *config.Metrics.Enabled {
		settings.MetricsHandler = metrics.HTTPHandler()
	}

	serverLogger := logger.New(log.SetComponent("http server"))
	return server.New(settings, view, serverLogger)
}
