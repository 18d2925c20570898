package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hellofresh/goledger"
	"github.com/hellofresh/goledger/banking"
	"github.com/hellofresh/goledger/config"
	driverSQL "github.com/hellofresh/goledger/driver/sql"
	"github.com/hellofresh/goledger/extension/amqp"
	goledgerPQ "github.com/hellofresh/goledger/extension/pq"
	goledgerPrometheus "github.com/hellofresh/goledger/extension/prometheus"
	goledgerZap "github.com/hellofresh/goledger/extension/zap"
)

const usage = `usage: goledger [-metrics-addr addr] <command> [arguments]

commands:
  setup-all                                  create the event tables of all banks
  open <bank> <number> [holder]              open an account
  set-limit <bank> <number> <limit>          set the overdraft limit of an account in minor units
  transfer <bank> <from> <to> <amount>       transfer an amount in minor units
  block <bank> <number> [reason]             block an account
  unblock <bank> <number> [reason]           unblock an account
  close <bank> <number>                      close an account
  list <bank>                                list all open accounts of a bank
  history <bank> <number>                    list the events of an account
  watch                                      log the events published to AMQP or notified by postgres
`

func main() {
	os.Exit(execute())
}

func execute() int {
	flags := flag.NewFlagSet("goledger", flag.ExitOnError)
	metricsAddr := flags.String("metrics-addr", "", "serve prometheus metrics on this address while watching")
	flags.Usage = func() {
		fmt.Fprint(flags.Output(), usage)
	}
	failOnError(flags.Parse(os.Args[1:]))

	if flags.NArg() == 0 {
		flags.Usage()
		return 2
	}

	cfg, err := config.Load()
	failOnError(err)

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	logger, err := zapConfig.Build()
	failOnError(err)
	defer func() {
		_ = logger.Sync()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if flags.Arg(0) == "watch" {
		watch(ctx, cfg, *metricsAddr, logger)
		return 0
	}

	banks, err := config.LoadBanks(cfg.ConfigFile)
	failOnError(err)

	db, dbCloser, err := config.NewPostgresDB(cfg.PostgresDSN, logger)
	failOnError(err)
	defer dbCloser()

	goledgerLogger := goledgerZap.Wrap(logger)

	var publisher amqp.Publisher
	if cfg.PublishEvents() {
		notificationPublisher, err := amqp.NewNotificationPublisher(cfg.AMQPDSN, cfg.AMQPQueue, goledgerLogger, nil, nil)
		failOnError(err)
		defer func() {
			if err := notificationPublisher.Close(); err != nil {
				logger.With(zap.Error(err)).Warn("failed to close amqp publisher")
			}
		}()

		publisher = notificationPublisher
	}

	// one-shot commands exit before a scrape could happen, metrics are served by watch only
	district, err := config.NewFinancialDistrict(banks, db, cfg.NotifyChannel, publisher, goledgerLogger, goledger.NopMetrics)
	failOnError(err)

	app := &cli{district: district, out: os.Stdout}
	err = app.run(ctx, flags.Arg(0), flags.Args()[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	return exitCode(err)
}

// watch logs and counts every committed event until interrupted.
// The AMQP queue is followed when AMQP_DSN is set, otherwise the postgres notification channel.
func watch(ctx context.Context, cfg config.Config, metricsAddr string, logger *zap.Logger) {
	metrics := goledgerPrometheus.NewMetrics()
	failOnError(metrics.RegisterMetrics(prometheus.DefaultRegisterer))

	if metricsAddr != "" {
		go func() {
			logger.With(zap.String("addr", metricsAddr)).Info("serving prometheus metrics")
			if err := http.ListenAndServe(metricsAddr, promhttp.Handler()); err != nil {
				logger.With(zap.Error(err)).Error("http.ListenAndServe return an error")
			}
		}()
	}

	goledgerLogger := goledgerZap.Wrap(logger)

	var err error
	switch {
	case cfg.PublishEvents():
		err = watchAMQP(ctx, cfg, goledgerLogger, metrics)
	case cfg.NotifyChannel != "":
		err = watchPostgres(ctx, cfg, goledgerLogger, metrics)
	default:
		err = errors.New("expected AMQP_DSN or POSTGRES_NOTIFY_CHANNEL to be set and not empty")
	}
	if err != nil && err != context.Canceled {
		failOnError(err)
	}
}

func watchAMQP(ctx context.Context, cfg config.Config, logger goledger.Logger, metrics *goledgerPrometheus.Metrics) error {
	consume, err := amqp.DirectQueueConsume(cfg.AMQPDSN, cfg.AMQPQueue)
	if err != nil {
		return err
	}

	listener, err := amqp.NewListener(consume, config.MinReconnectInterval, config.MaxReconnectInterval, logger)
	if err != nil {
		return err
	}

	return listener.Listen(ctx, amqpTrigger(banking.NewEventRegistry(), logger, metrics))
}

// amqpTrigger decodes, logs and counts a published ledger notification
func amqpTrigger(registry *banking.EventRegistry, logger goledger.Logger, metrics *goledgerPrometheus.Metrics) amqp.Trigger {
	return func(ctx context.Context, notification *amqp.EventNotification) error {
		metrics.NotificationReceived("amqp", notification.EventType)

		event, err := registry.Decode(notification.EventType, notification.Payload)
		if err != nil {
			return err
		}

		logger.Info("event was committed", func(e goledger.LoggerEntry) {
			e.String("stream", notification.Stream)
			e.String("event_id", notification.EventID)
			e.String("correlation_id", notification.CorrelationID)
			e.Any("event", event)
		})

		return nil
	}
}

func watchPostgres(ctx context.Context, cfg config.Config, logger goledger.Logger, metrics *goledgerPrometheus.Metrics) error {
	listener, err := goledgerPQ.NewListener(
		cfg.PostgresDSN,
		cfg.NotifyChannel,
		config.MinReconnectInterval,
		config.MaxReconnectInterval,
		logger,
	)
	if err != nil {
		return err
	}

	return listener.Listen(ctx, postgresTrigger(logger, metrics))
}

// postgresTrigger logs and counts a notification sent by the event table trigger
func postgresTrigger(logger goledger.Logger, metrics *goledgerPrometheus.Metrics) driverSQL.Trigger {
	return func(ctx context.Context, notification *driverSQL.Notification) error {
		metrics.NotificationReceived("postgres", notification.EventType)

		logger.Info("event was committed", func(e goledger.LoggerEntry) {
			e.String("stream", notification.Stream)
			e.String("event_id", notification.EventID)
			e.String("event_type", notification.EventType)
			e.Int64("no", notification.No)
		})

		return nil
	}
}

func failOnError(err error) {
	if err != nil {
		panic(err)
	}
}
