package cli

import (
	"context"

	"go.ntppool.org/common/metricsserver"

	"github.com/bthstudent/javcheck/grouping"
	"github.com/bthstudent/javcheck/server"
	"github.com/bthstudent/javcheck/source"
	"github.com/bthstudent/javcheck/version"
)

type ServeCmd struct {
	AuditFlags `embed:""`

	Listen      string `default:":8080" env:"JAVCHECK_LISTEN" help:"Address for the HTTP API."`
	MetricsPort int    `default:"9000" env:"JAVCHECK_METRICS_PORT" help:"Metrics server port."`
}

func (cmd *ServeCmd) Run(ctx context.Context) error {
	ctx, log := setupLogger(ctx, cmd.Verbose)

	log.InfoContext(ctx, "javcheck starting", "version", version.Version())

	metricssrv := metricsserver.New()
	version.RegisterMetric(Name, metricssrv.Registry())
	metrics := grouping.NewMetrics(metricssrv.Registry())

	srv := server.New(log, server.Config{
		Listen:    cmd.Listen,
		Sources:   cmd.Sources,
		BaseBoard: cmd.BaseBoard,
		Threshold: cmd.LeThreshold,
	}, source.New(), metrics)

	go func() {
		if err := metricssrv.ListenAndServe(ctx, cmd.MetricsPort); err != nil {
			log.ErrorContext(ctx, "metrics server error", "err", err)
		}
	}()

	return srv.Run(ctx)
}
