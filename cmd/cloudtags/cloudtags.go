package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/version"

	cloudtags "github.com/grafana/cloudtags"
	"github.com/grafana/cloudtags/cmd/cloudtags/config"
	"github.com/grafana/cloudtags/pkg/aws"
	"github.com/grafana/cloudtags/pkg/aws/client"
	"github.com/grafana/cloudtags/pkg/aws/common"
	"github.com/grafana/cloudtags/pkg/gatherer"
	"github.com/grafana/cloudtags/pkg/logger"
)

const usage = "Usage: cloudtags [flags] <service_names> <regions>"

func providerFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.Providers.AWS.Profile, "aws.profile", "", "AWS Profile to authenticate with.")
	fs.StringVar(&cfg.Providers.AWS.RoleARN, "aws.role-arn", "", "AWS Role ARN to assume before listing.")
}

func operationalFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.BoolVar(&cfg.Version, "version", false, "Print version information and exit.")
	fs.StringVar(&cfg.Logging.Level, "log.level", "info", "Log level: debug, info, warn or error.")
	fs.StringVar(&cfg.Logging.OutputType, "log.output-type", "text", "Log output type: text or json.")
	fs.StringVar(&cfg.Logging.Destination, "log.destination", "stderr", "Log destination: stdout or stderr.")
	fs.StringVar(&cfg.Metrics.Textfile, "metrics.textfile", "", "Write Prometheus metrics for the run to this file.")
}

// run executes one invocation and returns the process exit code. Result
// lines and argument errors go to stdout.
func run(ctx context.Context, args []string, stdout io.Writer) int {
	var cfg config.Config
	fs := flag.NewFlagSet(cloudtags.ToolName, flag.ContinueOnError)
	providerFlags(fs, &cfg)
	operationalFlags(fs, &cfg)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if cfg.Version {
		fmt.Fprintln(stdout, version.Print(cloudtags.ToolName))
		return 0
	}

	if fs.NArg() != 2 {
		fmt.Fprintln(stdout, usage)
		return 1
	}
	services := config.ParseList(fs.Arg(0))
	regions := config.ParseList(fs.Arg(1))

	log := logger.New(cfg.Logging.Level, cfg.Logging.OutputType, cfg.Logging.Destination)
	log.LogAttrs(ctx, slog.LevelDebug, "starting",
		slog.String("version", version.Info()),
		slog.String("build_context", version.BuildContext()),
		slog.String("services", services.String()),
		slog.String("regions", regions.String()),
	)

	registry := prometheus.NewRegistry()
	metrics := client.NewMetrics()
	g := gatherer.New(log)
	registry.MustRegister(metrics.Collectors()...)
	registry.MustRegister(g.Collectors()...)

	// Credentials and region resolution are left to the SDK's default chain;
	// the flags only narrow it to a profile or an assumed role.
	factory := client.NewFactory(
		client.WithProfile(cfg.Providers.AWS.Profile),
		client.WithRoleARN(cfg.Providers.AWS.RoleARN),
		client.WithMetrics(metrics),
	)

	csp := aws.New(&aws.Config{
		Logger:   log,
		Output:   stdout,
		Factory:  factory,
		Gatherer: g,
	})
	err := csp.Run(ctx, services, regions)

	if cfg.Metrics.Textfile != "" {
		if werr := gatherer.WriteTextfile(cfg.Metrics.Textfile, registry); werr != nil {
			log.LogAttrs(ctx, slog.LevelError, "could not write metrics textfile",
				slog.String("path", cfg.Metrics.Textfile),
				slog.String("message", werr.Error()),
			)
		}
	}

	var unsupported *aws.UnsupportedServiceError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &unsupported):
		fmt.Fprintln(stdout, unsupported.Error())
		return 1
	default:
		log.LogAttrs(ctx, slog.LevelError, "listing tags failed",
			slog.String("message", err.Error()),
			slog.String("operation", common.OperationName(err)),
			slog.String("code", common.APIErrorCode(err)),
		)
		if common.IsNoSuchTagSet(err) {
			log.LogAttrs(ctx, slog.LevelInfo, "s3 buckets without tags make GetBucketTagging fail; tag the bucket or leave s3 out of the service list")
		}
		return 1
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout)
	cancel()
	os.Exit(code)
}
