package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sbhunu/landadmin/adapter/cli"
	"github.com/sbhunu/landadmin/adapter/cli/amendment"
	"github.com/sbhunu/landadmin/adapter/cli/deed"
	"github.com/sbhunu/landadmin/adapter/cli/dispute"
	"github.com/sbhunu/landadmin/adapter/cli/objection"
	"github.com/sbhunu/landadmin/adapter/cli/quota"
	"github.com/sbhunu/landadmin/adapter/cli/scheme"
	"github.com/sbhunu/landadmin/adapter/cli/survey"
	"github.com/sbhunu/landadmin/adapter/cli/title"
	"github.com/sbhunu/landadmin/adapter/cli/transfer"
	"github.com/sbhunu/landadmin/internal/app"
	"github.com/sbhunu/landadmin/pkg/config"
	"github.com/sbhunu/landadmin/pkg/observability"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logCfg := observability.DefaultLogConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.ServiceVersion = cli.Version
	logger := observability.NewLogger(logCfg)
	cli.SetLogger(logger)

	// Commands that only print usage still work without a database; every
	// handler-backed command goes through cli.RequireApp.
	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Warn("container not initialized", "error", err)
	} else {
		defer container.Close()
		cli.SetApp(cli.NewApp(container))
	}

	cli.AddCommand(scheme.Cmd)
	cli.AddCommand(survey.Cmd)
	cli.AddCommand(quota.Cmd)
	cli.AddCommand(deed.Cmd)
	cli.AddCommand(title.Cmd)
	cli.AddCommand(amendment.Cmd)
	cli.AddCommand(transfer.Cmd)
	cli.AddCommand(dispute.Cmd)
	cli.AddCommand(objection.Cmd)

	cli.ExecuteContext(ctx)
}
