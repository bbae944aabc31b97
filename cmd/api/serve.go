package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-panel-api/internal/api"
	"github.com/vfg2006/sales-panel-api/internal/api/handler"
	"github.com/vfg2006/sales-panel-api/internal/scheduler"
	"github.com/vfg2006/sales-panel-api/internal/session"
)

func serve(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	sessions := session.NewStore(a.cfg.Session.TTL)

	janitor := scheduler.NewCacheJanitorService(a.service, a.cfg, sessions)
	if err := janitor.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o limpador de cache")
	} else {
		logrus.Info("Limpador de cache iniciado com sucesso")
	}

	server, err := api.New(
		a.cfg,
		a.service,
		sessions,
		a.conn,
		handler.CronJobServices{CacheJanitor: janitor},
	)
	if err != nil {
		return err
	}

	return server.Run(ctx)
}
