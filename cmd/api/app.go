package main

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-panel-api/infrastructure/database/sqldb"
	"github.com/vfg2006/sales-panel-api/infrastructure/repository"
	"github.com/vfg2006/sales-panel-api/internal/config"
	"github.com/vfg2006/sales-panel-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-panel-api/pkg/log"
)

// app agrupa as dependências compartilhadas por serve e snapshot
type app struct {
	cfg     *config.Config
	conn    *sqldb.Connection
	service *dashboarding.Service
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	conn, err := sqldb.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	logrus.WithField("driver", cfg.Database.Driver).Info("Conexão com o banco estabelecida com sucesso")

	salesRepo, err := repository.NewSalesRepository(conn, cfg.Database.Driver, cfg.Sales.QueryFile)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	metadataRepo, err := repository.NewMetadataRepository(conn, cfg.Database.Driver)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	service := dashboarding.NewService(
		dashboarding.NewSalesLoader(salesRepo, cfg.Cache.SalesTTL).WithLoadTimeout(cfg.Cache.LoadTimeout),
		dashboarding.NewMetadataService(metadataRepo, cfg.Cache.MetadataTTL).WithLoadTimeout(cfg.Cache.LoadTimeout),
		decimal.NewFromFloat(cfg.Sales.MinAmount),
	)

	return &app{cfg: cfg, conn: conn, service: service}, nil
}

func (a *app) Close() {
	if err := a.conn.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar conexão com o banco")
	}
}
