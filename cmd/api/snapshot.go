package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-panel-api/internal/domain"
	"github.com/vfg2006/sales-panel-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-panel-api/pkg/utils"
)

var snapshotFlags struct {
	start      string
	end        string
	categories []string
	regions    []string
	detail     bool
}

type snapshotOutput struct {
	Dashboard *domain.Dashboard  `json:"dashboard"`
	Lines     []domain.SalesLine `json:"lines,omitempty"`
}

func snapshot(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	filters, err := snapshotFilters(ctx, a.service)
	if err != nil {
		return err
	}

	out := snapshotOutput{}
	out.Dashboard, err = a.service.GetDashboard(ctx, filters)
	if err != nil {
		return err
	}

	if snapshotFlags.detail {
		out.Lines, err = a.service.GetDetail(ctx, filters)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(out))
	return nil
}

func snapshotFilters(ctx context.Context, service dashboarding.Dashboarder) (domain.FilterState, error) {
	start, err := utils.ParseDate(snapshotFlags.start)
	if err != nil {
		return domain.FilterState{}, fmt.Errorf("--start inválido: %w", err)
	}
	end, err := utils.ParseDate(snapshotFlags.end)
	if err != nil {
		return domain.FilterState{}, fmt.Errorf("--end inválido: %w", err)
	}

	return dashboarding.DefaultFilters(ctx, service, start, end,
		utils.SplitCSV(snapshotFlags.categories...),
		utils.SplitCSV(snapshotFlags.regions...),
	)
}
