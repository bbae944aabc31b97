package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "sales-panel-api",
		Short: "API do painel de vendas",
		RunE:  serve,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Inicia o servidor HTTP e o limpador de cache",
		RunE:  serve,
	}

	snapshotCmd = &cobra.Command{
		Use:   "snapshot",
		Short: "Calcula o painel uma vez e imprime o JSON",
		RunE:  snapshot,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Imprime a versão",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	version = "dev"
)

func main() {
	snapshotCmd.Flags().StringVar(&snapshotFlags.start, "start", "", "data inicial (AAAA-MM-DD); padrão: menor data disponível")
	snapshotCmd.Flags().StringVar(&snapshotFlags.end, "end", "", "data final inclusiva (AAAA-MM-DD); padrão: maior data disponível")
	snapshotCmd.Flags().StringSliceVar(&snapshotFlags.categories, "categories", nil, "categorias separadas por vírgula")
	snapshotCmd.Flags().StringSliceVar(&snapshotFlags.regions, "regions", nil, "regiões separadas por vírgula")
	snapshotCmd.Flags().BoolVar(&snapshotFlags.detail, "detail", false, "imprime também as linhas de detalhe")

	rootCmd.AddCommand(serveCmd, snapshotCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("sales-panel-api: command failed")
		os.Exit(1)
	}
}
