package main

import (
	"encoding/json"
	"fmt"
	"io"

	"shiv_accounts/internal/adapter/http/dto/response"
	"shiv_accounts/internal/adapter/http/routes"
	"shiv_accounts/internal/domain/entities"
	"shiv_accounts/internal/infrastructure/config"
	"shiv_accounts/internal/infrastructure/container"
	"shiv_accounts/internal/infrastructure/logging"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "accounts",
		Short: "Shiv Accounts API server and report tool",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			logging.Configure(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
			opts.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return routes.Run(cmd.Context(), opts.cfg)
		},
	}
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "Config file (default ./config.yaml)")

	root.AddCommand(newServeCmd(opts), newReportCmd(opts))
	return root
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return routes.Run(cmd.Context(), opts.cfg)
		},
	}
}

func newReportCmd(opts *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:       "report <balance-sheet|profit-loss|stock>",
		Short:     "Print a report from the configured stores",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(entities.ReportKindBalanceSheet), string(entities.ReportKindProfitLoss), string(entities.ReportKindStock)},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := container.New(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}
			kind := entities.ReportKind(args[0])
			report, err := c.Reports.Generate(cmd.Context(), kind)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), report, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or csv (csv is only available for stock)")
	return cmd
}

func writeReport(w io.Writer, report entities.Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response.FromReport(report))
	case "csv":
		stock, ok := report.(entities.StockReport)
		if !ok {
			return fmt.Errorf("csv output is only available for the stock report")
		}
		return gocsv.Marshal(response.StockCSVRows(stock), w)
	default:
		return fmt.Errorf("unknown format %q (must be json or csv)", format)
	}
}
