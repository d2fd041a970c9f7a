package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nikitaxru/outlinereport"
)

const (
	envConfig = "OUTLINEREPORT_CONFIG"
	envInput  = "OUTLINEREPORT_INPUT"
	envOutput = "OUTLINEREPORT_OUTPUT"
)

func main() {
	// .env необязателен
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		input      string
		output     string
		delimiter  string
		policy     string
		where      string
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "outlinereport",
		Short: "Строит XLSX-отчёт с иерархическим контуром из отсортированного CSV",
		Long: `Читает CSV (группа, метрика, путь через "_", значения по сценариям)
и пишет книгу Excel: лист на группу, заголовки метрик, вложенные строки пути.

Пример: outlinereport -i inputs/test.csv -o outputs/report.xlsx --values strict`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = os.Getenv(envConfig)
			}
			cfg := outlinereport.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = outlinereport.LoadConfig(configPath); err != nil {
					return err
				}
			}
			if v := os.Getenv(envInput); v != "" {
				cfg.Input = v
			}
			if v := os.Getenv(envOutput); v != "" {
				cfg.Output = v
			}

			flags := cmd.Flags()
			if flags.Changed("input") {
				cfg.Input = input
			}
			if flags.Changed("output") {
				cfg.Output = output
			}
			if flags.Changed("delimiter") {
				cfg.Delimiter = delimiter
			}
			if flags.Changed("values") {
				cfg.ValuePolicy = outlinereport.ValuePolicy(policy)
			}
			if flags.Changed("where") {
				cfg.Where = where
			}
			if flags.Changed("quiet") {
				cfg.Quiet = quiet
			}

			sum, err := outlinereport.WriteReport(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if !cfg.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: листов %d, строк %d\n", cfg.Output, len(sum.Sheets), sum.LeafRows)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML-файл конфигурации (или $"+envConfig+")")
	cmd.Flags().StringVarP(&input, "input", "i", "", "входной CSV (или $"+envInput+")")
	cmd.Flags().StringVarP(&output, "output", "o", "", "выходной XLSX (или $"+envOutput+")")
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", ",", `разделитель полей, \t для табуляции`)
	cmd.Flags().StringVar(&policy, "values", string(outlinereport.PolicyTolerate), "расхождение числа значений: tolerate | strict | pad")
	cmd.Flags().StringVar(&where, "where", "", `условие отбора строк, например: group != "Draft" && depth > 1`)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "без журнала")

	return cmd
}
