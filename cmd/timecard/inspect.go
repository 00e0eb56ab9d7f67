package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/staffgrid/timecard/internal/adapter/jsonfile"
	"github.com/staffgrid/timecard/internal/config"
	"github.com/staffgrid/timecard/internal/domain"
)

func newInspectCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "inspect [batch-id]",
		Short: "List saved batches, or print one batch's hours summary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			store := jsonfile.New(cfg.StoreDir)
			ctx := context.Background()

			if len(args) == 0 {
				ids, err := store.List(ctx)
				if err != nil {
					return err
				}
				if len(ids) == 0 {
					fmt.Println("no saved batches")
					return nil
				}
				for _, id := range ids {
					fmt.Println(id)
				}
				return nil
			}

			batch, err := store.Load(ctx, args[0])
			if err != nil {
				return err
			}
			printBatch(batch)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	return cmd
}

func printBatch(batch *domain.Batch) {
	fmt.Printf("Batch %s (created %s)\n", batch.ID, batch.CreatedAt.Format("2006-01-02 15:04"))
	for i, span := range batch.WeekSpans {
		fmt.Printf("Week %d: %s\n", i+1, span)
	}
	fmt.Println()
	for _, p := range batch.PayPeriods {
		s := p.Summary()
		fmt.Printf("%s @ %s: regular %s, overtime %s, total %s\n",
			p.EmployeeName, p.Facility,
			domain.FormatHours(s.TotalRegular),
			domain.FormatHours(s.TotalOvertime),
			domain.FormatHours(s.Total))
	}
}
