package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/staffgrid/timecard/internal/adapter/archive"
	"github.com/staffgrid/timecard/internal/adapter/excel"
	"github.com/staffgrid/timecard/internal/adapter/jsonfile"
	"github.com/staffgrid/timecard/internal/adapter/render"
	"github.com/staffgrid/timecard/internal/config"
	"github.com/staffgrid/timecard/internal/port"
	"github.com/staffgrid/timecard/internal/usecase/generate"
)

func newGenerateCmd() *cobra.Command {
	var (
		configPath string
		input      string
		sheets     []string
		outDir     string
		zipPath    string
		save       bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Extract a schedule workbook and write time-card HTML files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if input != "" {
				cfg.WorkbookPath = input
			}
			if len(sheets) > 0 {
				cfg.Sheets = sheets
			}
			if outDir != "" {
				cfg.OutputDir = outDir
			}
			if zipPath != "" {
				cfg.ArchivePath = zipPath
			}
			if cfg.WorkbookPath == "" {
				return fmt.Errorf("no input workbook: use --input or TIMECARD_WORKBOOK")
			}
			return runGenerate(cfg, save)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringVarP(&input, "input", "i", "", "schedule workbook (.xlsx or .xls)")
	cmd.Flags().StringSliceVar(&sheets, "sheet", nil, "sheet to process (repeatable; default all)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory for HTML files")
	cmd.Flags().StringVar(&zipPath, "zip", "", "zip the output directory to this path")
	cmd.Flags().BoolVar(&save, "save", false, "save the batch to the JSON store")
	return cmd
}

func runGenerate(cfg *config.Config, save bool) error {
	lg := cfg.Logger

	wb, err := excel.Open(cfg.WorkbookPath)
	if err != nil {
		return err
	}
	defer wb.Close()

	gen := &generate.Generator{
		Source: wb,
		Logger: lg,
		Sheets: cfg.Sheets,
	}
	batch, err := gen.Run()
	if err != nil {
		return err
	}

	paths, err := render.WriteFiles(batch, cfg.OutputDir)
	if err != nil {
		return err
	}
	lg.Printf("wrote %d files to %s", len(paths), cfg.OutputDir)

	if cfg.ArchivePath != "" {
		if err := archive.Directory(cfg.OutputDir, cfg.ArchivePath); err != nil {
			return err
		}
		lg.Printf("archived output to %s", cfg.ArchivePath)
	}

	if save {
		var store port.BatchStore = jsonfile.New(cfg.StoreDir)
		if err := store.Save(context.Background(), batch); err != nil {
			return err
		}
		lg.Printf("saved batch %s to %s", batch.ID, cfg.StoreDir)
	}
	return nil
}
