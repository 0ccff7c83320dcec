package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wolestech/excelcreator-go/pkg/excelcreator"
	"github.com/wolestech/excelcreator-go/pkg/excelcreator/models"
	"github.com/wolestech/excelcreator-go/pkg/excelcreator/output"
)

var (
	inspectOutput string
	pretty        bool
	raw           bool
	links         bool
	noTables      bool
	sheetsDir     string
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Print a workbook's cells and dimensions as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	cmd.Flags().StringVarP(&inspectOutput, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&raw, "raw", false, "Report stored values instead of formatted text")
	cmd.Flags().BoolVar(&links, "links", false, "Include cell hyperlinks")
	cmd.Flags().BoolVar(&noTables, "no-tables", false, "Skip table detection")
	cmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if err := checkExists(inputPath); err != nil {
		return err
	}

	wb, err := excelcreator.NewReader().Load(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer wb.Close()

	detect := !noTables
	data, err := wb.Inspect(filepath.Base(inputPath), excelcreator.InspectOptions{
		IncludeLinks: links,
		Raw:          raw,
		DetectTables: &detect,
	})
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	jsonData, err := output.ToJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if inspectOutput != "" {
		if err := os.WriteFile(inspectOutput, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	if sheetsDir != "" {
		if err := writeSheetFiles(data, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}
	return nil
}

func writeSheetFiles(wb *models.WorkbookData, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for sheetName, sheet := range wb.Sheets {
		jsonData, err := output.SheetToJSON(&sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheetName+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
		logrus.WithField("file", filename).Debug("wrote sheet")
	}

	return nil
}
