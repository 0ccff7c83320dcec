package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wolestech/excelcreator-go/pkg/excelcreator"
	"github.com/wolestech/excelcreator-go/pkg/excelcreator/job"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

var buildOutput string

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [job.yaml]",
		Short: "Build a workbook from a YAML recipe",
		Args:  cobra.ExactArgs(1),
		RunE:  runBuild,
	}
	cmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output xlsx path (required)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	jobPath := args[0]
	if err := checkExists(jobPath); err != nil {
		return err
	}

	j, err := job.Load(jobPath)
	if err != nil {
		return fmt.Errorf("loading job: %w", err)
	}

	c := excelcreator.New()
	defer func() {
		if err := c.Close(); err != nil {
			logrus.WithError(err).Warn("closing workbook")
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := job.Run(ctx, j, c); err != nil {
		return fmt.Errorf("building workbook: %w", err)
	}

	if err := c.Writer(c.Workbook).Save(buildOutput); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logrus.WithFields(logrus.Fields{"job": jobPath, "output": buildOutput}).Info("workbook written")
	return nil
}

func checkExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return nil
}
