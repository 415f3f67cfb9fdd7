package main

import (
	"github.com/spf13/cobra"
	"github.com/ukaji3/exutil-go/pkg/exutil"
	"github.com/ukaji3/exutil-go/pkg/exutil/files"
)

func (a *app) newFilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files DIR",
		Short: "List files under a directory by wildcard pattern",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runFiles,
	}

	f := cmd.Flags()
	f.String("pattern", "*.xlsx", "Wildcard pattern matched against file names")
	f.Bool("exclude", false, "List files that do not match the pattern")

	return cmd
}

func (a *app) runFiles(cmd *cobra.Command, args []string) error {
	paths, err := files.Filter(args[0], a.v.GetString("pattern"), !a.v.GetBool("exclude"))
	if err != nil {
		return err
	}
	if paths == nil {
		paths = []string{}
	}
	a.logger.Debug("files", "dir", args[0], "count", len(paths))
	return a.write(cmd, paths)
}

func (a *app) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info BOOK.xlsx",
		Short: "Show the sheets and defined ranges of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := exutil.Open(args[0])
			if err != nil {
				return err
			}
			defer wb.Close()
			return a.write(cmd, wb.Info())
		},
	}
}
