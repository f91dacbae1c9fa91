package main

import (
	"github.com/spf13/cobra"

	"jobboard/internal/detailview"
	"jobboard/internal/listview"
	"jobboard/internal/termview"
	"jobboard/internal/ui"
)

func newJobsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Args:  cobra.NoArgs,
		Short: "Browse job postings in the terminal",
	}
	cmd.AddCommand(
		newJobsListCommand(opts),
		newJobsShowCommand(opts),
	)
	return cmd
}

func newJobsListCommand(opts *rootOptions) *cobra.Command {
	var (
		page int
		all  bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Args:  cobra.NoArgs,
		Short: "Print one page of job postings, or every page with --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(opts)
			if err != nil {
				return err
			}
			if err := a.validate(); err != nil {
				return err
			}
			bookmarks, db, err := a.openBookmarks()
			if err != nil {
				return err
			}
			defer db.Close()

			out := &termview.List{Out: cmd.OutOrStdout()}
			v := listview.View{
				Loader:   a.jobService(),
				Source:   a.cfg.Jobs.Source,
				PageSize: a.cfg.Jobs.PageSize,
				Slots:    out,
				Actions:  ui.Actions{Bookmarks: bookmarks},
			}
			openErr := v.Open(cmd.Context(), page)
			if err := out.Flush(); err != nil {
				return err
			}
			if openErr != nil || !all {
				return openErr
			}
			for v.CurrentPage() < v.TotalPages() {
				v.Next(cmd.Context())
				if err := out.Flush(); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().BoolVar(&all, "all", false, "print from --page through the last page")
	return cmd
}

func newJobsShowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Args:  cobra.ExactArgs(1),
		Short: "Print one job posting and related jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(opts)
			if err != nil {
				return err
			}
			if err := a.validate(); err != nil {
				return err
			}
			bookmarks, db, err := a.openBookmarks()
			if err != nil {
				return err
			}
			defer db.Close()

			out := &termview.Detail{Out: cmd.OutOrStdout()}
			v := detailview.View{
				Loader:       a.jobService(),
				Source:       a.cfg.Jobs.Source,
				RelatedLimit: a.cfg.Jobs.RelatedLimit,
				SiteName:     a.cfg.App.SiteName,
				Skills:       detailview.DefaultSkills().WithOverrides(a.cfg.Skills),
				Slots:        out,
				Actions:      ui.Actions{Bookmarks: bookmarks},
			}
			openErr := v.Open(cmd.Context(), args[0])
			if err := out.Flush(); err != nil {
				return err
			}
			return openErr
		},
	}
}
