package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sandeepkv93/taskcal/internal/agenda"
	"github.com/sandeepkv93/taskcal/internal/calendar"
	"github.com/sandeepkv93/taskcal/internal/model"
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskcal",
		Short: "A personal task list with a month calendar",
		Long: `taskcal keeps a list of dated tasks on this machine. Without a subcommand
it opens the interactive view; when stdout is not a terminal it prints the list.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context(), cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.isTerminal() {
				return a.printList(cmd.OutOrStdout())
			}
			return a.runTUI(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config.yaml")
	root.PersistentFlags().StringVar(&a.storage, "storage", "", "storage backend (file, sqlite)")
	root.PersistentFlags().StringVar(&a.storePath, "store", "", "store directory or database file")

	root.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newUpcomingCmd(a),
		newCalCmd(a),
		newProgressCmd(a),
	)
	return root
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <YYYY-MM-DD> <text...>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args[1:], " ")
			task, ok, err := a.store.Add(cmd.Context(), text, args[0])
			if !ok {
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added: %s\n", task.Label())
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every task in insertion order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.printList(cmd.OutOrStdout())
		},
	}
}

func newUpcomingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upcoming",
		Short: "Show the soonest open tasks from today on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			upcoming := agenda.Upcoming(a.store.Tasks(), model.Today(a.now()), a.cfg.UpcomingLimit)
			if len(upcoming) == 0 {
				fmt.Fprintln(out, "No urgent tasks")
				return nil
			}
			for _, t := range upcoming {
				fmt.Fprintln(out, t.Label())
			}
			return nil
		},
	}
}

func newCalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cal [YYYY-MM]",
		Short: "Print a month grid, * marks days with open tasks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cursor := calendar.CursorFor(a.now())
			if len(args) == 1 {
				t, err := time.Parse("2006-01", args[0])
				if err != nil {
					return fmt.Errorf("month must be YYYY-MM: %q", args[0])
				}
				cursor = calendar.Cursor{Month: t.Month(), Year: t.Year()}
			}
			grid := calendar.Build(cursor, a.store.Tasks(), model.Today(a.now()))
			printGrid(cmd.OutOrStdout(), grid)
			return nil
		},
	}
}

func newProgressCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Print the share of completed tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tasks := a.store.Tasks()
			fmt.Fprintf(cmd.OutOrStdout(), "%d%% (%d/%d)\n", agenda.Progress(tasks), agenda.CompletedCount(tasks), len(tasks))
			return nil
		},
	}
}

func (a *app) printList(w io.Writer) error {
	for _, t := range a.store.Tasks() {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", mark, t.Label()); err != nil {
			return err
		}
	}
	return nil
}

// printGrid writes the plain month grid. Today is bracketed.
func printGrid(w io.Writer, g calendar.Grid) {
	fmt.Fprintln(w, g.Cursor.Title())
	for _, wd := range calendar.Weekdays {
		fmt.Fprintf(w, " %-2s  ", wd)
	}
	fmt.Fprintln(w)
	for _, week := range g.Weeks() {
		var b strings.Builder
		for _, cell := range week {
			if cell == nil {
				b.WriteString("     ")
				continue
			}
			left, right, marker := " ", " ", " "
			if cell.Today {
				left, right = "[", "]"
			}
			if cell.HasTask {
				marker = "*"
			}
			fmt.Fprintf(&b, "%s%2d%s%s", left, cell.Day, right, marker)
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
}
