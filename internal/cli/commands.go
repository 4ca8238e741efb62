package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pfrederiksen/eventbook/internal/calendar"
	"github.com/pfrederiksen/eventbook/internal/event"
	"github.com/pfrederiksen/eventbook/internal/importer"
	"github.com/pfrederiksen/eventbook/internal/logger"
	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	var (
		sortFlag string
		days     int
		hidePast bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events in the book (times shown in UTC)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := ParseSortOrder(sortFlag)
			if err != nil {
				return err
			}

			book, err := opts.store.LoadOrEmpty()
			if err != nil {
				return err
			}

			now := opts.now()
			events := make([]*event.Event, 0, book.Len())
			for _, evt := range book.Events() {
				if hidePast && evt.IsPast(now) {
					continue
				}
				if !evt.IsWithinDays(now, days) {
					continue
				}
				events = append(events, evt)
			}
			sortEvents(events, order)

			result := newOutputResult(opts.store.Path(), events)
			return WriteOutput(cmd.OutOrStdout(), result, opts.outputFormat, opts.verbose)
		},
	}

	cmd.Flags().StringVar(&sortFlag, "sort", string(SortByStart), "Sort order: start, name or book")
	cmd.Flags().IntVar(&days, "within-days", 0, "Only show events starting within N days (0 shows all)")
	cmd.Flags().BoolVar(&hidePast, "hide-past", false, "Hide events that have already ended")

	return cmd
}

func newAddCmd(opts *options) *cobra.Command {
	var name, startText, endText, location, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an event to the book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := event.ParseDateTimeIn(startText, opts.loc)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			end := start
			if endText != "" {
				end, err = event.ParseDateTimeIn(endText, opts.loc)
				if err != nil {
					return fmt.Errorf("--end: %w", err)
				}
			}

			evt, err := event.NewEvent(uuid.New(), name, start, end, location, description)
			if err != nil {
				return err
			}

			book, err := opts.store.LoadOrEmpty()
			if err != nil {
				return err
			}
			if err := book.Add(evt); err != nil {
				return fmt.Errorf("adding %q: %w", evt.Name, err)
			}
			if err := opts.store.Save(book); err != nil {
				return err
			}

			logger.Info("Event added", logger.Fields{"id": evt.ID.String(), "name": evt.Name})
			if opts.outputFormat == FormatJSON {
				return writeJSON(cmd.OutOrStdout(), newOutputResult(opts.store.Path(), []*event.Event{evt}))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added event %s (%s)\n", evt.Name, evt.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Event name (required)")
	cmd.Flags().StringVar(&startText, "start", "", "Start time in local time, e.g. 2026-03-15 09:00 (required)")
	cmd.Flags().StringVar(&endText, "end", "", "End time in local time (defaults to start)")
	cmd.Flags().StringVar(&location, "location", "", "Event location")
	cmd.Flags().StringVar(&description, "description", "", "Event description")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("start")

	return cmd
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an event by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid event ID %q: %w", args[0], err)
			}

			book, err := opts.store.LoadOrEmpty()
			if err != nil {
				return err
			}
			evt, err := book.Find(id)
			if err != nil {
				return fmt.Errorf("%w: %s", err, id)
			}
			if err := book.Remove(id); err != nil {
				return err
			}
			if err := opts.store.Save(book); err != nil {
				return err
			}

			logger.Info("Event deleted", logger.Fields{"id": id.String()})
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted event %s (%s)\n", evt.Name, id)
			return nil
		},
	}
}

func newImportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file-or-url>",
		Short: "Import events from an HTML table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := importer.New().Import(args[0])
			if err != nil {
				return fmt.Errorf("importing events: %w", err)
			}

			for _, skipped := range result.Skipped {
				logger.Warn("Skipped row", logger.Fields{"source": args[0], "row": skipped.Row}, skipped.Err)
			}

			book, err := opts.store.LoadOrEmpty()
			if err != nil {
				return err
			}

			added := 0
			for _, evt := range result.Events {
				if err := book.Add(evt); err != nil {
					if errors.Is(err, event.ErrDuplicateEvent) {
						logger.Debug("Event already in book", logger.Fields{"name": evt.Name})
						continue
					}
					return err
				}
				added++
			}

			if added > 0 {
				if err := opts.store.Save(book); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d new events (%d already present, %d rows skipped)\n",
				added, len(result.Events)-added, len(result.Skipped))
			return nil
		},
	}
}

func newExportICSCmd(opts *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export-ics",
		Short: "Export events as an iCalendar file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := opts.store.LoadOrEmpty()
			if err != nil {
				return err
			}

			events := book.Events()
			sortEvents(events, SortByStart)
			ics := calendar.GenerateICS(events, opts.now())

			if out == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), ics)
				return err
			}
			if err := os.WriteFile(out, []byte(ics), 0644); err != nil {
				return fmt.Errorf("writing calendar: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d events to %s\n", len(events), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write to this file instead of stdout")
	return cmd
}
