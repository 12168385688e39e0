package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	circleStore "srp/internal/adapters/storage/studycircle"
	"srp/internal/application/orchestrators"
	domain "srp/internal/domain/studycircle"
)

// applyCircleTransition runs a transition that can be rejected against a
// read copy first. A rejected transition never rewrites the record, so
// lastModified stays untouched.
func applyCircleTransition(ctx context.Context, store circleStore.Store, id string, apply func(*domain.Circle) error) error {
	rec, err := store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := apply(&rec); err != nil {
		return err
	}
	return store.Update(ctx, id, func(c *domain.Circle) { *c = rec })
}

func circlesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "circles",
		Aliases: []string{"circle"},
		Short:   "Manage study circles",
	}
	cmd.AddCommand(
		circlesAddCmd(),
		circlesListCmd(),
		circlesShowCmd(),
		circlesUpdateCmd(),
		circlesSetBookCmd(),
		circlesSetUnitCmd(),
		circlesCompleteCmd(),
		circlesDeleteCmd(),
		circlesSearchCmd(),
	)
	return cmd
}

type circleFlags struct {
	locality          string
	tutors            string
	book              string
	unit              int
	totalParticipants int
	bahaiParticipants int
	startDate         string
	status            string
	participants      []string
}

func (cf *circleFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&cf.locality, "locality", "", "locality name")
	f.StringVar(&cf.tutors, "tutors", "", "tutors, comma separated")
	f.StringVar(&cf.book, "book", "", "Ruhi book id (book1..book10)")
	f.IntVar(&cf.unit, "unit", 1, "current unit")
	f.IntVar(&cf.totalParticipants, "total-participants", 0, "total participants")
	f.IntVar(&cf.bahaiParticipants, "bahai-participants", 0, "Baha'i participants")
	f.StringVar(&cf.startDate, "start-date", "", "start date (YYYY-MM-DD)")
	f.StringVar(&cf.status, "status", "", "status (active/ongoing/completed/suspended)")
	f.StringArrayVar(&cf.participants, "participant", nil, "roster entry, name[:done] (repeatable)")
}

func (cf *circleFlags) record() domain.Circle {
	return domain.Circle{
		Locality:          cf.locality,
		Tutors:            splitList(cf.tutors),
		Book:              cf.book,
		Unit:              cf.unit,
		TotalParticipants: cf.totalParticipants,
		BahaiParticipants: cf.bahaiParticipants,
		StartDate:         cf.startDate,
		Status:            cf.status,
		Participants:      parseCircleParticipants(cf.participants),
	}
}

func circlesAddCmd() *cobra.Command {
	var cf circleFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a study circle",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := orchestrators.ExecuteSaveStudyCircle(cmd.Context(),
				orchestrators.SaveStudyCircleInput{Record: cf.record()},
				orchestrators.SaveStudyCircleDeps{
					CircleStore:     current.Circles,
					IndividualStore: current.Individuals,
				},
			)
			if err != nil {
				return err
			}
			if len(result.Errors) > 0 {
				printFieldErrors(result.Errors)
				return fmt.Errorf("validation failed")
			}
			fmt.Printf("Saved study circle %s\n", result.Record.ID)
			return nil
		},
	}
	cf.register(cmd)
	return cmd
}

func circlesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List study circles",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := current.Circles.List(cmd.Context())
			if len(list) == 0 {
				fmt.Println("No study circles recorded.")
				return nil
			}
			for _, rec := range list {
				fmt.Printf("%s  %-20s %-7s unit=%d progress=%d%% %s\n",
					rec.ID, rec.Locality, rec.Book, rec.Unit, rec.Progress, rec.Status)
			}
			return nil
		},
	}
}

func circlesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one study circle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := current.Circles.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printJSON(rec)
			return nil
		},
	}
}

func circlesUpdateCmd() *cobra.Command {
	var cf circleFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a study circle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			err := current.Circles.Update(cmd.Context(), args[0], func(rec *domain.Circle) {
				if flags.Changed("locality") {
					rec.Locality = cf.locality
				}
				if flags.Changed("tutors") {
					rec.Tutors = splitList(cf.tutors)
				}
				if flags.Changed("total-participants") {
					rec.TotalParticipants = cf.totalParticipants
				}
				if flags.Changed("bahai-participants") {
					rec.BahaiParticipants = cf.bahaiParticipants
				}
				if flags.Changed("start-date") {
					rec.StartDate = cf.startDate
				}
				if flags.Changed("status") {
					rec.Status = cf.status
				}
				if flags.Changed("participant") {
					rec.Participants = parseCircleParticipants(cf.participants)
				}
			})
			if err != nil {
				return err
			}
			fmt.Println("Updated.")
			return nil
		},
	}
	cf.register(cmd)
	// Book and unit transitions carry rules of their own.
	cmd.Flags().MarkHidden("book")
	cmd.Flags().MarkHidden("unit")
	return cmd
}

func circlesSetBookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-book <id> <book>",
		Short: "Switch the circle to a different Ruhi book",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := applyCircleTransition(cmd.Context(), current.Circles, args[0], func(rec *domain.Circle) error {
				return rec.SetBook(args[1])
			})
			if err != nil {
				return err
			}
			fmt.Printf("Now studying %s from unit 1.\n", args[1])
			return nil
		},
	}
}

func circlesSetUnitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-unit <id> <unit>",
		Short: "Move the circle to a unit within its book",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var unit int
			if _, err := fmt.Sscanf(args[1], "%d", &unit); err != nil {
				return fmt.Errorf("unit must be a number: %w", err)
			}
			err := applyCircleTransition(cmd.Context(), current.Circles, args[0], func(rec *domain.Circle) error {
				return rec.SetUnit(unit)
			})
			if err != nil {
				return err
			}
			rec, err := current.Circles.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Unit %d, progress %d%%.\n", rec.Unit, rec.Progress)
			return nil
		},
	}
}

func circlesCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a study circle completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := current.Circles.Update(cmd.Context(), args[0], func(rec *domain.Circle) {
				rec.MarkCompleted(time.Now())
			})
			if err != nil {
				return err
			}
			fmt.Println("Completed.")
			return nil
		},
	}
}

func circlesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a study circle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm("Delete study circle " + args[0] + "?") {
				fmt.Println("Cancelled.")
				return nil
			}
			if err := current.Circles.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}

func circlesSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search study circles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := current.Circles.Search(cmd.Context(), args[0])
			if len(results) == 0 {
				fmt.Println("No matches.")
				return nil
			}
			for _, rec := range results {
				fmt.Printf("%s  %-20s %s\n", rec.ID, rec.Locality, rec.Book)
			}
			return nil
		},
	}
}
