package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	groupStore "srp/internal/adapters/storage/junioryouth"
	"srp/internal/application/orchestrators"
	domain "srp/internal/domain/junioryouth"
)

// applyGroupTransition runs a transition that can be rejected against a
// read copy first. A rejected transition never rewrites the record.
func applyGroupTransition(ctx context.Context, store groupStore.Store, id string, apply func(*domain.Group) error) error {
	rec, err := store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := apply(&rec); err != nil {
		return err
	}
	return store.Update(ctx, id, func(g *domain.Group) { *g = rec })
}

func groupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Aliases: []string{"group"},
		Short:   "Manage junior youth groups",
	}
	cmd.AddCommand(
		groupsAddCmd(),
		groupsListCmd(),
		groupsShowCmd(),
		groupsUpdateCmd(),
		groupsCompleteBookCmd(),
		groupsDeleteCmd(),
		groupsSearchCmd(),
	)
	return cmd
}

type groupFlags struct {
	locality          string
	animators         string
	currentBook       string
	totalParticipants int
	bahaiParticipants int
	startDate         string
	endDate           string
	status            string
	participants      []string
}

func (gf *groupFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&gf.locality, "locality", "", "locality name")
	f.StringVar(&gf.animators, "animators", "", "animators, comma separated")
	f.StringVar(&gf.currentBook, "current-book", "", "current junior youth text")
	f.IntVar(&gf.totalParticipants, "total-participants", 0, "total participants")
	f.IntVar(&gf.bahaiParticipants, "bahai-participants", 0, "Baha'i participants")
	f.StringVar(&gf.startDate, "start-date", "", "start date (YYYY-MM-DD)")
	f.StringVar(&gf.endDate, "end-date", "", "end date (YYYY-MM-DD)")
	f.StringVar(&gf.status, "status", "", "status (active/completed/suspended)")
	f.StringArrayVar(&gf.participants, "participant", nil, "roster entry, name[:age[:registered]] (repeatable)")
}

func (gf *groupFlags) record() domain.Group {
	return domain.Group{
		Locality:          gf.locality,
		Animators:         splitList(gf.animators),
		CurrentBook:       gf.currentBook,
		TotalParticipants: gf.totalParticipants,
		BahaiParticipants: gf.bahaiParticipants,
		StartDate:         gf.startDate,
		EndDate:           gf.endDate,
		Status:            gf.status,
		Participants:      parseGroupParticipants(gf.participants),
	}
}

func groupsAddCmd() *cobra.Command {
	var gf groupFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a junior youth group",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := orchestrators.ExecuteSaveJuniorYouthGroup(cmd.Context(),
				orchestrators.SaveJuniorYouthGroupInput{Record: gf.record()},
				orchestrators.SaveJuniorYouthGroupDeps{
					GroupStore:      current.Groups,
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
			fmt.Printf("Saved junior youth group %s\n", result.Record.ID)
			return nil
		},
	}
	gf.register(cmd)
	return cmd
}

func groupsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List junior youth groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := current.Groups.List(cmd.Context())
			if len(list) == 0 {
				fmt.Println("No junior youth groups recorded.")
				return nil
			}
			for _, rec := range list {
				fmt.Printf("%s  %-20s %-10s book=%q completed=%d\n",
					rec.ID, rec.Locality, rec.Status, rec.CurrentBook, len(rec.CompletedBooks))
			}
			return nil
		},
	}
}

func groupsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one junior youth group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := current.Groups.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printJSON(rec)
			return nil
		},
	}
}

func groupsUpdateCmd() *cobra.Command {
	var gf groupFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a junior youth group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			err := current.Groups.Update(cmd.Context(), args[0], func(rec *domain.Group) {
				if flags.Changed("locality") {
					rec.Locality = gf.locality
				}
				if flags.Changed("animators") {
					rec.Animators = splitList(gf.animators)
				}
				if flags.Changed("current-book") {
					rec.CurrentBook = gf.currentBook
				}
				if flags.Changed("total-participants") {
					rec.TotalParticipants = gf.totalParticipants
				}
				if flags.Changed("bahai-participants") {
					rec.BahaiParticipants = gf.bahaiParticipants
				}
				if flags.Changed("start-date") {
					rec.StartDate = gf.startDate
				}
				if flags.Changed("end-date") {
					rec.EndDate = gf.endDate
				}
				if flags.Changed("status") {
					rec.Status = gf.status
				}
				if flags.Changed("participant") {
					rec.Participants = parseGroupParticipants(gf.participants)
				}
			})
			if err != nil {
				return err
			}
			fmt.Println("Updated.")
			return nil
		},
	}
	gf.register(cmd)
	return cmd
}

// groupsCompleteBookCmd archives the current text into the completion
// history and advances the group to the next one in the sequence.
func groupsCompleteBookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete-book <id>",
		Short: "Mark the group's current book complete and advance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := applyGroupTransition(cmd.Context(), current.Groups, args[0], func(rec *domain.Group) error {
				return rec.CompleteCurrentBook(time.Now())
			})
			if err != nil {
				return err
			}
			rec, err := current.Groups.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if rec.CurrentBook == "" {
				fmt.Println("Sequence finished. Group marked completed.")
			} else {
				fmt.Printf("Advanced to %q.\n", rec.CurrentBook)
			}
			return nil
		},
	}
}

func groupsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a junior youth group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm("Delete junior youth group " + args[0] + "?") {
				fmt.Println("Cancelled.")
				return nil
			}
			if err := current.Groups.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}

func groupsSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search junior youth groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := current.Groups.Search(cmd.Context(), args[0])
			if len(results) == 0 {
				fmt.Println("No matches.")
				return nil
			}
			for _, rec := range results {
				fmt.Printf("%s  %-20s %s\n", rec.ID, rec.Locality, rec.CurrentBook)
			}
			return nil
		},
	}
}
