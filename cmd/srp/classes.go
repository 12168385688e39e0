package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"srp/internal/application/orchestrators"
	domain "srp/internal/domain/childrenclass"
)

func classesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "classes",
		Aliases: []string{"class"},
		Short:   "Manage children's classes",
	}
	cmd.AddCommand(
		classesAddCmd(),
		classesListCmd(),
		classesShowCmd(),
		classesUpdateCmd(),
		classesDeleteCmd(),
		classesSearchCmd(),
	)
	return cmd
}

type classFlags struct {
	locality          string
	teachers          string
	grade             string
	startDate         string
	endDate           string
	totalParticipants int
	bahaiParticipants int
	status            string
	children          []string
}

func (cf *classFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&cf.locality, "locality", "", "locality name")
	f.StringVar(&cf.teachers, "teachers", "", "teacher names")
	f.StringVar(&cf.grade, "grade", "", "grade (G1..G6)")
	f.StringVar(&cf.startDate, "start-date", "", "start date (YYYY-MM-DD)")
	f.StringVar(&cf.endDate, "end-date", "", "end date (YYYY-MM-DD)")
	f.IntVar(&cf.totalParticipants, "total-participants", 0, "total participants")
	f.IntVar(&cf.bahaiParticipants, "bahai-participants", 0, "Baha'i participants")
	f.StringVar(&cf.status, "status", "", "status (active/completed/suspended)")
	f.StringArrayVar(&cf.children, "child", nil, "roster entry, name[:age[:registered]] (repeatable)")
}

func (cf *classFlags) record() domain.Class {
	return domain.Class{
		Locality:          cf.locality,
		Teachers:          cf.teachers,
		Grade:             cf.grade,
		StartDate:         cf.startDate,
		EndDate:           cf.endDate,
		TotalParticipants: cf.totalParticipants,
		BahaiParticipants: cf.bahaiParticipants,
		Status:            cf.status,
		Children:          parseChildren(cf.children),
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func classesAddCmd() *cobra.Command {
	var cf classFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a children's class",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := orchestrators.ExecuteSaveChildrenClass(cmd.Context(),
				orchestrators.SaveChildrenClassInput{Record: cf.record()},
				orchestrators.SaveChildrenClassDeps{ClassStore: current.Classes},
			)
			if err != nil {
				return err
			}
			if len(result.Errors) > 0 {
				printFieldErrors(result.Errors)
				return fmt.Errorf("validation failed")
			}
			fmt.Printf("Saved children's class %s\n", result.Record.ID)
			return nil
		},
	}
	cf.register(cmd)
	return cmd
}

func classesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List children's classes",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := current.Classes.List(cmd.Context())
			if len(list) == 0 {
				fmt.Println("No children's classes recorded.")
				return nil
			}
			for _, rec := range list {
				fmt.Printf("%s  %-20s %-4s %-10s participants=%d\n",
					rec.ID, rec.Locality, rec.Grade, rec.Status, rec.TotalParticipants)
			}
			return nil
		},
	}
}

func classesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one children's class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := current.Classes.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printJSON(rec)
			return nil
		},
	}
}

func classesUpdateCmd() *cobra.Command {
	var cf classFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a children's class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			err := current.Classes.Update(cmd.Context(), args[0], func(rec *domain.Class) {
				if flags.Changed("locality") {
					rec.Locality = cf.locality
				}
				if flags.Changed("teachers") {
					rec.Teachers = cf.teachers
				}
				if flags.Changed("grade") {
					rec.Grade = cf.grade
				}
				if flags.Changed("start-date") {
					rec.StartDate = cf.startDate
				}
				if flags.Changed("end-date") {
					rec.EndDate = cf.endDate
				}
				if flags.Changed("total-participants") {
					rec.TotalParticipants = cf.totalParticipants
				}
				if flags.Changed("bahai-participants") {
					rec.BahaiParticipants = cf.bahaiParticipants
				}
				if flags.Changed("status") {
					rec.Status = cf.status
				}
				if flags.Changed("child") {
					rec.Children = parseChildren(cf.children)
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
	return cmd
}

func classesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a children's class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm("Delete children's class " + args[0] + "?") {
				fmt.Println("Cancelled.")
				return nil
			}
			if err := current.Classes.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}

func classesSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search children's classes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := current.Classes.Search(cmd.Context(), args[0])
			if len(results) == 0 {
				fmt.Println("No matches.")
				return nil
			}
			for _, rec := range results {
				fmt.Printf("%s  %-20s %s\n", rec.ID, rec.Locality, rec.Grade)
			}
			return nil
		},
	}
}
