package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"srp/internal/application/orchestrators"
	domain "srp/internal/domain/individual"
)

func individualsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "individuals",
		Aliases: []string{"individual"},
		Short:   "Record and manage individual entries",
	}
	cmd.AddCommand(
		individualsAddCmd(),
		individualsListCmd(),
		individualsShowCmd(),
		individualsDeleteCmd(),
		individualsSearchCmd(),
	)
	return cmd
}

// individualsAddCmd records one entry with a single person row. Multiple
// people entered together in the original form arrive here as repeated
// add calls or an imported backup.
func individualsAddCmd() *cobra.Command {
	var (
		rec    domain.Entry
		person domain.Person
		books  string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an individual",
		RunE: func(cmd *cobra.Command, args []string) error {
			if books != "" {
				person.CompletedRuhiBooks = strings.Split(books, ",")
				for i := range person.CompletedRuhiBooks {
					person.CompletedRuhiBooks[i] = strings.TrimSpace(person.CompletedRuhiBooks[i])
				}
			}
			rec.Individuals = []domain.Person{person}

			result, err := orchestrators.ExecuteSaveIndividuals(cmd.Context(),
				orchestrators.SaveIndividualsInput{Record: rec},
				orchestrators.SaveIndividualsDeps{IndividualStore: current.Individuals},
			)
			if err != nil {
				return err
			}
			if len(result.Errors) > 0 {
				printFieldErrors(result.Errors)
				return fmt.Errorf("validation failed")
			}
			fmt.Printf("Saved %s (%s)\n", person.FullName(), result.Record.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&rec.Region, "region", "", "region name")
	f.StringVar(&rec.Cluster, "cluster", "", "cluster name")
	f.StringVar(&rec.Locality, "locality", "", "locality name")
	f.StringVar(&person.FirstName, "first-name", "", "first name")
	f.StringVar(&person.FamilyName, "family-name", "", "family name")
	f.StringVar(&person.Sex, "sex", "", "sex (M/F)")
	f.StringVar(&person.Age, "age", "", "age")
	f.StringVar(&person.DateOfBirth, "date-of-birth", "", "date of birth (YYYY-MM-DD)")
	f.StringVar(&person.Registered, "registered", "", "registered Baha'i (Y/N)")
	f.StringVar(&person.EnrollmentDate, "enrollment-date", "", "enrollment date (YYYY-MM-DD)")
	f.StringVar(&person.Address, "address", "", "address")
	f.StringVar(&person.Telephone, "telephone", "", "telephone")
	f.StringVar(&person.Email, "email", "", "email")
	f.StringVar(&books, "completed-books", "", "completed Ruhi books, comma separated (e.g. book1,book5)")
	return cmd
}

func individualsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List individual entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := current.Individuals.List(cmd.Context())
			if len(list) == 0 {
				fmt.Println("No individuals recorded.")
				return nil
			}
			for _, rec := range list {
				for _, p := range rec.Individuals {
					fmt.Printf("%s  %-25s %-3s %-12s %s\n",
						rec.ID, p.FullName(), p.Sex, p.AgeCategory(), rec.Locality)
				}
			}
			return nil
		},
	}
}

func individualsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one individual entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := current.Individuals.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printJSON(rec)
			return nil
		},
	}
}

func individualsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an individual entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm("Delete individual entry " + args[0] + "?") {
				fmt.Println("Cancelled.")
				return nil
			}
			if err := current.Individuals.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}

func individualsSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search individual entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := current.Individuals.Search(cmd.Context(), args[0])
			if len(results) == 0 {
				fmt.Println("No matches.")
				return nil
			}
			for _, rec := range results {
				for _, p := range rec.Individuals {
					fmt.Printf("%s  %-25s %s\n", rec.ID, p.FullName(), rec.Locality)
				}
			}
			return nil
		},
	}
}
