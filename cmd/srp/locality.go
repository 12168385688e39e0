package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"srp/internal/application/orchestrators"
	domain "srp/internal/domain/locality"
)

func localityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "locality",
		Aliases: []string{"localities"},
		Short:   "Record and manage locality entries",
	}
	cmd.AddCommand(
		localityAddCmd(),
		localityListCmd(),
		localityShowCmd(),
		localityUpdateCmd(),
		localityDeleteCmd(),
		localitySearchCmd(),
	)
	return cmd
}

// localityFlags binds the form fields onto a command.
func localityFlags(cmd *cobra.Command, rec *domain.Locality) {
	f := cmd.Flags()
	f.StringVar(&rec.Date, "date", "", "reporting date (YYYY-MM-DD)")
	f.StringVar(&rec.Region, "region", "", "region name")
	f.StringVar(&rec.Cluster, "cluster", "", "cluster name")
	f.StringVar(&rec.Locality, "locality", "", "locality name")
	f.StringVar(&rec.FocusNeighbourhoods, "focus-neighbourhoods", "", "focus neighbourhoods")
	f.StringVar(&rec.HasLSA, "has-lsa", "", "local spiritual assembly present (Yes/No)")
	f.StringVar(&rec.HasLocalFund, "has-local-fund", "", "local fund (Yes/No)")
	f.StringVar(&rec.ObservesFeast, "observes-feast", "", "observes feast (Yes/No)")
	f.IntVar(&rec.FeastAttendees, "feast-attendees", 0, "feast attendee count")
	f.StringVar(&rec.ObservesHolyDays, "observes-holy-days", "", "observes holy days (Yes/No)")
	f.IntVar(&rec.HolyDayAttendees, "holy-day-attendees", 0, "holy day attendee count")
	f.StringVar(&rec.HasDevotionals, "has-devotionals", "", "holds devotionals (Yes/No)")
	f.IntVar(&rec.DevotionalMeetings, "devotional-meetings", 0, "devotional meeting count")
	f.IntVar(&rec.DevotionalParticipants, "devotional-participants", 0, "devotional participant count")
	f.IntVar(&rec.FriendsOfFaith, "friends-of-faith", 0, "friends of the faith attending")
	f.StringVar(&rec.ConductsHomeVisits, "conducts-home-visits", "", "conducts home visits (Yes/No)")
	f.IntVar(&rec.HomesVisited, "homes-visited", 0, "homes visited count")
}

func localityAddCmd() *cobra.Command {
	var rec domain.Locality
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a locality entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := orchestrators.ExecuteSaveLocality(cmd.Context(),
				orchestrators.SaveLocalityInput{Record: rec},
				orchestrators.SaveLocalityDeps{LocalityStore: current.Localities},
			)
			if err != nil {
				return err
			}
			if len(result.Errors) > 0 {
				printFieldErrors(result.Errors)
				return fmt.Errorf("validation failed")
			}
			fmt.Printf("Saved locality %s (%s)\n", result.Record.Locality, result.Record.ID)
			return nil
		},
	}
	localityFlags(cmd, &rec)
	return cmd
}

func localityListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List locality entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := current.Localities.List(cmd.Context())
			if len(list) == 0 {
				fmt.Println("No localities recorded.")
				return nil
			}
			for _, rec := range list {
				fmt.Printf("%s  %-20s %-15s %s\n", rec.ID, rec.Locality, rec.Cluster, rec.Date)
			}
			return nil
		},
	}
}

func localityShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one locality entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := current.Localities.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printJSON(rec)
			return nil
		},
	}
}

func localityUpdateCmd() *cobra.Command {
	var rec domain.Locality
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a locality entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			err := current.Localities.Update(cmd.Context(), args[0], func(loc *domain.Locality) {
				if flags.Changed("date") {
					loc.Date = rec.Date
				}
				if flags.Changed("region") {
					loc.Region = rec.Region
				}
				if flags.Changed("cluster") {
					loc.Cluster = rec.Cluster
				}
				if flags.Changed("locality") {
					loc.Locality = rec.Locality
				}
				if flags.Changed("focus-neighbourhoods") {
					loc.FocusNeighbourhoods = rec.FocusNeighbourhoods
				}
				if flags.Changed("has-lsa") {
					loc.HasLSA = rec.HasLSA
				}
				if flags.Changed("has-local-fund") {
					loc.HasLocalFund = rec.HasLocalFund
				}
				if flags.Changed("observes-feast") {
					loc.ObservesFeast = rec.ObservesFeast
				}
				if flags.Changed("feast-attendees") {
					loc.FeastAttendees = rec.FeastAttendees
				}
				if flags.Changed("observes-holy-days") {
					loc.ObservesHolyDays = rec.ObservesHolyDays
				}
				if flags.Changed("holy-day-attendees") {
					loc.HolyDayAttendees = rec.HolyDayAttendees
				}
				if flags.Changed("has-devotionals") {
					loc.HasDevotionals = rec.HasDevotionals
				}
				if flags.Changed("devotional-meetings") {
					loc.DevotionalMeetings = rec.DevotionalMeetings
				}
				if flags.Changed("devotional-participants") {
					loc.DevotionalParticipants = rec.DevotionalParticipants
				}
				if flags.Changed("friends-of-faith") {
					loc.FriendsOfFaith = rec.FriendsOfFaith
				}
				if flags.Changed("conducts-home-visits") {
					loc.ConductsHomeVisits = rec.ConductsHomeVisits
				}
				if flags.Changed("homes-visited") {
					loc.HomesVisited = rec.HomesVisited
				}
			})
			if err != nil {
				return err
			}
			fmt.Println("Updated.")
			return nil
		},
	}
	localityFlags(cmd, &rec)
	return cmd
}

func localityDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a locality entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm("Delete locality entry " + args[0] + "?") {
				fmt.Println("Cancelled.")
				return nil
			}
			if err := current.Localities.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}

func localitySearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search locality entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := current.Localities.Search(cmd.Context(), args[0])
			if len(results) == 0 {
				fmt.Println("No matches.")
				return nil
			}
			for _, rec := range results {
				fmt.Printf("%s  %-20s %-15s %s\n", rec.ID, rec.Locality, rec.Cluster, rec.Date)
			}
			return nil
		},
	}
}
