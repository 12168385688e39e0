package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"srp/internal/adapters/files"
	"srp/internal/adapters/storage"
	classStore "srp/internal/adapters/storage/childrenclass"
	individualStore "srp/internal/adapters/storage/individual"
	groupStore "srp/internal/adapters/storage/junioryouth"
	localityStore "srp/internal/adapters/storage/locality"
	circleStore "srp/internal/adapters/storage/studycircle"
	"srp/internal/config"
	"srp/internal/domain/export"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

// app holds the opened storage and the store set the commands share.
type app struct {
	cfg config.Config
	kv  storage.KV
	fs  files.FileSystem

	Localities  localityStore.Store
	Individuals individualStore.Store
	Classes     classStore.Store
	Groups      groupStore.Store
	Circles     circleStore.Store
}

var (
	configPath string
	dbPath     string

	current *app
)

// openApp opens the database once and wires the stores.
func openApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	kv, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:         cfg,
		kv:          kv,
		fs:          files.OS{},
		Localities:  localityStore.NewKVStore(kv),
		Individuals: individualStore.NewKVStore(kv),
		Classes:     classStore.NewKVStore(kv),
		Groups:      groupStore.NewKVStore(kv),
		Circles:     circleStore.NewKVStore(kv),
	}, nil
}

var rootCmd = &cobra.Command{
	Use:   "srp",
	Short: export.AppName + " community statistics data collection",
	Long: export.AppName + ` records community-building statistics on this
device: localities, individuals, children's classes, junior youth
groups and study circles. Records stay in local storage; export and
import move them between devices as JSON backups.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		current = a
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if current != nil {
			if err := current.kv.Close(); err != nil {
				log.Printf("close storage: %v", err)
			}
		}
	},
}

// confirm asks a yes/no question on stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// printJSON pretty-prints a record for the show commands.
func printJSON(v any) {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%+v\n", v)
		return
	}
	fmt.Println(string(encoded))
}

// printFieldErrors reports validation failures one field per line.
func printFieldErrors(errors map[string]string) {
	fmt.Println("The entry was not saved:")
	for field, msg := range errors {
		fmt.Printf("  %s: %s\n", field, msg)
	}
}

func main() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "override the database path")

	rootCmd.AddCommand(
		localityCmd(),
		individualsCmd(),
		classesCmd(),
		groupsCmd(),
		circlesCmd(),
		dashboardCmd(),
		reportCmd(),
		exportCmd(),
		importCmd(),
		statsCmd(),
		clearCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
