package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/vyskocilm/tally/internal/log"
	"github.com/vyskocilm/tally/internal/model"
	"github.com/vyskocilm/tally/internal/stats"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

var (
	userConfigPath string // /default/config/path/tally on given OS
	configPath     string // actual config file used (if loaded)

	flagConfigFilePath string // value of --config flag
	flagVerbose        bool   // value of --verbose flag

	flagCount model.Selection // value of -l/-w/-m/-c flags
	flagHuman bool            // value of -H flag
)

var rootCmd = &cobra.Command{
	Use:          "tally [flags] [file ...]",
	Short:        "Count lines, words, characters and bytes of files or standard input",
	RunE:         doCount,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "version provides a version of tally",
	RunE:  doVersion,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "config prints the effective configuration as YAML",
	RunE:  doConfig,
}

func init() {
	// user configuration
	d, err := os.UserConfigDir()
	if err != nil {
		panic(err)
	}
	userConfigPath = filepath.Join(d, "tally")
}

func main() {
	// root flags
	rootCmd.PersistentFlags().StringVar(&flagConfigFilePath, "config", "", "Config file to load - default is tally.yaml in current directory or in "+userConfigPath)
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "verbose logging")

	registerCountFlags(rootCmd.Flags(), &flagCount, &flagHuman)

	// never print messages and usage
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)

	if cmd, err := rootCmd.ExecuteC(); err != nil {
		slog.Error("tally failed", "err", err)
		if strings.HasPrefix(err.Error(), "unknown command") {
			_ = rootCmd.Help() // ./tally bflmp
		} else {
			_ = cmd.Help() // ./tally version gfagf (extra arg)
		}
		os.Exit(1)
	}
}

// registerCountFlags wires the counter switches into flags. Combined short
// flags like -lwc are the union of the individual letters, an unknown letter
// is a hard error, and everything from the first non-flag argument on is a
// file name, even when it looks like a flag.
func registerCountFlags(flags *pflag.FlagSet, sel *model.Selection, human *bool) {
	flags.SetInterspersed(false)
	flags.BoolVarP(&sel.Lines, "lines", "l", false, "print the newline counts")
	flags.BoolVarP(&sel.Words, "words", "w", false, "print the word counts")
	flags.BoolVarP(&sel.Chars, "chars", "m", false, "print the character counts")
	flags.BoolVarP(&sel.Bytes, "bytes", "c", false, "print the byte counts")
	flags.BoolVarP(human, "human", "H", false, "print counts with grouped digits")
}

func doVersion(cmd *cobra.Command, args []string) error {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return fmt.Errorf("tally: version info not available")
	}

	if configPath != "" {
		fmt.Printf("config: %s\n", configPath)
	}
	fmt.Printf("tally:  %s\n", info.Main.Version)
	fmt.Printf("go:     %s\n", info.GoVersion)
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			fmt.Printf("commit: %s\n", s.Value)
		case "vcs.time":
			fmt.Printf("date:   %s\n", s.Value)
		case "vcs.modified":
			fmt.Printf("dirty:  %s\n", s.Value)
		}
	}
	fmt.Println()

	return nil
}

func doConfig(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unsupported arguments: %s", strings.Join(args, ", "))
	}
	config, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(os.Stdout)
	defer func() {
		_ = enc.Close()
	}()
	return enc.Encode(config)
}

func doCount(cmd *cobra.Command, args []string) error {
	config, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	attrs := slog.Group("tally",
		slog.String("cmd", "count"),
		slog.Int("pid", os.Getpid()),
		slog.String("run", uuid.NewString()),
	)
	ctx = log.ContextAttrs(ctx, attrs)
	slog.DebugContext(ctx, "", "config", config)
	slog.DebugContext(ctx, "", "args", args)

	// command line flags extend the configured selection, an empty
	// selection means lines, words and bytes
	selection := config.Count.Union(flagCount)
	if selection.IsZero() {
		selection = model.DefaultSelection()
	}

	counter := stats.New("tally")
	tally, err := NewTally(config, selection, counter, args)
	if err != nil {
		return err
	}
	return tally.Do(ctx, os.Stdout, os.Stderr)
}

func loadConfig(_ *cobra.Command, _ []string) (model.Config, error) {
	if envConfig, ok := os.LookupEnv("TALLYCONFIG"); ok {
		configPath = envConfig
	} else if flagConfigFilePath != "" {
		configPath = flagConfigFilePath
	} else {
		for _, d := range []string{".", userConfigPath} {
			path := filepath.Join(d, "tally.yaml")
			if exists(path) {
				configPath = path
				break
			}
		}
	}

	var config model.Config
	if configPath == "" {
		config = model.DefaultConfig()
	} else {
		var err error
		config, err = model.LoadConfigFromPath(configPath)
		if err != nil {
			return config, err
		}
	}

	// --verbose and --human have a precedence over config file
	if flagVerbose {
		config.Service.Verbose = true
	}
	if flagHuman {
		config.Service.Human = true
	}

	// initialize logging
	sink, err := log.Output(config.Service.Log)
	if err != nil {
		return config, err
	}
	slog.SetDefault(log.NewWriter(sink, config.Service.Verbose))

	slog.Debug("tally count", "configPath", configPath)
	return config, nil
}

func exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
