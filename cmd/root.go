// Package cmd implements the CLI command structure for leaguetrack.
package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"leaguetrack/internal/config"
	"leaguetrack/internal/export"
	"leaguetrack/internal/group"
	"leaguetrack/internal/logging"
	"leaguetrack/internal/search"
	"leaguetrack/internal/state"
	"leaguetrack/internal/stats"
	"leaguetrack/internal/task"
	"leaguetrack/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// logger is configured from the loaded config at the start of Run.
var logger = logging.New(logging.DefaultOptions())

// Run executes the leaguetrack CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("leaguetrack", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	logger = logging.NewFromConfig(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller)
	logger.Debug("config loaded",
		"tasks", cfg.TasksFile, "tasks_csv", cfg.TasksCSVFile, "state", cfg.StateFile)

	// Determine the subcommand
	// If no args or first arg is a flag, use "tui" as default
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		if !strings.HasPrefix(remainingArgs[0], "-") {
			subcommand = remainingArgs[0]
			remainingArgs = remainingArgs[1:]
		}
	}

	// Execute the subcommand
	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "ls":
		return lsCommand(ctx, cfg, remainingArgs)
	case "stats":
		return statsCommand(ctx, cfg, remainingArgs)
	case "tags":
		return tagsCommand(ctx, cfg, remainingArgs)
	case "complete":
		return markCommand(ctx, cfg, remainingArgs, true)
	case "uncomplete":
		return markCommand(ctx, cfg, remainingArgs, false)
	case "favorite":
		return favoriteCommand(ctx, cfg, remainingArgs)
	case "reset":
		return resetCommand(cfg, remainingArgs)
	case "export":
		return exportCommand(ctx, cfg, remainingArgs)
	case "check":
		return checkCommand(ctx, cfg, remainingArgs)
	case "config":
		return configCommand(args, remainingArgs)
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// openStore opens the progress store and hooks save logging.
func openStore(cfg *config.Config) *state.Store {
	store := state.Open(cfg.StateFile)
	store.SetOnChange(func() {
		logger.Debug("state saved", "path", cfg.StateFile)
	})
	return store
}

// loadTasks runs the source chain: JSON dataset first, CSV fallback.
func loadTasks(ctx context.Context, cfg *config.Config) ([]task.Task, error) {
	return task.Load(ctx,
		task.JSONSource{Location: cfg.TasksFile},
		task.CSVSource{Location: cfg.TasksCSVFile},
	)
}

// tuiCommand launches the interactive tracker.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("leaguetrack tui", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	store := openStore(cfg)
	return ui.RunTUI(ctx, cfg, store)
}

// lsCommand lists tasks grouped into sections, with optional filters.
func lsCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("leaguetrack ls", flag.ContinueOnError)
	tagFilter := fs.String("tag", "", "Show only the section for this tag")
	query := fs.String("search", "", "Filter tasks by substring match")
	verbose := fs.Bool("v", false, "Show more details")

	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) > 1 {
		return fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}
	if len(remaining) == 1 && *query == "" {
		*query = remaining[0]
	}

	tasks, err := loadTasks(ctx, cfg)
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	store := openStore(cfg)

	buckets := group.Build(tasks, store.CompletedSet(), store.FavoriteSet())
	buckets = search.Filter(buckets, *query)

	printed := 0
	for _, b := range buckets {
		if *tagFilter != "" && b.Key != *tagFilter {
			continue
		}
		fmt.Printf("%s (%d):\n", b.Title, b.Count())
		for _, t := range b.Tasks {
			printTask(t, store, *verbose)
		}
		fmt.Println()
		printed++
	}
	if printed == 0 {
		fmt.Println("No tasks found.")
	}
	return nil
}

// statsCommand prints the progress summary.
func statsCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("leaguetrack stats", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	tasks, err := loadTasks(ctx, cfg)
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	store := openStore(cfg)
	summary := stats.Compute(tasks, store.CompletedSet(), store.FavoriteSet())

	fmt.Printf("Tasks:     %d/%d completed (%.1f%%)\n",
		summary.CompletedTasks, summary.TotalTasks, summary.PercentComplete())
	fmt.Printf("Points:    %d/%d earned\n", summary.CompletedPoints, summary.TotalPoints)
	fmt.Printf("Favorites: %d\n", summary.FavoriteTasks)
	return nil
}

// tagsCommand prints the tag census: every distinct tag with its task count.
func tagsCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("leaguetrack tags", flag.ContinueOnError)
	byCount := fs.Bool("by-count", false, "Sort by task count instead of tag name")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	tasks, err := loadTasks(ctx, cfg)
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}

	counts := task.CountTags(tasks)
	if *byCount {
		sort.SliceStable(counts, func(i, j int) bool {
			return counts[i].Count > counts[j].Count
		})
	}
	if len(counts) == 0 {
		fmt.Println("No tags found.")
		return nil
	}
	for _, tc := range counts {
		fmt.Printf("  %-20s %d\n", tc.Tag, tc.Count)
	}
	return nil
}

// markCommand marks one or more tasks complete or incomplete by id.
func markCommand(ctx context.Context, cfg *config.Config, args []string, done bool) error {
	name := "complete"
	if !done {
		name = "uncomplete"
	}
	fs := flag.NewFlagSet("leaguetrack "+name, flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	ids, err := parseIDs(fs.Args())
	if err != nil {
		return err
	}

	tasks, err := loadTasks(ctx, cfg)
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	store := openStore(cfg)

	for _, id := range ids {
		t, ok := taskByID(tasks, id)
		if !ok {
			return fmt.Errorf("no task with id %d", id)
		}
		if done {
			if err := store.MarkComplete(id); err != nil {
				return fmt.Errorf("marking task %d: %w", id, err)
			}
			fmt.Printf("Completed: [%d] %s (%d pts)\n", id, t.Name, t.Points)
		} else {
			if err := store.MarkIncomplete(id); err != nil {
				return fmt.Errorf("unmarking task %d: %w", id, err)
			}
			fmt.Printf("Incomplete: [%d] %s\n", id, t.Name)
		}
	}
	return nil
}

// favoriteCommand toggles the favorite flag on one or more tasks by id.
func favoriteCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("leaguetrack favorite", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	ids, err := parseIDs(fs.Args())
	if err != nil {
		return err
	}

	tasks, err := loadTasks(ctx, cfg)
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	store := openStore(cfg)

	for _, id := range ids {
		t, ok := taskByID(tasks, id)
		if !ok {
			return fmt.Errorf("no task with id %d", id)
		}
		fav, err := store.ToggleFavorite(id)
		if err != nil {
			return fmt.Errorf("toggling favorite %d: %w", id, err)
		}
		if fav {
			fmt.Printf("Favorited: [%d] %s\n", id, t.Name)
		} else {
			fmt.Printf("Unfavorited: [%d] %s\n", id, t.Name)
		}
	}
	return nil
}

// resetCommand clears all progress. Destructive, so it requires -yes or
// an interactive y confirmation.
func resetCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("leaguetrack reset", flag.ContinueOnError)
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	fs.BoolVar(yes, "y", false, "Skip the confirmation prompt")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if !*yes {
		ok, err := confirm(os.Stdin, os.Stdout,
			"Reset all progress? This clears completed and favorite tasks.")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}

	store := openStore(cfg)
	if err := store.ResetAll(); err != nil {
		return fmt.Errorf("resetting progress: %w", err)
	}
	fmt.Println("Progress reset.")
	return nil
}

// exportCommand writes the task list with progress flags to a file or
// stdout in json, csv, or pdf form.
func exportCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("leaguetrack export", flag.ContinueOnError)
	format := fs.String("format", "json", "Output format (json|csv|pdf)")
	output := fs.String("o", "", "Output file (default stdout, required for pdf)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	tasks, err := loadTasks(ctx, cfg)
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	store := openStore(cfg)

	data, err := export.New(tasks, store.CompletedSet(), store.FavoriteSet()).Export(*format)
	if err != nil {
		return err
	}

	if *output == "" {
		if *format == "pdf" {
			return fmt.Errorf("pdf export requires -o")
		}
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", *output, err)
	}
	fmt.Printf("Exported %d tasks to %s\n", len(tasks), *output)
	return nil
}

// checkCommand verifies the dataset sources, the state file, and the
// configuration, reporting each check.
func checkCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("leaguetrack check", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	fmt.Println("Leaguetrack Check")
	fmt.Println("=================")
	fmt.Println()

	allOK := true

	// Dataset sources
	fmt.Printf("Task dataset: %s\n", cfg.TasksFile)
	data, err := readSource(ctx, cfg.TasksFile)
	if err != nil {
		fmt.Printf("  ⚠️  Unreadable: %v\n", err)
		fmt.Printf("CSV fallback: %s\n", cfg.TasksCSVFile)
		if _, csvErr := readSource(ctx, cfg.TasksCSVFile); csvErr != nil {
			fmt.Printf("  ❌ Unreadable: %v\n", csvErr)
			allOK = false
		} else {
			fmt.Println("  ✅ OK")
		}
	} else {
		result := task.Validate(data)
		for _, w := range result.Warnings {
			fmt.Printf("  ⚠️  %s\n", w)
		}
		if result.Valid {
			if result.UsedSchema {
				fmt.Println("  ✅ Valid (schema)")
			} else {
				fmt.Println("  ✅ Valid")
			}
		} else {
			fmt.Println("  ❌ Validation failed:")
			for _, e := range result.Errors {
				fmt.Printf("     - %v\n", e)
			}
			allOK = false
		}
	}
	fmt.Println()

	// Loadability through the real source chain
	tasks, err := loadTasks(ctx, cfg)
	if err != nil {
		fmt.Printf("❌ Load failed: %v\n", err)
		allOK = false
	} else {
		fmt.Printf("✅ Loaded %d tasks (%d points total)\n", len(tasks), task.TotalPoints(tasks))
		if *verbose {
			for _, tc := range task.CountTags(tasks) {
				fmt.Printf("   %-20s %d\n", tc.Tag, tc.Count)
			}
		}
	}
	fmt.Println()

	// State file
	fmt.Printf("State file: %s\n", cfg.StateFile)
	if _, err := os.Stat(cfg.StateFile); err != nil {
		if os.IsNotExist(err) {
			fmt.Println("  ⚠️  Not found (will be created on first change)")
		} else {
			fmt.Printf("  ❌ Error: %v\n", err)
			allOK = false
		}
	} else {
		store := openStore(cfg)
		fmt.Printf("  ✅ OK (%d completed, %d favorites)\n",
			len(store.Completed()), len(store.Favorites()))
		if tasks != nil {
			stale := staleIDs(tasks, store.Completed())
			stale = append(stale, staleIDs(tasks, store.Favorites())...)
			if len(stale) > 0 {
				fmt.Printf("  ⚠️  Ids not present in the dataset: %v\n", stale)
			}
		}
	}
	fmt.Println()

	// Config file
	configFile := config.ActiveConfigFile()
	if configFile == "" {
		fmt.Println("Config file: (none, using defaults)")
	} else {
		fmt.Printf("Config file: %s\n", configFile)
		fmt.Println("  ✅ OK")
	}
	fmt.Println()

	if allOK {
		fmt.Println("✅ All checks passed!")
		return nil
	}
	fmt.Println("⚠️  Some checks failed.")
	return fmt.Errorf("check failed")
}

// configCommand prints the resolved configuration with the source of each
// value, or an example config file with -example.
func configCommand(globalArgs, args []string) error {
	fs := flag.NewFlagSet("leaguetrack config", flag.ContinueOnError)
	example := fs.Bool("example", false, "Print an example config file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if *example {
		fmt.Print(config.ExampleConfig())
		return nil
	}

	// Reload with source tracking on a fresh flag set; the global set has
	// already consumed its flags.
	refs := flag.NewFlagSet("leaguetrack", flag.ContinueOnError)
	refs.SetOutput(io.Discard)
	refs.Bool("help", false, "")
	refs.Bool("h", false, "")
	refs.Bool("version", false, "")
	refs.Bool("v", false, "")
	cws, err := config.LoadWithSources(refs, globalArgs)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cfg := cws.Config
	rows := []struct {
		name  string
		value string
	}{
		{"tasks_file", cfg.TasksFile},
		{"tasks_csv_file", cfg.TasksCSVFile},
		{"state_file", cfg.StateFile},
		{"columns", strconv.Itoa(cfg.Columns)},
		{"log_level", cfg.LogLevel},
		{"log_format", cfg.LogFormat},
		{"log_timestamps", strconv.FormatBool(cfg.LogTimestamps)},
		{"log_caller", strconv.FormatBool(cfg.LogCaller)},
	}
	for _, row := range rows {
		source := cws.Sources[row.name]
		if source == "" {
			source = config.SourceDefault
		}
		fmt.Printf("  %-16s %-40s (%s)\n", row.name, row.value, source)
	}
	return nil
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Printf("leaguetrack version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Leaguetrack - A Catalyst League task tracker")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  leaguetrack [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui            Launch the interactive tracker (default command)")
	fmt.Fprintln(w, "  ls [query]     List tasks grouped into sections")
	fmt.Fprintln(w, "  stats          Show progress summary")
	fmt.Fprintln(w, "  tags           Show every tag with its task count")
	fmt.Fprintln(w, "  complete id... Mark tasks complete")
	fmt.Fprintln(w, "  uncomplete id... Mark tasks incomplete")
	fmt.Fprintln(w, "  favorite id... Toggle favorite on tasks")
	fmt.Fprintln(w, "  reset          Clear all progress (asks for confirmation)")
	fmt.Fprintln(w, "  export         Export tasks with progress (json|csv|pdf)")
	fmt.Fprintln(w, "  check          Verify dataset, state file, and config")
	fmt.Fprintln(w, "  config         Show resolved configuration and value sources")
	fmt.Fprintln(w, "  version        Show version information")
	fmt.Fprintln(w, "  help           Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ls Options (use with 'ls' command):")
	fmt.Fprintln(w, "  -tag string")
	fmt.Fprintln(w, "        Show only the section for this tag")
	fmt.Fprintln(w, "  -search string")
	fmt.Fprintln(w, "        Filter tasks by substring match")
	fmt.Fprintln(w, "  -v    Show more details")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export Options (use with 'export' command):")
	fmt.Fprintln(w, "  -format string")
	fmt.Fprintln(w, "        Output format: json, csv, or pdf (default json)")
	fmt.Fprintln(w, "  -o string")
	fmt.Fprintln(w, "        Output file (default stdout, required for pdf)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Reset Options (use with 'reset' command):")
	fmt.Fprintln(w, "  -y, -yes")
	fmt.Fprintln(w, "        Skip the confirmation prompt")
}

// printTask prints a single task line, plus details when verbose.
func printTask(t task.Task, store *state.Store, verbose bool) {
	mark := " "
	if store.IsCompleted(t.ID) {
		mark = "x"
	}
	fav := " "
	if store.IsFavorite(t.ID) {
		fav = "★"
	}
	fmt.Printf("  [%s]%s [%d] %s (%d pts)\n", mark, fav, t.ID, t.Name, t.Points)

	if verbose {
		if t.Area != "" {
			fmt.Printf("        Area: %s\n", t.Area)
		}
		if t.Information != "" {
			fmt.Printf("        Info: %s\n", t.Information)
		}
		if t.Requirements != "" {
			fmt.Printf("        Requires: %s\n", t.Requirements)
		}
		if len(t.Tags) > 0 {
			fmt.Printf("        Tags: %s\n", strings.Join(t.Tags, ", "))
		}
	}
}

// parseIDs converts positional arguments to task ids.
func parseIDs(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("at least one task id is required")
	}
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil || id < 0 {
			return nil, fmt.Errorf("invalid task id: %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func taskByID(tasks []task.Task, id int) (task.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}

// staleIDs returns the ids in the given list that no loaded task carries.
func staleIDs(tasks []task.Task, ids []int) []int {
	known := make(map[int]bool, len(tasks))
	for _, t := range tasks {
		known[t.ID] = true
	}
	var stale []int
	for _, id := range ids {
		if !known[id] {
			stale = append(stale, id)
		}
	}
	return stale
}

// confirm asks a yes/no question and returns true only on y/yes.
func confirm(r io.Reader, w io.Writer, question string) (bool, error) {
	fmt.Fprintf(w, "%s (y/N) ", question)
	reader := bufio.NewReader(r)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// readSource reads a dataset location: local file path or http(s) URL.
func readSource(ctx context.Context, location string) ([]byte, error) {
	return task.ReadSource(ctx, location)
}
