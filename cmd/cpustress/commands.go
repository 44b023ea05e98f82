package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/config"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/cyclelog"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/domain"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/follow"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/history"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/sched"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/tui"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/web/api"
)

var (
	runCycles    int
	runStrategy  string
	historyLimit int
	logFollow    bool
	servePort    int
)

func init() {
	// run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the iteration test",
		RunE:  runRun,
	}
	runCmd.Flags().IntVar(&runCycles, "cycles", 0, "number of cycles (prompts when omitted)")
	runCmd.Flags().StringVar(&runStrategy, "strategy", "", "measurement strategy (fixed-window or wall-second)")
	rootCmd.AddCommand(runCmd)

	// history command
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List archived runs",
		RunE:  runHistory,
	}
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "number of runs to show")

	showCmd := &cobra.Command{
		Use:   "show RUN",
		Short: "Show the cycles of one archived run",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryShow,
	}
	historyCmd.AddCommand(showCmd)
	rootCmd.AddCommand(historyCmd)

	// log command
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Print the master log",
		RunE:  runLog,
	}
	logCmd.Flags().BoolVar(&logFollow, "follow", false, "keep printing as new blocks are appended")
	rootCmd.AddCommand(logCmd)

	// tui command
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse the run history interactively",
		RunE:  runTUI,
	}
	rootCmd.AddCommand(tuiCmd)

	// serve command
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the run archive and a live log feed over HTTP",
		RunE:  runServe,
	}
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)

	// schedule command
	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run unattended on the cron cadences in the config file",
		RunE:  runSchedule,
	}
	rootCmd.AddCommand(scheduleCmd)
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return config.Load(path)
}

func openStore(cfg *config.Config) (*history.Store, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.General.DatabasePath), 0o755); err != nil {
		return nil, err
	}
	return history.New(cfg.General.DatabasePath)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No archived runs yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTARTED\tSTRATEGY\tCYCLES\tSUM\tAVG OPS/SEC")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			run.ID,
			domain.Timestamp(run.StartedAt),
			run.Strategy,
			run.Cycles,
			humanize.Comma(int64(run.Sum)),
			humanize.Comma(int64(run.Average)),
		)
	}
	return w.Flush()
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.GetRun(args[0])
	if err != nil {
		return fmt.Errorf("run %s: %w", args[0], err)
	}

	fmt.Printf("Run %s (%s), %d cycles\n", run.ID, run.Strategy, run.Cycles)
	fmt.Printf("Started %s ... Ended %s\n", domain.Timestamp(run.StartedAt), domain.Timestamp(run.EndedAt))
	fmt.Printf("Average %s operations per second\n\n", humanize.Comma(int64(run.Average)))

	cycles, err := store.ListCycles(run.ID)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CYCLE\tITERATIONS\tSTARTED\tENDED")
	for _, c := range cycles {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			c.Index,
			humanize.Comma(int64(c.Iterations)),
			domain.Timestamp(c.StartedAt),
			domain.Timestamp(c.EndedAt),
		)
	}
	return w.Flush()
}

func runLog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := cyclelog.Resolve(cfg.General.LogRoot).MasterPath()
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	os.Stdout.Write(data)

	if !logFollow {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tailer, err := follow.NewTailer(path, func(line string) {
		fmt.Println(line)
	})
	if err != nil {
		return err
	}
	defer tailer.Stop()
	tailer.Start(ctx)

	<-ctx.Done()
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	p := tea.NewProgram(tui.New(store), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	dirs := cyclelog.Resolve(cfg.General.LogRoot)
	if err := dirs.Ensure(); err != nil {
		return err
	}

	port := cfg.Web.Port
	if servePort != 0 {
		port = servePort
	}
	addr := fmt.Sprintf("%s:%d", cfg.Web.Host, port)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving run archive on http://%s\n", addr)
	server := api.NewServer(store, dirs.MasterPath(), addr)
	if err := server.Start(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func runSchedule(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(cfg.Schedule) == 0 {
		return fmt.Errorf("no [[schedule]] entries in config")
	}

	entries := make([]sched.Entry, len(cfg.Schedule))
	for i, e := range cfg.Schedule {
		entries[i] = sched.Entry{Name: e.Name, Cron: e.Cron, Cycles: e.Cycles}
	}

	scheduler, err := sched.New(entries)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = scheduler.Run(ctx, func(name string, cycles int) error {
		fmt.Printf("Scheduled run %q: %d cycle(s)\n", name, cycles)
		return performRun(cfg, cycles)
	})
	if ctx.Err() != nil {
		return nil // Clean shutdown on signal
	}
	return err
}
