package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/tomaspre/physviz/internal/config"
	"github.com/tomaspre/physviz/internal/scene"
	"github.com/tomaspre/physviz/internal/scenes"
	"github.com/tomaspre/physviz/internal/store"
	"github.com/tomaspre/physviz/internal/ui"
)

var (
	dataDir    string
	configFile string
	fps        int
	theme      string
	preset     string
	setVars    []string
	saveRun    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "physviz",
		Short: "interactive physics formula visualizations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			app, err := ui.New(cfg, "", nil)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
			return err
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultData, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run [scene]",
		Short: "open one scene directly",
		Args:  cobra.ExactArgs(1),
		RunE:  runScene,
	}
	runCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	runCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset variables")
	runCmd.Flags().StringArrayVar(&setVars, "set", nil, "override a variable (name=value, repeatable)")
	runCmd.Flags().BoolVar(&saveRun, "save", false, "save the session on exit")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list available scenes",
		RunE:  listScenes,
	}

	infoCmd := &cobra.Command{
		Use:   "info [scene]",
		Short: "show a scene's variables and presets",
		Args:  cobra.ExactArgs(1),
		RunE:  sceneInfo,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scene]",
		Short: "list presets for a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for scene: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, n := range names {
				fmt.Printf("  %s\n", n)
			}
			return nil
		},
	}

	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "list saved sessions",
		RunE:  listSessions,
	}

	rootCmd.AddCommand(runCmd, listCmd, infoCmd, presetsCmd, sessionsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	// CLI flags override config file values.
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}

func runScene(cmd *cobra.Command, args []string) error {
	name := args[0]
	if _, err := scenes.Get(name); err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(scenes.Names(), ", "))
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	vars := scene.Variables{}
	for k, v := range cfg.Variables {
		vars[k] = v
	}
	if preset != "" {
		pv := config.GetPreset(name, preset)
		if pv == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		for k, v := range pv {
			vars[k] = v
		}
	}
	for _, kv := range setVars {
		k, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q, want name=value", kv)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid --set %q: %w", kv, err)
		}
		vars[k] = v
	}

	app, err := ui.New(cfg, name, vars)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	if saveRun {
		a, ok := final.(ui.App)
		if !ok {
			return fmt.Errorf("unexpected model type")
		}
		st := store.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(a.SceneName(), cfg.FPS, a.FrameCount(), a.FinalVars(), a.Timeline())
		if err != nil {
			return err
		}
		fmt.Printf("session saved: %s\n", id)
	}
	return nil
}

func listScenes(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENE\tDESCRIPTION\tVARIABLES\tPRESETS")
	for _, e := range scenes.List() {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\n",
			e.Name, e.Blurb, len(e.Defaults), len(config.ListPresets(e.Name)))
	}
	return w.Flush()
}

func sceneInfo(cmd *cobra.Command, args []string) error {
	e, err := scenes.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s - %s\n\nvariables (defaults):\n", e.Name, e.Blurb)

	keys := make([]string, 0, len(e.Defaults))
	for k := range e.Defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-14s %g\n", k, e.Defaults[k])
	}

	if names := config.ListPresets(e.Name); len(names) > 0 {
		fmt.Println("\npresets:")
		for _, n := range names {
			fmt.Printf("  %s\n", n)
		}
	}
	return nil
}

func listSessions(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	sessions, err := st.List()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("no sessions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tTIME\tFRAMES\tFPS")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			s.ID, s.Scene, s.Timestamp.Format("2006-01-02 15:04:05"), s.Frames, s.FPS)
	}
	return w.Flush()
}
