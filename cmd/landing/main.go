// Landing runs the student community landing page in a window: a loader hands
// off to the hero, and every section below reveals itself as it scrolls into
// view.
//
// Settings come from flags, REVEAL_* environment variables and an optional
// .env file, in that order of precedence. Animation settings live in the YAML
// file named by --config.
package main

import (
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phanxgames/reveal"
	"github.com/phanxgames/reveal/ebitenhost"
	"github.com/phanxgames/reveal/internal/site"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[reveal] no .env file, using the environment")
	}
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:          "landing",
		Short:        "Run the student community landing page",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v)
		},
	}

	f := cmd.Flags()
	f.String("config", "reveal.yaml", "animation config file (missing file uses defaults)")
	f.Int("width", 1280, "logical screen width")
	f.Int("height", 720, "logical screen height")
	f.Bool("debug", false, "log animation status changes and draw trigger lines")
	f.Bool("fps", false, "show the FPS overlay")
	f.Bool("reduced-motion", false, "skip the loader and entrance animations")
	f.String("script", "", "JSON input script to run")
	f.String("screenshots", "screenshots", "directory for script screenshots")
	f.Bool("exit-after-script", false, "quit once the input script has finished")

	if err := v.BindPFlags(f); err != nil {
		log.Fatal(err)
	}
	v.SetEnvPrefix("REVEAL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return cmd
}

func run(v *viper.Viper) error {
	cfg, err := reveal.LoadConfig(v.GetString("config"))
	if err != nil {
		return err
	}
	if v.GetBool("reduced-motion") {
		cfg.ReducedMotion = true
	}

	w, h := v.GetInt("width"), v.GetInt("height")
	page := ebitenhost.NewPage(ebitenhost.Config{
		Width:              w,
		Height:             h,
		ShowFPS:            v.GetBool("fps"),
		Debug:              v.GetBool("debug"),
		ScreenshotDir:      v.GetString("screenshots"),
		ExitWhenScriptDone: v.GetBool("exit-after-script"),
	})

	s, err := site.New(site.Deps{
		Sched:          page.Sched,
		Observer:       page.Observer,
		Host:           page,
		Config:         cfg,
		Width:          float64(w),
		ViewportHeight: float64(h),
	})
	if err != nil {
		return err
	}
	defer s.Unmount()
	page.Mount(s.Content, s.Loader, s.Height())
	page.MountOverlay(s.Overlay)
	page.OnSkip(s.Handoff.Skip)

	if path := v.GetString("script"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrap(err, "read script")
		}
		runner, err := ebitenhost.LoadScript(data)
		if err != nil {
			return err
		}
		page.SetScriptRunner(runner)
	}

	ebiten.SetWindowTitle("Student Community Hub")
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(page)
}
