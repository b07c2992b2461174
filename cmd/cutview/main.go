// CutView: desktop viewer for guillotine-cut solver results.
//
// Usage:
//   cutview [results-file]
//
// Without a file a bundled sample is shown. Settings live in
// ~/.cutview/config.json.
//
// Build:
//   go build -o cutview ./cmd/cutview

package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"

	"github.com/piwi3910/cutview/internal/model"
	"github.com/piwi3910/cutview/internal/project"
	"github.com/piwi3910/cutview/internal/ui"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})
	if os.Getenv("CUTVIEW_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}

	configPath := project.DefaultConfigPath()
	cfg, err := project.LoadAppConfig(configPath)
	if err != nil {
		logger.Warn("Using default settings", "err", err)
		cfg = model.DefaultAppConfig()
	}

	application := app.NewWithID("com.piwi3910.cutview")
	window := application.NewWindow("CutView")

	appUI := ui.NewApp(application, window, cfg, configPath, logger)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(float32(cfg.ViewportWidth), float32(cfg.ViewportHeight)))
	window.CenterOnScreen()

	if len(os.Args) > 1 {
		appUI.Open(os.Args[1])
	} else {
		appUI.LoadRandomSample()
	}

	window.ShowAndRun()
}
