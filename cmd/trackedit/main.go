//go:build !headless

package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"trackedit/internal/config"
	"trackedit/internal/gui"
	"trackedit/internal/prefs"
	"trackedit/internal/session"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "editor config file")
	coursePath := flag.String("course", "", "course file to open instead of the last one")
	flag.Parse()
	if *coursePath == "" && flag.NArg() > 0 {
		*coursePath = flag.Arg(0)
	}
	// Paths from the command line are relative to where the editor was
	// started, not to the directory it moves to below. The default config
	// stays next to the executable.
	*coursePath = session.AbsPath(*coursePath)
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			*configPath = session.AbsPath(*configPath)
		}
	})

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	s, err := session.Start(session.Options{
		ConfigPath: *configPath,
		CoursePath: *coursePath,
		PrefsPath:  prefs.DefaultFile,
	})
	if err != nil {
		log.Fatalf("trackedit: %v", err)
	}
	defer s.Close()

	app := gui.New(s.Ctl, s.Config, s.Tables, prefs.DefaultFile)
	app.ApplyPrefs(s.Prefs)
	app.Run(s.Watcher)
}
