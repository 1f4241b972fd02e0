package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"trackedit/internal/config"
	"trackedit/internal/prefs"
	"trackedit/internal/session"
	"trackedit/internal/tui"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "editor config file")
	coursePath := flag.String("course", "", "course file to open instead of the last one")
	logPath := flag.String("log", "tracktui.log", "log file (the terminal belongs to the UI)")
	flag.Parse()
	if *coursePath == "" && flag.NArg() > 0 {
		*coursePath = flag.Arg(0)
	}

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	s, err := session.Start(session.Options{
		ConfigPath: *configPath,
		CoursePath: *coursePath,
		PrefsPath:  prefs.DefaultFile,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer s.Close()

	if err := tui.Run(s.Ctl, s.Tables, s.Watcher, s.Config.CourseDir); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if err := s.SavePrefs(); err != nil {
		log.Printf("Failed to save editor prefs: %v", err)
	}
}
