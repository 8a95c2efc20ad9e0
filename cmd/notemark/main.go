package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/notemark/notemark/internal/ui"
)

func main() {
	// Route logs to a file so they don't corrupt the terminal UI.
	if dir, err := os.UserConfigDir(); err == nil {
		logPath := filepath.Join(dir, "notemark", "notemark.log")
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err == nil {
			if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
				log.SetOutput(f)
				defer f.Close()
			}
		}
	}

	app, err := ui.NewApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "notemark:", err)
		os.Exit(1)
	}

	if err := app.Run(); err != nil {
		log.Printf("Fatal: %v", err)
		fmt.Fprintln(os.Stderr, "notemark:", err)
		os.Exit(1)
	}
}
