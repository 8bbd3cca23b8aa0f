// DraftKit generates client-ready documents from a template catalog.
//
// Run with no arguments for the interactive wizard, with a command for the
// headless CLI, or with --serve for the HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/draftkit/draftkit/internal/api"
	"github.com/draftkit/draftkit/internal/cli"
	"github.com/draftkit/draftkit/internal/config"
	"github.com/draftkit/draftkit/internal/remote"
	"github.com/draftkit/draftkit/internal/service"
	"github.com/draftkit/draftkit/internal/storage"
	"github.com/draftkit/draftkit/internal/ui"
)

var version = "dev"

func main() {
	var (
		initFlag    = flag.Bool("init", false, "Initialize the template library")
		serveFlag   = flag.Bool("serve", false, "Start the HTTP API server")
		portFlag    = flag.Int("port", 8724, "Port for the HTTP API server")
		versionFlag = flag.Bool("version", false, "Print version and exit")
		helpFlag    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Printf("draftkit %s\n", version)
		return
	}
	if *helpFlag {
		printHelp()
		return
	}

	store, err := storage.NewStorage("")
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	if *initFlag {
		if err := store.InitLibrary(); err != nil {
			log.Fatalf("Failed to initialize library: %v", err)
		}
		fmt.Printf("Library initialized at %s\n", store.GetBaseDir())
		return
	}

	cfg, err := config.Load(store.GetBaseDir())
	if err != nil {
		log.Printf("Warning: using default configuration: %v", err)
		cfg = config.Default()
	}

	var backend *remote.Client
	if cfg.APIBaseURL != "" {
		session := remote.NewSessionCache(filepath.Join(store.GetBaseDir(), "session.token"))
		backend = remote.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, session)
	}

	svc, err := service.NewService(store, backend)
	if err != nil {
		log.Fatalf("Failed to initialize service: %v", err)
	}

	if *serveFlag {
		runServer(svc, *portFlag)
		return
	}

	if args := flag.Args(); len(args) > 0 {
		c := cli.NewCLI(svc)
		if err := c.ExecuteCommand(args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	runTUI(svc)
}

// runServer starts the HTTP API and blocks until interrupted
func runServer(svc *service.Service, port int) {
	server := api.NewAPIServer(svc, port)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("API server failed: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// runTUI launches the interactive wizard
func runTUI(svc *service.Service) {
	p := tea.NewProgram(ui.NewModel(svc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Print(`draftkit - document template wizard

Usage:
  draftkit                  Launch the interactive wizard
  draftkit [command]        Run a headless CLI command (see 'draftkit help')
  draftkit --init           Initialize the template library
  draftkit --serve          Start the HTTP API server
  draftkit --serve --port N Serve on a specific port
  draftkit --version        Print version

Environment:
  DRAFTKIT_DIR              Library location (default ~/.draftkit)
  DRAFTKIT_API_URL          Backend catalog URL for 'sync'
  GLAMOUR_STYLE             Force light/dark theme
`)
}
