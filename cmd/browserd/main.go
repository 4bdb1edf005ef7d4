// Package main provides the browserd daemon: a stateful browser automation
// tool server. It exposes a fixed set of imperative tools over a JSON-lines
// stdio protocol, driving a single managed browser session.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	engine "github.com/entrhq/browserd/pkg/browser"
	appconfig "github.com/entrhq/browserd/pkg/config"
	"github.com/entrhq/browserd/pkg/logging"
	"github.com/entrhq/browserd/pkg/tools"
	browsertools "github.com/entrhq/browserd/pkg/tools/browser"
)

const version = "0.1.0"

// maxLineBytes bounds one request line on stdin. Scripts passed to
// execute_js can be large, so this is generous.
const maxLineBytes = 4 * 1024 * 1024

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigFile  string
	Headed      bool
	Install     bool
	ListTools   bool
	ShowVersion bool
}

func main() {
	config := parseFlags()

	if config.ShowVersion {
		fmt.Printf("browserd v%s\n", version)
		return
	}

	// Create context with signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := run(ctx, config); err != nil {
		cancel()
		log.Printf("browserd failed: %v", err)
		os.Exit(1)
	}
	cancel()
}

// parseFlags parses command line flags
func parseFlags() *CLIConfig {
	config := &CLIConfig{}

	flag.StringVar(&config.ConfigFile, "config", "", "Path to configuration file (YAML)")
	flag.BoolVar(&config.Headed, "headed", false, "Run the browser with a visible window")
	flag.BoolVar(&config.Install, "install", false, "Download browser binaries on startup if missing")
	flag.BoolVar(&config.ListTools, "tools", false, "Print available tools and exit")
	flag.BoolVar(&config.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "browserd - Stateful Browser Automation Tool Server\n\n")
		fmt.Fprintf(os.Stderr, "Usage: browserd [options]\n\n")
		fmt.Fprintf(os.Stderr, "Reads tool calls as JSON lines on stdin and writes one result\n")
		fmt.Fprintf(os.Stderr, "envelope per line on stdout.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Serve with defaults (headless)\n")
		fmt.Fprintf(os.Stderr, "  browserd\n\n")
		fmt.Fprintf(os.Stderr, "  # Serve with a config file and a visible browser\n")
		fmt.Fprintf(os.Stderr, "  browserd -config browserd.yaml -headed\n\n")
	}

	flag.Parse()
	return config
}

// run wires the session manager, the tool registry and the dispatcher, then
// serves the stdio loop until stdin closes or a signal arrives.
func run(ctx context.Context, cliConfig *CLIConfig) error {
	execConfig, err := appconfig.Load(cliConfig.ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cliConfig.Headed {
		execConfig.Browser.Headless = false
	}
	if cliConfig.Install {
		execConfig.Browser.InstallDriver = true
	}
	if validationErr := execConfig.Validate(); validationErr != nil {
		return fmt.Errorf("invalid configuration: %w", validationErr)
	}
	if err := logging.SetVerbosity(execConfig.Logging.Verbosity); err != nil {
		return fmt.Errorf("invalid logging verbosity: %w", err)
	}

	logger, logErr := logging.NewLogger("browserd")
	if logErr != nil {
		log.Printf("file logging unavailable, using stderr: %v", logErr)
	}
	defer logger.Close()

	manager := engine.NewManager(execConfig.BrowserOptions())
	defer func() {
		if shutdownErr := manager.Shutdown(); shutdownErr != nil {
			logger.Warnf("shutdown: %v", shutdownErr)
		}
	}()

	dispatcher := tools.NewDispatcher(logger)
	for _, tool := range browsertools.NewRegistry(manager, logger).Tools() {
		dispatcher.Register(tool)
	}

	if cliConfig.ListTools {
		return printTools(os.Stdout, dispatcher)
	}

	logger.Infof("browserd v%s serving %d tools, session %s", version, len(dispatcher.Tools()), logger.SessionID())
	return serve(ctx, dispatcher, os.Stdin, os.Stdout, logger)
}

// serve reads one JSON call per line and writes one envelope per line. A
// malformed line gets a validation_error envelope; it never kills the loop.
func serve(ctx context.Context, dispatcher *tools.Dispatcher, in io.Reader, out io.Writer, logger *logging.Logger) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	encoder := json.NewEncoder(out)

	lines := make(chan []byte)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			line := make([]byte, len(scanner.Bytes()))
			copy(line, scanner.Bytes())
			select {
			case lines <- line:
			case <-ctx.Done():
				// Nobody reads lines after cancellation; bail out so the
				// goroutine does not outlive the loop.
				scanErr <- nil
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Infof("shutting down: %v", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
				return nil
			}
			if len(line) == 0 {
				continue
			}

			var call tools.Call
			if err := json.Unmarshal(line, &call); err != nil {
				result := tools.Result{
					OK: false,
					Error: &tools.ErrorInfo{
						Kind:    string(engine.KindValidation),
						Message: fmt.Sprintf("malformed call: %v", err),
					},
				}
				if encodeErr := encoder.Encode(result); encodeErr != nil {
					return fmt.Errorf("writing result: %w", encodeErr)
				}
				continue
			}

			result := dispatcher.Dispatch(ctx, call)
			if err := encoder.Encode(result); err != nil {
				return fmt.Errorf("writing result: %w", err)
			}
		}
	}
}

// printTools writes the tool catalog as JSON, one object per tool.
func printTools(out io.Writer, dispatcher *tools.Dispatcher) error {
	type toolInfo struct {
		Name        string                 `json:"name"`
		Description string                 `json:"description"`
		Schema      map[string]interface{} `json:"schema"`
	}
	catalog := make([]toolInfo, 0, len(dispatcher.Tools()))
	for _, tool := range dispatcher.Tools() {
		catalog = append(catalog, toolInfo{
			Name:        tool.Name(),
			Description: tool.Description(),
			Schema:      tool.Schema(),
		})
	}
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(catalog)
}
