package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/quotedesk/internal/config"
	"github.com/muurk/quotedesk/internal/discovery"
	"github.com/muurk/quotedesk/internal/editor"
	"github.com/muurk/quotedesk/internal/logging"
	"github.com/muurk/quotedesk/internal/protocol"
	"github.com/muurk/quotedesk/internal/replay"
	"github.com/muurk/quotedesk/internal/server"
	"github.com/muurk/quotedesk/internal/tui"
	"github.com/muurk/quotedesk/internal/ui"
	"github.com/muurk/quotedesk/internal/version"
)

// Command flags
var (
	outputFormat string
	answerYes    bool
	answerNo     bool
	serveHost    string
	servePort    int
	advertise    bool
	scanTimeout  int
	remember     bool
	force        bool
)

func init() {
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(initConfigCmd)
}

// editCmd launches the interactive editor
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Launch the interactive quote editor",
	Long: `Launch the full-screen quote editor.

Tabs are selected with 1-5 and edit modes with the letter shown in the mode
bar. Logs go to a file so they do not disturb the screen; set
logging.file in the config or QUOTEDESK_LOG_LEVEL to enable them.`,
	Example: `  # Edit a blank five-row roller quote
  quotedesk edit

  # Edit items from a file, priced as venetians
  quotedesk edit --items job-1042.yaml --product venetian`,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace(true)
	if err != nil {
		return err
	}
	defer logging.Sync()

	prompts := editor.NewPromptQueue()
	ed := editor.New(ws.store, ws.prices, nil, prompts)

	program := tea.NewProgram(tui.New(ed, prompts, ws.prices.Currency), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}

	// Whatever the last tab was, print the final prices.
	if err := recalculate(ed); err != nil {
		return err
	}
	p := ui.NewPrinter(os.Stdout)
	p.PrintSummary(ui.NewQuoteSummary(ed.State(), ed.Items(), ws.store.ProductType(), ws.prices.Currency))
	return nil
}

// summaryCmd prints the priced quote without interaction
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the accessory price summary for a quote",
	Long: `Price every accessory on a quote and print the result.

Winders, motors and dual brackets are counted from the items. Remote,
charger and cord quantities start at zero outside the editor.`,
	Example: `  # Detailed summary with the item grid
  quotedesk summary --items job-1042.yaml

  # One line per accessory
  quotedesk summary --items job-1042.yaml --format compact

  # JSON for scripting
  quotedesk summary --items job-1042.yaml --format json`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")
}

func runSummary(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace(false)
	if err != nil {
		return err
	}
	defer logging.Sync()

	ed := editor.New(ws.store, ws.prices, nil, nil)
	if err := recalculate(ed); err != nil {
		return err
	}
	summary := ui.NewQuoteSummary(ed.State(), ed.Items(), ws.store.ProductType(), ws.prices.Currency)

	switch outputFormat {
	case "compact":
		fmt.Print(ui.RenderCompactSummary(summary))
	case "json":
		msg := protocol.NewStateMessage(ed.State(), ed.Items(), ws.store.ProductType())
		data, err := json.MarshalIndent(msg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	case "detailed":
		ui.NewPrinter(os.Stdout).PrintSummary(summary)
	default:
		return fmt.Errorf("unknown format %q (want detailed, compact or json)", outputFormat)
	}
	return nil
}

// recalculate prices the drive tab and the dual brackets.
func recalculate(ed *editor.Editor) error {
	if err := ed.RecalculateDrive(); err != nil {
		return err
	}
	return ed.RecalculateDual()
}

// replayCmd applies a scripted editing session
var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Apply a scripted sequence of editor events",
	Long: `Replay a YAML script of editor events against a quote.

Each step is one event (activateTab, modeToggle, cellClick, counterChange,
textInput, textConfirm, batchCycle). A confirmReply step answers the prompt
raised by the step before it. Other prompts are asked on the terminal, or
answered by --yes / --no.

If the script has an expect section, the final state is checked against it
and the command fails on any mismatch.`,
	Example: `  # Replay and answer prompts interactively
  quotedesk replay motor-swap.yaml

  # Accept every prompt (for CI)
  quotedesk replay motor-swap.yaml --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&answerYes, "yes", false, "Accept every unanswered prompt")
	replayCmd.Flags().BoolVar(&answerNo, "no", false, "Decline every unanswered prompt")
	replayCmd.MarkFlagsMutuallyExclusive("yes", "no")
}

func runReplay(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace(false)
	if err != nil {
		return err
	}
	defer logging.Sync()

	script, err := replay.LoadScript(args[0])
	if err != nil {
		return err
	}

	store := ws.store
	if len(script.Items) > 0 || itemsPath == "" {
		store = script.NewStore(ws.cfg.ProductType, ws.cfg.Rows)
	}

	p := ui.NewPrinter(os.Stdout)
	p.PrintHeader("Replay", "quotedesk replay", map[string]string{
		"Script":  args[0],
		"Product": store.ProductType(),
		"Steps":   strconv.Itoa(len(script.Steps)),
	})

	prompts := editor.NewPromptQueue()
	ed := editor.New(store, ws.prices, nil, prompts)
	runner := replay.NewRunner(ed, prompts, replayAnswer())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := runner.Run(ctx, script)
	if report != nil {
		printSteps(p, report)
	}
	if err != nil {
		p.PrintError("Replay stopped", err, []string{
			"confirmReply must directly follow the step that raised a prompt",
		})
		return err
	}

	if err := recalculate(ed); err != nil {
		return err
	}
	p.PrintSummary(ui.NewQuoteSummary(ed.State(), ed.Items(), store.ProductType(), ws.prices.Currency))

	// Expectations are checked against the state the script left, before
	// the summary recalculation above.
	if err := script.Expect.Check(report.Final); err != nil {
		p.PrintError("Expectations not met", err, nil)
		return errors.New("replay expectations not met")
	}
	if report.Failed() {
		return errors.New("one or more steps failed")
	}
	p.PrintSuccess("Replay complete", map[string]string{
		"Steps": strconv.Itoa(len(report.Steps)),
	})
	return nil
}

func replayAnswer() replay.AnswerFunc {
	switch {
	case answerYes:
		return func(string) bool { return true }
	case answerNo:
		return func(string) bool { return false }
	case ui.IsTerminal():
		return ui.NewPromptConfirmer(os.Stdin, os.Stdout).Ask
	default:
		return nil
	}
}

func printSteps(p *ui.Printer, report *replay.Report) {
	for _, step := range report.Steps {
		marker := ui.SuccessMarker
		if step.Err != nil {
			marker = ui.FailureMarker
		}
		line := fmt.Sprintf("  %s %3d  %s", marker, step.Index, step.Op)
		if step.Prompt != "" && step.Answer != nil {
			line += fmt.Sprintf("  [%q → %t]", step.Prompt, *step.Answer)
		}
		p.Println(line)
		if step.Err != nil {
			p.Println("        " + ui.ErrorMessageStyle.Render(step.Err.Error()))
		} else if step.Notice.Message != "" {
			p.Println("        " + ui.RenderNotice(step.Notice))
		}
	}
	p.Newline()
}

// serveCmd starts the websocket editor server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve remote editor sessions over WebSocket",
	Long: `Start a WebSocket server that lets remote clients drive the editor.

Each connection edits a private copy of the starting quote. With --advertise
the server announces itself over mDNS so 'quotedesk scan' can find it.`,
	Example: `  # Serve on the configured address
  quotedesk serve

  # Serve on all interfaces and announce on the LAN
  quotedesk serve --host 0.0.0.0 --port 8765 --advertise`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen address (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (overrides config, 0 keeps config)")
	serveCmd.Flags().BoolVar(&advertise, "advertise", false, "Announce the server over mDNS")
}

func runServe(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace(false)
	if err != nil {
		return err
	}
	defer logging.Sync()

	prefs := ws.cfg.Server
	if serveHost != "" {
		prefs.Host = serveHost
	}
	if servePort != 0 {
		prefs.Port = servePort
	}
	if cmd.Flags().Changed("advertise") {
		prefs.Advertise = advertise
	}

	srv, err := server.New(&server.Config{Host: prefs.Host, Port: prefs.Port, Quote: ws.store}, ws.prices)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	if err := srv.Listen(); err != nil {
		return err
	}

	if prefs.Advertise {
		ad, err := advertiseServer(prefs, srv.Addr(), ws.store.ProductType())
		if err != nil {
			return err
		}
		defer ad.Shutdown()
	}

	ui.NewPrinter(os.Stdout).PrintHeader("Editor Server", "quotedesk serve", map[string]string{
		"Listening": srv.Addr().String(),
		"Product":   ws.store.ProductType(),
		"Rows":      strconv.Itoa(ws.store.Len() - 1),
		"Advertise": strconv.FormatBool(prefs.Advertise),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Start(ctx)
}

func advertiseServer(prefs *config.ServerPrefs, addr net.Addr, productType string) (*discovery.Advertisement, error) {
	instance := prefs.Instance
	if instance == "" {
		host, err := os.Hostname()
		if err != nil {
			return nil, fmt.Errorf("no instance name configured and hostname unavailable: %w", err)
		}
		instance = host
	}

	port := prefs.Port
	if tcp, ok := addr.(*net.TCPAddr); ok {
		port = tcp.Port
	}

	return discovery.Advertise(instance, port, map[string]string{
		"version": version.Version,
		"product": productType,
		"path":    server.WebSocketPath,
	})
}

// scanCmd discovers editor servers on the network
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for quotedesk servers on the network",
	Long: `Scan for editor servers using mDNS/DNS-SD discovery.

Servers started with 'quotedesk serve --advertise' are listed with their
address, product and websocket URL.`,
	Example: `  # Scan for 5 seconds (default)
  quotedesk scan

  # Longer scan, and remember what was found in the config file
  quotedesk scan --timeout 15 --remember`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanTimeout, "timeout", int(discovery.DefaultScanTimeout/time.Second), "Scan timeout in seconds")
	scanCmd.Flags().BoolVar(&remember, "remember", false, "Save found servers to the config file")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := initLogging(cfg, false); err != nil {
		return err
	}
	defer logging.Sync()

	fmt.Printf("Scanning for quotedesk servers (timeout: %ds)...\n\n", scanTimeout)

	scanner := discovery.NewScanner()
	scanner.Timeout = time.Duration(scanTimeout) * time.Second

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	endpoints, err := scanner.Scan(ctx)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(endpoints) == 0 {
		fmt.Println("No servers found.")
		fmt.Println("\nTroubleshooting:")
		fmt.Println("  - Start a server with 'quotedesk serve --advertise'")
		fmt.Println("  - Make sure the server listens on a LAN address, not 127.0.0.1")
		fmt.Println("  - Try increasing --timeout for slower networks")
		return nil
	}

	fmt.Printf("Found %d server(s):\n\n", len(endpoints))
	for i, ep := range endpoints {
		fmt.Printf("%d. %s\n", i+1, ep.Instance)
		fmt.Printf("   Address: %s:%d\n", ep.IP, ep.Port)
		if p := ep.GetMetadata("product"); p != "" {
			fmt.Printf("   Product: %s\n", p)
		}
		if v := ep.GetMetadata("version"); v != "" {
			fmt.Printf("   Version: %s\n", v)
		}
		fmt.Printf("   URL:     %s\n\n", ep.WebSocketURL())

		if remember {
			cfg.RememberServer(ep.Instance, ep.IP, ep.Port, ep.GetMetadata("product"))
		}
	}

	if remember {
		if err := saveConfig(cfg); err != nil {
			return err
		}
		logging.Info("Remembered servers", zap.Int("count", len(endpoints)))
	}
	return nil
}

// initConfigCmd writes a default configuration file
var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a default configuration file",
	Example: `  # Write to the user config directory
  quotedesk init-config

  # Write somewhere else, replacing an existing file
  quotedesk init-config --config ./quotedesk.yaml --force`,
	RunE: runInitConfig,
}

func init() {
	initConfigCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.NewConfig()
	if product != "" {
		cfg.ProductType = product
	}
	if rows > 0 {
		cfg.Rows = rows
	}
	if pricesPath != "" {
		cfg.PriceTable = pricesPath
	}
	if err := cfg.SaveTo(path); err != nil {
		return err
	}

	ui.NewPrinter(os.Stdout).PrintSuccess("Configuration written", map[string]string{
		"Path":    path,
		"Product": cfg.ProductType,
		"Rows":    strconv.Itoa(cfg.Rows),
		"Server":  cfg.Server.Addr(),
	})
	return nil
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

func saveConfig(cfg *config.Config) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	return cfg.SaveTo(path)
}
