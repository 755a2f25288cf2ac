package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/codewithboateng/eolint/internal/api"
	"github.com/codewithboateng/eolint/internal/ir"
	"github.com/codewithboateng/eolint/internal/reporting"
	"github.com/codewithboateng/eolint/internal/rules"
	"github.com/codewithboateng/eolint/internal/rulesdsl"
	"github.com/codewithboateng/eolint/internal/security"
	"github.com/codewithboateng/eolint/internal/shared"
	"github.com/codewithboateng/eolint/internal/stats"
	"github.com/codewithboateng/eolint/internal/storage"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "analyze":
		analyzeCmd(os.Args[2:])
	case "report":
		reportCmd(os.Args[2:])
	case "diff":
		diffCmd(os.Args[2:])
	case "serve":
		serveCmd(os.Args[2:])
	case "user":
		userCmd(os.Args[2:])
	case "version":
		fmt.Println("eolint IR:", ir.Version)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `eolint – Elegant Objects linter for Python

Usage:
  eolint analyze [paths...] [--out <reports-dir>] [--db ./eolint.db] [--severity LOW|MEDIUM|HIGH] [--disable EO005,EO011] [--show-source] [--no-save] [--config ./configs/eolint.yaml]
  eolint report  --run <run-id>|--latest [--out <reports-dir>] [--db ./eolint.db] [--config ...]
  eolint diff    --base <run-id> --head <run-id> [--out <reports-dir>] [--db ./eolint.db] [--config ...]
  eolint serve   [--addr :8477] [--db ./eolint.db] [--config ...]
  eolint user    --name <username> [--role viewer|admin] [--db ./eolint.db]
  eolint version

analyze exits 1 when any violation survives filtering, 2 on usage errors.
`)
}

func analyzeCmd(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	outDir := fs.String("out", "", "Output directory for JSON/HTML reports")
	dbPath := fs.String("db", "", "SQLite database path")
	severity := fs.String("severity", "", "Minimum severity to report (LOW|MEDIUM|HIGH)")
	disable := fs.String("disable", "", "Comma-separated codes to disable")
	strictNull := fs.Bool("strict-null", false, "Flag None in annotations too")
	showSource := fs.Bool("show-source", false, "Echo the offending source line")
	noSave := fs.Bool("no-save", false, "Skip run persistence")
	_ = fs.Parse(args)

	cfg, _ := shared.LoadConfig(*configPath)
	shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	// precedence: flags > config > defaults
	paths := fs.Args()
	if len(paths) == 0 {
		paths = cfg.Analysis.Sources
	}
	if len(paths) == 0 {
		paths = []string{"."}
	}
	if *outDir == "" {
		*outDir = cfg.Reporting.OutDir
	}
	if *dbPath == "" {
		*dbPath = cfg.Database.DSN
	}
	if *severity == "" {
		*severity = cfg.Rules.SeverityThreshold
	}
	if !*showSource {
		*showSource = cfg.Reporting.ShowSource
	}

	// custom rule packs register before the engine snapshots the registry
	for _, pack := range cfg.Rules.Packs {
		n, err := rulesdsl.LoadAndRegister(pack)
		if err != nil {
			slog.Error("rule pack error", "pack", pack, "err", err)
			os.Exit(2)
		}
		slog.Info("rule pack loaded", "pack", pack, "rules", n)
	}

	settings := rules.DefaultSettings()
	settings.SeverityThreshold = strings.ToUpper(*severity)
	settings.AllowedNames = cfg.Rules.AllowedNames
	settings.StrictNull = *strictNull || cfg.Analysis.StrictNull
	settings.StrictContracts = cfg.StrictContracts()
	settings.ExemptTestFiles = cfg.ExemptTestFiles()
	for _, c := range splitCodes(*disable) {
		settings.Disabled[c] = true
	}
	for _, c := range cfg.Rules.Disabled {
		settings.Disabled[strings.ToUpper(strings.TrimSpace(c))] = true
	}
	for _, sup := range cfg.Rules.Suppress {
		settings.Suppressions = append(settings.Suppressions, rules.Suppression{
			Path:  sup.Path,
			Codes: sup.Codes,
		})
	}

	files, err := collectPython(paths)
	if err != nil {
		fmt.Fprintln(os.Stderr, "analyze:", err)
		os.Exit(2)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "analyze: no Python files found")
		os.Exit(2)
	}

	engine := rules.NewEngine(settings)
	run := ir.Run{
		ID:        fmt.Sprintf("run-%d", time.Now().Unix()),
		StartedAt: time.Now().UTC(),
		Source:    strings.Join(paths, ","),
		IRVersion: ir.Version,
		Context: ir.Context{
			SeverityThreshold: settings.SeverityThreshold,
			DisabledCodes:     sortedCodes(settings.Disabled),
			StrictNull:        settings.StrictNull,
			StrictContracts:   settings.StrictContracts,
		},
	}
	for _, f := range files {
		src, err := os.ReadFile(f)
		if err != nil {
			run.Files = append(run.Files, ir.FileReport{Path: f, ParseError: err.Error()})
			continue
		}
		run.Files = append(run.Files, engine.File(f, src))
	}

	// Waivers from the database apply after rule evaluation.
	var db *storage.DB
	if !*noSave {
		db, err = storage.OpenSQLite(*dbPath)
		if err != nil {
			slog.Error("db open error", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.CreateSchema(); err != nil {
			slog.Error("db schema error", "err", err)
			os.Exit(1)
		}
		if ws, err := db.ListWaivers(true); err == nil && len(ws) > 0 {
			if n := rules.ApplyWaiversToRun(&run, ws); n > 0 {
				slog.Info("waivers applied", "waived", n)
			}
		}
	}

	stats.Annotate(&run)

	if db != nil {
		if err := db.SaveRun(&run); err != nil {
			slog.Error("db save run error", "err", err)
			os.Exit(1)
		}
		jsonPath, _ := reporting.WriteJSON(run.ID, *outDir, &run)
		htmlPath, _ := reporting.WriteHTML(run.ID, *outDir, &run)
		slog.Info("analyze complete",
			"run", run.ID,
			"files", run.Stats.Files,
			"violations", run.Stats.Total,
			"worst", stats.Worst(&run),
			"json", jsonPath,
			"html", htmlPath,
			"db", filepath.Clean(*dbPath),
		)
	}

	total := reporting.WriteText(os.Stdout, &run, *showSource)
	reporting.WriteSummary(os.Stdout, &run)
	if total > 0 {
		os.Exit(1)
	}
}

func reportCmd(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	runID := fs.String("run", "", "Run ID")
	latest := fs.Bool("latest", false, "Use the newest stored run")
	outDir := fs.String("out", "", "Output directory")
	dbPath := fs.String("db", "", "SQLite database path")
	_ = fs.Parse(args)

	cfg, _ := shared.LoadConfig(*configPath)
	shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	if *outDir == "" {
		*outDir = cfg.Reporting.OutDir
	}
	if *dbPath == "" {
		*dbPath = cfg.Database.DSN
	}
	if *runID == "" && !*latest {
		fmt.Fprintln(os.Stderr, "report: --run or --latest is required")
		os.Exit(2)
	}

	db, err := storage.OpenSQLite(*dbPath)
	if err != nil {
		slog.Error("db open error", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	var run ir.Run
	if *latest {
		run, err = db.LoadLatestRun()
	} else {
		run, err = db.LoadRun(*runID)
	}
	if err != nil {
		slog.Error("load run error", "err", err)
		os.Exit(1)
	}
	jsonPath, _ := reporting.WriteJSON(run.ID, *outDir, &run)
	htmlPath, _ := reporting.WriteHTML(run.ID, *outDir, &run)
	fmt.Printf("Report OK\n  Run: %s\n  JSON: %s\n  HTML: %s\n", run.ID, jsonPath, htmlPath)
}

func diffCmd(args []string) {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	base := fs.String("base", "", "Base run ID")
	head := fs.String("head", "", "Head run ID")
	outDir := fs.String("out", "", "Output directory")
	dbPath := fs.String("db", "", "SQLite database path")
	_ = fs.Parse(args)

	cfg, _ := shared.LoadConfig(*configPath)
	shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	if *outDir == "" {
		*outDir = cfg.Reporting.OutDir
	}
	if *dbPath == "" {
		*dbPath = cfg.Database.DSN
	}
	if *base == "" || *head == "" {
		fmt.Fprintln(os.Stderr, "diff: --base and --head are required")
		os.Exit(2)
	}
	db, err := storage.OpenSQLite(*dbPath)
	if err != nil {
		slog.Error("db open error", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	br, err := db.LoadRun(*base)
	if err != nil {
		slog.Error("load base run error", "err", err)
		os.Exit(1)
	}
	hr, err := db.LoadRun(*head)
	if err != nil {
		slog.Error("load head run error", "err", err)
		os.Exit(1)
	}
	path, _ := reporting.WriteDiffJSON(*base, *head, *outDir, &br, &hr)
	fmt.Printf("Diff OK\n  %s\n", path)
}

func serveCmd(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	addr := fs.String("addr", "", "Listen address")
	dbPath := fs.String("db", "", "SQLite database path")
	_ = fs.Parse(args)

	cfg, _ := shared.LoadConfig(*configPath)
	logger := shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	if *addr == "" {
		*addr = cfg.Server.Addr
	}
	if *dbPath == "" {
		*dbPath = cfg.Database.DSN
	}

	db, err := storage.OpenSQLite(*dbPath)
	if err != nil {
		slog.Error("db open error", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.CreateSchema(); err != nil {
		slog.Error("db schema error", "err", err)
		os.Exit(1)
	}

	srv := &api.Server{
		DB:              db,
		UserStore:       db,
		Logger:          logger,
		SessionDuration: time.Duration(cfg.Server.SessionMinutes) * time.Minute,
	}
	slog.Info("serving", "addr", *addr, "db", filepath.Clean(*dbPath))
	if err := http.ListenAndServe(*addr, srv.Routes()); err != nil {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}

func userCmd(args []string) {
	fs := flag.NewFlagSet("user", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	name := fs.String("name", "", "Username")
	role := fs.String("role", "viewer", "Role (viewer|admin)")
	dbPath := fs.String("db", "", "SQLite database path")
	_ = fs.Parse(args)

	cfg, _ := shared.LoadConfig(*configPath)
	shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	if *dbPath == "" {
		*dbPath = cfg.Database.DSN
	}
	if *name == "" {
		fmt.Fprintln(os.Stderr, "user: --name is required")
		os.Exit(2)
	}
	pw := os.Getenv("EOLINT_PASSWORD")
	if pw == "" {
		fmt.Fprintln(os.Stderr, "user: set EOLINT_PASSWORD")
		os.Exit(2)
	}
	hash, err := security.HashPassword(pw)
	if err != nil {
		slog.Error("hash error", "err", err)
		os.Exit(1)
	}

	db, err := storage.OpenSQLite(*dbPath)
	if err != nil {
		slog.Error("db open error", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.CreateSchema(); err != nil {
		slog.Error("db schema error", "err", err)
		os.Exit(1)
	}
	id, err := db.CreateUser(*name, hash, *role)
	if err != nil {
		slog.Error("create user error", "err", err)
		os.Exit(1)
	}
	fmt.Printf("User OK\n  ID: %d\n  Name: %s\n  Role: %s\n", id, *name, *role)
}

// collectPython expands the argument paths into the sorted list of .py files.
func collectPython(paths []string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				// hidden and vendored trees are never lint targets
				name := d.Name()
				if path != p && (strings.HasPrefix(name, ".") || name == "__pycache__" || name == "venv" || name == "node_modules") {
					return fs.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(path, ".py") {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(out)
	return out, nil
}

func splitCodes(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, c := range strings.Split(s, ",") {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

func sortedCodes(m map[string]bool) []string {
	var out []string
	for c, on := range m {
		if on {
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}
