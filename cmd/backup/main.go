package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"sentenceclash/internal/config"
	"sentenceclash/internal/database"
	"sentenceclash/internal/repository"
	"sentenceclash/internal/service"
)

func main() {
	// Define subcommands
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	statsCmd := flag.NewFlagSet("stats", flag.ExitOnError)
	clearCmd := flag.NewFlagSet("clear", flag.ExitOnError)

	exportOutput := exportCmd.String("output", "", "Output file path, .json or .yaml (default: sentences_YYYYMMDD_HHMMSS.json)")

	importInput := importCmd.String("input", "", "Input file path, .json or .yaml (required)")
	importClear := importCmd.Bool("clear", false, "Replace the existing sentence pairs (WARNING: destructive)")
	importYes := importCmd.Bool("yes", false, "Skip the confirmation prompt for -clear")

	clearYes := clearCmd.Bool("yes", false, "Skip the confirmation prompt")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations to ensure schema is up to date
	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	sentenceService := service.NewSentenceService(repository.NewSentenceRepository(db))

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(sentenceService, *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		handleImport(sentenceService, *importInput, *importClear, *importYes)

	case "stats":
		statsCmd.Parse(os.Args[2:])
		handleStats(sentenceService)

	case "clear":
		clearCmd.Parse(os.Args[2:])
		handleClear(sentenceService, *clearYes)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleExport(sentenceService *service.SentenceService, outputPath string) {
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = fmt.Sprintf("sentences_%s.json", timestamp)
	}

	// Ensure directory exists
	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	if err := sentenceService.ExportFile(outputPath); err != nil {
		log.Fatalf("Export failed: %v", err)
	}
}

func handleImport(sentenceService *service.SentenceService, inputPath string, replace, skipConfirm bool) {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		log.Fatalf("Input file does not exist: %s", inputPath)
	}

	if replace && !skipConfirm && !confirm() {
		log.Println("Import cancelled")
		return
	}

	if err := sentenceService.ImportFile(inputPath, replace); err != nil {
		log.Fatalf("Import failed: %v", err)
	}
}

func handleClear(sentenceService *service.SentenceService, skipConfirm bool) {
	if !skipConfirm && !confirm() {
		log.Println("Clear cancelled")
		return
	}
	if _, err := sentenceService.Clear(); err != nil {
		log.Fatalf("Clear failed: %v", err)
	}
}

func confirm() bool {
	fmt.Print("WARNING: This will delete all existing sentence pairs. Type 'yes' to confirm: ")
	var confirmation string
	fmt.Scanln(&confirmation)
	return confirmation == "yes"
}

func handleStats(sentenceService *service.SentenceService) {
	stats, err := sentenceService.Stats()
	if err != nil {
		log.Fatalf("Failed to read stats: %v", err)
	}
	fmt.Printf("Sentence pairs: %d\n", stats.TotalPairs)
	fmt.Printf("Word tokens:    %d\n", stats.TotalTokens)
	fmt.Printf("Longest answer: %d words\n", stats.LongestWords)
}

func printUsage() {
	fmt.Println("SentenceClash sentence pair tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  backup export [-output file.json|file.yaml]")
	fmt.Println("  backup import -input file.json|file.yaml [-clear] [-yes]")
	fmt.Println("  backup stats")
	fmt.Println("  backup clear [-yes]")
	fmt.Println()
	fmt.Println("The database is selected with DB_TYPE, DB_PATH and DATABASE_URL.")
}
