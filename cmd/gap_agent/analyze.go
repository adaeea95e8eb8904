package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/gap-analyzer/internal/analyzer"
	"github.com/jonathan/gap-analyzer/internal/config"
	"github.com/jonathan/gap-analyzer/internal/fetch"
	"github.com/jonathan/gap-analyzer/internal/ingestion"
	"github.com/jonathan/gap-analyzer/internal/observability"
	"github.com/jonathan/gap-analyzer/internal/recognizer"
	"github.com/jonathan/gap-analyzer/internal/taxonomy"
	"github.com/jonathan/gap-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a gap analysis between a resume and a job description",
	Long:  "Extract skills from a resume document and a job description, score the match, and print a phased learning roadmap for the missing skills.",
	RunE:  runAnalyze,
}

var (
	analyzeResumePath   string
	analyzeJDPath       string
	analyzeJDURL        string
	analyzeHoursPerWeek int
	analyzeOutputFile   string
	analyzeConfigFile   string
	analyzeAPIKey       string
	analyzeUseBrowser   bool
	analyzeVerbose      bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumePath, "resume", "r", "", "Path to resume file (.pdf/.docx/.txt)")
	analyzeCmd.Flags().StringVarP(&analyzeJDPath, "jd", "j", "", "Path to job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJDURL, "jd-url", "", "URL to fetch the job description from")
	analyzeCmd.Flags().IntVar(&analyzeHoursPerWeek, "hours-per-week", 0, "Study hours available per week (1-80, default 10)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to write the analysis JSON (default stdout)")
	analyzeCmd.Flags().StringVarP(&analyzeConfigFile, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use a headless browser for JavaScript-rendered job boards")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed extraction and roadmap output")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := resolveAnalyzeConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()

	resumeText, err := readResumeFile(cfg.Resume)
	if err != nil {
		return err
	}

	jdText, err := readJobDescription(ctx, cfg)
	if err != nil {
		return err
	}

	a := analyzer.New(taxonomy.Default(), buildRecognizer(ctx, cfg))
	result, err := a.Analyze(ctx, resumeText, jdText, cfg.HoursPerWeek)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	if len(result.JDSkills) == 0 {
		return fmt.Errorf("no recognizable skills found in the job description")
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintExtractedSkills(result.ResumeSkills, result.JDSkills)
		printer.PrintMatchResult(&types.MatchResult{
			MatchPercentage:   result.Analysis.MatchPercentage,
			JobReadinessScore: result.Analysis.JobReadinessScore,
			MatchedSkills:     result.Analysis.MatchedSkills,
			MissingSkills:     result.Analysis.MissingSkills,
		})
		printer.PrintRoadmap(&result.Analysis.LearningVelocity)
	}

	jsonBytes, err := json.MarshalIndent(result.Analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if analyzeOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(analyzeOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Output: %s\n", analyzeOutputFile)
	return nil
}

// resolveAnalyzeConfig merges flags over the optional config file and
// validates the result.
func resolveAnalyzeConfig() (*config.Config, error) {
	flags := config.Config{
		Resume:       analyzeResumePath,
		JD:           analyzeJDPath,
		JDURL:        analyzeJDURL,
		HoursPerWeek: analyzeHoursPerWeek,
		APIKey:       analyzeAPIKey,
		UseBrowser:   analyzeUseBrowser,
		Verbose:      analyzeVerbose,
	}

	cfg := flags
	if analyzeConfigFile != "" {
		fileCfg, err := config.LoadConfig(analyzeConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = flags.MergeWithDefaults(*fileCfg)
	}
	// Fills the default study pace even without a config file.
	cfg = cfg.MergeWithDefaults(config.Config{})

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	if cfg.Resume == "" {
		return nil, fmt.Errorf("resume file is required (use --resume or the config file)")
	}
	if cfg.JD == "" && cfg.JDURL == "" {
		return nil, fmt.Errorf("a job description is required (use --jd or --jd-url)")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// readResumeFile loads the resume document and extracts its plain text.
func readResumeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}

	text, err := ingestion.ExtractText(path, data)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text could be extracted from %s", path)
	}
	return text, nil
}

// readJobDescription loads the JD from a local file or fetches it from a
// job posting URL.
func readJobDescription(ctx context.Context, cfg *config.Config) (string, error) {
	if cfg.JD != "" {
		data, err := os.ReadFile(cfg.JD)
		if err != nil {
			return "", fmt.Errorf("failed to read job description file: %w", err)
		}
		return string(data), nil
	}

	text, err := fetch.JobDescription(ctx, cfg.JDURL, &fetch.Options{
		Timeout:    30 * time.Second,
		UseBrowser: cfg.UseBrowser,
		Verbose:    cfg.Verbose,
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch job description: %w", err)
	}
	return text, nil
}

// buildRecognizer creates the optional LLM noun-phrase recognizer. Any
// setup failure disables enrichment rather than aborting the run.
func buildRecognizer(ctx context.Context, cfg *config.Config) recognizer.Recognizer {
	if cfg.APIKey == "" {
		return nil
	}
	rec, err := recognizer.NewGemini(ctx, cfg.APIKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: LLM recognizer unavailable, continuing without enrichment: %v\n", err)
		return nil
	}
	return rec
}
