package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/covercraft/internal/budget"
	"github.com/jonathan/covercraft/internal/config"
	"github.com/jonathan/covercraft/internal/fetch"
	"github.com/jonathan/covercraft/internal/generation"
	"github.com/jonathan/covercraft/internal/ingestion"
	"github.com/jonathan/covercraft/internal/tokenizer"
)

var (
	genResumePath string
	genJobPath    string
	genJobURL     string
	genOutputPath string
	genConfigPath string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a cover letter from the command line",
	Long:  `Generate a cover letter from a resume PDF and a job description file or posting URL, without starting the server. The letter keeps its bracketed placeholders for manual editing.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genResumePath, "resume", "", "Path to the resume PDF (required)")
	generateCmd.Flags().StringVar(&genJobPath, "job", "", "Path to a job description text file")
	generateCmd.Flags().StringVar(&genJobURL, "job-url", "", "Job posting URL to fetch")
	generateCmd.Flags().StringVar(&genOutputPath, "output", "", "Write the letter to this file instead of stdout")
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to a JSON config file")
	_ = generateCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	if genJobPath == "" && genJobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}

	app, err := loadAppConfig(genConfigPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	resumeText, err := readResume(genResumePath, app)
	if err != nil {
		return err
	}

	jobDesc, err := readJobDescription(ctx, app)
	if err != nil {
		return err
	}

	counter, err := tokenizer.New()
	if err != nil {
		return fmt.Errorf("failed to initialize tokenizer: %w", err)
	}

	guard := budget.NewGuard(counter, budget.Limits{
		ResumeMax:  app.ResumeMaxTokens,
		JobDescMax: app.JobDescMaxTokens,
		TotalMax:   app.TotalMaxTokens,
	})
	res, err := guard.Validate(resumeText, jobDesc)
	if err != nil {
		return err
	}
	if !res.OK {
		return res.Err()
	}
	fmt.Fprintf(os.Stderr, "Resume: %s tokens, job description: %s tokens\n",
		ingestion.FormatTokenCount(res.ResumeTokens), ingestion.FormatTokenCount(res.JobDescTokens))

	gen, err := generation.NewGeminiGenerator(ctx, apiKey, generation.Options{
		Model:           app.Model,
		MaxOutputTokens: app.MaxOutputTokens,
		Temperature:     0.7,
	})
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}
	defer func() { _ = gen.Close() }()

	letter, err := gen.Generate(ctx, resumeText, jobDesc)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if genOutputPath != "" {
		if err := os.WriteFile(genOutputPath, []byte(letter+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write letter: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Letter written to %s\n", genOutputPath)
		return nil
	}

	fmt.Println(letter)
	return nil
}

// readResume extracts and cleans the resume text from a PDF file.
func readResume(path string, app *config.Config) (string, error) {
	if !ingestion.ValidFileType(path, app.SupportedExtensions) {
		return "", fmt.Errorf("unsupported resume file type: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open resume: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat resume: %w", err)
	}

	text, err := ingestion.ExtractPDFText(f, info.Size())
	if err != nil {
		return "", err
	}
	return ingestion.CleanText(text), nil
}

// readJobDescription loads the job description from a file or fetches it from
// a posting URL.
func readJobDescription(ctx context.Context, app *config.Config) (string, error) {
	if genJobPath != "" {
		data, err := os.ReadFile(genJobPath)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return ingestion.CleanText(string(data)), nil
	}

	opts := fetch.DefaultOptions()
	opts.UseBrowser = app.UseBrowser
	opts.Verbose = app.Verbose

	text, err := fetch.JobPosting(ctx, genJobURL, opts)
	if err != nil {
		return "", err
	}
	return ingestion.CleanText(text), nil
}
