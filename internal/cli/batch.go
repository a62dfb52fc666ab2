package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/credlens/credlens/internal/analyze"
	"github.com/credlens/credlens/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	batchRate    float64
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple texts or URLs from a file in parallel",
	Long: `Batch analyzes many items concurrently:
- Read items from the input file (one per line; URLs are fetched,
  other lines are read as local text files)
- Analyze items in parallel with a configurable worker count
- Throttle fetches per domain
- Write one JSON report per item

Example:
  credlens batch articles.txt
  credlens batch articles.txt --concurrency 8 --output-dir ./reports
  credlens batch urls.txt --rate 1 --timeout 5m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./credlens-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().Float64Var(&batchRate, "rate", 0, "per-domain fetch rate in requests/second (0 = config default)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := buildConfig()
	if concurrency > 0 {
		cfg.Concurrency.Workers = concurrency
	}
	if batchRate > 0 {
		cfg.Concurrency.RatePerSecond = batchRate
	}

	service, fetcher, err := buildService(cfg, false)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Batch input: %s, workers: %d, output: %s\n", file, cfg.Concurrency.Workers, outputDir)
	}

	limiter := worker.NewLimiter(cfg.Concurrency.RatePerSecond, cfg.Concurrency.RateBurst)
	processor := worker.NewBatchProcessor(service, fetcher, limiter, cfg.Concurrency.Workers)

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	renderer := analyze.NewRenderer(cfg.Output.IncludeFooter)
	succeeded, failed := 0, 0

	for i, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Item, result.Err)
			continue
		}

		path := filepath.Join(outputDir, fmt.Sprintf("report-%03d.json", i+1))
		if err := renderer.RenderJSON(result.Result, path); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Item, err)
			continue
		}

		succeeded++
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ %s → %s (%s)\n", result.Item, path, result.Result.Prediction)
		}
	}

	fmt.Printf("\nBatch complete: %d succeeded, %d failed, reports in %s\n", succeeded, failed, outputDir)

	if failed > 0 && succeeded == 0 {
		return fmt.Errorf("all %d items failed", failed)
	}

	return nil
}
