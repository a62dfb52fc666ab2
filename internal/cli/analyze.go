package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/credlens/credlens/internal/analyze"
	"github.com/credlens/credlens/internal/cache"
	"github.com/credlens/credlens/internal/classifier"
	"github.com/credlens/credlens/internal/fetch"
	"github.com/credlens/credlens/internal/lexicon"
	"github.com/credlens/credlens/internal/model"
	"github.com/credlens/credlens/internal/verify"
	"github.com/spf13/cobra"
)

var (
	outJSON         string
	outMD           string
	analyzeTimeout  time.Duration
	noCache         bool
	noFooter        bool
	remote          bool
	remoteModel     string
	verifySources   []string
	fakeLexPath     string
	credibleLexPath string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <text|file|url>",
	Short: "Score one piece of news text and explain the verdict",
	Long: `Analyze scores a single input against the fake-leaning and
credible-leaning lexicons:
- Match indicator phrases and aggregate weighted contributions
- Derive a verdict, a fake-leaning percentage, and a bounded confidence
- Extract candidate claims for separate review
- Rank per-word evidence for the verdict

The argument may be raw text, a path to a text file, or an http(s) URL.
With --remote the upstream classifier is consulted first and the local
engine serves as fallback.

Example:
  credlens analyze article.txt
  credlens analyze https://example.com/story --json report.json --md report.md
  credlens analyze "BREAKING: shocking secret cure" --remote`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Engine flags
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 2*time.Minute, "overall timeout (fetch + remote classifier)")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the analysis cache (force recompute)")
	analyzeCmd.Flags().StringVar(&fakeLexPath, "fake-lexicon", "", "YAML file overriding the built-in fake lexicon")
	analyzeCmd.Flags().StringVar(&credibleLexPath, "credible-lexicon", "", "YAML file overriding the built-in credible lexicon")

	// Remote classifier flags
	analyzeCmd.Flags().BoolVar(&remote, "remote", false, "consult the remote classifier, falling back locally")
	analyzeCmd.Flags().StringVar(&remoteModel, "remote-model", "", "remote classifier model name")

	// Cross-source verification flags
	analyzeCmd.Flags().StringSliceVar(&verifySources, "verify-source", nil, "source URL to cross-check extracted claims against (repeatable)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	cfg := buildConfig()
	if fakeLexPath != "" {
		cfg.Lexicons.FakePath = fakeLexPath
	}
	if credibleLexPath != "" {
		cfg.Lexicons.CrediblePath = credibleLexPath
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if noFooter {
		cfg.Output.IncludeFooter = false
	}
	if remote && cfg.Classifier.Provider == "" {
		cfg.Classifier.Provider = "openai"
	}
	if remoteModel != "" {
		cfg.Classifier.Model = remoteModel
	}

	service, fetcher, err := buildService(cfg, remote)
	if err != nil {
		return err
	}

	text, err := resolveInput(ctx, fetcher, args[0])
	if err != nil {
		return err
	}

	result, err := service.Verify(ctx, text)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Matched %d fake, %d credible indicators\n",
			len(result.Score.FakeMatches), len(result.Score.CredibleMatches))
		fmt.Fprintf(os.Stderr, "✓ Extracted %d claims\n", len(result.Claims))
	}

	renderer := analyze.NewRenderer(cfg.Output.IncludeFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(result, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(result, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	renderer.RenderSummary(result)

	if len(verifySources) > 0 {
		if err := crossCheck(ctx, fetcher, result.Claims); err != nil {
			return err
		}
	}

	return nil
}

// buildService assembles the analyzer, optional cache, and optional remote
// classifier into a verification service. The fetcher is shared with input
// resolution and cross-checking.
func buildService(cfg *model.Config, useRemote bool) (*classifier.Service, *fetch.Fetcher, error) {
	fake, credible, err := lexicon.ForConfig(cfg.Lexicons)
	if err != nil {
		return nil, nil, err
	}

	var opts []analyze.Option
	if c := cache.ForConfig(cfg.Cache.Enabled, cfg.Cache.MemoryTTL, cfg.Cache.DiskDir, cfg.Cache.DiskTTL); c != nil {
		opts = append(opts, analyze.WithCache(c))
	}

	analyzer := analyze.NewAnalyzer(cfg.Scoring, fake, credible, opts...)

	var provider classifier.Provider
	if useRemote {
		cfg.Classifier.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Classifier.APIKey == "" {
			return nil, nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		provider, err = classifier.NewProvider(cfg.Classifier)
		if err != nil {
			return nil, nil, err
		}
	}

	return classifier.NewService(provider, analyzer, cfg.Output.Verbose),
		fetch.NewFetcher(cfg.HTTP), nil
}

// resolveInput turns the CLI argument into article text: URLs are fetched,
// existing files are read, anything else is treated as the text itself.
func resolveInput(ctx context.Context, fetcher *fetch.Fetcher, arg string) (string, error) {
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		article, err := fetcher.Fetch(ctx, arg)
		if err != nil {
			return "", fmt.Errorf("fetch article: %w", err)
		}
		return article.Text, nil
	}

	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		data, err := os.ReadFile(arg)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}

	return arg, nil
}

// crossCheck runs each extracted claim against the configured source URLs
func crossCheck(ctx context.Context, fetcher *fetch.Fetcher, claims []model.Claim) error {
	checker := verify.NewHTTPChecker(fetcher, 0.5)

	fmt.Println("\nCross-source check:")
	for _, claim := range claims {
		check, err := checker.Check(ctx, claim.Text, verifySources)
		if err != nil {
			return fmt.Errorf("cross-check claim %d: %w", claim.ID, err)
		}

		if check.Found {
			fmt.Printf("  %d. corroborated (%.0f%% overlap) by %s\n", claim.ID, check.Similarity*100, check.URL)
		} else {
			fmt.Printf("  %d. no corroboration found\n", claim.ID)
		}
	}

	return nil
}
