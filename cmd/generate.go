package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/kozaktomas/photo-collage/internal/config"
	"github.com/kozaktomas/photo-collage/internal/engine"
	"github.com/kozaktomas/photo-collage/internal/intake"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [files or directories...]",
	Short: "Generate ranked collage layouts",
	Long: `Generate collage layout candidates for a set of photos and print them
ranked best-first. Photos are given either as image files / directories
(dimensions are read from the image headers) or as --dims WxH pairs.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("page", "", "Page size as WxH, e.g. 297x210 (defaults to COLLAGE_PAGE_*)")
	generateCmd.Flags().StringSlice("dims", nil, "Photo dimensions as WxH pairs instead of files, e.g. --dims 800x600,600x800")
	generateCmd.Flags().Bool("grouped", false, "Keep near-identical layouts and annotate them instead of dropping duplicates")
	generateCmd.Flags().Float64("ratio", 0, "First-region fraction of two-region splits (overrides COLLAGE_SPLIT_RATIO)")
	generateCmd.Flags().Int("top", 10, "Number of candidates to print (0 for all)")
	generateCmd.Flags().Bool("json", false, "Print the full result as JSON")
}

// parseSize parses a WxH string like "297x210" into positive floats.
func parseSize(s string) (float64, float64, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q, expected WxH", s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	return w, h, nil
}

// collectFiles expands the file and directory arguments into image paths.
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("could not stat %s: %w", arg, err)
		}
		if info.IsDir() {
			found, err := intake.ScanDir(arg)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
			continue
		}
		if !intake.Supported(arg) {
			return nil, fmt.Errorf("%s is not a supported image file", arg)
		}
		files = append(files, arg)
	}
	return files, nil
}

// loadPhotos reads photo dimensions from the given image files.
func loadPhotos(files []string) ([]engine.Photo, error) {
	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription("Reading images"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("images"),
		progressbar.OptionShowElapsedTimeOnFinish(),
	)

	photos := make([]engine.Photo, 0, len(files))
	for _, file := range files {
		photo, err := intake.Read(file)
		if err != nil {
			return nil, err
		}
		photos = append(photos, photo)
		_ = bar.Add(1)
	}
	fmt.Println()
	return photos, nil
}

// parseDims converts --dims WxH pairs into photos with synthetic IDs.
func parseDims(dims []string) ([]engine.Photo, error) {
	photos := make([]engine.Photo, 0, len(dims))
	for i, d := range dims {
		w, h, err := parseSize(d)
		if err != nil {
			return nil, err
		}
		photos = append(photos, engine.Photo{
			ID:     fmt.Sprintf("photo-%d", i+1),
			Width:  int(w),
			Height: int(h),
		})
	}
	return photos, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	dims := mustGetStringSlice(cmd, "dims")
	if len(dims) > 0 && len(args) > 0 {
		return fmt.Errorf("use either --dims or file arguments, not both")
	}
	if len(dims) == 0 && len(args) == 0 {
		return fmt.Errorf("no photos given, pass image files or --dims")
	}

	var photos []engine.Photo
	var err error
	if len(dims) > 0 {
		photos, err = parseDims(dims)
	} else {
		var files []string
		files, err = collectFiles(args)
		if err == nil {
			if len(files) == 0 {
				return fmt.Errorf("no supported image files found")
			}
			photos, err = loadPhotos(files)
		}
	}
	if err != nil {
		return err
	}

	page := engine.PageSize{Width: cfg.Page.Width, Height: cfg.Page.Height}
	if pageFlag := mustGetString(cmd, "page"); pageFlag != "" {
		w, h, err := parseSize(pageFlag)
		if err != nil {
			return err
		}
		page = engine.PageSize{Width: w, Height: h}
	}

	splitRatio := cfg.Engine.SplitRatio
	if ratio := mustGetFloat64(cmd, "ratio"); ratio > 0 && ratio < 1 {
		splitRatio = ratio
	}

	eng := engine.New(engine.Options{
		Weights: engine.ScoreWeights{
			Utilization: cfg.Engine.UtilizationWeight,
			Cropping:    cfg.Engine.CroppingWeight,
			Balance:     cfg.Engine.BalanceWeight,
		},
		StrictPrecision: cfg.Engine.StrictPrecision,
		SplitRatio:      splitRatio,
	})

	grouped := mustGetBool(cmd, "grouped")
	top := mustGetInt(cmd, "top")
	asJSON := mustGetBool(cmd, "json")

	if grouped {
		cands := eng.GenerateGrouped(photos, page)
		return printCandidates(cands, page, top, asJSON, true)
	}

	result := eng.Generate(photos, page)
	if !asJSON {
		fmt.Printf("Generated %d candidates (%d duplicates dropped, %d invalid)\n\n",
			result.Generated, result.Duplicates, result.Invalid)
	}
	return printCandidates(result.Candidates, page, top, asJSON, false)
}

func printCandidates(cands []engine.Candidate, page engine.PageSize, top int, asJSON, grouped bool) error {
	if top > 0 && top < len(cands) {
		cands = cands[:top]
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cands)
	}

	for i, c := range cands {
		marker := ""
		if grouped && c.DuplicateOf >= 0 {
			marker = fmt.Sprintf("  (variant of #%d)", c.DuplicateOf+1)
		}
		fmt.Printf("#%-3d %-28s %-10s score=%.4f  util=%.3f crop=%.3f balance=%.3f%s\n",
			i+1, c.Name, c.Kind, c.Score,
			c.Metrics.Utilization, c.Metrics.CroppingRate, c.Metrics.SizeBalance, marker)
		for _, warning := range engine.ValidateCandidate(c, page) {
			log.Printf("WARNING: %s cell %d: %s", c.Name, warning.CellIndex, warning.Message)
		}
	}
	return nil
}
