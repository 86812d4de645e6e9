package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/archspan/floorplan/pkg/brief"
	"github.com/archspan/floorplan/pkg/compliance"
	"github.com/archspan/floorplan/pkg/floorplan"
	"github.com/archspan/floorplan/pkg/persist"
	"github.com/archspan/floorplan/pkg/plan"
	"github.com/archspan/floorplan/pkg/render"
)

const version = "1.0.0"

// CLI flags, adapted line-for-line from cmd/dungeongen/main.go.
var (
	briefPath    = flag.String("brief", "", "Path to YAML design brief file (required)")
	outputDir    = flag.String("output", ".", "Output directory for generated files")
	format       = flag.String("format", "yaml", "Export format: yaml, svg, or all")
	jurisdiction = flag.String("jurisdiction", compliance.JurisdictionIRCBase, "Compliance jurisdiction to evaluate under")
	variationsF  = flag.Bool("variations", false, "Generate and rank all six plan variations instead of one")
	verbose      = flag.Bool("verbose", false, "Enable verbose output")
	versionF     = flag.Bool("version", false, "Print version and exit")
	help         = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("floorplangen version %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	if *briefPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -brief flag is required")
		printUsage()
		os.Exit(1)
	}

	validFormats := map[string]bool{"yaml": true, "svg": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: yaml, svg, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		fmt.Printf("Loading design brief from %s\n", *briefPath)
	}

	b, err := brief.LoadBrief(*briefPath)
	if err != nil {
		return fmt.Errorf("failed to load brief: %w", err)
	}

	if *verbose {
		fmt.Printf("Target area: %.0f sq ft, stories: %d, style: %s\n", b.TargetAreaSqFt, b.Stories, b.Style)
		fmt.Printf("Room requirements: %d\n", len(b.Rooms))
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	start := time.Now()
	if *verbose {
		fmt.Println("Running floor-plan pipeline...")
	}

	if *variationsF {
		return runVariations(b, start)
	}
	return runSingle(b, start)
}

func runSingle(b *brief.Brief, start time.Time) error {
	result := floorplan.Run(b)
	elapsed := time.Since(start)

	if *verbose {
		fmt.Printf("Pipeline completed in %v\n", elapsed)
		printStats(result.Placed, result.Score)
	}

	report, err := compliance.RunComplianceCheck(result.Placed, result.Walls, *jurisdiction)
	if err != nil {
		return fmt.Errorf("compliance check failed: %w", err)
	}
	if *verbose {
		printReport(report)
	}

	baseName := fmt.Sprintf("floorplan_%s", result.Placed.RunID)
	if *format == "yaml" || *format == "all" {
		if err := exportYAML(result, baseName); err != nil {
			return err
		}
	}
	if *format == "svg" || *format == "all" {
		if err := exportSVG(result.Placed, result.Walls, baseName); err != nil {
			return err
		}
	}

	fmt.Printf("Successfully generated floor plan (run=%s) in %v\n", result.Placed.RunID, elapsed)
	return nil
}

func runVariations(b *brief.Brief, start time.Time) error {
	_, _, results := floorplan.RunVariations(b)
	elapsed := time.Since(start)

	if *verbose {
		fmt.Printf("Generated %d variations in %v\n", len(results), elapsed)
	}

	fmt.Println("\nVariation ranking (by overall score):")
	for i, r := range results {
		fmt.Printf("  %d. %-24s overall=%.1f  buildability=%.1f  unplaced=%d\n",
			i+1, r.Plan.Strategy, r.Score.Overall, r.Score.OverallBuildability, len(r.Plan.UnplacedRoomIDs))
	}

	if len(results) == 0 {
		return nil
	}
	best := results[0]
	wa := floorplan.AnalyzeWalls(best.Plan)
	baseName := fmt.Sprintf("floorplan_%s", best.Plan.RunID)
	if *format == "yaml" || *format == "all" {
		if err := exportYAML(floorplan.Plan{Placed: best.Plan, Walls: wa, Score: best.Score}, baseName); err != nil {
			return err
		}
	}
	if *format == "svg" || *format == "all" {
		if err := exportSVG(best.Plan, wa, baseName); err != nil {
			return err
		}
	}
	return nil
}

func exportYAML(result floorplan.Plan, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".yaml")
	if *verbose {
		fmt.Printf("Exporting YAML bundle to %s\n", filename)
	}
	bundle := persist.NewBundle(result.Placed, result.Walls, result.Score)
	if err := bundle.SaveToFile(filename); err != nil {
		return fmt.Errorf("failed to export YAML: %w", err)
	}
	if *verbose {
		info, _ := os.Stat(filename)
		fmt.Printf("  Wrote %d bytes\n", info.Size())
	}
	return nil
}

func exportSVG(p plan.PlacedPlan, wa plan.WallAnalysis, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	if *verbose {
		fmt.Printf("Exporting SVG to %s\n", filename)
	}
	opts := render.DefaultOptions()
	opts.Title = fmt.Sprintf("Floor Plan (%s)", p.RunID)
	if err := render.SaveToFile(p, wa, filename, opts); err != nil {
		return fmt.Errorf("failed to export SVG: %w", err)
	}
	if *verbose {
		info, _ := os.Stat(filename)
		fmt.Printf("  Wrote %d bytes\n", info.Size())
	}
	return nil
}

func printStats(p plan.PlacedPlan, score plan.PlanScore) {
	fmt.Println("\nFloor Plan Statistics:")
	fmt.Printf("  Rooms: %d\n", len(p.Rooms))
	fmt.Printf("  Doors: %d\n", len(p.Doors))
	fmt.Printf("  Windows: %d\n", len(p.Windows))
	fmt.Printf("  Unplaced rooms: %d\n", len(p.UnplacedRoomIDs))
	fmt.Printf("  Fully connected: %v\n", p.Circulation.IsFullyConnected)

	fmt.Println("\nScores:")
	fmt.Printf("  AdjacencySatisfaction: %.1f\n", score.AdjacencySatisfaction)
	fmt.Printf("  ZoneCohesion:          %.1f\n", score.ZoneCohesion)
	fmt.Printf("  NaturalLight:          %.1f\n", score.NaturalLight)
	fmt.Printf("  PlumbingEfficiency:    %.1f\n", score.PlumbingEfficiency)
	fmt.Printf("  CirculationQuality:    %.1f\n", score.CirculationQuality)
	fmt.Printf("  SpaceUtilization:      %.1f\n", score.SpaceUtilization)
	fmt.Printf("  PrivacyGradient:       %.1f\n", score.PrivacyGradient)
	fmt.Printf("  OverallBuildability:   %.1f\n", score.OverallBuildability)
	fmt.Printf("  Overall:               %.1f\n", score.Overall)
	fmt.Printf("  SqftAccuracy:          %.1f\n", score.SqftAccuracy)
}

func printReport(report compliance.Report) {
	fmt.Printf("\nCompliance (%s): %s\n", report.Jurisdiction, complianceStatus(report.OverallCompliance))
	fmt.Printf("  Passed: %d  Failed: %d  Warnings: %d  Info: %d  Skipped: %d\n",
		report.Summary.Passed, report.Summary.Failed, report.Summary.Warnings,
		report.Summary.Info, report.Summary.Skipped)
	fmt.Printf("  Compliance: %.1f%%\n", report.Summary.CompliancePercent)
}

func complianceStatus(passed bool) string {
	if passed {
		return "PASSED"
	}
	return "FAILED"
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: floorplangen -brief <brief.yaml> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'floorplangen -help' for detailed help")
}

func printHelp() {
	fmt.Printf("floorplangen version %s\n\n", version)
	fmt.Println("A command-line tool for generating and validating residential floor plans.")
	fmt.Println("\nUsage:")
	fmt.Println("  floorplangen -brief <brief.yaml> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -brief string")
	fmt.Println("        Path to YAML design brief file")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for generated files (default: current directory)")
	fmt.Println("  -format string")
	fmt.Println("        Export format: yaml, svg, or all (default: yaml)")
	fmt.Println("  -jurisdiction string")
	fmt.Println("        Compliance jurisdiction to evaluate under (default: irc-base)")
	fmt.Println("  -variations")
	fmt.Println("        Generate and rank all six plan variations instead of one")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Generate a floor plan with default YAML export")
	fmt.Println("  floorplangen -brief house.yaml")
	fmt.Println("\n  # Generate ranked variations with SVG + YAML export")
	fmt.Println("  floorplangen -brief house.yaml -variations -format all -output ./out")
	fmt.Println("\n  # Evaluate against the Colorado amendment set with verbose output")
	fmt.Println("  floorplangen -brief house.yaml -jurisdiction colorado -verbose")
	fmt.Println("\nDesign Brief File:")
	fmt.Println("  The YAML brief specifies the house parameters including:")
	fmt.Println("  - targetAreaSqFt (800-5000) and stories (1 or 2)")
	fmt.Println("  - style (ranch, modern, traditional, craftsman, farmhouse, contemporary)")
	fmt.Println("  - rooms: an ordered list of room requirements")
	fmt.Println("  - lot: optional lot constraints (width, depth, setbacks, entry facing, garage position)")
}
