package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/coolbeans/bylaw/pkg/corpus"
	"github.com/coolbeans/bylaw/pkg/engine"
	"github.com/coolbeans/bylaw/pkg/validate"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "bylaw",
		Short: "Building-regulation compliance engine",
		Long: `Bylaw evaluates building projects against development control
regulations (UDCPR/DCPR) and produces traceable compliance results.

It calculates:
  - Permissible FSI with zone and incentive bonuses
  - Front, side and rear setbacks
  - Parking requirements in ECS
  - Height limits from abutting road width
  - TDR loading potential and deficit analysis

Every number carries the regulation clauses it came from.`,
		Version: version,
	}

	rootCmd.AddCommand(evaluateCmd())
	rootCmd.AddCommand(calcCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(corpusCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func evaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a project against all regulation domains",
		Long: `Evaluate a project file against FSI, setback, parking, height and
TDR regulations, producing a full compliance result with calculation traces.

Example:
  bylaw evaluate --project project.yaml --rules ./rules
  bylaw evaluate --project project.json --rules ./rules --trace`,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath, _ := cmd.Flags().GetString("project")
			rulesDir, _ := cmd.Flags().GetString("rules")
			showTrace, _ := cmd.Flags().GetBool("trace")
			strategyName, _ := cmd.Flags().GetString("strategy")

			project, err := loadProject(projectPath)
			if err != nil {
				return err
			}

			c, err := loadCorpus(rulesDir)
			if err != nil {
				return err
			}

			strategy, err := pickStrategy(strategyName)
			if err != nil {
				return err
			}

			eval := engine.New(c, engine.WithStrategy(strategy))
			result, err := eval.Evaluate(project)
			if err != nil {
				return fmt.Errorf("evaluation failed: %w", err)
			}

			if !showTrace {
				result.Trace = nil
			}
			return printJSON(result)
		},
	}

	cmd.Flags().StringP("project", "p", "", "Project input file (JSON or YAML)")
	cmd.Flags().StringP("rules", "r", "rules", "Directory of regulation clause files")
	cmd.Flags().Bool("trace", false, "Include calculation traces in the output")
	cmd.Flags().String("strategy", "corpus", "Base FSI strategy: corpus or formula")
	cmd.MarkFlagRequired("project")
	return cmd
}

func calcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc [fsi|setbacks|parking|height]",
		Short: "Run a single regulation domain calculation",
		Long: `Run one domain calculation in isolation and print its result with
the calculation trace.

Example:
  bylaw calc fsi --project project.yaml --rules ./rules
  bylaw calc parking --project project.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath, _ := cmd.Flags().GetString("project")
			rulesDir, _ := cmd.Flags().GetString("rules")

			project, err := loadProject(projectPath)
			if err != nil {
				return err
			}

			c, err := loadCorpus(rulesDir)
			if err != nil {
				return err
			}

			eval := engine.New(c)

			var result any
			var trace []engine.CalculationStep
			switch strings.ToLower(args[0]) {
			case "fsi":
				result, trace, err = eval.CalculateFSI(project)
			case "setbacks":
				result, trace, err = eval.CalculateSetbacks(project)
			case "parking":
				result, trace, err = eval.CalculateParking(project)
			case "height":
				result, trace, err = eval.CalculateHeight(project)
			default:
				return fmt.Errorf("unknown domain %q (want fsi, setbacks, parking or height)", args[0])
			}
			if err != nil {
				return fmt.Errorf("calculation failed: %w", err)
			}

			return printJSON(map[string]any{
				"result": result,
				"trace":  trace,
			})
		},
	}

	cmd.Flags().StringP("project", "p", "", "Project input file (JSON or YAML)")
	cmd.Flags().StringP("rules", "r", "rules", "Directory of regulation clause files")
	cmd.MarkFlagRequired("project")
	return cmd
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Evaluate a project and validate the result against the corpus",
		Long: `Run a full evaluation, then independently corroborate the results
against the regulation corpus and print a confidence report.

Example:
  bylaw validate --project project.yaml --rules ./rules`,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath, _ := cmd.Flags().GetString("project")
			rulesDir, _ := cmd.Flags().GetString("rules")

			project, err := loadProject(projectPath)
			if err != nil {
				return err
			}

			c, err := loadCorpus(rulesDir)
			if err != nil {
				return err
			}

			eval := engine.New(c)
			result, err := eval.Evaluate(project)
			if err != nil {
				return fmt.Errorf("evaluation failed: %w", err)
			}

			report := validate.New(c).Validate(project, result)
			return printJSON(map[string]any{
				"evaluation_id": result.EvaluationID,
				"compliant":     result.Compliant,
				"validation":    report,
			})
		},
	}

	cmd.Flags().StringP("project", "p", "", "Project input file (JSON or YAML)")
	cmd.Flags().StringP("rules", "r", "rules", "Directory of regulation clause files")
	cmd.MarkFlagRequired("project")
	return cmd
}

func corpusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Inspect and watch the regulation corpus",
	}
	cmd.AddCommand(corpusInfoCmd())
	cmd.AddCommand(corpusWatchCmd())
	return cmd
}

func corpusInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show clause counts by jurisdiction and category",
		RunE: func(cmd *cobra.Command, args []string) error {
			rulesDir, _ := cmd.Flags().GetString("rules")

			c, err := loadCorpus(rulesDir)
			if err != nil {
				return err
			}
			return printJSON(c.Stats())
		},
	}

	cmd.Flags().StringP("rules", "r", "rules", "Directory of regulation clause files")
	return cmd
}

func corpusWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the rules directory and reload on changes",
		Long: `Watch the rules directory and rebuild the corpus snapshot whenever
clause files change. Runs until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rulesDir, _ := cmd.Flags().GetString("rules")

			watcher, err := corpus.Watch(rulesDir, func(c *corpus.Corpus, warnings []corpus.LoadWarning) {
				for _, warning := range warnings {
					fmt.Fprintf(os.Stderr, "warning: %s: %v\n", warning.File, warning.Err)
				}
				fmt.Printf("reloaded: %d clause(s)\n", c.Len())
			})
			if err != nil {
				return fmt.Errorf("failed to watch %s: %w", rulesDir, err)
			}
			defer watcher.Close()

			fmt.Printf("watching %s (%d clause(s) loaded), ctrl-c to stop\n",
				rulesDir, watcher.Snapshot().Len())

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop
			return nil
		},
	}

	cmd.Flags().StringP("rules", "r", "rules", "Directory of regulation clause files")
	return cmd
}

// loadProject reads a project input file, decoding by extension.
func loadProject(path string) (engine.ProjectInput, error) {
	var project engine.ProjectInput

	data, err := os.ReadFile(path)
	if err != nil {
		return project, fmt.Errorf("failed to read project file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &project)
	case ".json":
		err = json.Unmarshal(data, &project)
	default:
		return project, fmt.Errorf("unsupported project file format: %s", filepath.Ext(path))
	}
	if err != nil {
		return project, fmt.Errorf("failed to parse project file: %w", err)
	}
	return project, nil
}

// loadCorpus loads the rules directory, printing load warnings to
// stderr instead of failing.
func loadCorpus(dir string) (*corpus.Corpus, error) {
	c, warnings, err := corpus.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules from %s: %w", dir, err)
	}
	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "warning: skipped %s: %v\n", warning.File, warning.Err)
	}
	return c, nil
}

func pickStrategy(name string) (engine.FSIStrategy, error) {
	switch strings.ToLower(name) {
	case "corpus":
		return engine.CorpusBacked{}, nil
	case "formula":
		return engine.FixedFormula{}, nil
	}
	return nil, fmt.Errorf("unknown strategy %q (want corpus or formula)", name)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
