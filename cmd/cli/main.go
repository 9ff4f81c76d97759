// lightscore-cli scores assessment runs offline: a JSON answer file in, a
// report out, no database required. Useful for batch rescoring and for
// verifying determinism against the API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lightscore/adapters/excel"
	"lightscore/adapters/report"
	"lightscore/domain/assessment"
	"lightscore/domain/catalog"
	"lightscore/domain/scoring"
	"lightscore/ports"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lightscore-cli",
		Short: "Offline scoring for assessment runs",
	}

	rootCmd.AddCommand(newScoreCmd(), newQuestionsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newScoreCmd() *cobra.Command {
	var inputPath, outputPath, htmlPath, xlsxPath string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a run from a JSON answer file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			var input assessment.RunInput
			if err := json.Unmarshal(data, &input); err != nil {
				return fmt.Errorf("parse input: %w", err)
			}

			engine := scoring.NewEngine(catalog.Default())
			out, err := engine.Score(context.Background(), input)
			if err != nil {
				return fmt.Errorf("score run %s: %w", input.RunID, err)
			}

			encoded, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			if outputPath == "" || outputPath == "-" {
				fmt.Println(string(encoded))
			} else if err := os.WriteFile(outputPath, encoded, 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}

			if htmlPath != "" {
				if err := exportTo(report.NewHTMLExporter(), out, htmlPath); err != nil {
					return err
				}
			}
			if xlsxPath != "" {
				if err := exportTo(excel.NewExporter(), out, xlsxPath); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "JSON answer file (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "-", "report JSON destination, - for stdout")
	cmd.Flags().StringVar(&htmlPath, "html", "", "also export HTML to this path")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "also export XLSX to this path")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func exportTo(exporter ports.ReportExporter, out *assessment.AssessmentOutputV1, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := exporter.Export(context.Background(), out, f); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

func newQuestionsCmd() *cobra.Command {
	var set string

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Print the assigned question list for a set",
		RunE: func(cmd *cobra.Command, args []string) error {
			qs := assessment.QuestionSet(set)
			if qs != assessment.QuestionSetFull && qs != assessment.QuestionSetWeekly {
				return fmt.Errorf("set must be %s or %s", assessment.QuestionSetFull, assessment.QuestionSetWeekly)
			}
			for _, q := range catalog.Default().QuestionsFor(qs) {
				marker := " "
				if !q.Required {
					marker = "*"
				}
				fmt.Printf("%s%s [%s] %s\n", marker, q.ID, q.DisplayType, q.Prompt)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&set, "set", string(assessment.QuestionSetFull), "question set (full_143 or weekly_43)")
	return cmd
}
