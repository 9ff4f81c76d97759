// Package report renders scored reports as human-readable documents. The
// report body is composed as markdown and converted to HTML, so the same
// composition also serves plain-text delivery.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"lightscore/domain/assessment"
	"lightscore/domain/catalog"
	"lightscore/ports"
)

// HTMLExporter implements ReportExporter for HTML delivery.
type HTMLExporter struct{}

// NewHTMLExporter creates an HTML report exporter
func NewHTMLExporter() ports.ReportExporter {
	return &HTMLExporter{}
}

// ContentType returns the HTML MIME type.
func (e *HTMLExporter) ContentType() string {
	return "text/html; charset=utf-8"
}

// Export composes the report as markdown, converts it, and wraps it in a
// minimal document shell.
func (e *HTMLExporter) Export(ctx context.Context, rep *assessment.AssessmentOutputV1, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	md := ComposeMarkdown(rep)

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	body := markdown.ToHTML([]byte(md), p, renderer)

	if _, err := fmt.Fprintf(w, htmlShell, rep.RunID, body); err != nil {
		return err
	}
	return nil
}

const htmlShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Assessment Report %s</title>
<style>
body { font-family: Georgia, serif; max-width: 52rem; margin: 2rem auto; padding: 0 1rem; color: #1f2430; }
h1, h2 { border-bottom: 1px solid #d8d8e0; padding-bottom: .3rem; }
table { border-collapse: collapse; width: 100%%; }
th, td { border: 1px solid #d8d8e0; padding: .4rem .6rem; text-align: left; }
blockquote { border-left: 3px solid #8888aa; margin-left: 0; padding-left: 1rem; color: #555; }
</style>
</head>
<body>
%s
</body>
</html>
`

// ComposeMarkdown builds the full report document. Language assertiveness
// follows the report language mode: a flagged run reads as hypothesis, not
// verdict.
func ComposeMarkdown(rep *assessment.AssessmentOutputV1) string {
	var b strings.Builder
	hedge := rep.ActingVsCapacity.ReportLanguageMode != assessment.LanguageStandard

	fmt.Fprintf(&b, "# Light Signature Report\n\n")
	fmt.Fprintf(&b, "Run `%s` | set `%s` | schema `%s` | confidence **%s**\n\n",
		rep.RunID, rep.QuestionSet, rep.SchemaVersion, rep.DataQuality.ConfidenceBand)

	if rep.DataQuality.RetakeRecommended {
		fmt.Fprintf(&b, "> **Data quality caution:** %s A retake is recommended.\n\n", rep.DataQuality.QualityNotes)
	}

	sig := rep.LightSignature
	if rep.ProfileFlag == assessment.ProfileUndifferentiated {
		fmt.Fprintf(&b, "## Signature\n\nThis profile is undifferentiated: net energy is nearly flat across all nine capacities, so no archetype is reported. Treat the ranking below as orientation only.\n\n")
	} else {
		verb := "is"
		if hedge {
			verb = "may be"
		}
		fmt.Fprintf(&b, "## Signature: %s\n\n", sig.Archetype.Name)
		fmt.Fprintf(&b, "Your leading pair %s **%s** and **%s**. %s\n\n",
			verb, sig.TopTwo[0].RayName, sig.TopTwo[1].RayName, sig.Archetype.Essence)
		if sig.Archetype.Strengths != "" {
			fmt.Fprintf(&b, "**Strengths:** %s\n\n", sig.Archetype.Strengths)
		}
		if sig.Archetype.StressDistortion != "" {
			fmt.Fprintf(&b, "**Under stress:** %s\n\n", sig.Archetype.StressDistortion)
		}
	}
	fmt.Fprintf(&b, "**Growth edge:** %s (%s)\n\n", sig.JustInRay.RayName, catalog.RayVerbs[sig.JustInRay.RayID])

	fmt.Fprintf(&b, "## The Nine Capacities\n\n")
	fmt.Fprintf(&b, "| Ray | Access | Eclipse | Net | Modifier |\n|---|---|---|---|---|\n")
	for _, rayID := range catalog.RayIDs {
		ray := rep.Rays[rayID]
		mod := ""
		if ray.EclipseModifier == assessment.ModifierAmplified {
			mod = "AMPLIFIED"
		}
		fmt.Fprintf(&b, "| %s | %.0f | %.0f | %.0f | %s |\n",
			ray.RayName, ray.AccessScore, ray.EclipseScore, ray.NetEnergy, mod)
	}
	b.WriteString("\n")

	// Amplified rays get their known distortion pattern called out so the
	// reader knows what the compounding load tends to look like.
	for _, rayID := range catalog.RayIDs {
		if rep.Rays[rayID].EclipseModifier == assessment.ModifierAmplified {
			fmt.Fprintf(&b, "> **%s is amplified.** %s\n\n",
				rep.Rays[rayID].RayName, catalog.EclipseDistortions[rayID])
		}
	}

	ecl := rep.Eclipse
	fmt.Fprintf(&b, "## Load Analysis\n\n")
	fmt.Fprintf(&b, "Overall level: **%s** (pressure %.0f, recovery %.0f, burnout risk %d/4).\n\n",
		ecl.Level, ecl.DerivedMetrics.LoadPressure, ecl.DerivedMetrics.RecoveryAccess, ecl.DerivedMetrics.BRI)
	fmt.Fprintf(&b, "- Emotional: %.0f. %s\n", ecl.Dimensions.EmotionalLoad.Score, ecl.Dimensions.EmotionalLoad.Note)
	fmt.Fprintf(&b, "- Cognitive: %.0f. %s\n", ecl.Dimensions.CognitiveLoad.Score, ecl.Dimensions.CognitiveLoad.Note)
	fmt.Fprintf(&b, "- Relational: %.0f. %s\n\n", ecl.Dimensions.RelationalLoad.Score, ecl.Dimensions.RelationalLoad.Note)
	fmt.Fprintf(&b, "**Gate: %s.** %s\n\n", ecl.Gating.Mode, ecl.Gating.Reason)

	fmt.Fprintf(&b, "## This Month\n\n")
	fmt.Fprintf(&b, "**Week 1:** %s\n\n**Weeks 2-4:** %s\n\n",
		rep.Recommendations.ThirtyDayPlan.Week1, rep.Recommendations.ThirtyDayPlan.Weeks2to4)
	for _, tool := range rep.Recommendations.ToolReadiness {
		fmt.Fprintf(&b, "### %s (%d min)\n\n%s\n\n", tool.Label, tool.TimeCostMinutes, tool.WhyNow)
		for _, step := range tool.Steps {
			fmt.Fprintf(&b, "1. %s\n", step)
		}
		b.WriteString("\n")
	}

	if len(rep.Recommendations.WhatNotToDoYet) > 0 {
		fmt.Fprintf(&b, "## Not Yet\n\n")
		for _, item := range rep.Recommendations.WhatNotToDoYet {
			fmt.Fprintf(&b, "- %s\n", item)
		}
		b.WriteString("\n")
	}

	if len(rep.ExecutiveOutput.Signals) > 0 {
		fmt.Fprintf(&b, "## Executive Signals\n\n")
		for _, s := range rep.ExecutiveOutput.Signals {
			fmt.Fprintf(&b, "- **%s** (%s)\n", s.Label, strings.Join(s.Evidence, ", "))
		}
		b.WriteString("\n")
	}

	var detected []assessment.EdgeCase
	for _, ec := range rep.EdgeCases {
		if ec.Detected {
			detected = append(detected, ec)
		}
	}
	if len(detected) > 0 {
		fmt.Fprintf(&b, "## Reading Notes\n\n")
		for _, ec := range detected {
			fmt.Fprintf(&b, "- %s\n", ec.Restriction)
		}
		b.WriteString("\n")
	}

	return b.String()
}
