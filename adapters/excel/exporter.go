// Package excel renders scored reports as spreadsheets for coaches who
// work in Excel rather than the API.
package excel

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"lightscore/domain/assessment"
	"lightscore/domain/catalog"
	"lightscore/ports"
)

// Exporter implements ReportExporter for the XLSX format.
type Exporter struct{}

// NewExporter creates an XLSX report exporter
func NewExporter() ports.ReportExporter {
	return &Exporter{}
}

// ContentType returns the XLSX MIME type.
func (e *Exporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

const (
	sheetRays      = "Rays"
	sheetSubfacets = "Subfacets"
	sheetEclipse   = "Eclipse"
	sheetSignature = "Signature"
	sheetSignals   = "Signals"
)

// Export writes the workbook to w.
func (e *Exporter) Export(ctx context.Context, report *assessment.AssessmentOutputV1, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := e.writeRays(f, report); err != nil {
		return err
	}
	if err := e.writeSubfacets(f, report); err != nil {
		return err
	}
	if err := e.writeEclipse(f, report); err != nil {
		return err
	}
	if err := e.writeSignature(f, report); err != nil {
		return err
	}
	if err := e.writeSignals(f, report); err != nil {
		return err
	}

	// Drop the default sheet excelize creates.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	_, err := f.WriteTo(w)
	return err
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) writeRays(f *excelize.File, report *assessment.AssessmentOutputV1) error {
	if _, err := f.NewSheet(sheetRays); err != nil {
		return err
	}
	if err := setRow(f, sheetRays, 1, "Ray", "Name", "Access", "Eclipse", "Net Energy", "Modifier", "Measured"); err != nil {
		return err
	}
	row := 2
	for _, rayID := range catalog.RayIDs {
		ray := report.Rays[rayID]
		if err := setRow(f, sheetRays, row,
			ray.RayID, ray.RayName, ray.AccessScore, ray.EclipseScore,
			ray.NetEnergy, string(ray.EclipseModifier), ray.Measured); err != nil {
			return err
		}
		row++
	}
	return nil
}

func (e *Exporter) writeSubfacets(f *excelize.File, report *assessment.AssessmentOutputV1) error {
	if _, err := f.NewSheet(sheetSubfacets); err != nil {
		return err
	}
	if err := setRow(f, sheetSubfacets, 1, "Subfacet", "Label", "Shine", "Load", "Tags"); err != nil {
		return err
	}
	row := 2
	for _, rayID := range catalog.RayIDs {
		ray := report.Rays[rayID]
		for _, sf := range catalog.SubfacetsForRay(rayID) {
			out, ok := ray.Subfacets[sf]
			if !ok {
				continue
			}
			tags := ""
			for i, tag := range out.SignalTags {
				if i > 0 {
					tags += ", "
				}
				tags += tag
			}
			if err := setRow(f, sheetSubfacets, row,
				out.SubfacetID, out.Label, out.PolarityMix.Shine, out.PolarityMix.Eclipse, tags); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func (e *Exporter) writeEclipse(f *excelize.File, report *assessment.AssessmentOutputV1) error {
	if _, err := f.NewSheet(sheetEclipse); err != nil {
		return err
	}
	ecl := report.Eclipse
	rows := [][]interface{}{
		{"Level", string(ecl.Level)},
		{"Emotional Load", ecl.Dimensions.EmotionalLoad.Score},
		{"Cognitive Load", ecl.Dimensions.CognitiveLoad.Score},
		{"Relational Load", ecl.Dimensions.RelationalLoad.Score},
		{"Load Pressure", ecl.DerivedMetrics.LoadPressure},
		{"Recovery Access", ecl.DerivedMetrics.RecoveryAccess},
		{"EER", ecl.DerivedMetrics.EER},
		{"BRI", ecl.DerivedMetrics.BRI},
		{"Performance-Presence Delta", ecl.DerivedMetrics.PerformancePresenceDelta},
		{"Gate", string(ecl.Gating.Mode)},
		{"Gate Reason", ecl.Gating.Reason},
		{"Confidence", string(report.DataQuality.ConfidenceBand)},
		{"Profile", string(report.ProfileFlag)},
	}
	for i, r := range rows {
		if err := setRow(f, sheetEclipse, i+1, r...); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) writeSignature(f *excelize.File, report *assessment.AssessmentOutputV1) error {
	if _, err := f.NewSheet(sheetSignature); err != nil {
		return err
	}
	sig := report.LightSignature
	rows := [][]interface{}{
		{"Archetype", sig.Archetype.Name, sig.Archetype.PairCode},
		{"Essence", sig.Archetype.Essence},
		{"Top Ray 1", sig.TopTwo[0].RayName, sig.TopTwo[0].NetEnergy},
		{"Top Ray 2", sig.TopTwo[1].RayName, sig.TopTwo[1].NetEnergy},
		{"Growth Edge", sig.JustInRay.RayName, sig.JustInRay.NetEnergy, string(sig.JustInRay.SelectionBasis)},
	}
	for i, r := range rows {
		if err := setRow(f, sheetSignature, i+1, r...); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) writeSignals(f *excelize.File, report *assessment.AssessmentOutputV1) error {
	if _, err := f.NewSheet(sheetSignals); err != nil {
		return err
	}
	if err := setRow(f, sheetSignals, 1, "Signal", "Label", "Evidence"); err != nil {
		return err
	}
	row := 2
	for _, s := range report.ExecutiveOutput.Signals {
		evidence := ""
		for i, ev := range s.Evidence {
			if i > 0 {
				evidence += "; "
			}
			evidence += ev
		}
		if err := setRow(f, sheetSignals, row, s.SignalID, s.Label, evidence); err != nil {
			return err
		}
		row++
	}
	if row == 2 {
		if err := setRow(f, sheetSignals, row, "", fmt.Sprintf("no signals fired (gate %s)", report.Eclipse.Gating.Mode), ""); err != nil {
			return err
		}
	}
	return nil
}
