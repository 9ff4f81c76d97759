// Package scoring is the deterministic assessment engine: it converts a
// validated run of raw responses into the versioned report envelope. Every
// function here is a pure computation over the run and the bank; the same
// input always produces the same output bytes.
package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"lightscore/domain/assessment"
	"lightscore/domain/catalog"
	"lightscore/domain/core"
)

// Engine scores runs against one immutable bank.
type Engine struct {
	bank *catalog.Bank
}

// NewEngine builds an engine over a bank. Pass catalog.Default() unless a
// test needs a custom bank.
func NewEngine(bank *catalog.Bank) *Engine {
	return &Engine{bank: bank}
}

// fingerprint hashes the canonical form of a run's input: responses sorted
// by question ID, serialized without timestamps. Answer latency affects
// data-quality triggers but is not part of score identity.
func fingerprint(input assessment.RunInput) (core.InputFingerprint, error) {
	type canonicalResponse struct {
		QuestionID string `json:"question_id"`
		Value      int    `json:"value"`
		FreeText   string `json:"free_text,omitempty"`
	}
	canonical := struct {
		RunID       core.RunID             `json:"run_id"`
		QuestionSet assessment.QuestionSet `json:"question_set"`
		Responses   []canonicalResponse    `json:"responses"`
	}{
		RunID:       input.RunID,
		QuestionSet: input.QuestionSet,
		Responses:   make([]canonicalResponse, 0, len(input.Responses)),
	}
	for _, r := range input.Responses {
		canonical.Responses = append(canonical.Responses, canonicalResponse{
			QuestionID: r.QuestionID,
			Value:      r.Value,
			FreeText:   r.FreeText,
		})
	}
	sort.Slice(canonical.Responses, func(i, j int) bool {
		return canonical.Responses[i].QuestionID < canonical.Responses[j].QuestionID
	})
	data, err := json.Marshal(canonical)
	if err != nil {
		return "", fmt.Errorf("fingerprint input: %w", err)
	}
	return core.NewInputFingerprint(data), nil
}

// Score runs the full pipeline. It fails closed: any validation error
// rejects the run and no partial report is produced.
func (e *Engine) Score(ctx context.Context, input assessment.RunInput) (*assessment.AssessmentOutputV1, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	idx, err := normalize(e.bank, input)
	if err != nil {
		return nil, err
	}
	fp, err := fingerprint(input)
	if err != nil {
		return nil, err
	}

	// The eclipse dimensions and the pattern forensics read disjoint slices
	// of the index, so they run concurrently. Everything downstream needs
	// both.
	var (
		dims      dimensionScores
		forensics validityResult
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		dims = computeDimensions(idx)
		return nil
	})
	g.Go(func() error {
		forensics = runForensics(idx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rays := computeRays(idx, dims)
	amplified := amplifiedCount(rays)

	pressure := loadPressure(dims)
	level := eclipseLevel(pressure)
	eer := energyEfficiencyRatio(rays)
	recovery := recoveryAccess(pressure, amplified)
	bri := burnoutRiskIndex(eer, amplified, recovery, level)
	gating := gate(level, bri)

	ranked := rankRays(rays)
	meanNet, spread := netEnergyStats(rays)

	signature, err := buildSignature(ranked, gating.Mode)
	if err != nil {
		return nil, err
	}

	// Performance-presence delta: how far the two leading capacities run
	// ahead of the recovery funding them.
	topAccess := (ranked[0].Access + ranked[1].Access) / catalog.PowerSourceCount
	ppd := clamp(topAccess - recovery)

	signals := evaluateSignals(rays, gating.Mode)
	edges := detectEdgeCases(edgeCaseInputs{
		Rays:      rays,
		Ranked:    ranked,
		Validity:  forensics,
		Spread:    spread,
		GateMode:  gating.Mode,
		EER:       eer,
		Reflected: len(idx.reflections),
	})

	rayOutputs := make(map[string]assessment.RayOutput, catalog.RayCount)
	for rayID, comp := range rays {
		rayOutputs[rayID] = comp.toOutput()
	}

	out := &assessment.AssessmentOutputV1{
		SchemaVersion:    assessment.SchemaVersionV1,
		RunID:            input.RunID,
		QuestionSet:      input.QuestionSet,
		InputFingerprint: fp,
		Rays:             rayOutputs,
		Eclipse: assessment.EclipseOutput{
			Level:      level,
			Dimensions: toDimensionOutput(dims),
			DerivedMetrics: assessment.DerivedMetrics{
				RecoveryAccess:           recovery,
				LoadPressure:             pressure,
				EER:                      eer,
				BRI:                      bri,
				PerformancePresenceDelta: ppd,
			},
			Gating: gating,
		},
		LightSignature:   signature,
		ActingVsCapacity: actingVsCapacity(ppd, forensics),
		Recommendations:  buildRecommendations(signature, gating, level),
		ExecutiveOutput:  assessment.ExecutiveOutput{Signals: signals},
		OutcomeTags:      deriveOutcomeTags(signals),
		EdgeCases:        edges,
		DataQuality:      forensics.toDataQuality(),
		Indices: assessment.Indices{
			EER:             eer,
			BRI:             bri,
			LoadPressure:    pressure,
			RecoveryAccess:  recovery,
			PPDelta:         ppd,
			MeanNetEnergy:   meanNet,
			NetEnergySpread: spread,
		},
		ProfileFlag: profileFlag(spread, rays),
	}
	return out, nil
}
