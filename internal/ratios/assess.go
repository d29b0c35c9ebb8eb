package ratios

import (
	"finlens/pkg/contracts/domain"
)

// Assess classifies every computed ratio against its benchmark. Assessments
// come back in the fixed presentation order of domain.AllRatios; ratios
// absent from the set (not applicable) produce no assessment.
func Assess(rs domain.RatioSet) []domain.RatioAssessment {
	out := make([]domain.RatioAssessment, 0, len(rs))
	for _, ratio := range domain.AllRatios {
		v, ok := rs[ratio]
		if !ok {
			continue
		}
		b := benchmarks[ratio]
		out = append(out, domain.RatioAssessment{
			Ratio:       ratio,
			Value:       v,
			Status:      b.classify(v),
			Benchmark:   b.text,
			Description: b.description,
			Formula:     b.formula,
		})
	}
	return out
}

// Summarize aggregates assessments into per-tier counts and an overall
// verdict equal to the worst tier present.
func Summarize(assessments []domain.RatioAssessment) domain.AssessmentSummary {
	s := domain.AssessmentSummary{Overall: domain.StatusExcellent}
	for _, a := range assessments {
		switch a.Status {
		case domain.StatusExcellent:
			s.Excellent++
		case domain.StatusGood:
			s.Good++
		case domain.StatusWarning:
			s.Warning++
		case domain.StatusCritical:
			s.Critical++
		}
		if a.Status.Worse(s.Overall) {
			s.Overall = a.Status
		}
	}
	return s
}
