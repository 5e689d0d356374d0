package studypack

import "math"

// Readiness estimates study completeness from token volume and keyword
// diversity. Both terms saturate, so the result stays in [50, 100] for
// any non-negative counts and grows monotonically in each input.
func Readiness(tokenCount, keywordCount int) int {
	lengthScore := math.Min(60, float64(tokenCount)/4)
	diversityScore := math.Min(40, float64(keywordCount)*3)
	return int(math.Round(50 + (lengthScore+diversityScore)/2))
}
