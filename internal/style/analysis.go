package style

// Analysis is the face analysis payload. No model is bundled, so every
// request gets the same fixed values.
type Analysis struct {
	Age     int                `json:"age"`
	Gender  map[string]float64 `json:"gender"`
	Race    map[string]float64 `json:"race"`
	Emotion map[string]float64 `json:"emotion"`
}

const (
	AnalysisNote     = "Using mock data - face analysis model not available"
	GenerateNote     = "Using mock hairstyle generation - AI model not available"
	ModifyNote       = "Using mock hairstyle modification - AI model not available"
	HealthMessage    = "AI services are running with fallback implementations"
	FaceModelLoaded  = false
	StyleModelLoaded = false
)

func MockAnalysis() Analysis {
	return Analysis{
		Age:    25,
		Gender: map[string]float64{"Woman": 45.2, "Man": 54.8},
		Race: map[string]float64{
			"asian":           20,
			"indian":          10,
			"black":           15,
			"white":           45,
			"middle eastern":  5,
			"latino hispanic": 5,
		},
		Emotion: map[string]float64{
			"angry":    5,
			"disgust":  2,
			"fear":     3,
			"happy":    70,
			"sad":      5,
			"surprise": 10,
			"neutral":  5,
		},
	}
}
