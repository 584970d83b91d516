package constant

// Field Generator
const (
	// MacroZoomX divides the x axis; twice the y zoom to account for
	// the ~2:1 cell aspect ratio of terminal fonts
	MacroZoomX = 400.0
	MacroZoomY = 200.0

	// DriftAmplitude is the slow whole-field scroll amplitude
	DriftAmplitude = 4.0

	// Warp round amplitudes
	WarpAmpFirst  = 1.5
	WarpAmpSecond = 0.8

	// FieldPhaseNoise scales per-cell entropy into a structural phase
	// perturbation that breaks the periodicity of the pure warp
	FieldPhaseNoise = 0.26
)

// Coherence walker
const (
	// CoherenceRerollChance re-targets the walker intermittently
	CoherenceRerollChance = 0.02

	// CoherenceTargetMin never lets space go fully dark
	CoherenceTargetMin = 0.15
	CoherenceTargetMax = 1.2

	// CoherenceRelaxRate is the per-frame low-pass fraction
	CoherenceRelaxRate = 0.02

	// EmergenceFloor clamps the rendered coherence
	EmergenceFloor = 0.15

	// EmergenceThreshold gates the base field render path
	EmergenceThreshold = 0.35
)
