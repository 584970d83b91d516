package constant

// Excitation diffusion automaton
const (
	// DecayBase is the per-frame intensity drop; the open intent gate
	// slows it slightly so excitement lingers
	DecayBase     = 0.12
	DecayDilation = 0.015
	DecayFloor    = 0.08

	// SaturationCutoff stops propagation into already-hot cells
	SaturationCutoff = 0.2

	// SpreadChanceBase is the per-neighbor ignition probability
	SpreadChanceBase     = 0.56
	SpreadChanceDilation = 0.05
	SpreadChanceCap      = 0.72

	// PropagateIntensity is injected on a successful spread
	PropagateIntensity = 0.94

	// Halo distribution of the inject primitive
	HaloChance   = 0.18
	HaloScaleMin = 0.04
	HaloScaleMax = 0.18

	// Spike trail of the inject primitive
	SpikeChance     = 0.12
	SpikeScaleMin   = 0.22
	SpikeScaleMax   = 0.42
	SpikeFalloffMin = 0.45
	SpikeFalloffMax = 0.70
	SpikeStepsMax   = 3
)

// Intent gate (entropy convergence detector)
const (
	// FocusSampleCount is the strided pair-sample size
	FocusSampleCount = 160

	// ConvergenceGateHits opens the boost path
	ConvergenceGateHits = 4

	// PairMatchProbability is 3/256: |delta| <= 1 or >= 254 under uniform bytes
	PairMatchProbability = 3.0 / 256.0

	// IntentTargetCap bounds the dilation target
	IntentTargetCap = 1.5

	// IntentRelaxRate is the per-frame low-pass fraction
	IntentRelaxRate = 0.08
)

// Pulse scheduler
const (
	// MeanSampleCap caps the leading entropy sample for the mean
	MeanSampleCap = 1000

	// BuildupTriggerMean starts accumulation above this mean entropy
	BuildupTriggerMean = 0.51
	BuildupGainRate    = 15.0
	BuildupDecayStep   = 0.05

	// GateThreshold fires a toroidal pulse; dilation lowers it
	GateThreshold         = 2.0
	GateThresholdFloor    = 1.4
	GateThresholdDilation = 0.25

	// PulseDuration is the fixed pulse lifespan in seconds
	PulseDuration = 3.0
)
