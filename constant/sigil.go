package constant

// Sigil identity and weighting
const (
	// DefaultSigilID is the fallback mask id when no registry loads
	DefaultSigilID = 1

	// GrandSealWeightBonus biases grand seal variants in the weighted pool
	GrandSealWeightBonus = 0.033

	// WeightFloor clamps registry weights after parsing
	WeightFloor = 0.01

	// FallbackWeight is the weight of the built-in fallback registry entry
	FallbackWeight = 4.2
)

// Sigil geometry
const (
	// SigilPhaseWarp bends mask coordinates under local phase noise so
	// threads read jagged rather than mathematically clean
	SigilPhaseWarp = 0.032

	// LocalSigilPhaseNoise scales a cell's entropy into thread phase noise
	LocalSigilPhaseNoise = 0.16

	// SigilAspect doubles the u extent to compensate terminal cell shape
	SigilAspect = 2.0
)

// Sigil spawn scheduler
const (
	SpawnEntropyMean     = 0.52
	SpawnBaseChance      = 0.18
	BoostEntropyMean     = 0.505
	BoostMeanReliefCap   = 0.01
	BoostMeanReliefRate  = 0.006
	BoostChanceBase      = 0.03
	BoostChanceRate      = 0.04
	BoostChanceCap       = 0.12
	SpawnScaleMinFactor  = 0.3
	SpawnScaleMaxFactor  = 1.2
	SpawnScaleDilation   = 0.20
	SpawnLifeMin         = 8.0
	SpawnLifeMax         = 20.0
	SpawnLifeDilation    = 0.30
	IgniteChanceBase     = 0.40
	IgniteChanceDilation = 0.12
	IgniteChanceCap      = 0.80
)
