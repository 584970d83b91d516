package constant

// Excitation render tiers
const (
	ExciteSparkleTier   = 0.82
	ExciteSparkleAlt    = 0.68
	ExciteFragmentAlt   = 0.74
	ExciteCoreTier      = 0.42
	ExciteCoreFragment  = 0.60
	ExciteCoreGateSkip  = 0.72
	ExciteCloudGateSkip = 0.18

	// Fragment metric weights over the interference scalars
	FragmentW12 = 0.56
	FragmentW23 = 0.44

	// ExciteByteDrift shifts the secondary entropy index over time
	ExciteByteDrift = 33.8
)

// Toroidal pulse geometry
const (
	PulseMaxRadiusFactor = 0.28
	PulseRingFactor      = 0.6
	PulseRingFrequency   = 0.5
	PulseFieldThreshold  = 0.35
	PulseEntropyFloor    = 0.25
	PulseShear           = 0.1
	PulseFade            = 1.5
	PulseAspectY         = 2.0
)

// Lightning overlay
const (
	LightningPulseFloor   = 0.5
	LightningArcFrequency = 25.0
	LightningArcThreshold = 1.3
	LightningEntropyFloor = 0.8
	LightningBrightTier   = 0.95
	LightningMidTier      = 0.9
)

// Base field render
const (
	MyceliumBand       = 0.1
	MyceliumPulseFloor = 0.8
	MyceliumEntFloor   = 0.4
	StarFieldFloor     = 0.2
	StarCloseCutoff    = 0.99
	StarMidCutoff      = 0.98
	StarEntropyCutoff  = 0.96
)

// Spark seeding from the render pass
const (
	SeedPulseFloor   = 0.85
	SeedEntropyFloor = 0.9
)

// Logo overlay
const (
	GlitchChance       = 0.05
	LogoPossessExcite  = 0.5
	LogoPossessEntropy = 0.99
	LogoPossessCoheren = 0.8
	LogoSparkleExcite  = 0.8
)
