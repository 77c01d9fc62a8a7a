package recommend

type Config struct {
	// per-strategy contribution cap in the merged output
	PerStrategy int

	// half-life-style decay constant for the popularity scorer, in days
	PopularityDecayDays float64
}

const (
	defaultPerStrategy         = 3
	defaultPopularityDecayDays = 30.0
)

func DefaultConfig() Config {
	return Config{
		PerStrategy:         defaultPerStrategy,
		PopularityDecayDays: defaultPopularityDecayDays,
	}
}
