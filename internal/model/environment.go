package model

// Environment identifies the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// ParseEnvironment maps a configured environment name onto a known
// Environment. Unknown names fall back to development so a typo never runs
// with production behavior.
func ParseEnvironment(name string) Environment {
	switch Environment(name) {
	case EnvironmentProduction:
		return EnvironmentProduction
	case EnvironmentStaging:
		return EnvironmentStaging
	default:
		return EnvironmentDevelopment
	}
}
