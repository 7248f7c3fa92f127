package constants

// Values of env.env.
const (
	EnvLocal   = "local"
	EnvDevelop = "develop"
	EnvProd    = "prod"
)
