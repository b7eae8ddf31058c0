package config

// SettingsConfig contains the player-adjustable settings and their defaults.
type SettingsConfig struct {
	AppName     string
	VolumeSteps []float64
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:     "tangent",
		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}
