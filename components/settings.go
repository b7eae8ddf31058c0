package components

import "github.com/yohamta/donburi"

// SettingsData holds the persisted audio preferences and the collider
// overlay switch.
type SettingsData struct {
	MusicVolume float64
	SFXVolume   float64
	Muted       bool
	Debug       bool
}

var Settings = donburi.NewComponentType[SettingsData]()
