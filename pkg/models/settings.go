package models

// Strength display modes. Continuous allows the full 0.5-1.5 range in
// 0.1 steps; discrete restricts the picker to 1.0/1.2/1.4. The mode
// only affects presentation, never stored data.
const (
	StrengthDisplayContinuous = "continuous"
	StrengthDisplayDiscrete   = "discrete"
)

// Settings represents the application configuration
type Settings struct {
	NSFWEnabled             bool   `yaml:"nsfw_enabled"`
	ShowDescendantWords     bool   `yaml:"show_descendant_words"`
	AutoNSFW                bool   `yaml:"auto_nsfw"`
	CollapseInactiveFolders bool   `yaml:"collapse_inactive_folders"`
	StrengthDisplay         string `yaml:"strength_display"`
	CombinedCopy            bool   `yaml:"combined_copy"`
	ShowRootInPaths         bool   `yaml:"show_root_in_paths"`
	FirstRunNoticeSeen      bool   `yaml:"first_run_notice_seen"`
	NSFWWarningSeen         bool   `yaml:"nsfw_warning_seen"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		NSFWEnabled:             false,
		ShowDescendantWords:     true,
		AutoNSFW:                false,
		CollapseInactiveFolders: false,
		StrengthDisplay:         StrengthDisplayContinuous,
		CombinedCopy:            false,
		ShowRootInPaths:         false,
		FirstRunNoticeSeen:      false,
		NSFWWarningSeen:         false,
	}
}
