package models

// LauncherDefinition is the YAML structure for a user-defined launcher
type LauncherDefinition struct {
	Name       string `yaml:"name"`
	Exec       string `yaml:"exec"`
	Icon       string `yaml:"icon,omitempty"`
	Categories string `yaml:"categories,omitempty"`
}

// LauncherConfig is the root YAML structure of the launchers file
type LauncherConfig struct {
	Launchers []LauncherDefinition `yaml:"launchers"`
}

// NewEntryFromDefinition creates an Entry from a launcher definition.
// Empty optional fields are left undeclared so they behave like keys
// missing from a desktop file.
func NewEntryFromDefinition(def LauncherDefinition, source string) *Entry {
	e := NewEntry(source)
	if def.Name != "" {
		e.Set(KeyName, def.Name)
	}
	e.Set(KeyExec, def.Exec)
	if def.Icon != "" {
		e.Set(KeyIcon, def.Icon)
	}
	if def.Categories != "" {
		e.Set(KeyCategories, def.Categories)
	}
	return e
}
