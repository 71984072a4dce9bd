package cli

import "tcgen/internal/config"

// Flags holds command-line flags
type Flags struct {
	NameFilter  string
	ShowPlugins bool
	Format      string
	Output      string
	Snapshot    string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		NameFilter:  f.NameFilter,
		ShowPlugins: f.ShowPlugins,
		Format:      f.Format,
		Output:      f.Output,
		Snapshot:    f.Snapshot,
	}
}
