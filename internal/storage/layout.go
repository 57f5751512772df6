package storage

// Layout names the files a pipeline run reads and writes. Raw paths are
// relative to the data directory, canonical and meta paths to the output
// directory. Absolute paths are used as is.
type Layout struct {
	RawItems    string `yaml:"rawItems"`
	RawQuests   string `yaml:"rawQuests"`
	RawModules  string `yaml:"rawModules"`
	RawProjects string `yaml:"rawProjects"`
	Items       string `yaml:"items"`
	Quests      string `yaml:"quests"`
	Chains      string `yaml:"chains"`
	Upgrades    string `yaml:"upgrades"`
	Projects    string `yaml:"projects"`
	Vendors     string `yaml:"vendors"`
	Meta        string `yaml:"meta"`
}

func DefaultLayout() Layout {
	return Layout{
		RawItems:    DefaultRawItemsFile,
		RawQuests:   DefaultRawQuestsFile,
		RawModules:  DefaultRawModulesFile,
		RawProjects: DefaultRawProjectsFile,
		Items:       DefaultItemsFile,
		Quests:      DefaultQuestsFile,
		Chains:      DefaultChainsFile,
		Upgrades:    DefaultUpgradesFile,
		Projects:    DefaultProjectsFile,
		Vendors:     DefaultVendorsFile,
		Meta:        DefaultMetaFile,
	}
}

// WithDefaults fills blank entries from DefaultLayout.
func (l Layout) WithDefaults() Layout {
	d := DefaultLayout()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&l.RawItems, d.RawItems)
	fill(&l.RawQuests, d.RawQuests)
	fill(&l.RawModules, d.RawModules)
	fill(&l.RawProjects, d.RawProjects)
	fill(&l.Items, d.Items)
	fill(&l.Quests, d.Quests)
	fill(&l.Chains, d.Chains)
	fill(&l.Upgrades, d.Upgrades)
	fill(&l.Projects, d.Projects)
	fill(&l.Vendors, d.Vendors)
	fill(&l.Meta, d.Meta)
	return l
}
