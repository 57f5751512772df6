package pipeline

// Include toggles which dataset sections a run rebuilds. Excluded sections
// are copied from the prior dataset, except vendors which are emptied.
type Include struct {
	Items    bool `yaml:"items" json:"items"`
	Quests   bool `yaml:"quests" json:"quests"`
	Chains   bool `yaml:"chains" json:"chains"`
	Upgrades bool `yaml:"upgrades" json:"upgrades"`
	Projects bool `yaml:"projects" json:"projects"`
	Vendors  bool `yaml:"vendors" json:"vendors"`
}

// IncludeAll enables every section.
func IncludeAll() Include {
	return Include{Items: true, Quests: true, Chains: true, Upgrades: true, Projects: true, Vendors: true}
}

func (i Include) questGraph() bool {
	return i.Quests || i.Chains
}

func (i Include) workshop() bool {
	return i.Upgrades || i.Projects
}
