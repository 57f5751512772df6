package domain

// Dataset is the full canonical output of one pipeline run.
type Dataset struct {
	Items       []Item        `json:"items"`
	Quests      []Quest       `json:"quests"`
	QuestChains []QuestChain  `json:"questChains"`
	Upgrades    []UpgradePack `json:"upgrades"`
	Projects    []Project     `json:"projects"`
	Vendors     []Vendor      `json:"vendors"`
}

// ItemsByID indexes the dataset's items by canonical id.
func (d *Dataset) ItemsByID() map[string]*Item {
	index := make(map[string]*Item, len(d.Items))
	for i := range d.Items {
		index[d.Items[i].ID] = &d.Items[i]
	}
	return index
}

// Counts summarizes the number of records per section.
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		RecordKindItems:    len(d.Items),
		RecordKindQuests:   len(d.Quests),
		RecordKindChains:   len(d.QuestChains),
		RecordKindUpgrades: len(d.Upgrades),
		RecordKindProjects: len(d.Projects),
		RecordKindVendors:  len(d.Vendors),
	}
}
