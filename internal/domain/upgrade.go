package domain

// UpgradePack is one level of a workshop bench upgrade.
type UpgradePack struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Bench string         `json:"bench"`
	Level int            `json:"level"`
	Items []ItemQuantity `json:"items"`
}

// Project is a multi-phase expedition project.
type Project struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Phases      []ProjectPhase `json:"phases"`
}

// ProjectPhase is one ordered phase of a Project.
type ProjectPhase struct {
	ID           string         `json:"id"`
	Order        int            `json:"order"`
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	Requirements []ItemQuantity `json:"requirements"`
}

// Vendor is a trader record carried through from curated data.
type Vendor struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Location string         `json:"location,omitempty"`
	Stock    []ItemQuantity `json:"stock,omitempty"`
}
