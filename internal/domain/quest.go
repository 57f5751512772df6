package domain

// Quest is a canonical quest record. PreviousQuestIDs and NextQuestIDs are the
// reconciled prerequisite edges in canonical form.
type Quest struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Giver            string         `json:"giver,omitempty"`
	Items            []ItemQuantity `json:"items"`
	Rewards          []QuestReward  `json:"rewards"`
	MapHints         []string       `json:"mapHints"`
	PreviousQuestIDs []string       `json:"previousQuestIds,omitempty"`
	NextQuestIDs     []string       `json:"nextQuestIds,omitempty"`
	ChainID          string         `json:"chainId,omitempty"`
	ChainStage       *int           `json:"chainStage"`
}

// QuestReward is either an item reward (ItemID set) or a flat currency reward (Coins set).
type QuestReward struct {
	ItemID string `json:"itemId,omitempty"`
	Name   string `json:"name,omitempty"`
	Qty    int    `json:"qty,omitempty"`
	Coins  *int   `json:"coins,omitempty"`
}

// QuestChain groups every quest of one connected component of the prerequisite
// graph. Stages holds quest ids ordered by (stage, name).
type QuestChain struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Stages []string `json:"stages"`
}
