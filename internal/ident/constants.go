package ident

// Canonical id prefixes
const (
	ItemPrefix    = "item-"
	QuestPrefix   = "quest-"
	ChainPrefix   = "chain-"
	UpgradePrefix = "upgrade-"
	ProjectPrefix = "project-"
)

// Raw prefixes stripped before slugifying
const (
	rawItemPrefix  = "item"
	rawQuestPrefix = "quest"
)

// Slug fallbacks
const (
	// DefaultChainSlug is used when neither the chain name nor the root id yields a slug.
	DefaultChainSlug   = "questline"
	defaultUpgradeSlug = "bench"
	defaultProjectSlug = "project"
)
