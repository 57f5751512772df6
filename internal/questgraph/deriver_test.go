package questgraph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/localized"
	"github.com/osse101/ArcCompanion_Go/internal/rawdata"
)

type fakeNames map[string]string

func (f fakeNames) Resolve(rawID string) string {
	if name, ok := f[rawID]; ok {
		return name
	}
	return rawID
}

func quest(id string, prev, next []string) rawdata.Quest {
	return rawdata.Quest{ID: id, PreviousQuestIDs: prev, NextQuestIDs: next}
}

func named(id, name string, prev, next []string) rawdata.Quest {
	q := quest(id, prev, next)
	q.Name = localized.FromString(name)
	return q
}

func stageOf(t *testing.T, quests []domain.Quest, id string) int {
	t.Helper()
	for _, q := range quests {
		if q.ID == id {
			require.NotNil(t, q.ChainStage, "quest %s has no stage", id)
			return *q.ChainStage
		}
	}
	require.Failf(t, "quest not found", "id %s", id)
	return -1
}

func findQuest(t *testing.T, quests []domain.Quest, id string) domain.Quest {
	t.Helper()
	for _, q := range quests {
		if q.ID == id {
			return q
		}
	}
	require.Failf(t, "quest not found", "id %s", id)
	return domain.Quest{}
}

func TestDerive_SimpleChain(t *testing.T) {
	raw := []rawdata.Quest{
		quest("q1", nil, []string{"q2"}),
		quest("q2", []string{"q1"}, []string{"q3"}),
		quest("q3", []string{"q2"}, nil),
	}

	res := Derive(context.Background(), Input{Raw: raw})

	require.Len(t, res.Chains, 1)
	assert.Equal(t, []string{"quest-q1", "quest-q2", "quest-q3"}, res.Chains[0].Stages)
	assert.Equal(t, "chain-quest-q1", res.Chains[0].ID)
	assert.Equal(t, 0, stageOf(t, res.Quests, "quest-q1"))
	assert.Equal(t, 1, stageOf(t, res.Quests, "quest-q2"))
	assert.Equal(t, 2, stageOf(t, res.Quests, "quest-q3"))
	assert.Zero(t, res.Diagnostics.Len())

	q2 := findQuest(t, res.Quests, "quest-q2")
	assert.Equal(t, res.Chains[0].ID, q2.ChainID)
	assert.Equal(t, []string{"quest-q1"}, q2.PreviousQuestIDs)
	assert.Equal(t, []string{"quest-q3"}, q2.NextQuestIDs)
}

func TestDerive_CollidingChainNames(t *testing.T) {
	raw := []rawdata.Quest{
		named("b1", "Intro", nil, []string{"b2"}),
		named("b2", "Second B", nil, nil),
		named("a1", "Intro", nil, []string{"a2"}),
		named("a2", "Second A", nil, nil),
	}

	res := Derive(context.Background(), Input{Raw: raw})

	require.Len(t, res.Chains, 2)
	assert.Equal(t, "chain-intro", res.Chains[0].ID)
	assert.Equal(t, []string{"quest-a1", "quest-a2"}, res.Chains[0].Stages)
	assert.Equal(t, "chain-intro-2", res.Chains[1].ID)
	assert.Equal(t, []string{"quest-b1", "quest-b2"}, res.Chains[1].Stages)
	assert.Equal(t, "Intro", res.Chains[1].Name)
}

func TestDerive_ChainNamedAfterGiver(t *testing.T) {
	start := named("start", "Picking Up The Pieces", nil, []string{"next"})
	start.Trader = localized.FromEntries(localized.Entry{Lang: "de", Value: "Händler"}, localized.Entry{Lang: "en", Value: "Celeste"})
	raw := []rawdata.Quest{start, named("next", "Next Steps", nil, nil)}

	res := Derive(context.Background(), Input{Raw: raw})

	require.Len(t, res.Chains, 1)
	assert.Equal(t, "chain-celeste", res.Chains[0].ID)
	assert.Equal(t, "Celeste", res.Chains[0].Name)
	assert.Equal(t, "Celeste", findQuest(t, res.Quests, "quest-start").Giver)
}

func TestDerive_LongestPathLayering(t *testing.T) {
	// a -> b -> c -> d plus the shortcut a -> d
	raw := []rawdata.Quest{
		quest("a", nil, []string{"b", "d"}),
		quest("b", nil, []string{"c"}),
		quest("c", nil, []string{"d"}),
		quest("d", nil, nil),
	}

	res := Derive(context.Background(), Input{Raw: raw})

	assert.Equal(t, 0, stageOf(t, res.Quests, "quest-a"))
	assert.Equal(t, 1, stageOf(t, res.Quests, "quest-b"))
	assert.Equal(t, 2, stageOf(t, res.Quests, "quest-c"))
	assert.Equal(t, 3, stageOf(t, res.Quests, "quest-d"))
}

func TestDerive_PartitionAndMonotonicity(t *testing.T) {
	raw := []rawdata.Quest{
		named("a", "Alpha", nil, []string{"b", "c"}),
		named("b", "Bravo", nil, []string{"e"}),
		named("c", "Charlie", []string{"a"}, []string{"e", "f"}),
		named("e", "Echo", nil, nil),
		named("f", "Foxtrot", []string{"c"}, nil),
		named("g", "Golf", nil, []string{"h"}),
		named("h", "Hotel", []string{"g"}, nil),
		named("lonely", "Lonely", nil, nil),
		named("x", "Dangling", []string{"not-a-quest"}, []string{""}),
	}

	res := Derive(context.Background(), Input{Raw: raw})

	require.Len(t, res.Chains, 4)
	seen := make(map[string]int)
	for _, c := range res.Chains {
		for _, id := range c.Stages {
			seen[id]++
		}
	}
	assert.Len(t, seen, len(raw))
	for id, n := range seen {
		assert.Equal(t, 1, n, "%s appears in %d chains", id, n)
	}

	stages := make(map[string]int)
	for _, q := range res.Quests {
		require.NotNil(t, q.ChainStage)
		stages[q.ID] = *q.ChainStage
	}
	for _, q := range res.Quests {
		for _, next := range q.NextQuestIDs {
			if _, ok := stages[next]; ok {
				assert.Greater(t, stages[next], stages[q.ID], "%s -> %s", q.ID, next)
			}
		}
	}

	for _, c := range res.Chains {
		for i := 1; i < len(c.Stages); i++ {
			assert.LessOrEqual(t, stages[c.Stages[i-1]], stages[c.Stages[i]], "stages of %s are ordered", c.ID)
		}
	}
}

func TestDerive_CyclesDoNotBlockOutput(t *testing.T) {
	raw := []rawdata.Quest{
		quest("r", nil, []string{"x"}),
		quest("x", []string{"r", "y"}, []string{"y"}),
		quest("y", []string{"x"}, []string{"x"}),
	}

	res := Derive(context.Background(), Input{Raw: raw})

	require.Len(t, res.Chains, 1)
	assert.Equal(t, []string{"quest-r", "quest-y", "quest-x"}, res.Chains[0].Stages)
	assert.Equal(t, 0, stageOf(t, res.Quests, "quest-r"))
	assert.Equal(t, 1, stageOf(t, res.Quests, "quest-x"), "stage is raised by a processed predecessor")
	assert.Equal(t, 0, stageOf(t, res.Quests, "quest-y"), "unreached nodes default to stage 0")

	require.Equal(t, 1, res.Diagnostics.Count(domain.CodeQuestCycle))
	for _, d := range res.Diagnostics.Items {
		if d.Code == domain.CodeQuestCycle {
			assert.Contains(t, d.Message, "quest-x, quest-y")
		}
	}
}

func TestDerive_PureCycleFallsBackToSmallestID(t *testing.T) {
	raw := []rawdata.Quest{
		named("b", "Bee", nil, []string{"a"}),
		named("a", "Ay", nil, []string{"b"}),
	}

	res := Derive(context.Background(), Input{Raw: raw})

	require.Len(t, res.Chains, 1)
	assert.Equal(t, "chain-ay", res.Chains[0].ID)
	assert.Equal(t, []string{"quest-a", "quest-b"}, res.Chains[0].Stages)
}

func TestDerive_AsymmetricAndInvalidDeclarations(t *testing.T) {
	raw := []rawdata.Quest{
		quest("q1", nil, []string{"q2"}),
		quest("q2", nil, nil),
		quest("  ", nil, []string{"q1"}),
		quest("quest_q1", nil, nil),
	}

	res := Derive(context.Background(), Input{Raw: raw})

	assert.Equal(t, 1, res.Diagnostics.Count(domain.CodeAsymmetricEdge))
	assert.Equal(t, 1, res.Diagnostics.Count(domain.CodeInvalidID))
	assert.Equal(t, 1, res.Diagnostics.Count(domain.CodeDuplicateID))
	assert.Len(t, res.Quests, 2)

	q2 := findQuest(t, res.Quests, "quest-q2")
	assert.Equal(t, []string{"quest-q1"}, q2.PreviousQuestIDs, "one-sided edges are reconciled")
	assert.Equal(t, 1, *q2.ChainStage)
}

func TestDerive_QuestRecords(t *testing.T) {
	names := fakeNames{"item_scrap": "Scrap", "battery": "Battery"}
	withItems := named("deliver", "Deliver Parts", nil, nil)
	withItems.RequiredItems = []rawdata.Quantity{{RawID: "item_scrap", Qty: 3}, {RawID: "%%", Qty: 1}}
	withItems.RewardItems = []rawdata.Quantity{{RawID: "battery", Qty: 2}}
	withItems.XP = 500
	withItems.Objectives = []localized.Text{localized.FromString("Find scrap"), localized.FromString("")}

	prior := []domain.Quest{
		{ID: "quest-bare", Name: "Old Bare Name", Giver: "Shani", MapHints: []string{"Check the dam"}},
		{ID: "quest-retired", Name: "Retired Quest", Items: []domain.ItemQuantity{}},
	}
	priorChains := []domain.QuestChain{
		{ID: "chain-legacy", Name: "Legacy", Stages: []string{"quest-retired"}},
	}

	res := Derive(context.Background(), Input{
		Raw:         []rawdata.Quest{withItems, quest("bare", nil, nil)},
		Prior:       prior,
		PriorChains: priorChains,
		Items:       names,
	})

	deliver := findQuest(t, res.Quests, "quest-deliver")
	assert.Equal(t, []domain.ItemQuantity{{ItemID: "item-scrap", Name: "Scrap", Qty: 3}}, deliver.Items)
	require.Len(t, deliver.Rewards, 2)
	assert.Equal(t, domain.QuestReward{ItemID: "item-battery", Name: "Battery", Qty: 2}, deliver.Rewards[0])
	require.NotNil(t, deliver.Rewards[1].Coins)
	assert.Equal(t, 500, *deliver.Rewards[1].Coins)
	assert.Equal(t, []string{"Find scrap"}, deliver.MapHints)

	bare := findQuest(t, res.Quests, "quest-bare")
	assert.Equal(t, "Old Bare Name", bare.Name, "name falls back to the prior record")
	assert.Equal(t, "Shani", bare.Giver)
	assert.Equal(t, []string{"Check the dam"}, bare.MapHints)

	retired := findQuest(t, res.Quests, "quest-retired")
	assert.Equal(t, prior[1], retired, "prior-only quests are kept verbatim")

	var questNames []string
	for _, q := range res.Quests {
		questNames = append(questNames, q.Name)
	}
	assert.Equal(t, []string{"Deliver Parts", "Old Bare Name", "Retired Quest"}, questNames)

	var chainIDs []string
	for _, c := range res.Chains {
		chainIDs = append(chainIDs, c.ID)
	}
	assert.Equal(t, []string{"chain-deliver-parts", "chain-legacy", "chain-quest-bare"}, chainIDs)
}

func TestDerive_IsDeterministic(t *testing.T) {
	raw := []rawdata.Quest{
		named("a", "Same", nil, []string{"b"}),
		named("b", "Same", nil, nil),
		named("c", "Same", nil, []string{"d"}),
		named("d", "same", []string{"c"}, nil),
		named("e", "Other", nil, nil),
	}
	reversed := make([]rawdata.Quest, len(raw))
	for i, q := range raw {
		reversed[len(raw)-1-i] = q
	}

	first := Derive(context.Background(), Input{Raw: raw})
	second := Derive(context.Background(), Input{Raw: reversed})

	assert.Equal(t, first.Chains, second.Chains)
	assert.Equal(t, first.Quests, second.Quests)
}
