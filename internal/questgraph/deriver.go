// Package questgraph reconciles raw quest prerequisites into a symmetric
// graph, derives one named chain per connected component and assembles the
// canonical quest records.
package questgraph

import (
	"context"
	"sort"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/ident"
	"github.com/osse101/ArcCompanion_Go/internal/logger"
	"github.com/osse101/ArcCompanion_Go/internal/rawdata"
	"github.com/osse101/ArcCompanion_Go/internal/utils"
)

// ItemNamer resolves display names for raw item references.
type ItemNamer interface {
	Resolve(rawID string) string
}

// Input is everything one quest derivation needs.
type Input struct {
	Raw         []rawdata.Quest
	Prior       []domain.Quest
	PriorChains []domain.QuestChain
	Items       ItemNamer
}

// Result holds the canonical quests and chains of one run.
type Result struct {
	Quests      []domain.Quest
	Chains      []domain.QuestChain
	Diagnostics domain.Diagnostics
}

// strippedIDs names items by their raw id without prefix.
type strippedIDs struct{}

func (strippedIDs) Resolve(rawID string) string {
	return ident.StripItemPrefix(rawID)
}

type entry struct {
	id    string
	quest rawdata.Quest
}

// Derive builds the quest graph, assigns chains and stages and merges the
// result with the prior dataset. Output is fully determined by the input.
func Derive(ctx context.Context, in Input) Result {
	log := logger.FromContext(ctx)
	var diags domain.Diagnostics
	order := utils.NewNameOrder()
	items := in.Items
	if items == nil {
		items = strippedIDs{}
	}

	priorByID := make(map[string]domain.Quest, len(in.Prior))
	for _, q := range in.Prior {
		priorByID[q.ID] = q
	}

	entries := make([]entry, 0, len(in.Raw))
	g := newGraph()
	for _, raw := range in.Raw {
		id := ident.CanonicalQuestID(raw.ID)
		if id == "" {
			diags.Warn(domain.CodeInvalidID, raw.ID, DiagFmtNoQuestID, raw.ID)
			continue
		}
		if _, dup := g.nodes[id]; dup {
			diags.Warn(domain.CodeDuplicateID, id, DiagFmtDuplicateQuest, raw.ID, id)
			continue
		}
		g.addNode(id, raw.Name.Resolve(id), raw.Trader.Resolve(""))
		entries = append(entries, entry{id: id, quest: raw})
	}

	decls := make([]declaredEdges, len(entries))
	for i, e := range entries {
		decls[i] = declaredEdges{id: e.id, previous: e.quest.PreviousQuestIDs, next: e.quest.NextQuestIDs}
	}
	g.connect(decls, &diags)

	chains, assignments := DeriveChains(g, order, &diags)

	quests := make([]domain.Quest, 0, len(entries)+len(in.Prior))
	produced := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		base, hasBase := priorByID[e.id]
		var basePtr *domain.Quest
		if hasBase {
			basePtr = &base
		}
		quests = append(quests, buildQuest(e, g, basePtr, assignments, items, &diags))
		produced[e.id] = struct{}{}
	}
	for _, q := range in.Prior {
		if _, ok := produced[q.ID]; !ok {
			quests = append(quests, q)
		}
	}
	utils.SortByName(order, quests,
		func(q domain.Quest) string { return q.Name },
		func(q domain.Quest) string { return q.ID })

	derived := make(map[string]struct{}, len(chains))
	for _, c := range chains {
		derived[c.ID] = struct{}{}
	}
	for _, c := range in.PriorChains {
		if _, ok := derived[c.ID]; !ok {
			chains = append(chains, c)
		}
	}
	utils.SortByName(order, chains,
		func(c domain.QuestChain) string { return c.Name },
		func(c domain.QuestChain) string { return c.ID })

	log.Debug(LogMsgQuestsDerived, "quests", len(quests), "chains", len(chains), "diagnostics", diags.Len())
	return Result{Quests: quests, Chains: chains, Diagnostics: diags}
}

func buildQuest(e entry, g *Graph, base *domain.Quest, assignments map[string]Assignment, items ItemNamer, diags *domain.Diagnostics) domain.Quest {
	fallbackName := e.id
	if base != nil && base.Name != "" {
		fallbackName = base.Name
	}

	q := domain.Quest{
		ID:               e.id,
		Name:             e.quest.Name.Resolve(fallbackName),
		Giver:            e.quest.Trader.Resolve(""),
		Items:            convertItems(e.quest.RequiredItems, e.id, listRequirement, items, diags),
		Rewards:          convertRewards(e.quest, items, diags),
		MapHints:         mapHints(e.quest),
		PreviousQuestIDs: edgeList(e.quest.PreviousQuestIDs, g.Prev(e.id)),
		NextQuestIDs:     edgeList(e.quest.NextQuestIDs, g.Next(e.id)),
	}

	if base != nil {
		if q.Giver == "" {
			q.Giver = base.Giver
		}
		if len(q.Items) == 0 && len(base.Items) > 0 {
			q.Items = append([]domain.ItemQuantity(nil), base.Items...)
		}
		if len(q.Rewards) == 0 && len(base.Rewards) > 0 {
			q.Rewards = append([]domain.QuestReward(nil), base.Rewards...)
		}
		if len(q.MapHints) == 0 && len(base.MapHints) > 0 {
			q.MapHints = append([]string(nil), base.MapHints...)
		}
		if len(q.PreviousQuestIDs) == 0 {
			q.PreviousQuestIDs = append([]string(nil), base.PreviousQuestIDs...)
		}
		if len(q.NextQuestIDs) == 0 {
			q.NextQuestIDs = append([]string(nil), base.NextQuestIDs...)
		}
	}

	if a, ok := assignments[e.id]; ok {
		stage := a.Stage
		q.ChainID = a.ChainID
		q.ChainStage = &stage
	} else if base != nil {
		q.ChainID = base.ChainID
		q.ChainStage = base.ChainStage
	}
	return q
}

func convertItems(raw []rawdata.Quantity, questID, list string, items ItemNamer, diags *domain.Diagnostics) []domain.ItemQuantity {
	out := make([]domain.ItemQuantity, 0, len(raw))
	for _, r := range raw {
		id := ident.CanonicalItemID(r.RawID)
		if id == "" {
			diags.Info(domain.CodeInvalidID, questID, DiagFmtUnusableItem, list, r.RawID, questID)
			continue
		}
		out = append(out, domain.ItemQuantity{ItemID: id, Name: items.Resolve(r.RawID), Qty: r.Qty})
	}
	return out
}

func convertRewards(raw rawdata.Quest, items ItemNamer, diags *domain.Diagnostics) []domain.QuestReward {
	questID := ident.CanonicalQuestID(raw.ID)
	converted := convertItems(raw.RewardItems, questID, listReward, items, diags)

	out := make([]domain.QuestReward, 0, len(converted)+1)
	for _, c := range converted {
		out = append(out, domain.QuestReward{ItemID: c.ItemID, Name: c.Name, Qty: c.Qty})
	}
	if raw.XP != 0 {
		coins := raw.XP
		out = append(out, domain.QuestReward{Coins: &coins})
	}
	return out
}

func mapHints(raw rawdata.Quest) []string {
	out := make([]string, 0, len(raw.Objectives))
	for _, o := range raw.Objectives {
		if text := o.Resolve(""); text != "" {
			out = append(out, text)
		}
	}
	return out
}

// edgeList keeps the quest's own declarations in canonical form and appends
// reconciled edges that only the other endpoint declared.
func edgeList(declared, reconciled []string) []string {
	out := make([]string, 0, len(declared)+len(reconciled))
	seen := make(map[string]struct{}, len(declared)+len(reconciled))
	for _, raw := range declared {
		id := ident.CanonicalQuestID(raw)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	extra := make([]string, 0, len(reconciled))
	for _, id := range reconciled {
		if _, ok := seen[id]; !ok {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}
