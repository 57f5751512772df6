package pipeline

import (
	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/naming"
)

// finalize recomputes every item's needs totals and reports requirement
// lists that point at items the dataset does not contain.
func finalize(ds *domain.Dataset, diags *domain.Diagnostics) {
	index := make(map[string]int, len(ds.Items))
	for i := range ds.Items {
		ds.Items[i].NeedsTotals = domain.NeedsTotals{}
		index[ds.Items[i].ID] = i
	}

	for _, q := range ds.Quests {
		for _, req := range q.Items {
			if i, ok := index[req.ItemID]; ok {
				ds.Items[i].NeedsTotals.Quests += req.Qty
			}
		}
	}
	for _, u := range ds.Upgrades {
		for _, req := range u.Items {
			if i, ok := index[req.ItemID]; ok {
				ds.Items[i].NeedsTotals.Workshop += req.Qty
			}
		}
	}

	checkReferences(ds, index, diags)
}

func checkReferences(ds *domain.Dataset, index map[string]int, diags *domain.Diagnostics) {
	var suggester naming.Resolver

	report := func(list, owner, itemID string) {
		if _, ok := index[itemID]; ok {
			return
		}
		if suggester == nil {
			suggester = naming.NewResolver(ds.Items)
		}
		msg := DiagFmtMissingReference
		args := []interface{}{list, owner, itemID}
		if s := suggester.Suggest(itemID, 1); len(s) > 0 {
			msg += DiagFmtDidYouMean
			args = append(args, s[0])
		}
		diags.Warn(domain.CodeMissingReference, owner, msg, args...)
	}

	for _, q := range ds.Quests {
		for _, req := range q.Items {
			report(listQuestItems, q.ID, req.ItemID)
		}
		for _, r := range q.Rewards {
			if r.ItemID != "" {
				report(listQuestRewards, q.ID, r.ItemID)
			}
		}
	}
	for _, u := range ds.Upgrades {
		for _, req := range u.Items {
			report(listUpgradeItems, u.ID, req.ItemID)
		}
	}
	for _, p := range ds.Projects {
		for _, phase := range p.Phases {
			for _, req := range phase.Requirements {
				report(listProjectRequirements, phase.ID, req.ItemID)
			}
		}
	}
}
