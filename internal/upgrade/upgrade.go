// Package upgrade normalizes workshop bench upgrades and expedition projects.
// Neither involves graph derivation; both only resolve requirement lists.
package upgrade

import (
	"context"
	"fmt"
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

// BuildUpgrades emits one upgrade pack per module level. Prior packs keep
// their items when the raw level lists none, and prior packs that are not
// produced are kept. Output is sorted by bench and level.
func BuildUpgrades(ctx context.Context, modules []rawdata.Module, prior []domain.UpgradePack, items ItemNamer) ([]domain.UpgradePack, domain.Diagnostics) {
	var diags domain.Diagnostics

	priorByID := make(map[string]domain.UpgradePack, len(prior))
	for _, p := range prior {
		priorByID[p.ID] = p
	}

	out := make([]domain.UpgradePack, 0, len(prior))
	produced := make(map[string]struct{})
	for _, m := range modules {
		bench := m.Name.Resolve(m.ID)
		if bench == "" {
			bench = DefaultBenchName
		}

		for i, lvl := range m.Levels {
			level := lvl.Level
			if level <= 0 {
				level = i + 1
			}
			id := ident.UpgradeID(bench, m.ID, level)
			if _, dup := produced[id]; dup {
				diags.Warn(domain.CodeDuplicateID, id, DiagFmtDuplicateUpgrade, m.ID, id)
				continue
			}
			produced[id] = struct{}{}

			reqs := requirements(lvl.Requirements, id, items, &diags)
			if base, ok := priorByID[id]; ok && len(reqs) == 0 {
				reqs = append(reqs, base.Items...)
			}
			out = append(out, domain.UpgradePack{
				ID:    id,
				Name:  fmt.Sprintf(upgradeNameFormat, bench, level),
				Bench: bench,
				Level: level,
				Items: reqs,
			})
		}
	}

	for _, p := range prior {
		if _, ok := produced[p.ID]; !ok {
			out = append(out, p)
		}
	}

	order := utils.NewNameOrder()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if c := order.Compare(a.Bench, b.Bench); c != 0 {
			return c < 0
		}
		if a.Level != b.Level {
			return a.Level < b.Level
		}
		return a.ID < b.ID
	})

	logger.FromContext(ctx).Debug(LogMsgUpgradesBuilt, "upgrades", len(out), "diagnostics", diags.Len())
	return out, diags
}

// requirements converts raw requirement entries, dropping ids that cannot be
// canonicalized.
func requirements(raw []rawdata.Quantity, owner string, items ItemNamer, diags *domain.Diagnostics) []domain.ItemQuantity {
	out := make([]domain.ItemQuantity, 0, len(raw))
	for _, r := range raw {
		id := ident.CanonicalItemID(r.RawID)
		if id == "" {
			diags.Info(domain.CodeInvalidID, owner, DiagFmtUnusableItem, r.RawID, owner)
			continue
		}
		name := ident.StripItemPrefix(r.RawID)
		if items != nil {
			name = items.Resolve(r.RawID)
		}
		out = append(out, domain.ItemQuantity{ItemID: id, Name: name, Qty: r.Qty})
	}
	return out
}
