package rawdata

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/localized"
)

var (
	// ErrInvalidJSON is returned when a raw document cannot be parsed at all.
	ErrInvalidJSON = errors.New(ErrMsgInvalidJSON)
	// ErrNotAnArray is returned when a raw document is valid JSON but not a list.
	ErrNotAnArray = errors.New(ErrMsgNotAnArray)
)

// DecodeItems decodes a raw item export.
func DecodeItems(data []byte) ([]Item, domain.Diagnostics, error) {
	items := make([]Item, 0)
	diags, err := forEachObject(data, SectionItems, func(v gjson.Result) {
		items = append(items, Item{
			ID:            str(v, fieldID),
			Name:          localized.FromResult(v.Get(fieldName)),
			Description:   localized.FromResult(v.Get(fieldDescription)),
			Type:          str(v, fieldType),
			Rarity:        str(v, fieldRarity),
			Value:         Number(v.Get(fieldValue), 0),
			HasValue:      isNumeric(v.Get(fieldValue)),
			Recipe:        quantityMap(v.Get(fieldRecipe)),
			RecyclesInto:  quantityMap(v.Get(fieldRecyclesInto)),
			SalvagesInto:  quantityMap(v.Get(fieldSalvagesInto)),
			ImageFilename: str(v, fieldImageFilename),
		})
	})
	return items, diags, err
}

// DecodeQuests decodes a raw quest export.
func DecodeQuests(data []byte) ([]Quest, domain.Diagnostics, error) {
	quests := make([]Quest, 0)
	diags, err := forEachObject(data, SectionQuests, func(v gjson.Result) {
		q := Quest{
			ID:               str(v, fieldID),
			Name:             localized.FromResult(v.Get(fieldName)),
			Trader:           localized.FromResult(v.Get(fieldTrader)),
			RequiredItems:    requirementList(v.Get(fieldRequiredItemIDs)),
			RewardItems:      requirementList(v.Get(fieldRewardItemIDs)),
			XP:               Int(v.Get(fieldXP), 0),
			PreviousQuestIDs: stringList(v.Get(fieldPreviousQuestIDs)),
			NextQuestIDs:     stringList(v.Get(fieldNextQuestIDs)),
		}
		v.Get(fieldObjectives).ForEach(func(_, o gjson.Result) bool {
			q.Objectives = append(q.Objectives, localized.FromResult(o))
			return true
		})
		quests = append(quests, q)
	})
	return quests, diags, err
}

// DecodeModules decodes a raw hideout module export.
func DecodeModules(data []byte) ([]Module, domain.Diagnostics, error) {
	modules := make([]Module, 0)
	diags, err := forEachObject(data, SectionModules, func(v gjson.Result) {
		m := Module{
			ID:   str(v, fieldID),
			Name: localized.FromResult(v.Get(fieldName)),
		}
		v.Get(fieldLevels).ForEach(func(_, l gjson.Result) bool {
			if !l.IsObject() {
				return true
			}
			m.Levels = append(m.Levels, ModuleLevel{
				Level:        Int(l.Get(fieldLevel), 0),
				Requirements: requirementList(l.Get(fieldRequirementItemIDs)),
			})
			return true
		})
		modules = append(modules, m)
	})
	return modules, diags, err
}

// DecodeProjects decodes a raw project export.
func DecodeProjects(data []byte) ([]Project, domain.Diagnostics, error) {
	projects := make([]Project, 0)
	diags, err := forEachObject(data, SectionProjects, func(v gjson.Result) {
		p := Project{
			ID:          str(v, fieldID),
			Name:        localized.FromResult(v.Get(fieldName)),
			Description: localized.FromResult(v.Get(fieldDescription)),
		}
		v.Get(fieldPhases).ForEach(func(_, ph gjson.Result) bool {
			if !ph.IsObject() {
				return true
			}
			p.Phases = append(p.Phases, ProjectPhase{
				Phase:        Int(ph.Get(fieldPhase), 0),
				Name:         localized.FromResult(ph.Get(fieldName)),
				Description:  localized.FromResult(ph.Get(fieldDescription)),
				Requirements: requirementList(ph.Get(fieldRequirementItemIDs)),
			})
			return true
		})
		projects = append(projects, p)
	})
	return projects, diags, err
}

// Number reads a JSON number or numeric string; anything else yields fallback.
func Number(r gjson.Result, fallback float64) float64 {
	switch r.Type {
	case gjson.Number:
		return r.Num
	case gjson.String:
		n, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return fallback
		}
		return n
	default:
		return fallback
	}
}

// Int is Number rounded to the nearest integer.
func Int(r gjson.Result, fallback int) int {
	return int(math.Round(Number(r, float64(fallback))))
}

func isNumeric(r gjson.Result) bool {
	return r.Type == gjson.Number || r.Type == gjson.String
}

func forEachObject(data []byte, section string, fn func(v gjson.Result)) (domain.Diagnostics, error) {
	var diags domain.Diagnostics

	if len(bytes.TrimSpace(data)) == 0 {
		return diags, nil
	}
	if !gjson.ValidBytes(data) {
		return diags, fmt.Errorf("%s: %w", section, ErrInvalidJSON)
	}
	doc := gjson.ParseBytes(data)
	if doc.Type == gjson.Null {
		return diags, nil
	}
	if !doc.IsArray() {
		return diags, fmt.Errorf("%s: %w", section, ErrNotAnArray)
	}

	index := 0
	doc.ForEach(func(_, v gjson.Result) bool {
		if v.IsObject() {
			fn(v)
		} else {
			diags.Warn(domain.CodeMalformedRecord, "", DiagFmtNotAnObject, section, index)
		}
		index++
		return true
	})
	return diags, nil
}

func str(v gjson.Result, field string) string {
	r := v.Get(field)
	if r.Type == gjson.String || r.Type == gjson.Number {
		return r.String()
	}
	return ""
}

func stringList(r gjson.Result) []string {
	var out []string
	r.ForEach(func(_, v gjson.Result) bool {
		if v.Type == gjson.String && v.Str != "" {
			out = append(out, v.Str)
		}
		return true
	})
	return out
}

// quantityMap reads {rawId: qty} in document order.
func quantityMap(r gjson.Result) []Quantity {
	if !r.IsObject() {
		return nil
	}
	out := make([]Quantity, 0)
	r.ForEach(func(key, value gjson.Result) bool {
		out = append(out, Quantity{RawID: key.String(), Qty: Int(value, DefaultQuantity)})
		return true
	})
	return out
}

// requirementList reads [{itemId, quantity|qty}], skipping entries without an itemId.
func requirementList(r gjson.Result) []Quantity {
	var out []Quantity
	r.ForEach(func(_, v gjson.Result) bool {
		id := str(v, fieldItemID)
		if id == "" {
			return true
		}
		qty := v.Get(fieldQuantity)
		if !qty.Exists() || qty.Type == gjson.Null {
			qty = v.Get(fieldQty)
		}
		out = append(out, Quantity{RawID: id, Qty: Int(qty, DefaultQuantity)})
		return true
	})
	return out
}
