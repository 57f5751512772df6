package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/pipeline"
)

// DatasetHandler serves the current canonical dataset read-only.
type DatasetHandler struct {
	datasets pipeline.Service
}

func NewDatasetHandler(datasets pipeline.Service) *DatasetHandler {
	return &DatasetHandler{datasets: datasets}
}

// DiagnosticsResponse lists the findings of the run that built the dataset.
type DiagnosticsResponse struct {
	RunID   string              `json:"runId,omitempty"`
	BuiltAt time.Time           `json:"builtAt"`
	Count   int                 `json:"count"`
	Data    []domain.Diagnostic `json:"data"`
}

// snapshot writes the error response itself when no dataset is loaded.
func (h *DatasetHandler) snapshot(w http.ResponseWriter, r *http.Request, action string) (*pipeline.Snapshot, bool) {
	snap, err := h.datasets.Current()
	if err != nil {
		respondServiceError(w, r, action, err)
		return nil, false
	}
	return snap, true
}

// HandleListItems lists canonical items
// @Summary List items
// @Tags dataset
// @Produce json
// @Param category query string false "comma separated categories"
// @Param q query string false "case-insensitive match on id or name"
// @Success 200 {object} ListResponse[domain.Item]
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/items [get]
func (h *DatasetHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r, ActionListItems)
	if !ok {
		return
	}

	categories := domain.CategorySet(GetListQueryParam(r, QueryCategory))
	query := strings.ToLower(GetOptionalQueryParam(r, QueryQuery, ""))

	items := make([]domain.Item, 0, len(snap.Dataset.Items))
	for _, item := range snap.Dataset.Items {
		if len(categories) > 0 && !item.HasCategory(categories) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(item.ID), query) && !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		items = append(items, item)
	}
	respondJSON(w, http.StatusOK, newListResponse(items))
}

// HandleGetItem returns one item by canonical id or slug
// @Summary Get item
// @Tags dataset
// @Produce json
// @Param id path string true "item id or slug"
// @Success 200 {object} domain.Item
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id} [get]
func (h *DatasetHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathID(w, r)
	if !ok {
		return
	}
	snap, ok := h.snapshot(w, r, ActionGetItem)
	if !ok {
		return
	}

	for i := range snap.Dataset.Items {
		if snap.Dataset.Items[i].ID == id {
			respondJSON(w, http.StatusOK, snap.Dataset.Items[i])
			return
		}
	}
	for i := range snap.Dataset.Items {
		if snap.Dataset.Items[i].Slug == id {
			respondJSON(w, http.StatusOK, snap.Dataset.Items[i])
			return
		}
	}
	respondServiceError(w, r, ActionGetItem, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id))
}

// HandleListQuests lists canonical quests
// @Summary List quests
// @Tags dataset
// @Produce json
// @Param chain query string false "only quests of this chain"
// @Success 200 {object} ListResponse[domain.Quest]
// @Router /api/v1/quests [get]
func (h *DatasetHandler) HandleListQuests(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r, ActionListQuests)
	if !ok {
		return
	}

	chain := GetOptionalQueryParam(r, QueryChain, "")
	if chain == "" {
		respondJSON(w, http.StatusOK, newListResponse(snap.Dataset.Quests))
		return
	}

	quests := make([]domain.Quest, 0)
	for _, q := range snap.Dataset.Quests {
		if q.ChainID == chain {
			quests = append(quests, q)
		}
	}
	respondJSON(w, http.StatusOK, newListResponse(quests))
}

// HandleListChains lists quest chains
// @Summary List quest chains
// @Tags dataset
// @Produce json
// @Success 200 {object} ListResponse[domain.QuestChain]
// @Router /api/v1/chains [get]
func (h *DatasetHandler) HandleListChains(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r, ActionListChains)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, newListResponse(snap.Dataset.QuestChains))
}

// HandleGetChain returns one quest chain
// @Summary Get quest chain
// @Tags dataset
// @Produce json
// @Param id path string true "chain id"
// @Success 200 {object} domain.QuestChain
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/chains/{id} [get]
func (h *DatasetHandler) HandleGetChain(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathID(w, r)
	if !ok {
		return
	}
	snap, ok := h.snapshot(w, r, ActionGetChain)
	if !ok {
		return
	}

	for _, chain := range snap.Dataset.QuestChains {
		if chain.ID == id {
			respondJSON(w, http.StatusOK, chain)
			return
		}
	}
	respondServiceError(w, r, ActionGetChain, fmt.Errorf("%w: %s", domain.ErrQuestChainNotFound, id))
}

// HandleListUpgrades lists workshop upgrade packs
// @Summary List workshop upgrades
// @Tags dataset
// @Produce json
// @Param bench query string false "only upgrades of this bench (case-insensitive)"
// @Success 200 {object} ListResponse[domain.UpgradePack]
// @Router /api/v1/upgrades [get]
func (h *DatasetHandler) HandleListUpgrades(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r, ActionListUpgrades)
	if !ok {
		return
	}

	bench := GetOptionalQueryParam(r, QueryBench, "")
	if bench == "" {
		respondJSON(w, http.StatusOK, newListResponse(snap.Dataset.Upgrades))
		return
	}

	upgrades := make([]domain.UpgradePack, 0)
	for _, u := range snap.Dataset.Upgrades {
		if strings.EqualFold(u.Bench, bench) {
			upgrades = append(upgrades, u)
		}
	}
	respondJSON(w, http.StatusOK, newListResponse(upgrades))
}

// HandleListProjects lists projects
// @Summary List projects
// @Tags dataset
// @Produce json
// @Success 200 {object} ListResponse[domain.Project]
// @Router /api/v1/projects [get]
func (h *DatasetHandler) HandleListProjects(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w, r, ActionListProjects)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, newListResponse(snap.Dataset.Projects))
}

// HandleListDiagnostics lists the diagnostics of the run that built the dataset
// @Summary List diagnostics
// @Tags dataset
// @Produce json
// @Param severity query string false "info, warning or error"
// @Param code query string false "diagnostic code"
// @Success 200 {object} DiagnosticsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/diagnostics [get]
func (h *DatasetHandler) HandleListDiagnostics(w http.ResponseWriter, r *http.Request) {
	severity := domain.Severity(strings.ToLower(GetOptionalQueryParam(r, QuerySeverity, "")))
	switch severity {
	case "", domain.SeverityInfo, domain.SeverityWarning, domain.SeverityError:
	default:
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidFilter, QuerySeverity, severity))
		return
	}
	code := domain.DiagnosticCode(GetOptionalQueryParam(r, QueryCode, ""))

	snap, ok := h.snapshot(w, r, ActionListDiagnostic)
	if !ok {
		return
	}

	diags := make([]domain.Diagnostic, 0, snap.Diagnostics.Len())
	for _, d := range snap.Diagnostics.Items {
		if severity != "" && d.Severity != severity {
			continue
		}
		if code != "" && d.Code != code {
			continue
		}
		diags = append(diags, d)
	}
	respondJSON(w, http.StatusOK, DiagnosticsResponse{
		RunID:   snap.RunID,
		BuiltAt: snap.BuiltAt,
		Count:   len(diags),
		Data:    diags,
	})
}
