package upgrade

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/ident"
	"github.com/osse101/ArcCompanion_Go/internal/logger"
	"github.com/osse101/ArcCompanion_Go/internal/rawdata"
	"github.com/osse101/ArcCompanion_Go/internal/utils"
)

// BuildProjects normalizes raw projects and their phases, keeping prior
// names, descriptions and phases where the raw record is silent. Output is
// sorted by name.
func BuildProjects(ctx context.Context, raw []rawdata.Project, prior []domain.Project, items ItemNamer) ([]domain.Project, domain.Diagnostics) {
	var diags domain.Diagnostics

	priorByID := make(map[string]domain.Project, len(prior))
	for _, p := range prior {
		priorByID[p.ID] = p
	}

	out := make([]domain.Project, 0, len(raw)+len(prior))
	produced := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		id := ident.ProjectID(r.ID, r.Name.Resolve(""))
		if _, dup := produced[id]; dup {
			diags.Warn(domain.CodeDuplicateID, id, DiagFmtDuplicateProject, r.ID, id)
			continue
		}
		produced[id] = struct{}{}

		base, hasBase := priorByID[id]
		project := domain.Project{
			ID:          id,
			Name:        r.Name.Resolve(id),
			Description: strings.TrimSpace(r.Description.Resolve("")),
			Phases:      phases(id, r.Phases, items, &diags),
		}
		if hasBase {
			if r.Name.Resolve("") == "" && base.Name != "" {
				project.Name = base.Name
			}
			if project.Description == "" {
				project.Description = base.Description
			}
			if len(project.Phases) == 0 {
				project.Phases = append(project.Phases, base.Phases...)
			}
		}
		out = append(out, project)
	}

	for _, p := range prior {
		if _, ok := produced[p.ID]; !ok {
			out = append(out, p)
		}
	}

	utils.SortByName(utils.NewNameOrder(), out,
		func(p domain.Project) string { return p.Name },
		func(p domain.Project) string { return p.ID })

	logger.FromContext(ctx).Debug(LogMsgProjectsBuilt, "projects", len(out), "diagnostics", diags.Len())
	return out, diags
}

func phases(projectID string, raw []rawdata.ProjectPhase, items ItemNamer, diags *domain.Diagnostics) []domain.ProjectPhase {
	out := make([]domain.ProjectPhase, 0, len(raw))
	for i, p := range raw {
		order := p.Phase
		if order <= 0 {
			order = i + 1
		}
		id := ident.ProjectPhaseID(projectID, order)
		out = append(out, domain.ProjectPhase{
			ID:           id,
			Order:        order,
			Name:         p.Name.Resolve(fmt.Sprintf(phaseNameFormat, order)),
			Description:  strings.TrimSpace(p.Description.Resolve("")),
			Requirements: requirements(p.Requirements, id, items, diags),
		})
	}
	return out
}
