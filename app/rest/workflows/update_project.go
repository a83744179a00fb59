package workflows

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	"identity-dashboard/app/domain"
	"identity-dashboard/app/usecase"
	"identity-dashboard/app/utils/validator"
	"identity-dashboard/app/workflow"
)

// UpdateProject builds the update wizard: project info, then user roles,
// then group roles, all against an existing project.
type UpdateProject struct {
	*workflow.Workflow
	state *projectState
}

// SelfRemovalSkipped reports whether a self role revocation was skipped.
func (w *UpdateProject) SelfRemovalSkipped() bool { return w.state.selfRemovalSkipped }

// NewUpdateProject assembles the update-project wizard for one submission.
// project is the current backend record the form edits.
func NewUpdateProject(
	projects *usecase.ProjectUsecase,
	members *usecase.MembershipUsecase,
	v *validator.Validator,
	project domain.Project,
	in ProjectInput,
	actorID string,
	logger *slog.Logger,
) *UpdateProject {
	// Member steps run against the existing project.
	state := &projectState{project: &project}
	steps := []workflow.Step{
		{
			Slug:  "update_info",
			Title: "Project Information",
			Action: &updateInfoAction{
				projects:  projects,
				validator: v,
				project:   project,
				in:        in,
				actorID:   actorID,
			},
		},
		{
			Slug:  "update_members",
			Title: "Project Members",
			Action: &memberRolesAction{
				members: members,
				desired: in.UserRoles,
				actorID: actorID,
				state:   state,
			},
		},
		{
			Slug:  "update_group_members",
			Title: "Project Groups",
			Action: &groupRolesAction{
				members: members,
				desired: in.GroupRoles,
				state:   state,
			},
		},
	}
	return &UpdateProject{
		Workflow: workflow.New(
			"update_project",
			"Edit Project",
			"/identity/projects",
			fmt.Sprintf("Modified project %q.", in.Name),
			steps,
			logger,
		),
		state: state,
	}
}

// updateInfoAction validates and saves the edited project attributes.
type updateInfoAction struct {
	projects  *usecase.ProjectUsecase
	validator *validator.Validator
	project   domain.Project
	in        ProjectInput
	actorID   string
}

func (a *updateInfoAction) Name() string { return "Edit Project" }

func (a *updateInfoAction) Validate() []workflow.FieldError {
	return validateStruct(a.validator, a.in)
}

func (a *updateInfoAction) Handle(ctx context.Context) error {
	updated := a.project
	updated.Name = a.in.Name
	updated.Description = a.in.Description
	updated.Enabled = a.in.Enabled
	if len(a.in.Extra) > 0 {
		updated.Extra = maps.Clone(a.project.Extra)
		if updated.Extra == nil {
			updated.Extra = map[string]string{}
		}
		maps.Copy(updated.Extra, a.in.Extra)
	}

	if _, err := a.projects.UpdateProject(ctx, updated, a.actorID); err != nil {
		return fmt.Errorf("unable to update project %q: %w", a.in.Name, err)
	}
	return nil
}
