// Package workflows assembles the project panel's wizards: the create and
// update project workflows and the quota editor. Each wizard wires form
// input into workflow actions backed by the usecases.
package workflows

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"identity-dashboard/app/domain"
	"identity-dashboard/app/usecase"
	"identity-dashboard/app/utils/validator"
	"identity-dashboard/app/workflow"
)

// ProjectInput is the bound form data shared by the create and update
// project wizards.
type ProjectInput struct {
	Name        string `form:"name" validate:"required,project_name"`
	Description string `form:"description" validate:"max=255"`
	DomainID    string `form:"domain_id" validate:"required,resource_id"`
	Enabled     bool   `form:"enabled"`
	// Extra carries deployment-specific project properties.
	Extra map[string]string
	// UserRoles maps role id -> selected user ids.
	UserRoles map[string][]string
	// GroupRoles maps role id -> selected group ids.
	GroupRoles map[string][]string
}

// projectState is shared across a wizard's steps: the info step publishes
// the project the member steps grant roles on.
type projectState struct {
	project *domain.Project
	// selfRemovalSkipped is set when the actor tried to revoke their own
	// role; the view turns it into a warning.
	selfRemovalSkipped bool
}

// CreateProject builds the create wizard: project info, then user roles,
// then group roles.
type CreateProject struct {
	*workflow.Workflow
	state *projectState
}

// SelfRemovalSkipped reports whether a self role revocation was skipped.
func (w *CreateProject) SelfRemovalSkipped() bool { return w.state.selfRemovalSkipped }

// Created returns the project the info step created, nil before Handle or
// after a creation failure.
func (w *CreateProject) Created() *domain.Project { return w.state.project }

// NewCreateProject assembles the create-project wizard for one submission.
func NewCreateProject(
	projects *usecase.ProjectUsecase,
	members *usecase.MembershipUsecase,
	v *validator.Validator,
	in ProjectInput,
	actorID string,
	logger *slog.Logger,
) *CreateProject {
	state := &projectState{}
	steps := []workflow.Step{
		{
			Slug:  "create_info",
			Title: "Project Information",
			Action: &createInfoAction{
				projects:  projects,
				validator: v,
				in:        in,
				actorID:   actorID,
				state:     state,
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
	return &CreateProject{
		Workflow: workflow.New(
			"create_project",
			"Create Project",
			"/identity/projects",
			fmt.Sprintf("Created new project %q.", in.Name),
			steps,
			logger,
		),
		state: state,
	}
}

// createInfoAction validates and creates the project itself.
type createInfoAction struct {
	projects  *usecase.ProjectUsecase
	validator *validator.Validator
	in        ProjectInput
	actorID   string
	state     *projectState
}

func (a *createInfoAction) Name() string { return "Create Project" }

func (a *createInfoAction) Validate() []workflow.FieldError {
	return validateStruct(a.validator, a.in)
}

func (a *createInfoAction) Handle(ctx context.Context) error {
	project, grantErrs, err := a.projects.CreateProject(ctx, usecase.CreateProjectRequest{
		Name:        a.in.Name,
		Description: a.in.Description,
		DomainID:    a.in.DomainID,
		Enabled:     a.in.Enabled,
		Extra:       a.in.Extra,
		ActorID:     a.actorID,
	})
	if err != nil {
		return fmt.Errorf("unable to create project %q: %w", a.in.Name, err)
	}
	a.state.project = project
	return errors.Join(grantErrs...)
}

// memberRolesAction applies the user role matrix to the wizard's project.
type memberRolesAction struct {
	members *usecase.MembershipUsecase
	desired map[string][]string
	actorID string
	state   *projectState
}

func (a *memberRolesAction) Name() string { return "Project Members" }

func (a *memberRolesAction) Validate() []workflow.FieldError { return nil }

func (a *memberRolesAction) Handle(ctx context.Context) error {
	if a.state.project == nil {
		// The info step failed; there is nothing to grant on.
		return nil
	}
	result := a.members.ReconcileUserRoles(ctx, a.state.project.ID, a.actorID, a.desired)
	if result.SelfRemovalSkipped {
		a.state.selfRemovalSkipped = true
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("unable to modify project members: %w", errors.Join(result.Errors...))
	}
	return nil
}

// groupRolesAction applies the group role matrix to the wizard's project.
type groupRolesAction struct {
	members *usecase.MembershipUsecase
	desired map[string][]string
	state   *projectState
}

func (a *groupRolesAction) Name() string { return "Project Groups" }

func (a *groupRolesAction) Validate() []workflow.FieldError { return nil }

func (a *groupRolesAction) Handle(ctx context.Context) error {
	if a.state.project == nil {
		return nil
	}
	if errs := a.members.ReconcileGroupRoles(ctx, a.state.project.ID, a.desired); len(errs) > 0 {
		return fmt.Errorf("unable to modify project groups: %w", errors.Join(errs...))
	}
	return nil
}

// validateStruct maps validator failures onto workflow field errors.
func validateStruct(v *validator.Validator, s interface{}) []workflow.FieldError {
	err := v.Validate(s)
	if err == nil {
		return nil
	}
	var vErr *validator.ValidationError
	if !errors.As(err, &vErr) {
		return []workflow.FieldError{{Field: "", Message: err.Error()}}
	}
	fieldErrs := make([]workflow.FieldError, 0, len(vErr.Errors))
	for field, message := range vErr.Errors {
		fieldErrs = append(fieldErrs, workflow.FieldError{Field: field, Message: message})
	}
	return fieldErrs
}
