package workflows

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"identity-dashboard/app/domain"
	"identity-dashboard/app/usecase"
	"identity-dashboard/app/web"
	"identity-dashboard/app/workflow"
)

// ProjectPageConfig describes a project wizard form to render.
type ProjectPageConfig struct {
	Slug        string
	Title       string
	Action      string
	SubmitLabel string

	Input      ProjectInput
	DomainName string
	// ExtraLabels maps extra property keys to their form labels.
	ExtraLabels map[string]string
	Members     *usecase.MembershipContext
}

// ProjectFormPage renders the create or update project wizard form.
func ProjectFormPage(cfg ProjectPageConfig) *web.WorkflowPage {
	infoSlug := "create_info"
	if cfg.Slug == "update_project" {
		infoSlug = "update_info"
	}

	infoFields := []web.FormField{
		{Name: "domain_id", Type: web.FieldHidden, Value: cfg.Input.DomainID},
		{Name: "domain_name", Label: "Domain Name", Type: web.FieldText, Value: cfg.DomainName, ReadOnly: true},
		{Name: "name", Label: "Name", Type: web.FieldText, Value: cfg.Input.Name},
		{Name: "description", Label: "Description", Type: web.FieldTextarea, Value: cfg.Input.Description},
	}
	for key, label := range cfg.ExtraLabels {
		infoFields = append(infoFields, web.FormField{
			Name:  key,
			Label: label,
			Type:  web.FieldText,
			Value: cfg.Input.Extra[key],
		})
	}
	infoFields = append(infoFields, web.FormField{
		Name: "enabled", Label: "Enabled", Type: web.FieldCheckbox, Checked: cfg.Input.Enabled,
	})

	steps := []web.FormStep{
		{Slug: infoSlug, Title: "Project Information", Fields: infoFields},
	}
	if cfg.Members != nil {
		steps = append(steps,
			web.FormStep{
				Slug:   "update_members",
				Title:  "Project Members",
				Fields: roleSelectFields("role_", cfg.Members.Roles, userOptions(cfg.Members.Users), cfg.Input.UserRoles),
			},
			web.FormStep{
				Slug:   "update_group_members",
				Title:  "Project Groups",
				Fields: roleSelectFields("group_role_", cfg.Members.Roles, groupOptions(cfg.Members.Groups), cfg.Input.GroupRoles),
			},
		)
	}

	return &web.WorkflowPage{
		Title:       cfg.Title,
		Slug:        cfg.Slug,
		Action:      cfg.Action,
		SubmitLabel: cfg.SubmitLabel,
		Steps:       steps,
	}
}

// QuotaFormPage renders the quota editor form with current limits.
func QuotaFormPage(action string, quotas domain.QuotaSet, networkEnabled bool) *web.WorkflowPage {
	steps := []web.FormStep{
		{Slug: "update_compute_quotas", Title: "Compute Quotas", Fields: quotaFields(quotas, domain.ComputeQuotaFields)},
		{Slug: "update_volume_quotas", Title: "Volume Quotas", Fields: quotaFields(quotas, domain.VolumeQuotaFields)},
	}
	if networkEnabled {
		steps = append(steps, web.FormStep{
			Slug: "update_network_quotas", Title: "Network Quotas", Fields: quotaFields(quotas, domain.NetworkQuotaFields),
		})
	}
	return &web.WorkflowPage{
		Title:       "Modify Quotas",
		Slug:        "update_quotas",
		Action:      action,
		SubmitLabel: "Save",
		Steps:       steps,
	}
}

// ApplyFieldErrors marks the page's fields with their validation messages.
func ApplyFieldErrors(page *web.WorkflowPage, fieldErrs []workflow.FieldError) {
	for _, fe := range fieldErrs {
		page.SetFieldError(fe.Step, fe.Field, fe.Message)
	}
}

func quotaFields(quotas domain.QuotaSet, names []string) []web.FormField {
	fields := make([]web.FormField, 0, len(names))
	for _, name := range names {
		limit, ok := quotas[name]
		if !ok {
			continue
		}
		fields = append(fields, web.FormField{
			Name:  name,
			Label: name,
			Type:  web.FieldNumber,
			Value: strconv.FormatInt(limit, 10),
		})
	}
	return fields
}

// InvertRoleMatrix turns member id -> role ids into role id -> member ids,
// the shape the wizard forms select by.
func InvertRoleMatrix(byMember map[string][]string) map[string][]string {
	byRole := make(map[string][]string)
	for memberID, roleIDs := range byMember {
		for _, roleID := range roleIDs {
			byRole[roleID] = append(byRole[roleID], memberID)
		}
	}
	return byRole
}

func userOptions(users []domain.User) []web.FormOption {
	opts := make([]web.FormOption, 0, len(users))
	for _, u := range users {
		opts = append(opts, web.FormOption{Value: u.ID, Label: u.Name})
	}
	return opts
}

func groupOptions(groups []domain.Group) []web.FormOption {
	opts := make([]web.FormOption, 0, len(groups))
	for _, g := range groups {
		opts = append(opts, web.FormOption{Value: g.ID, Label: g.Name})
	}
	return opts
}

// roleSelectFields builds one multiselect per role. selected maps role id ->
// chosen member ids.
func roleSelectFields(prefix string, roles []domain.Role, options []web.FormOption, selected map[string][]string) []web.FormField {
	fields := make([]web.FormField, 0, len(roles))
	for _, role := range roles {
		opts := make([]web.FormOption, len(options))
		copy(opts, options)
		for i := range opts {
			for _, id := range selected[role.ID] {
				if opts[i].Value == id {
					opts[i].Selected = true
					break
				}
			}
		}
		fields = append(fields, web.FormField{
			Name:    prefix + role.ID,
			Label:   fmt.Sprintf("Role: %s", role.Name),
			Type:    web.FieldMultiSelect,
			Options: opts,
		})
	}
	return fields
}

// BindProjectInput parses the submitted project wizard form. extraKeys are
// the deployment's extra property field names; roles drive the member
// selection fields.
func BindProjectInput(c echo.Context, extraKeys []string, roles []domain.Role) (ProjectInput, error) {
	if err := c.Request().ParseForm(); err != nil {
		return ProjectInput{}, fmt.Errorf("failed to parse form: %w", err)
	}
	form := c.Request().PostForm

	in := ProjectInput{
		Name:        form.Get("name"),
		Description: form.Get("description"),
		DomainID:    form.Get("domain_id"),
		Enabled:     form.Get("enabled") == "true" || form.Get("enabled") == "on",
		UserRoles:   map[string][]string{},
		GroupRoles:  map[string][]string{},
	}

	if len(extraKeys) > 0 {
		in.Extra = map[string]string{}
		for _, key := range extraKeys {
			if value := form.Get(key); value != "" {
				in.Extra[key] = value
			}
		}
	}

	for _, role := range roles {
		if users, ok := form["role_"+role.ID]; ok {
			in.UserRoles[role.ID] = users
		}
		if groups, ok := form["group_role_"+role.ID]; ok {
			in.GroupRoles[role.ID] = groups
		}
	}

	return in, nil
}

// BindQuotaInput parses the submitted quota form. Unparseable numbers come
// back as field errors rather than an error, so the form can re-render.
func BindQuotaInput(c echo.Context, networkEnabled bool) (domain.QuotaSet, []workflow.FieldError, error) {
	if err := c.Request().ParseForm(); err != nil {
		return nil, nil, fmt.Errorf("failed to parse form: %w", err)
	}
	form := c.Request().PostForm

	names := make([]string, 0, len(domain.ComputeQuotaFields)+len(domain.VolumeQuotaFields)+len(domain.NetworkQuotaFields))
	names = append(names, domain.ComputeQuotaFields...)
	names = append(names, domain.VolumeQuotaFields...)
	if networkEnabled {
		names = append(names, domain.NetworkQuotaFields...)
	}

	quotas := domain.QuotaSet{}
	var fieldErrs []workflow.FieldError
	for _, name := range names {
		raw := form.Get(name)
		if raw == "" {
			continue
		}
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fieldErrs = append(fieldErrs, workflow.FieldError{
				Field:   name,
				Message: fmt.Sprintf("%s must be a number", name),
			})
			continue
		}
		quotas[name] = limit
	}
	return quotas, fieldErrs, nil
}
