package web

// Form field types understood by the workflow template.
const (
	FieldText        = "text"
	FieldTextarea    = "textarea"
	FieldNumber      = "number"
	FieldCheckbox    = "checkbox"
	FieldHidden      = "hidden"
	FieldMultiSelect = "multiselect"
)

// FormOption is one choice of a membership select.
type FormOption struct {
	Value    string
	Label    string
	Selected bool
}

// FormField is one input of a workflow step pane.
type FormField struct {
	Name     string
	Label    string
	Type     string
	Value    string
	Checked  bool
	ReadOnly bool
	// Error is the field's validation message, empty when clean.
	Error   string
	Options []FormOption
}

// FormStep is one rendered pane of the wizard.
type FormStep struct {
	Slug   string
	Title  string
	Fields []FormField
}

// WorkflowPage is the data the workflow template renders.
type WorkflowPage struct {
	Title       string
	Slug        string
	Action      string
	SubmitLabel string
	Steps       []FormStep
	Messages    []Message
	// CSRFToken is embedded as a hidden field when set.
	CSRFToken string
}

// SetFieldError attaches a validation message to the named field of the
// named step. An empty step slug matches any step.
func (p *WorkflowPage) SetFieldError(stepSlug, field, message string) {
	for si := range p.Steps {
		if stepSlug != "" && p.Steps[si].Slug != stepSlug {
			continue
		}
		for fi := range p.Steps[si].Fields {
			if p.Steps[si].Fields[fi].Name == field {
				p.Steps[si].Fields[fi].Error = message
				return
			}
		}
	}
}
