package template

import "fmt"

// TemplateFormatError reports a malformed template, named so the user can
// find it in the source file.
type TemplateFormatError struct {
	Name string
	Err  error
}

func (e *TemplateFormatError) Error() string {
	return fmt.Sprintf("template %q: %v", e.Name, e.Err)
}

func (e *TemplateFormatError) Unwrap() error {
	return e.Err
}

// TemplateNotFoundError reports a label with no matching template.
type TemplateNotFoundError struct {
	Label string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template %q not found", e.Label)
}
