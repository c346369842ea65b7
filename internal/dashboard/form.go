package dashboard

// FormState is the lifecycle of a create or edit form.
// Submitting or cancelling returns a form to FormClosed.
type FormState int

const (
	FormClosed FormState = iota
	FormOpen
	FormEditing
)

func (s FormState) String() string {
	switch s {
	case FormOpen:
		return "open"
	case FormEditing:
		return "editing"
	default:
		return "closed"
	}
}

// IsOpen reports whether the form is shown.
func (s FormState) IsOpen() bool {
	return s != FormClosed
}

// touch records a field change on an open form.
func (s *FormState) touch() bool {
	if *s == FormClosed {
		return false
	}
	*s = FormEditing
	return true
}
