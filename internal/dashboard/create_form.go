package dashboard

import (
	"strings"

	"avatarhub/internal/errors"
	"avatarhub/internal/model"
)

// CreateForm holds the draft of a new avatar.
type CreateForm struct {
	State       FormState
	Name        string
	Category    string
	Description string
	Image       model.ImageRef
}

// NewCreateForm returns a closed form with default values.
func NewCreateForm() CreateForm {
	return CreateForm{Category: model.DefaultCategory}
}

// Open shows the form. An already open form keeps its draft.
func (f *CreateForm) Open() {
	if f.State == FormClosed {
		f.State = FormOpen
	}
}

// SetName updates the name draft. Changes to a closed form are ignored.
func (f *CreateForm) SetName(name string) {
	if f.State.touch() {
		f.Name = name
	}
}

func (f *CreateForm) SetCategory(category string) {
	if f.State.touch() {
		f.Category = category
	}
}

func (f *CreateForm) SetDescription(description string) {
	if f.State.touch() {
		f.Description = description
	}
}

// SelectImage records the reference of a newly selected image.
func (f *CreateForm) SelectImage(ref model.ImageRef) {
	if ref.IsZero() {
		return
	}
	if f.State.touch() {
		f.Image = ref
	}
}

// Cancel discards the draft and closes the form.
func (f *CreateForm) Cancel() {
	*f = NewCreateForm()
}

// Submit turns the draft into a store input, then resets and closes the form.
func (f *CreateForm) Submit() (model.NewRecordInput, error) {
	if !f.State.IsOpen() {
		return model.NewRecordInput{}, errors.ErrFormClosed
	}

	first, last := SplitName(f.Name)
	input := model.NewRecordInput{
		FirstName:   first,
		LastName:    last,
		Email:       "",
		AvatarImage: f.Image.Resolve(),
		Category:    f.Category,
		Description: f.Description,
	}
	f.Cancel()
	return input, nil
}

// SplitName splits a display name on whitespace into the first token and the
// remaining tokens joined by single spaces.
func SplitName(name string) (first, last string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}
