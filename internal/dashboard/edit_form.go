package dashboard

import (
	"avatarhub/internal/errors"
	"avatarhub/internal/model"
)

// EditForm holds the draft of changes to an existing avatar.
type EditForm struct {
	State       FormState
	FirstName   string
	LastName    string
	Email       string
	Category    string
	Description string
	Image       model.ImageRef

	target model.AvatarRecord
}

// Open shows the form for record. Opening a closed form, or switching to a
// different record, re-initializes every field from record. Re-opening the
// record already being edited keeps the draft.
func (f *EditForm) Open(record model.AvatarRecord) {
	if f.State.IsOpen() && f.target.ID == record.ID {
		return
	}
	f.reset(record)
	f.State = FormOpen
}

// TargetID returns the id of the record being edited, or 0 when closed.
func (f EditForm) TargetID() int {
	if !f.State.IsOpen() {
		return 0
	}
	return f.target.ID
}

func (f *EditForm) reset(record model.AvatarRecord) {
	category := record.Category
	if category == "" {
		category = model.DefaultCategory
	}
	*f = EditForm{
		FirstName:   record.FirstName,
		LastName:    record.LastName,
		Email:       record.Email,
		Category:    category,
		Description: record.Description,
		Image:       record.AvatarImage,
		target:      record,
	}
}

func (f *EditForm) SetFirstName(v string) {
	if f.State.touch() {
		f.FirstName = v
	}
}

func (f *EditForm) SetLastName(v string) {
	if f.State.touch() {
		f.LastName = v
	}
}

func (f *EditForm) SetEmail(v string) {
	if f.State.touch() {
		f.Email = v
	}
}

func (f *EditForm) SetCategory(v string) {
	if f.State.touch() {
		f.Category = v
	}
}

func (f *EditForm) SetDescription(v string) {
	if f.State.touch() {
		f.Description = v
	}
}

// SelectImage replaces the image with a newly selected one.
func (f *EditForm) SelectImage(ref model.ImageRef) {
	if ref.IsZero() {
		return
	}
	if f.State.touch() {
		f.Image = ref
	}
}

// Cancel discards the draft and closes the form.
func (f *EditForm) Cancel() {
	*f = EditForm{}
}

// Submit returns the target record with the draft fields applied. The id and
// creation date are carried over unchanged. The form closes afterwards.
func (f *EditForm) Submit() (model.AvatarRecord, error) {
	if !f.State.IsOpen() {
		return model.AvatarRecord{}, errors.ErrFormClosed
	}

	record := f.target
	record.FirstName = f.FirstName
	record.LastName = f.LastName
	record.Email = f.Email
	record.Category = f.Category
	record.Description = f.Description
	record.AvatarImage = f.Image

	f.Cancel()
	return record, nil
}
