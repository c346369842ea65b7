package model

import "strings"

// CreatedAtLayout renders creation dates as "{Mon} {day}, {year}".
const CreatedAtLayout = "Jan 2, 2006"

// Categories shown on avatar badges.
const (
	CategoryProfessional = "Professional"
	CategoryCreative     = "Creative"
	CategoryCasual       = "Casual"
	CategoryNew          = "New"
)

const (
	// DefaultCategory is used when a form starts empty or a record has no category.
	DefaultCategory = CategoryProfessional
	// PlaceholderImage is shown for records without an uploaded image.
	PlaceholderImage ImageRef = "/placeholder.svg"
)

// ImageRef is an opaque reference to an image resource. The zero value means no image.
type ImageRef string

// IsZero reports whether no image is referenced.
func (r ImageRef) IsZero() bool {
	return strings.TrimSpace(string(r)) == ""
}

// Resolve returns the reference to render, substituting the placeholder for an empty ref.
func (r ImageRef) Resolve() ImageRef {
	if r.IsZero() {
		return PlaceholderImage
	}
	return r
}

func (r ImageRef) String() string {
	return string(r)
}

// AvatarRecord is one generated profile-image entry.
type AvatarRecord struct {
	ID          int      `json:"id" yaml:"id"`
	FirstName   string   `json:"firstName" yaml:"first_name"`
	LastName    string   `json:"lastName" yaml:"last_name"`
	Email       string   `json:"email" yaml:"email"`
	AvatarImage ImageRef `json:"avatarImageRef" yaml:"avatar_image_ref"`
	CreatedAt   string   `json:"createdAt" yaml:"created_at"`
	Category    string   `json:"category" yaml:"category"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// FullName joins first and last name the way cards display them.
func (a AvatarRecord) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// NewRecordInput carries the fields of a record the store has not yet assigned an id to.
type NewRecordInput struct {
	FirstName   string
	LastName    string
	Email       string
	AvatarImage ImageRef
	Category    string
	Description string
}

// CreateCategories lists the categories offered when creating an avatar.
func CreateCategories() []string {
	return []string{CategoryProfessional, CategoryCreative, CategoryCasual}
}

// EditCategories lists the categories offered when editing an avatar. Unlike the create
// form it also offers "New".
func EditCategories() []string {
	return []string{CategoryProfessional, CategoryCreative, CategoryCasual, CategoryNew}
}

// BadgeStyle returns the badge class for a category. "New" and unrecognized
// categories share the neutral style.
func BadgeStyle(category string) string {
	switch category {
	case CategoryProfessional:
		return "badge-professional"
	case CategoryCreative:
		return "badge-creative"
	case CategoryCasual:
		return "badge-casual"
	default:
		return "badge-default"
	}
}
