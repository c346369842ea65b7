package dashboard

import (
	"context"
	"fmt"
	"time"

	"avatarhub/internal/model"
	"avatarhub/internal/service"
)

// Fixed header and statistics values shown next to the live avatar count.
const (
	UserName           = "Alex"
	GeneratedThisMonth = 12
	AvailableCredits   = 24
	PlanName           = "Pro"
	PlanStatus         = "Active"
	NotificationCount  = 3
)

// Dashboard owns all mutable view state of one session: the current page,
// sort order and both form drafts. It changes only through its methods.
type Dashboard struct {
	svc        service.AvatarService
	pagination Pagination
	sort       SortOrder
	create     CreateForm
	edit       EditForm
}

// New builds a dashboard over svc showing pageSize cards per page.
func New(svc service.AvatarService, pageSize int) *Dashboard {
	return &Dashboard{
		svc:        svc,
		pagination: NewPagination(pageSize),
		sort:       SortRecentlyCreated,
		create:     NewCreateForm(),
	}
}

// OpenCreate shows the create form.
func (d *Dashboard) OpenCreate() {
	d.create.Open()
}

// CreateForm exposes the create draft for field updates.
func (d *Dashboard) CreateForm() *CreateForm {
	return &d.create
}

// CancelCreate discards the create draft.
func (d *Dashboard) CancelCreate() {
	d.create.Cancel()
}

// SubmitCreate stores the create draft as a new record. The current page is kept.
func (d *Dashboard) SubmitCreate(ctx context.Context) (model.AvatarRecord, error) {
	input, err := d.create.Submit()
	if err != nil {
		return model.AvatarRecord{}, fmt.Errorf("submit create form: %w", err)
	}
	return d.svc.CreateAvatar(ctx, input), nil
}

// OpenEdit shows the edit form for the record with id.
func (d *Dashboard) OpenEdit(ctx context.Context, id int) error {
	record, err := d.svc.GetAvatar(ctx, id)
	if err != nil {
		return fmt.Errorf("open edit form: %w", err)
	}
	d.edit.Open(record)
	return nil
}

// Avatar returns the stored record with id.
func (d *Dashboard) Avatar(ctx context.Context, id int) (model.AvatarRecord, error) {
	return d.svc.GetAvatar(ctx, id)
}

// EditForm exposes the edit draft for field updates.
func (d *Dashboard) EditForm() *EditForm {
	return &d.edit
}

// CancelEdit discards the edit draft.
func (d *Dashboard) CancelEdit() {
	d.edit.Cancel()
}

// SubmitEdit replaces the edited record in the store.
func (d *Dashboard) SubmitEdit(ctx context.Context) (model.AvatarRecord, error) {
	record, err := d.edit.Submit()
	if err != nil {
		return model.AvatarRecord{}, fmt.Errorf("submit edit form: %w", err)
	}
	if err := d.svc.UpdateAvatar(ctx, record); err != nil {
		return model.AvatarRecord{}, err
	}
	return record, nil
}

// GoToPage moves to page when it exists and returns the current page.
func (d *Dashboard) GoToPage(ctx context.Context, page int) int {
	total := len(d.svc.ListAvatars(ctx))
	return d.pagination.GoToPage(page, total)
}

// CurrentPage returns the page being shown.
func (d *Dashboard) CurrentPage() int {
	return d.pagination.CurrentPage
}

// SetSort changes the card order. Unknown values fall back to store order.
func (d *Dashboard) SetSort(order SortOrder) {
	d.sort = ParseSortOrder(string(order))
}

// Sort returns the active card order.
func (d *Dashboard) Sort() SortOrder {
	return d.sort
}

// Stats are the figures of the statistics row.
type Stats struct {
	TotalAvatars       int
	GeneratedThisMonth int
	AvailableCredits   int
	PlanName           string
	PlanStatus         string
}

// Card is one rendered avatar.
type Card struct {
	model.AvatarRecord
	Image      model.ImageRef
	BadgeStyle string
}

// View is an immutable snapshot of everything the presentation layer renders.
type View struct {
	Greeting      string
	UserName      string
	Notifications int
	Stats         Stats
	Cards         []Card
	Window        Window
	Sort          SortOrder
	SortOptions   []SortOption

	Create           CreateForm
	CreateCategories []string
	Edit             EditForm
	EditCategories   []string
}

// Snapshot renders the current state. now only feeds the greeting.
func (d *Dashboard) Snapshot(ctx context.Context, now time.Time) View {
	records := d.sort.Apply(d.svc.ListAvatars(ctx))
	visible := d.pagination.VisibleSlice(records, d.pagination.CurrentPage)

	cards := make([]Card, 0, len(visible))
	for _, r := range visible {
		cards = append(cards, Card{
			AvatarRecord: r,
			Image:        r.AvatarImage.Resolve(),
			BadgeStyle:   model.BadgeStyle(r.Category),
		})
	}

	return View{
		Greeting:      Greeting(now.Hour()),
		UserName:      UserName,
		Notifications: NotificationCount,
		Stats: Stats{
			TotalAvatars:       len(records),
			GeneratedThisMonth: GeneratedThisMonth,
			AvailableCredits:   AvailableCredits,
			PlanName:           PlanName,
			PlanStatus:         PlanStatus,
		},
		Cards:            cards,
		Window:           d.pagination.Window(len(records)),
		Sort:             d.sort,
		SortOptions:      SortOptions(),
		Create:           d.create,
		CreateCategories: model.CreateCategories(),
		Edit:             d.edit,
		EditCategories:   model.EditCategories(),
	}
}

// Greeting picks the salutation for the hour of day.
func Greeting(hour int) string {
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
