package handler

import (
	"context"
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"avatarhub/internal/dashboard"
	"avatarhub/internal/errors"
	"avatarhub/internal/model"
	"avatarhub/internal/service"
	"avatarhub/internal/session"
)

// AvatarHandler serves the JSON API. It drives the same session dashboard
// and form controllers as the HTML pages.
type AvatarHandler struct {
	images   service.ImageService
	maxBytes int64
}

// NewAvatarHandler creates a new avatar API handler.
func NewAvatarHandler(images service.ImageService, maxBytes int64) *AvatarHandler {
	return &AvatarHandler{images: images, maxBytes: maxBytes}
}

// PageRequest moves the session to a page.
type PageRequest struct {
	Page int `json:"page" form:"page" validate:"required" example:"2"`
}

// SortRequest changes the session's card order.
type SortRequest struct {
	Sort string `json:"sort" form:"sort" validate:"required" example:"name-asc"`
}

// ListAvatarsResponse is one page of avatars.
type ListAvatarsResponse struct {
	Items     []model.AvatarRecord `json:"items"`
	Page      int                  `json:"page"`
	PageCount int                  `json:"pageCount"`
	Total     int                  `json:"total"`
	Sort      string               `json:"sort"`
}

// AvatarIDRequest identifies an avatar by path id.
type AvatarIDRequest struct {
	ID int `param:"id" json:"-" validate:"required,min=1"`
}

// CreateAvatarRequest mirrors the create form. Every field is optional.
type CreateAvatarRequest struct {
	Name        string `json:"name" example:"Ada Lovelace"`
	Category    string `json:"category" example:"Professional"`
	Description string `json:"description"`
	ImageRef    string `json:"imageRef"`
}

// UpdateAvatarRequest mirrors the edit form. Omitted fields keep their current value.
type UpdateAvatarRequest struct {
	ID          int     `param:"id" json:"-" validate:"required,min=1"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	ImageRef    *string `json:"imageRef"`
}

// ImageUploadResponse carries the reference of an uploaded image.
type ImageUploadResponse struct {
	ImageRef string `json:"imageRef"`
}

// ListAvatars godoc
// @Summary List avatars
// @Description Returns the visible slice of the session's current page in the current order. Read-only.
// @Tags avatars
// @Produce json
// @Success 200 {object} ListAvatarsResponse
// @Router /avatars [get]
func (h *AvatarHandler) ListAvatars(c echo.Context) error {
	var resp ListAvatarsResponse
	_ = session.FromContext(c).Do(func(d *dashboard.Dashboard) error {
		resp = listResponse(c.Request().Context(), d)
		return nil
	})
	return c.JSON(http.StatusOK, resp)
}

// GoToPage godoc
// @Summary Change page
// @Description Moves the session to the requested page. Pages outside 1..pageCount are ignored and the current page is returned.
// @Tags avatars
// @Accept json
// @Produce json
// @Param page body PageRequest true "Target page"
// @Success 200 {object} ListAvatarsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /page [post]
func (h *AvatarHandler) GoToPage(c echo.Context) error {
	var req PageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var resp ListAvatarsResponse
	_ = session.FromContext(c).Do(func(d *dashboard.Dashboard) error {
		ctx := c.Request().Context()
		d.GoToPage(ctx, req.Page)
		resp = listResponse(ctx, d)
		return nil
	})
	return c.JSON(http.StatusOK, resp)
}

// SetSort godoc
// @Summary Change sort order
// @Description Sets the card order: recently-created, name-asc or name-desc. Unknown values select recently-created.
// @Tags avatars
// @Accept json
// @Produce json
// @Param sort body SortRequest true "Sort order"
// @Success 200 {object} ListAvatarsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /sort [post]
func (h *AvatarHandler) SetSort(c echo.Context) error {
	var req SortRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var resp ListAvatarsResponse
	_ = session.FromContext(c).Do(func(d *dashboard.Dashboard) error {
		d.SetSort(dashboard.ParseSortOrder(req.Sort))
		resp = listResponse(c.Request().Context(), d)
		return nil
	})
	return c.JSON(http.StatusOK, resp)
}

// GetAvatar godoc
// @Summary Get avatar by id
// @Tags avatars
// @Produce json
// @Param id path int true "Avatar ID"
// @Success 200 {object} model.AvatarRecord
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /avatars/{id} [get]
func (h *AvatarHandler) GetAvatar(c echo.Context) error {
	var req AvatarIDRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var record model.AvatarRecord
	err := session.FromContext(c).Do(func(d *dashboard.Dashboard) error {
		var err error
		record, err = d.Avatar(c.Request().Context(), req.ID)
		return err
	})
	if err != nil {
		return jsonError(err)
	}
	return c.JSON(http.StatusOK, record)
}

// CreateAvatar godoc
// @Summary Create avatar
// @Description Fills and submits the create form. The name is split into first and last name.
// @Description Any create draft open in the HTML dashboard of the same session is discarded.
// @Tags avatars
// @Accept json
// @Produce json
// @Param avatar body CreateAvatarRequest true "Avatar payload"
// @Success 201 {object} model.AvatarRecord
// @Failure 400 {object} errors.ErrorResponse
// @Router /avatars [post]
func (h *AvatarHandler) CreateAvatar(c echo.Context) error {
	var req CreateAvatarRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var record model.AvatarRecord
	err := session.FromContext(c).Do(func(d *dashboard.Dashboard) error {
		d.CancelCreate()
		d.OpenCreate()
		form := d.CreateForm()
		form.SetName(req.Name)
		if req.Category != "" {
			form.SetCategory(req.Category)
		}
		form.SetDescription(req.Description)
		form.SelectImage(model.ImageRef(req.ImageRef))

		var err error
		record, err = d.SubmitCreate(c.Request().Context())
		return err
	})
	if err != nil {
		return jsonError(err)
	}
	return c.JSON(http.StatusCreated, record)
}

// UpdateAvatar godoc
// @Summary Update avatar
// @Description Opens the edit form on the avatar, applies the given fields and submits it. id and createdAt never change.
// @Description Any edit draft open in the HTML dashboard of the same session is discarded.
// @Tags avatars
// @Accept json
// @Produce json
// @Param id path int true "Avatar ID"
// @Param avatar body UpdateAvatarRequest true "Fields to change"
// @Success 200 {object} model.AvatarRecord
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /avatars/{id} [put]
func (h *AvatarHandler) UpdateAvatar(c echo.Context) error {
	var req UpdateAvatarRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var record model.AvatarRecord
	err := session.FromContext(c).Do(func(d *dashboard.Dashboard) error {
		ctx := c.Request().Context()
		d.CancelEdit()
		if err := d.OpenEdit(ctx, req.ID); err != nil {
			return err
		}
		form := d.EditForm()
		applyString(req.FirstName, form.SetFirstName)
		applyString(req.LastName, form.SetLastName)
		applyString(req.Email, form.SetEmail)
		applyString(req.Category, form.SetCategory)
		applyString(req.Description, form.SetDescription)
		if req.ImageRef != nil {
			form.SelectImage(model.ImageRef(*req.ImageRef))
		}

		var err error
		record, err = d.SubmitEdit(ctx)
		return err
	})
	if err != nil {
		return jsonError(err)
	}
	return c.JSON(http.StatusOK, record)
}

// UploadImage godoc
// @Summary Upload an image
// @Description Stores the file in memory and returns a reference usable as imageRef.
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 201 {object} ImageUploadResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 413 {object} errors.ErrorResponse
// @Router /images [post]
func (h *AvatarHandler) UploadImage(c echo.Context) error {
	ref, err := registerUpload(c, h.images, h.maxBytes)
	if err != nil {
		return jsonError(err)
	}
	if ref.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "image file is required",
			Code:  "INVALID_REQUEST",
		})
	}
	return c.JSON(http.StatusCreated, ImageUploadResponse{ImageRef: ref.String()})
}

// ServeImage streams an uploaded image back.
func (h *AvatarHandler) ServeImage(c echo.Context) error {
	entry, err := h.images.Resolve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return jsonError(err)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age="+maxAge(24*time.Hour))
	return c.Blob(http.StatusOK, entry.ContentType, entry.Data)
}

func listResponse(ctx context.Context, d *dashboard.Dashboard) ListAvatarsResponse {
	view := d.Snapshot(ctx, time.Now())
	items := make([]model.AvatarRecord, 0, len(view.Cards))
	for _, card := range view.Cards {
		items = append(items, card.AvatarRecord)
	}
	return ListAvatarsResponse{
		Items:     items,
		Page:      view.Window.Page,
		PageCount: view.Window.PageCount,
		Total:     view.Window.Total,
		Sort:      string(view.Sort),
	}
}

func applyString(v *string, set func(string)) {
	if v != nil {
		set(*v)
	}
}

func maxAge(d time.Duration) string {
	return strconv.Itoa(int(d.Seconds()))
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_REQUEST",
		})
	}
	return nil
}

func jsonError(err error) error {
	var he *echo.HTTPError
	if stderrors.As(err, &he) {
		return he
	}
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
