package handler

import (
	stderrors "errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"avatarhub/internal/dashboard"
	"avatarhub/internal/errors"
	"avatarhub/internal/logger"
	"avatarhub/internal/model"
	"avatarhub/internal/service"
	"avatarhub/internal/session"
)

// DashboardHandler serves the HTML dashboard. Every mutating request follows
// post/redirect/get back to "/".
type DashboardHandler struct {
	images   service.ImageService
	maxBytes int64
	now      func() time.Time
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(images service.ImageService, maxBytes int64) *DashboardHandler {
	return &DashboardHandler{images: images, maxBytes: maxBytes, now: time.Now}
}

// Show renders the dashboard.
func (h *DashboardHandler) Show(c echo.Context) error {
	var view dashboard.View
	_ = session.FromContext(c).Do(func(d *dashboard.Dashboard) error {
		view = d.Snapshot(c.Request().Context(), h.now())
		return nil
	})
	return c.Render(http.StatusOK, "dashboard.html", view)
}

// GoToPage handles the previous/next controls.
func (h *DashboardHandler) GoToPage(c echo.Context) error {
	page, err := strconv.Atoi(c.FormValue("page"))
	if err == nil {
		_ = session.FromContext(c).Do(func(d *dashboard.Dashboard) error {
			d.GoToPage(c.Request().Context(), page)
			return nil
		})
	}
	return redirectHome(c)
}

// SetSort changes the card order.
func (h *DashboardHandler) SetSort(c echo.Context) error {
	order := dashboard.ParseSortOrder(c.FormValue("sort"))
	_ = session.FromContext(c).Do(func(d *dashboard.Dashboard) error {
		d.SetSort(order)
		return nil
	})
	return redirectHome(c)
}

// OpenCreate shows the create form.
func (h *DashboardHandler) OpenCreate(c echo.Context) error {
	_ = session.FromContext(c).Do(func(d *dashboard.Dashboard) error {
		d.OpenCreate()
		return nil
	})
	return redirectHome(c)
}

// CancelCreate discards the create draft.
func (h *DashboardHandler) CancelCreate(c echo.Context) error {
	_ = session.FromContext(c).Do(func(d *dashboard.Dashboard) error {
		d.CancelCreate()
		return nil
	})
	return redirectHome(c)
}

// SubmitCreate applies the posted fields to the create draft and submits it.
// A submit while the form is closed is dropped before any upload is stored.
func (h *DashboardHandler) SubmitCreate(c echo.Context) error {
	err := session.FromContext(c).Do(func(d *dashboard.Dashboard) error {
		form := d.CreateForm()
		if !form.State.IsOpen() {
			return errors.ErrFormClosed
		}
		ref, err := h.uploadedImage(c)
		if err != nil {
			return err
		}
		form.SetName(c.FormValue("name"))
		if category := c.FormValue("category"); category != "" {
			form.SetCategory(category)
		}
		form.SetDescription(c.FormValue("description"))
		form.SelectImage(ref)
		_, err = d.SubmitCreate(c.Request().Context())
		return err
	})
	if err != nil && !stderrors.Is(err, errors.ErrFormClosed) {
		return htmlError(err)
	}
	return redirectHome(c)
}

// OpenEdit shows the edit form for the avatar in the path.
func (h *DashboardHandler) OpenEdit(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid avatar id")
	}
	err = session.FromContext(c).Do(func(d *dashboard.Dashboard) error {
		return d.OpenEdit(c.Request().Context(), id)
	})
	if err != nil {
		return htmlError(err)
	}
	return redirectHome(c)
}

// CancelEdit discards the edit draft.
func (h *DashboardHandler) CancelEdit(c echo.Context) error {
	_ = session.FromContext(c).Do(func(d *dashboard.Dashboard) error {
		d.CancelEdit()
		return nil
	})
	return redirectHome(c)
}

// SubmitEdit applies the posted fields to the edit draft and submits it. A
// post for a record other than the one being edited is ignored and stores no
// upload.
func (h *DashboardHandler) SubmitEdit(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid avatar id")
	}

	err = session.FromContext(c).Do(func(d *dashboard.Dashboard) error {
		form := d.EditForm()
		if !form.State.IsOpen() || form.TargetID() != id {
			return errors.ErrFormClosed
		}
		ref, err := h.uploadedImage(c)
		if err != nil {
			return err
		}
		form.SetFirstName(c.FormValue("firstName"))
		form.SetLastName(c.FormValue("lastName"))
		form.SetEmail(c.FormValue("email"))
		if category := c.FormValue("category"); category != "" {
			form.SetCategory(category)
		}
		form.SetDescription(c.FormValue("description"))
		form.SelectImage(ref)
		_, err = d.SubmitEdit(c.Request().Context())
		return err
	})
	if err != nil && !stderrors.Is(err, errors.ErrFormClosed) {
		return htmlError(err)
	}
	return redirectHome(c)
}

// uploadedImage registers the optional "image" file and returns its reference,
// or the zero ref when no file was sent. The image lives as long as the
// session that uploaded it.
func (h *DashboardHandler) uploadedImage(c echo.Context) (model.ImageRef, error) {
	return registerUpload(c, h.images, h.maxBytes)
}

func registerUpload(c echo.Context, images service.ImageService, maxBytes int64) (model.ImageRef, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		if stderrors.Is(err, http.ErrMissingFile) || stderrors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid upload")
	}
	if fh.Size == 0 {
		return "", nil
	}
	if fh.Size > maxBytes {
		return "", errors.ErrImageTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return "", err
	}
	ref, err := images.Register(c.Request().Context(), data, fh.Header.Get(echo.HeaderContentType))
	if err != nil {
		return "", err
	}
	session.FromContext(c).TrackImage(ref)
	return ref, nil
}

func redirectHome(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/")
}

func htmlError(err error) error {
	var he *echo.HTTPError
	if stderrors.As(err, &he) {
		return he
	}
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		logger.Error().Err(err).Msg("dashboard request failed")
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
}
