package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	mw "reiseplaner/middleware"
	"reiseplaner/models"
	"reiseplaner/trips"
)

type reiseForm struct {
	Zielort             string `form:"zielort"`
	Anreise             string `form:"anreise"`
	Abreise             string `form:"abreise"`
	Notiz               string `form:"notiz"`
	Sehenswuerdigkeiten string `form:"sehenswuerdigkeiten"`
	Unterkunft          string `form:"unterkunft"`
	Foodspots           string `form:"foodspots"`
	Packliste           string `form:"packliste"`
}

func (f *reiseForm) input() trips.Input {
	return trips.Input{
		Zielort:             f.Zielort,
		Anreise:             f.Anreise,
		Abreise:             f.Abreise,
		Notiz:               f.Notiz,
		Sehenswuerdigkeiten: f.Sehenswuerdigkeiten,
		Unterkunft:          f.Unterkunft,
		Foodspots:           f.Foodspots,
		Packliste:           f.Packliste,
	}
}

// ReisePlan lists the caller's own trips.
func (h *Handler) ReisePlan(c echo.Context) error {
	reisen, err := h.trips.ListByOwner(c.Request().Context(), mw.UserID(c))
	if err != nil {
		zap.L().Error("listing trips failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return h.render(c, http.StatusOK, "reiseplan.html", "Mein Reiseplan", echo.Map{
		"Reisen": reisen,
	})
}

// ReiseNeuForm renders the empty trip form.
func (h *Handler) ReiseNeuForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "reise_form.html", "Reise hinzufügen", echo.Map{
		"Reise":  &models.Reise{},
		"Aktion": "/reise-hinzufuegen",
	})
}

// ReiseAnlegen creates a trip for the caller.
func (h *Handler) ReiseAnlegen(c echo.Context) error {
	var form reiseForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.trips.Create(c.Request().Context(), mw.UserID(c), form.input()); err != nil {
		if errors.Is(err, trips.ErrMissingFields) {
			h.flash(c, "Zielort, Anreise und Abreise sind Pflichtfelder.")
			return c.Redirect(http.StatusSeeOther, "/reise-hinzufuegen")
		}
		zap.L().Error("creating trip failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	h.flash(c, "Reise gespeichert.")
	return c.Redirect(http.StatusSeeOther, "/mein-reiseplan")
}

// ReiseBearbeitenForm renders the edit form for one of the caller's trips.
func (h *Handler) ReiseBearbeitenForm(c echo.Context) error {
	id, err := tripID(c)
	if err != nil {
		return err
	}

	reise, err := h.trips.GetForOwner(c.Request().Context(), mw.UserID(c), id)
	if err != nil {
		return h.tripError(c, err)
	}
	return h.render(c, http.StatusOK, "reise_form.html", "Reise bearbeiten", echo.Map{
		"Reise":  reise,
		"Aktion": "/reise-bearbeiten/" + strconv.FormatInt(id, 10),
	})
}

// ReiseBearbeiten updates one of the caller's trips.
func (h *Handler) ReiseBearbeiten(c echo.Context) error {
	id, err := tripID(c)
	if err != nil {
		return err
	}

	var form reiseForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.trips.Update(c.Request().Context(), mw.UserID(c), id, form.input()); err != nil {
		if errors.Is(err, trips.ErrMissingFields) {
			h.flash(c, "Zielort, Anreise und Abreise sind Pflichtfelder.")
			return c.Redirect(http.StatusSeeOther, "/reise-bearbeiten/"+strconv.FormatInt(id, 10))
		}
		return h.tripError(c, err)
	}

	h.flash(c, "Reise aktualisiert.")
	return c.Redirect(http.StatusSeeOther, "/mein-reiseplan")
}

// ReiseLoeschen deletes one of the caller's trips.
func (h *Handler) ReiseLoeschen(c echo.Context) error {
	id, err := tripID(c)
	if err != nil {
		return err
	}

	if err := h.trips.Delete(c.Request().Context(), mw.UserID(c), id); err != nil {
		return h.tripError(c, err)
	}

	h.flash(c, "Reise gelöscht.")
	return c.Redirect(http.StatusSeeOther, "/mein-reiseplan")
}

// tripError maps trip service errors to responses. A missing trip is a 404
// for everyone; a foreign trip sends the caller back to their own list with a
// notice and nothing else.
func (h *Handler) tripError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, trips.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Reise nicht gefunden")
	case errors.Is(err, trips.ErrDenied):
		h.flash(c, "Keine Berechtigung für diese Reise.")
		return c.Redirect(http.StatusSeeOther, "/mein-reiseplan")
	default:
		zap.L().Error("trip operation failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
}

func tripID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "Reise nicht gefunden")
	}
	return id, nil
}
