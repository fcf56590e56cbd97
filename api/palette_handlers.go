package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jsversehub/colorapi/colorspace"
	"github.com/jsversehub/colorapi/datastore"
	"github.com/jsversehub/colorapi/models"
)

// POST /v1/palettes - Save a named palette for the current user
func (app *Application) savePalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	user, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	req := &models.PaletteCreateRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if req.Name == "" {
		app.badRequest(w, r, errors.New("palette name is required"))
		return
	}
	if len(req.Colors) == 0 {
		app.badRequest(w, r, errors.New("palette must contain at least one color"))
		return
	}

	// Normalize colors to lowercase #rrggbb, rejecting anything malformed
	normalized := make([]string, 0, len(req.Colors))
	for _, c := range req.Colors {
		rgb, parseErr := colorspace.HexToRGB(c)
		if parseErr != nil {
			app.badRequest(w, r, parseErr)
			return
		}
		normalized = append(normalized, colorspace.RGBToHex(rgb))
	}
	req.Colors = normalized

	// One palette per name per user
	_, getErr := app.PaletteRepo.GetByUserAndName(user.UserID, req.Name)
	if getErr == nil {
		app.badRequest(w, r, errors.New("a palette with this name already exists"))
		return
	}

	palette := models.NewPalette(user.UserID, *req)
	storedPalette, storeErr := app.PaletteRepo.Create(palette)
	if storeErr != nil {
		app.internalServerError(w, r, storeErr)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(storedPalette)
}

// GET /v1/palettes/mine - List the current user's saved palettes
func (app *Application) getMyPalettes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	palettes, retrieveErr := app.PaletteRepo.GetByUser(user.UserID)
	if retrieveErr != nil {
		app.internalServerError(w, r, retrieveErr)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(palettes)
}

// DELETE /v1/palettes/delete?id= - Delete one of the current user's palettes
func (app *Application) deletePalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		app.requireDeleteMethod(w, r, ErrDELETE)
		return
	}

	user, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	paletteID := r.URL.Query().Get("id")
	if paletteID == "" {
		app.badRequest(w, r, errors.New("id query parameter is required"))
		return
	}

	palette, getErr := app.PaletteRepo.Get(paletteID)
	if getErr != nil {
		if _, ok := getErr.(datastore.NoRowsError); ok {
			http.NotFound(w, r)
			return
		}
		app.internalServerError(w, r, getErr)
		return
	}

	// Users can only delete their own palettes
	if palette.UserID != user.UserID && user.Kind != models.Admin {
		app.invalidAuthorization(w, r, ErrInvalidPrivelege)
		return
	}

	if delErr := app.PaletteRepo.Delete(paletteID); delErr != nil {
		app.internalServerError(w, r, delErr)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"deleted": paletteID})
}
