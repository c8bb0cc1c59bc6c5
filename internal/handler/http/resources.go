package http

import (
	"net/http"

	"github.com/MKhiriev/resource-service/internal/logger"
	"github.com/MKhiriev/resource-service/internal/utils"
)

func (h *Handler) createResource(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := decodeObject(r)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.createResource").Msg("invalid request body")
		writeError(w, r, err, "*Handler.createResource")
		return
	}

	create, err := decodeResourceCreate(body)
	if err != nil {
		writeError(w, r, err, "*Handler.createResource")
		return
	}

	created, err := h.services.ResourceService.CreateResource(r.Context(), create)
	if err != nil {
		writeError(w, r, err, "*Handler.createResource")
		return
	}

	log.Debug().Int64("resource_id", created.ID).Msg("resource created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listResources(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err, "*Handler.listResources")
		return
	}

	page, err := h.services.ResourceService.ListResources(r.Context(), query)
	if err != nil {
		writeError(w, r, err, "*Handler.listResources")
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getResource(w http.ResponseWriter, r *http.Request) {
	id, err := resourceIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getResource")
		return
	}

	resource, err := h.services.ResourceService.GetResource(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "*Handler.getResource")
		return
	}

	utils.WriteJSON(w, resource, http.StatusOK)
}

func (h *Handler) updateResource(w http.ResponseWriter, r *http.Request) {
	id, err := resourceIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.updateResource")
		return
	}

	body, err := decodeObject(r)
	if err != nil {
		writeError(w, r, err, "*Handler.updateResource")
		return
	}

	update, err := decodeResourceUpdate(id, body)
	if err != nil {
		writeError(w, r, err, "*Handler.updateResource")
		return
	}

	updated, err := h.services.ResourceService.UpdateResource(r.Context(), update)
	if err != nil {
		writeError(w, r, err, "*Handler.updateResource")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteResource(w http.ResponseWriter, r *http.Request) {
	id, err := resourceIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.deleteResource")
		return
	}

	if err = h.services.ResourceService.DeleteResource(r.Context(), id); err != nil {
		writeError(w, r, err, "*Handler.deleteResource")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
