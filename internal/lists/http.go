// Copyright (c) 2026 Shopventory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lists

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/shopventory/internal/platform/middleware"
	requestutil "github.com/taibuivan/shopventory/internal/platform/request"
	"github.com/taibuivan/shopventory/internal/platform/respond"
)

// Handler exposes the list service over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the list endpoints. Every route requires a verified token.
//
// # Endpoints
//   - GET    /            : The caller's lists, filtered by ?q=
//   - POST   /            : Create a list
//   - GET    /help        : Lists screen help content
//   - GET    /{id}        : One list
//   - GET    /{id}/route  : Client path of the list's detail screen
//   - DELETE /{id}        : Delete a list
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listLists)
	router.Post("/", handler.createList)
	router.Get("/help", handler.help)
	router.Get("/{id}", handler.getList)
	router.Get("/{id}/route", handler.routeList)
	router.Delete("/{id}", handler.deleteList)

	return router
}

type createListRequest struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Type       Type            `json:"type"`
	Attributes json.RawMessage `json:"attributes"`
}

type routeResponse struct {
	Path string `json:"path"`
}

// sessionFrom builds the explicit session from the verified token.
func sessionFrom(request *http.Request) (Session, error) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		return Session{}, err
	}
	return Session{UserID: userID}, nil
}

/*
GET /api/v1/lists?q=gro

Response:
  - 200: []List
  - 401: Not authenticated
*/
func (handler *Handler) listLists(writer http.ResponseWriter, request *http.Request) {
	session, err := sessionFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.List(request.Context(), session, request.URL.Query().Get("q"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

/*
POST /api/v1/lists

Request:
  - Body: createListRequest (ID optional, Name, Type, Attributes optional)

Response:
  - 201: List
  - 400: Validation failure
*/
func (handler *Handler) createList(writer http.ResponseWriter, request *http.Request) {
	session, err := sessionFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createListRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	list, err := handler.service.Create(request.Context(), session, CreateInput{
		ID:         input.ID,
		Name:       input.Name,
		Type:       input.Type,
		Attributes: input.Attributes,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, list)
}

func (handler *Handler) help(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, Help())
}

func (handler *Handler) getList(writer http.ResponseWriter, request *http.Request) {
	session, err := sessionFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	list, err := handler.service.Get(request.Context(), session, requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, list)
}

func (handler *Handler) routeList(writer http.ResponseWriter, request *http.Request) {
	session, err := sessionFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	path, err := handler.service.Route(request.Context(), session, requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, routeResponse{Path: path})
}

/*
DELETE /api/v1/lists/{id}

Response:
  - 204: Deleted
  - 404: No such list for this user
*/
func (handler *Handler) deleteList(writer http.ResponseWriter, request *http.Request) {
	session, err := sessionFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), session, requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
