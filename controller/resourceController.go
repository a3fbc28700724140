package controller

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"portfolio-backend/model"
	"portfolio-backend/util"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

// Store is the set of persistence calls a resource needs. Each call is one
// round trip to the database.
type Store interface {
	FindAll(ctx context.Context) ([]model.Document, error)
	Insert(ctx context.Context, doc model.Document) (model.Document, error)
	UpdateByID(ctx context.Context, id string, fields model.Document) (*model.UpdateAck, error)
	DeleteByID(ctx context.Context, id string) (*model.DeleteAck, error)
}

var validate = validator.New()

type idParams struct {
	ID string `validate:"required"`
}

// ResourceController serves list, create, update and delete for one kind.
type ResourceController struct {
	kind  model.Kind
	store Store
}

func NewResourceController(kind model.Kind, store Store) *ResourceController {
	return &ResourceController{kind: kind, store: store}
}

// Routes mounts the four routes of the kind under /{path}.
func (rc *ResourceController) Routes(r chi.Router) {
	r.Route("/"+rc.kind.Path, func(r chi.Router) {
		r.Get("/", rc.HandleList)
		r.Post("/", rc.HandleCreate)
		r.Put("/{id}", rc.HandleUpdate)
		r.Delete("/{id}", rc.HandleDelete)
	})
}

func (rc *ResourceController) HandleList(w http.ResponseWriter, r *http.Request) {
	log.Debug().Str("resource", rc.kind.Path).Msg("HandleList: finding documents")
	docs, err := rc.store.FindAll(r.Context())
	if err != nil {
		log.Error().Err(err).Str("resource", rc.kind.Path).Msg("HandleList: failed to find documents")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, docs)
}

func (rc *ResourceController) HandleCreate(w http.ResponseWriter, r *http.Request) {
	log.Debug().Str("resource", rc.kind.Path).Msg("HandleCreate: decoding body")
	doc, err := decodeDocument(r)
	if err != nil {
		log.Debug().Err(err).Str("resource", rc.kind.Path).Msg("HandleCreate: failed to decode body")
		util.WriteErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	created, err := rc.store.Insert(r.Context(), doc)
	if err != nil {
		log.Error().Err(err).Str("resource", rc.kind.Path).Msg("HandleCreate: failed to insert document")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create "+rc.kind.Name)
		return
	}
	util.WriteSuccessResponse(w, http.StatusCreated, created)
}

func (rc *ResourceController) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := rc.idParam(w, r)
	if !ok {
		return
	}

	log.Debug().Str("resource", rc.kind.Path).Str("id", id).Msg("HandleUpdate: decoding body")
	fields, err := decodeDocument(r)
	if err != nil {
		log.Debug().Err(err).Str("resource", rc.kind.Path).Msg("HandleUpdate: failed to decode body")
		util.WriteErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := model.ValidateShape(fields, model.UpdateShape); err != nil {
		log.Debug().Err(err).Str("resource", rc.kind.Path).Msg("HandleUpdate: body does not match update shape")
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ack, err := rc.store.UpdateByID(r.Context(), id, fields)
	if err != nil {
		log.Error().Err(err).Str("resource", rc.kind.Path).Str("id", id).Msg("HandleUpdate: failed to update document")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to update "+rc.kind.Name)
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, ack)
}

func (rc *ResourceController) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := rc.idParam(w, r)
	if !ok {
		return
	}

	log.Debug().Str("resource", rc.kind.Path).Str("id", id).Msg("HandleDelete: deleting document")
	ack, err := rc.store.DeleteByID(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Str("resource", rc.kind.Path).Str("id", id).Msg("HandleDelete: failed to delete document")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to delete "+rc.kind.Name)
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, ack)
}

func (rc *ResourceController) idParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	params := idParams{ID: chi.URLParam(r, "id")}
	if err := validate.Struct(params); err != nil {
		log.Debug().Err(err).Str("resource", rc.kind.Path).Msg("idParam: invalid id parameter")
		util.WriteErrorResponse(w, http.StatusBadRequest, "id is required")
		return "", false
	}
	return params.ID, true
}

// decodeDocument reads the body as a relaxed extended JSON object. An empty
// body is an empty document.
func decodeDocument(r *http.Request) (model.Document, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	doc := model.Document{}
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}
	if err := bson.UnmarshalExtJSON(data, false, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
