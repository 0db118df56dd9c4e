package tutor

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/tutor-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Ask godoc
// @Summary      Ask the tutor
// @Description  Builds a teacher prompt for subject/topic, or a rewrite prompt for a previous answer, and relays it to the completion API.
// @Tags         mistral
// @Produce      json
// @Param        subject              query  string  false  "School subject"
// @Param        topic                query  string  false  "Topic to explain"
// @Param        modificationRequest  query  string  false  "Follow-up rewrite request"
// @Param        previousAnswer       query  string  false  "Answer to rewrite"
// @Success      200  {object}  CompletionResult
// @Failure      400  {object}  config.ErrorResponse
// @Failure      500  {object}  config.ErrorResponse
// @Router       /mistral/ask [get]
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	q := r.URL.Query()

	req := AskRequest{
		Subject:             q.Get("subject"),
		Topic:               q.Get("topic"),
		ModificationRequest: q.Get("modificationRequest"),
		PreviousAnswer:      q.Get("previousAnswer"),
	}

	result, err := h.service.Ask(r.Context(), req)
	if err != nil {
		var upstreamErr *UpstreamError
		switch {
		case errors.Is(err, ErrInvalidRequest):
			config.Error(w, http.StatusBadRequest, "Missing subject/topic or modification request")
		case errors.As(err, &upstreamErr):
			config.Error(w, upstreamErr.HTTPStatus(), upstreamErr.Error())
		default:
			log.WithError(err).Error("Unexpected Error")
			config.Error(w, http.StatusInternalServerError, "Unexpected error occurred")
		}
		return
	}

	config.JSON(w, http.StatusOK, result)
}

// Subjects godoc
// @Summary  List subjects with a dedicated teacher persona
// @Tags     mistral
// @Produce  json
// @Success  200  {object}  SubjectsResponse
// @Router   /mistral/subjects [get]
func (h *Handler) Subjects(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, SubjectsResponse{Subjects: Subjects()})
}
