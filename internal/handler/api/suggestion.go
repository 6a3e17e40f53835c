package api

import (
	"context"
	"net/http"

	reqdto "staymarket/internal/handler/dto/request"
	resdto "staymarket/internal/handler/dto/response"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/commands"
	"staymarket/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SuggestionHandler struct {
	suggestionCommands commands.SuggestionCommands
	suggestionQueries  queries.SuggestionQueries
}

func NewSuggestionHandler(cmds commands.SuggestionCommands, qs queries.SuggestionQueries) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionCommands: cmds,
		suggestionQueries:  qs,
	}
}

func (h *SuggestionHandler) ListSuggestions(c *gin.Context) {
	propertyID, ok := parsePropertyID(c)
	if !ok {
		return
	}

	onlyPending := c.Query("status") == "pending"
	views, err := h.suggestionQueries.ListByProperty(c.Request.Context(), propertyID, onlyPending)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.SuggestionResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromSuggestionView(v)
	}
	c.JSON(http.StatusOK, response)
}

func (h *SuggestionHandler) CreateSuggestion(c *gin.Context) {
	propertyID, ok := parsePropertyID(c)
	if !ok {
		return
	}

	var req reqdto.CreateSuggestionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams(propertyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	id, err := h.suggestionCommands.CreateSuggestion(c.Request.Context(), params)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid suggestion",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *SuggestionHandler) AcceptSuggestion(c *gin.Context) {
	h.decide(c, h.suggestionCommands.AcceptSuggestion)
}

func (h *SuggestionHandler) RejectSuggestion(c *gin.Context) {
	h.decide(c, h.suggestionCommands.RejectSuggestion)
}

func (h *SuggestionHandler) decide(c *gin.Context, op func(ctx context.Context, id uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid suggestion ID format",
		})
		return
	}

	if err := op(c.Request.Context(), id); err != nil {
		switch {
		case errs.Is(err, errs.ErrSuggestionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Suggestion not found",
			})
		case errs.Is(err, errs.ErrSuggestionDecided):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Suggestion has already been decided",
			})
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Suggestion cannot be applied",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
