package api

import (
	"net/http"

	reqdto "staymarket/internal/handler/dto/request"
	resdto "staymarket/internal/handler/dto/response"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/commands"
	"staymarket/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PricingRuleHandler struct {
	ruleCommands   commands.PricingRuleCommands
	pricingQueries queries.PricingQueries
}

func NewPricingRuleHandler(cmds commands.PricingRuleCommands, qs queries.PricingQueries) *PricingRuleHandler {
	return &PricingRuleHandler{
		ruleCommands:   cmds,
		pricingQueries: qs,
	}
}

func (h *PricingRuleHandler) CreateRule(c *gin.Context) {
	propertyID, ok := parsePropertyID(c)
	if !ok {
		return
	}

	var req reqdto.CreatePricingRuleRequest
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

	ruleID, err := h.ruleCommands.CreateRule(c.Request.Context(), params)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidPricingRule):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid pricing rule",
			})
		case errs.Is(err, errs.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": ruleID})
}

func (h *PricingRuleHandler) ListRules(c *gin.Context) {
	propertyID, ok := parsePropertyID(c)
	if !ok {
		return
	}

	views, err := h.pricingQueries.ListRules(c.Request.Context(), propertyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.PricingRuleResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromPricingRuleView(v)
	}
	c.JSON(http.StatusOK, response)
}

func (h *PricingRuleHandler) DeactivateRule(c *gin.Context) {
	ruleID, err := uuid.Parse(c.Param("ruleID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rule ID format",
		})
		return
	}

	if err := h.ruleCommands.DeactivateRule(c.Request.Context(), ruleID); err != nil {
		if errs.Is(err, errs.ErrPricingRuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Pricing rule not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
