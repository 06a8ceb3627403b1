package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/anilkedia87/gstbill/internal/gst"
	hsndomain "github.com/anilkedia87/gstbill/internal/hsn/domain"
)

const maxSearchResults = 50

func (s *Server) GetHSNCode(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))

	entry, err := s.hsnSvc.Lookup(code)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp := gin.H{"data": entry, "is_service_code": entry.IsServiceCode()}
	if desc, ok := gst.SlabDescription(entry.SuggestedRate); ok {
		resp["slab"] = desc
	}
	c.JSON(http.StatusOK, resp)
}

// ListGSTRates exposes the standard rate slabs with their descriptions.
func (s *Server) ListGSTRates(c *gin.Context) {
	type slab struct {
		Rate        string `json:"rate"`
		Description string `json:"description"`
	}
	slabs := make([]slab, 0, len(gst.StandardRates))
	for _, rate := range gst.StandardRates {
		desc, _ := gst.SlabDescription(rate)
		slabs = append(slabs, slab{Rate: rate.String(), Description: desc})
	}
	c.JSON(http.StatusOK, gin.H{"data": slabs})
}

func (s *Server) SearchHSNCodes(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))

	entries := make([]hsndomain.Entry, 0, maxSearchResults)
	for entry := range s.hsnSvc.Search(q) {
		entries = append(entries, entry)
		if len(entries) == maxSearchResults {
			break
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func (s *Server) SuggestHSNCodes(c *gin.Context) {
	description := strings.TrimSpace(c.Query("description"))
	if description == "" {
		AbortWithError(c, newValidationError("description", "required", "description is required"))
		return
	}

	limit := 5
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			AbortWithError(c, newValidationError("limit", "invalid_limit", "limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	c.JSON(http.StatusOK, gin.H{"data": s.hsnSvc.Suggest(description, limit)})
}

type registerHSNRequest struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Rate        string `json:"rate"`
}

func (s *Server) RegisterHSNCode(c *gin.Context) {
	var req registerHSNRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request body"))
		return
	}

	rate, err := decimal.NewFromString(strings.TrimSpace(req.Rate))
	if err != nil {
		AbortWithError(c, newValidationError("rate", "invalid_number", "rate must be a number"))
		return
	}

	entry, err := s.hsnSvc.Register(c.Request.Context(), req.Code, req.Description, rate)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": entry})
}
