package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	companydomain "github.com/anilkedia87/gstbill/internal/company/domain"
)

func (s *Server) GetCompanyProfile(c *gin.Context) {
	profile, err := s.companySvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile})
}

func (s *Server) SaveCompanyProfile(c *gin.Context) {
	var in companydomain.SaveInput
	if err := c.ShouldBindJSON(&in); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request body"))
		return
	}

	profile, err := s.companySvc.Save(c.Request.Context(), in)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile})
}
