package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	companydomain "github.com/anilkedia87/gstbill/internal/company/domain"
	invoicedomain "github.com/anilkedia87/gstbill/internal/invoice/domain"
)

func (s *Server) CreateInvoice(c *gin.Context) {
	var req invoicedomain.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request body"))
		return
	}

	// Requests that leave the seller blank bill from the saved company
	// profile.
	if strings.TrimSpace(req.Seller.Name) == "" {
		if profile, err := s.companySvc.Get(c.Request.Context()); err == nil {
			req.Seller = sellerFromProfile(profile)
		}
	}

	inv, err := s.invoiceSvc.Generate(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": inv})
}

// sellerFromProfile adapts the stored company profile into the seller side
// of a generation request.
func sellerFromProfile(p *companydomain.Profile) invoicedomain.PartyInput {
	var lines []string
	for _, line := range strings.Split(p.Address, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return invoicedomain.PartyInput{
		Name:         p.Name,
		AddressLines: lines,
		State:        p.StateName,
		StateCode:    p.StateCode,
		GSTIN:        p.GSTIN,
		Phone:        p.Phone,
		Email:        p.Email,
		BankName:     p.BankName,
		BankAccount:  p.BankAccount,
		IFSCCode:     p.BankIFSC,
	}
}

func (s *Server) ListInvoices(c *gin.Context) {
	records, err := s.invoiceSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": records})
}

func (s *Server) GetInvoice(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))
	if number == "" {
		AbortWithError(c, newValidationError("number", "required", "invoice number is required"))
		return
	}

	inv, err := s.invoiceSvc.GetByNumber(c.Request.Context(), number)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": inv})
}

// RenderInvoice streams the stored invoice in the requested dialect. The
// default dialect is HTML.
func (s *Server) RenderInvoice(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))
	target := invoicedomain.RenderTarget(strings.ToLower(c.DefaultQuery("format", "html")))

	out, err := s.invoiceSvc.Render(c.Request.Context(), number, target)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	switch target {
	case invoicedomain.RenderHTML:
		c.Data(http.StatusOK, "text/html; charset=utf-8", out)
	case invoicedomain.RenderMarkdown:
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", out)
	case invoicedomain.RenderPDF:
		c.Header("Content-Disposition", `attachment; filename="`+number+`.pdf"`)
		c.Data(http.StatusOK, "application/pdf", out)
	}
}
