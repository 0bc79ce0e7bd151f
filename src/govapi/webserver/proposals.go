package webserver

import (
	"errors"
	"html"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"github.com/openlearn-dev/community-gov/src/govapi/governance"
)

type Proposals struct {
	svc       *governance.Service
	sanitizer *bluemonday.Policy
}

func NewProposals(svc *governance.Service) Proposals {
	// Strict sanitizer allowing basic markdown-rendered formatting
	sanitizer := bluemonday.StrictPolicy()
	sanitizer.AllowElements("p", "br", "strong", "em", "code", "pre", "blockquote")
	sanitizer.AllowElements("ul", "ol", "li")
	sanitizer.AllowElements("h1", "h2", "h3", "h4", "h5", "h6")
	sanitizer.AllowAttrs("href").OnElements("a")
	sanitizer.RequireParseableURLs(true)
	sanitizer.AddTargetBlankToFullyQualifiedLinks(true)
	sanitizer.RequireNoFollowOnLinks(true)

	return Proposals{svc: svc, sanitizer: sanitizer}
}

// abortGovErr maps the governance error taxonomy onto HTTP statuses.
// Anything unmatched is an infrastructure failure.
func abortGovErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, governance.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"err": "permission denied"})
	case errors.Is(err, governance.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"err": "proposal not found"})
	case errors.Is(err, governance.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"err": "operation not allowed in the proposal's current state"})
	case errors.Is(err, governance.ErrAlreadyVoted):
		c.JSON(http.StatusConflict, gin.H{"err": "you have already voted on this proposal"})
	case errors.Is(err, governance.ErrVotingClosed):
		c.JSON(http.StatusConflict, gin.H{"err": "voting has closed"})
	case errors.Is(err, governance.ErrValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"err": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"err": "temporary failure, please retry"})
	}
}

func proposalID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"err": "bad proposal id"})
		return 0, false
	}
	return id, true
}

func (h Proposals) Create(c *gin.Context) {
	var req struct {
		Title           string   `json:"title" binding:"required,max=255"`
		Description     string   `json:"description" binding:"required,min=1,max=10000"`
		DetailedContent string   `json:"detailedContent" binding:"max=100000"`
		Level           int      `json:"level" binding:"required,oneof=1 2"`
		CategoryID      uint64   `json:"categoryId"`
		Tags            []string `json:"tags" binding:"max=10,dive,max=32"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	req.Title = html.EscapeString(req.Title)
	req.Description = h.sanitizer.Sanitize(req.Description)
	req.DetailedContent = h.sanitizer.Sanitize(req.DetailedContent)
	if !utf8.ValidString(req.Title) || !utf8.ValidString(req.Description) {
		c.JSON(http.StatusBadRequest, gin.H{"err": "invalid characters in input"})
		return
	}

	p, err := h.svc.CreateProposal(c, memberID(c), governance.CreateProposalInput{
		Title:           req.Title,
		Description:     req.Description,
		DetailedContent: req.DetailedContent,
		Level:           req.Level,
		CategoryID:      req.CategoryID,
		Tags:            req.Tags,
	})
	if err != nil {
		opResult("create", err)
		abortGovErr(c, err)
		return
	}
	opResult("create", nil)
	c.JSON(http.StatusCreated, p)
}

func (h Proposals) Submit(c *gin.Context) {
	id, ok := proposalID(c)
	if !ok {
		return
	}
	p, err := h.svc.SubmitForReview(c, id, memberID(c))
	if err != nil {
		opResult("submit", err)
		abortGovErr(c, err)
		return
	}
	opResult("submit", nil)
	c.JSON(http.StatusOK, p)
}

func (h Proposals) Validate(c *gin.Context) {
	id, ok := proposalID(c)
	if !ok {
		return
	}
	var req struct {
		Decision string `json:"decision" binding:"required,oneof=approve reject"`
		Notes    string `json:"notes" binding:"max=10000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	p, err := h.svc.ValidateProposal(c, id, memberID(c), req.Decision == "approve", h.sanitizer.Sanitize(req.Notes))
	if err != nil {
		opResult("validate", err)
		abortGovErr(c, err)
		return
	}
	opResult("validate", nil)
	c.JSON(http.StatusOK, p)
}

func (h Proposals) Close(c *gin.Context) {
	id, ok := proposalID(c)
	if !ok {
		return
	}
	p, err := h.svc.CloseExpired(c, id)
	if err != nil {
		opResult("close", err)
		abortGovErr(c, err)
		return
	}
	opResult("close", nil)
	c.JSON(http.StatusOK, p)
}

func (h Proposals) Get(c *gin.Context) {
	view, err := h.svc.GetProposal(c, c.Param("id"))
	if err != nil {
		abortGovErr(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h Proposals) List(c *gin.Context) {
	categoryID, _ := strconv.ParseUint(c.Query("category"), 10, 64)
	out, err := h.svc.ListProposals(c, c.Query("status"), categoryID)
	if err != nil {
		abortGovErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proposals": out})
}
