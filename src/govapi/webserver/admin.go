package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlearn-dev/community-gov/src/govapi/governance"
)

type Admin struct {
	svc *governance.Service
}

func NewAdmin(svc *governance.Service) Admin {
	return Admin{svc: svc}
}

func (h Admin) Veto(c *gin.Context) {
	id, ok := proposalID(c)
	if !ok {
		return
	}
	var req struct {
		Reason   string `json:"reason" binding:"required,min=1,max=10000"`
		IsPublic bool   `json:"isPublic"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	p, err := h.svc.Veto(c, id, memberID(c), req.Reason, req.IsPublic)
	if err != nil {
		opResult("veto", err)
		abortGovErr(c, err)
		return
	}
	opResult("veto", nil)
	c.JSON(http.StatusOK, p)
}

func (h Admin) ForceImplement(c *gin.Context) {
	id, ok := proposalID(c)
	if !ok {
		return
	}
	var req struct {
		Reason   string `json:"reason" binding:"required,min=1,max=10000"`
		IsPublic bool   `json:"isPublic"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	p, err := h.svc.ForceImplement(c, id, memberID(c), req.Reason, req.IsPublic)
	if err != nil {
		opResult("force_implement", err)
		abortGovErr(c, err)
		return
	}
	opResult("force_implement", nil)
	c.JSON(http.StatusOK, p)
}

func (h Admin) MarkImplemented(c *gin.Context) {
	id, ok := proposalID(c)
	if !ok {
		return
	}
	var req struct {
		Notes string `json:"notes" binding:"max=10000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	p, err := h.svc.MarkImplemented(c, id, memberID(c), req.Notes)
	if err != nil {
		opResult("mark_implemented", err)
		abortGovErr(c, err)
		return
	}
	opResult("mark_implemented", nil)
	c.JSON(http.StatusOK, p)
}

func (h Admin) Actions(c *gin.Context) {
	id, ok := proposalID(c)
	if !ok {
		return
	}
	actions, err := h.svc.ListActions(c, id, memberID(c))
	if err != nil {
		abortGovErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"actions": actions})
}
