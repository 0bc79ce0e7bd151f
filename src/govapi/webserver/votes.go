package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"github.com/openlearn-dev/community-gov/src/govapi/governance"
)

type Votes struct {
	svc       *governance.Service
	sanitizer *bluemonday.Policy
}

func NewVotes(svc *governance.Service) Votes {
	return Votes{svc: svc, sanitizer: bluemonday.StrictPolicy()}
}

func (h Votes) Cast(c *gin.Context) {
	id, ok := proposalID(c)
	if !ok {
		return
	}
	var req struct {
		Choice  string `json:"choice" binding:"required,oneof=for against abstain"`
		Comment string `json:"comment" binding:"max=2000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	res, err := h.svc.CastVote(c, id, memberID(c), req.Choice, h.sanitizer.Sanitize(req.Comment))
	if err != nil {
		opResult("cast_vote", err)
		abortGovErr(c, err)
		return
	}
	opResult("cast_vote", nil)
	c.JSON(http.StatusCreated, gin.H{
		"vote":     res.Vote,
		"proposal": res.Proposal,
		"tally":    res.Tally,
	})
}
