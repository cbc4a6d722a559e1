package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DashboardController struct{ *Srv }

func NewDashboardController(s *Srv) *DashboardController { return &DashboardController{Srv: s} }

func (dc *DashboardController) Stats(c *gin.Context) {
	stats, err := dc.Repo.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (dc *DashboardController) RecentActivity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	rows, err := dc.Repo.RecentActivity(c.Request.Context(), limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
