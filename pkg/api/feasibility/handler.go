// Package feasibility exposes the simulator over HTTP. Every request is a
// fresh, stateless evaluation: the handler holds only the site parameters
// and a logger.
package feasibility

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"feasibility_sim/pkg/core/model"
	"feasibility_sim/pkg/core/report"
	"feasibility_sim/pkg/core/scenario"
)

type Handler struct {
	site model.SiteParams
	log  *zap.Logger
}

func NewHandler(site model.SiteParams, log *zap.Logger) *Handler {
	return &Handler{site: site, log: log}
}

// Register attaches the feasibility routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/simulate", h.simulate)
	rg.POST("/sweep", h.sweep)
	rg.POST("/breakeven", h.breakeven)
	rg.POST("/sensitivity", h.sensitivity)
	rg.POST("/export", h.export)
}

type SimulateRequest struct {
	Assumptions model.Assumptions `json:"assumptions"`
}

type SweepRequest struct {
	Assumptions model.Assumptions `json:"assumptions"`
	Field       scenario.Field    `json:"field"`
	Values      []float64         `json:"values"`
}

type SweepResponse struct {
	Field scenario.Field `json:"field"`
	Rows  []scenario.Row `json:"rows"`
}

type BreakevenRequest struct {
	Assumptions model.Assumptions `json:"assumptions"`
	Low         float64           `json:"low"`
	High        float64           `json:"high"`
	Step        float64           `json:"step"`
}

type BreakevenResponse struct {
	Found     bool                `json:"found"`
	Breakeven *scenario.Breakeven `json:"breakeven,omitempty"`
}

type SensitivityRequest struct {
	Assumptions model.Assumptions `json:"assumptions"`
	Prices      []float64         `json:"prices"`
	Rates       []float64         `json:"rates"`
}

func (h *Handler) simulate(c *gin.Context) {
	var req SimulateRequest
	if !h.bind(c, &req) {
		return
	}
	res, err := model.Simulate(h.site, req.Assumptions)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) sweep(c *gin.Context) {
	var req SweepRequest
	if !h.bind(c, &req) {
		return
	}
	if len(req.Values) == 0 {
		h.fail(c, fmt.Errorf("%w: sweep needs at least one candidate value", model.ErrInvalidAssumption))
		return
	}
	rows, err := scenario.Sweep(h.site, req.Assumptions, req.Field, req.Values)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, SweepResponse{Field: req.Field, Rows: rows})
}

func (h *Handler) breakeven(c *gin.Context) {
	var req BreakevenRequest
	if !h.bind(c, &req) {
		return
	}
	be, err := scenario.FindBreakeven(h.site, req.Assumptions, req.Low, req.High, req.Step)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, BreakevenResponse{Found: be != nil, Breakeven: be})
}

func (h *Handler) sensitivity(c *gin.Context) {
	var req SensitivityRequest
	if !h.bind(c, &req) {
		return
	}
	if len(req.Prices) == 0 || len(req.Rates) == 0 {
		h.fail(c, fmt.Errorf("%w: sensitivity needs at least one price and one rate", model.ErrInvalidAssumption))
		return
	}
	c.JSON(http.StatusOK, scenario.Sensitivity(h.site, req.Assumptions, req.Prices, req.Rates))
}

// export builds the full report for the posted assumptions and streams it
// back as an xlsx attachment.
func (h *Handler) export(c *gin.Context) {
	var req SimulateRequest
	if !h.bind(c, &req) {
		return
	}
	rep, err := report.Build(h.site, req.Assumptions, report.DefaultOptions())
	if err != nil {
		h.fail(c, err)
		return
	}

	filename := fmt.Sprintf("feasibility_%s.xlsx", rep.ID)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := report.WriteWorkbook(c.Writer, rep); err != nil {
		h.log.Error("workbook export failed", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	h.log.Info("exported workbook", zap.String("report_id", rep.ID.String()))
}

func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// fail maps validation failures to 400 and anything else to 500. Undefined
// metrics never reach here — they are nulls in a 200 body, not errors.
func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, model.ErrInvalidAssumption) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.log.Error("simulation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
