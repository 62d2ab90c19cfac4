package api

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/banachtech/vanilla/data"
	"github.com/banachtech/vanilla/handler"
	"github.com/gin-gonic/gin"
)

// Bounds on the work a single request may ask for.
const (
	maxSamples = 5_000_000
	maxSteps   = 1000
	maxDraws   = 20_000_000 // samples × steps
)

// maxWorkers caps the goroutines a single request may start.
var maxWorkers = runtime.NumCPU()

type pricerRequest struct {
	Spot     float64 `json:"spot"`
	Strike   float64 `json:"strike"`
	Maturity float64 `json:"maturity"`
	Rate     float64 `json:"rate"`
	Vol      float64 `json:"vol"`
	Samples  *int    `json:"samples"`
	Seed     *uint64 `json:"seed"`
	Steps    *int    `json:"steps"`
	Workers  *int    `json:"workers"`
}

func (req pricerRequest) sim(defaults data.SimConfig) data.SimConfig {
	sim := defaults
	if req.Samples != nil {
		sim.Samples = *req.Samples
	}
	if req.Seed != nil {
		sim.Seed = *req.Seed
	}
	if req.Steps != nil {
		sim.Steps = *req.Steps
	}
	if req.Workers != nil {
		sim.Workers = *req.Workers
	}
	return sim
}

// checkWork returns a non-empty message when sim exceeds the per-request limits.
// Negative values are left to domain validation.
func checkWork(sim data.SimConfig) string {
	switch {
	case sim.Samples > maxSamples:
		return fmt.Sprintf("samples cannot exceed %d", maxSamples)
	case sim.Steps > maxSteps:
		return fmt.Sprintf("steps cannot exceed %d", maxSteps)
	case sim.Samples*sim.NSteps() > maxDraws:
		return fmt.Sprintf("samples × steps cannot exceed %d", maxDraws)
	case sim.Workers > maxWorkers:
		return fmt.Sprintf("workers cannot exceed %d", maxWorkers)
	}
	return ""
}

func (server *Server) pricer(c *gin.Context) {
	var req pricerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	p := data.Params{Spot: req.Spot, Strike: req.Strike, Maturity: req.Maturity, Rate: req.Rate, Vol: req.Vol}
	sim := req.sim(server.defaults.Simulation)
	if msg := checkWork(sim); msg != "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "msg": msg})
		return
	}

	res, err := handler.Price(p, sim, nil)
	if err != nil {
		var de *data.DomainError
		if errors.As(err, &de) {
			c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, res)
}
