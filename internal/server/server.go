// Package server answers conversion requests the same way the remote
// service does, so the form can run against a local endpoint.
package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/csheth/numeral/internal/logging"
	"github.com/csheth/numeral/internal/roman"
	"github.com/csheth/numeral/internal/validate"
)

// Path is the route of the conversion endpoint.
const Path = "/romannumeral"

// QueryParam carries the decimal integer to convert.
const QueryParam = "query"

type conversionResponse struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// New builds the gin engine serving Path.
func New(logger logging.Logger) *gin.Engine {
	log := logging.Guard(logger)
	r := gin.New()
	r.Use(gin.Recovery(), logRequest(log))
	r.GET(Path, convertHandler(log))
	return r
}

func convertHandler(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query(QueryParam)
		res := validate.Validate(raw)
		if !res.Valid() {
			msg := res.Message()
			if msg == "" {
				msg = "missing " + QueryParam + " parameter"
			}
			log.Warn("rejected conversion input", map[string]any{"input": raw, "reason": res.Reason.String()})
			c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
			return
		}
		out, err := roman.Format(res.Value)
		if err != nil {
			log.Error(err, "conversion failed", map[string]any{"input": res.Value})
			c.JSON(http.StatusInternalServerError, errorResponse{Error: "conversion failed"})
			return
		}
		c.JSON(http.StatusOK, conversionResponse{Input: strconv.Itoa(res.Value), Output: out})
	}
}

func logRequest(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request served", map[string]any{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"query":    c.Request.URL.RawQuery,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})
	}
}
