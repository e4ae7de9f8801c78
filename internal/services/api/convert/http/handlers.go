// Package http provides the date conversion endpoints
package http

import (
	"net/http"
	"strings"

	"dconv/internal/core/convert"
	perr "dconv/internal/platform/errors"
	"dconv/internal/platform/logger"
	phttp "dconv/internal/platform/net/http"
)

// Deps are the handler dependencies
type Deps struct {
	Converter *convert.Converter
}

type handlers struct {
	deps Deps
}

// Register mounts the convert routes
func Register(r phttp.Router, d Deps) {
	h := &handlers{deps: d}

	phttp.GetQuery(r, "/", h.query)
	phttp.PostJSON(r, "/", h.body)
}

//
// Swagger DTOs and route docs
//

// ConvertRequest is the conversion input, as JSON body or query string
type ConvertRequest struct {
	Date      string `json:"date"                query:"date"      validate:"required,max=64" example:"2025-06-24T20:18:00Z"`
	Operation string `json:"operation,omitempty" query:"operation" validate:"max=64"          example:"-3h"`
}

// ConvertResponse carries the three renderings of the resulting instant
type ConvertResponse struct {
	Kind      string `json:"kind"                example:"datetime"`
	Precision string `json:"precision,omitempty" example:"ms"`
	Operation string `json:"operation,omitempty" example:"-3h"`
	UTC       string `json:"utc"                 example:"2025-06-24T17:18:00+00:00"`
	Local     string `json:"local"               example:"2025-06-24T19:18:00+02:00"`
	Millis    int64  `json:"millis"              example:"1750785480000"`
	Text      string `json:"text"`
}

// swagger:route GET /convert Convert convertQuery
// @Summary Convert a date given in the query string
// @Tags Convert
// @Produce json
// @Param date query string true "now, epoch s/ms/us/ns or RFC3339"
// @Param operation query string false "offset such as %2B2d or -3h"
// @Success 200 type ConvertResponse ok
// @Failure 422 conversion error
// @Router /convert [get]
func (h *handlers) query(r *http.Request, in ConvertRequest) (any, error) {
	// an unencoded '+' arrives as a space
	if strings.HasPrefix(in.Operation, " ") {
		in.Operation = "+" + in.Operation[1:]
	}
	return h.convert(r, in)
}

// swagger:route POST /convert Convert convertBody
// @Summary Convert a date given as a JSON body
// @Tags Convert
// @Accept json
// @Produce json
// @Param body body ConvertRequest true "conversion input"
// @Success 200 type ConvertResponse ok
// @Failure 422 conversion error
// @Router /convert [post]
func (h *handlers) body(r *http.Request, in ConvertRequest) (any, error) {
	return h.convert(r, in)
}

func (h *handlers) convert(r *http.Request, in ConvertRequest) (any, error) {
	log := logger.C(r.Context())

	res, err := h.deps.Converter.Convert(in.Date, in.Operation)
	if err != nil {
		log.Debug().
			Str("date", in.Date).
			Str("operation", in.Operation).
			Stringer("code", perr.CodeOf(err)).
			Msg("conversion rejected")
		return nil, err
	}

	out := ConvertResponse{
		Kind:      res.Input.Kind.String(),
		Precision: res.Input.Precision.String(),
		UTC:       res.UTC(),
		Local:     res.Local(),
		Millis:    res.Millis(),
		Text:      res.String(),
	}
	if res.Operation != nil {
		out.Operation = res.Operation.String()
	}

	log.Debug().Str("kind", out.Kind).Str("precision", out.Precision).Int64("millis", out.Millis).Msg("converted")
	return out, nil
}
