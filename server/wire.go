package server

import (
	"time"

	"github.com/katalvlaran/planartsp/geometry"
	"github.com/katalvlaran/planartsp/hilbert"
	"github.com/katalvlaran/planartsp/tsp"
)

type randomCitiesQuery struct {
	Count  int `form:"count,default=30" binding:"min=3,max=500"`
	Width  int `form:"width,default=800" binding:"min=100,max=4000"`
	Height int `form:"height,default=600" binding:"min=100,max=4000"`
}

type citiesResponse struct {
	Cities []geometry.City `json:"cities"`
}

type solveRequest struct {
	Algorithm string          `json:"algorithm" binding:"required"`
	Cities    []geometry.City `json:"cities"`
}

type solveResponse struct {
	Algorithm       tsp.Algorithm `json:"algorithm"`
	Path            []int         `json:"path"`
	TotalDistance   float64       `json:"total_distance"`
	ExecutionTimeMs float64       `json:"execution_time_ms"`
	Runs            int           `json:"runs"`
	Absorbed        map[int][]int `json:"absorbed,omitempty"`
}

type analyzeRequest struct {
	Cities []geometry.City `json:"cities"`
}

type analysisResult struct {
	Algorithm       tsp.Algorithm `json:"algorithm"`
	Distance        float64       `json:"distance"`
	Path            []int         `json:"path"`
	ExecutionTimeMs float64       `json:"execution_time_ms"`
}

type analyzeResponse struct {
	Results []analysisResult `json:"results"`
}

type sfcDebugRequest struct {
	Cities       []geometry.City `json:"cities"`
	CanvasWidth  float64         `json:"canvas_width"`
	CanvasHeight float64         `json:"canvas_height"`
}

type sfcCityDebug struct {
	CityID          int     `json:"city_id"`
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	NormalizedX     int     `json:"normalized_x"`
	NormalizedY     int     `json:"normalized_y"`
	HilbertDistance uint64  `json:"hilbert_distance"`
	Order           int     `json:"order"`
}

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type sfcDebugResponse struct {
	CitiesDebug     []sfcCityDebug `json:"cities_debug"`
	MaxCoord        float64        `json:"max_coord"`
	GridSize        int            `json:"grid_size"`
	HilbertPath     []point        `json:"hilbert_path"`
	DisplayGridSize int            `json:"display_grid_size"`
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func toSolveResponse(r tsp.Result) solveResponse {
	return solveResponse{
		Algorithm:       r.Algorithm,
		Path:            r.Path,
		TotalDistance:   r.Length,
		ExecutionTimeMs: millis(r.Elapsed),
		Runs:            r.Runs,
		Absorbed:        r.Absorbed,
	}
}

func toAnalyzeResponse(rs []tsp.Result) analyzeResponse {
	var out = analyzeResponse{Results: make([]analysisResult, len(rs))}
	for i, r := range rs {
		out.Results[i] = analysisResult{
			Algorithm:       r.Algorithm,
			Distance:        r.Length,
			Path:            r.Path,
			ExecutionTimeMs: millis(r.Elapsed),
		}
	}
	return out
}

func toDebugResponse(info hilbert.DebugInfo) sfcDebugResponse {
	var out = sfcDebugResponse{
		CitiesDebug:     make([]sfcCityDebug, len(info.Cities)),
		MaxCoord:        info.MaxCoord,
		GridSize:        info.GridSize,
		HilbertPath:     make([]point, len(info.Curve)),
		DisplayGridSize: info.DisplayGridSize,
	}
	for i, c := range info.Cities {
		out.CitiesDebug[i] = sfcCityDebug{
			CityID:          c.ID,
			X:               c.X,
			Y:               c.Y,
			NormalizedX:     c.GridX,
			NormalizedY:     c.GridY,
			HilbertDistance: c.Index,
			Order:           c.Order,
		}
	}
	for i, p := range info.Curve {
		out.HilbertPath[i] = point{X: p.X(), Y: p.Y()}
	}
	return out
}
