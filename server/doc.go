// Package server exposes the tour heuristics over HTTP with gin.
//
// Routes:
//
//	GET  /health          liveness probe
//	GET  /algorithms      supported algorithm names
//	GET  /cities/random   padded random cities (count, width, height)
//	POST /solve           one algorithm on a city list
//	POST /analyze         every algorithm on a city list (≥ 3 cities)
//	POST /sfc/debug       Hilbert-curve keys and the display curve
//
// Client errors answer 400 {"error": "..."}; anything else 500. A request
// whose context ends mid-solve answers 503.
package server
