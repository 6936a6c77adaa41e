package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/marketmood/feargreed/internal/index"
	"github.com/marketmood/feargreed/internal/marketdata"
	"github.com/marketmood/feargreed/internal/reporting"
)

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":  "healthy",
		"version": "1.0.0",
		"service": "feargreed",
	}

	s.writeJSON(w, http.StatusOK, response)
}

// calculateAll returns the index for every region, served from the TTL cache
// when fresh. Regions that fail completely are reported in the errors map.
func (s *Server) calculateAll(r *http.Request) (map[marketdata.Region]*index.Result, map[marketdata.Region]error, error) {
	if results, ok := s.cache.Get(); ok {
		return results, nil, nil
	}

	snapshots, err := s.client.FetchAll(r.Context())
	if err != nil {
		return nil, nil, err
	}

	results, regionErrs, err := s.engine.CalculateAll(snapshots)
	if err != nil {
		return nil, regionErrs, err
	}

	s.cache.Set(results)
	return results, regionErrs, nil
}

// handleIndexAll returns the computed index for all regions
func (s *Server) handleIndexAll(w http.ResponseWriter, r *http.Request) {
	results, regionErrs, err := s.calculateAll(r)
	if err != nil {
		s.log.Error().Err(err).Msg("Index calculation failed")
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	response := map[string]interface{}{
		"results": results,
	}
	if len(regionErrs) > 0 {
		errs := make(map[string]string, len(regionErrs))
		for region, regionErr := range regionErrs {
			errs[string(region)] = regionErr.Error()
		}
		response["errors"] = errs
	}

	s.writeJSON(w, http.StatusOK, response)
}

// handleIndexRegion returns the computed index for a single region
func (s *Server) handleIndexRegion(w http.ResponseWriter, r *http.Request) {
	region, err := marketdata.ParseRegion(chi.URLParam(r, "region"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	results, _, err := s.calculateAll(r)
	if err != nil {
		s.log.Error().Err(err).Str("region", string(region)).Msg("Index calculation failed")
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	result, ok := results[region]
	if !ok {
		s.writeError(w, http.StatusServiceUnavailable, "no data available for region "+string(region))
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

// handleComparison returns the cross-region comparison as plain text
func (s *Server) handleComparison(w http.ResponseWriter, r *http.Request) {
	results, _, err := s.calculateAll(r)
	if err != nil {
		s.log.Error().Err(err).Msg("Comparison calculation failed")
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(reporting.ComparisonTable(results, marketdata.AllRegions))); err != nil {
		s.log.Error().Err(err).Msg("Failed to write comparison response")
	}
}

// handleHistory returns stored daily scores for a region, newest first
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	region, err := marketdata.ParseRegion(chi.URLParam(r, "region"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit := 30
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 365 {
			s.writeError(w, http.StatusBadRequest, "limit must be an integer between 1 and 365")
			return
		}
		limit = parsed
	}

	entries, err := s.history.Recent(region, limit)
	if err != nil {
		s.log.Error().Err(err).Str("region", string(region)).Msg("History query failed")
		s.writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"region":  region,
		"entries": entries,
	})
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
