// Package handlers contains the HTTP handler implementations for the
// evapcook API. It is the presentation shell around the estimation core:
// it collects raw recipe JSON, normalizes the loose fields, invokes the
// selected estimation strategy, and renders the result. The core itself
// never formats, displays, or persists anything.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"evapcook/internal/core"
	"evapcook/internal/estimator"
	"evapcook/internal/recipe"
	"evapcook/internal/types"
)

// warnNoWater is the meta warning attached when a recipe parses cleanly but
// names no water ingredient. This is deliberately a warning, not an error:
// "input could not be parsed" and "input parsed but yields zero water" must
// stay distinguishable for clients.
const warnNoWater = "no water-named ingredients found; evaporation is zero"

// EstimateHandler maps HTTP requests onto the estimation strategies.
type EstimateHandler struct {
	strategies   map[types.ModelVariant]estimator.Strategy
	defaultModel types.ModelVariant
	validator    *core.Validator
	logger       *slog.Logger
}

// NewEstimateHandler creates an EstimateHandler serving the given strategies.
// defaultModel selects the strategy used when a request names none.
func NewEstimateHandler(
	strategies []estimator.Strategy,
	defaultModel types.ModelVariant,
	val *core.Validator,
	logger *slog.Logger,
) *EstimateHandler {
	if logger == nil {
		logger = slog.Default()
	}
	byName := make(map[types.ModelVariant]estimator.Strategy, len(strategies))
	for _, s := range strategies {
		byName[s.Name()] = s
	}
	return &EstimateHandler{
		strategies:   byName,
		defaultModel: defaultModel,
		validator:    val,
		logger:       logger,
	}
}

// RegisterRoutes mounts the estimation endpoints onto the mux.
func (h *EstimateHandler) RegisterRoutes(r chi.Router) {
	r.Post("/estimate", h.HandleEstimate)
	r.Post("/estimate/series", h.HandleSeries)
	r.Get("/methods", h.HandleListMethods)
}

// looseString accepts either a JSON string or an array of strings (in which
// case the first element wins). Recipe JSON in the wild carries
// "cooking_method" both ways.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = looseString(str)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	if len(list) > 0 {
		*s = looseString(list[0])
	}
	return nil
}

// looseQuantity accepts a JSON number, a numeric string, or anything else
// (which becomes 0). An unparseable quantity is a sentinel zero by design,
// not a request error.
type looseQuantity float64

func (q *looseQuantity) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*q = looseQuantity(n)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if v, err := strconv.ParseFloat(str, 64); err == nil {
			*q = looseQuantity(v)
			return nil
		}
	}
	*q = 0
	return nil
}

// estimateIngredient is the wire form of one ingredient list entry.
type estimateIngredient struct {
	Name     string        `json:"name"`
	Quantity looseQuantity `json:"quantity"`
	Unit     string        `json:"unit"`
}

// EstimateRequest is the wire form of a raw recipe. Field names follow the
// recipe JSON convention (cooking_method, cooking_time, cooking_temperature);
// all free-text fields are normalized server-side.
type EstimateRequest struct {
	DishName           string               `json:"dish_name"`
	CookingMethod      looseString          `json:"cooking_method"`
	CookingTime        string               `json:"cooking_time"`
	CookingTemperature string               `json:"cooking_temperature"`
	Ingredients        []estimateIngredient `json:"ingredients"`
	Model              string               `json:"model,omitempty" validate:"omitempty,oneof=single_rate dual_bound"`
}

// SeriesRequest extends EstimateRequest with a sampling interval for the
// evaporation-over-time chart.
type SeriesRequest struct {
	EstimateRequest
	StepMin float64 `json:"step_min,omitempty" validate:"omitempty,gt=0"`
}

// EstimateResponse wraps one estimation result with a server-assigned run
// identifier for log correlation.
type EstimateResponse struct {
	RunID  string                  `json:"run_id"`
	Result types.EvaporationResult `json:"result"`
}

// SeriesResponse carries the chart points plus the full-duration result.
type SeriesResponse struct {
	RunID  string                  `json:"run_id"`
	Result types.EvaporationResult `json:"result"`
	Points []types.SeriesPoint     `json:"points"`
}

// HandleEstimate handles POST /v1/estimate.
//
// Flow: decode the raw recipe, normalize its loose fields, aggregate the
// water quantity, resolve the strategy, and estimate. A recipe with zero
// aggregated water returns a zero result with a meta warning rather than an
// error.
func (h *EstimateHandler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		core.Error(w, r, err)
		return
	}

	strategy, err := h.resolveStrategy(req.Model)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	in, appErr := h.normalize(req)
	if appErr != nil {
		core.Error(w, r, appErr)
		return
	}

	if in.WaterML == 0 {
		h.respondZeroWater(w, r, strategy.Name(), in)
		return
	}

	result, err := strategy.Estimate(in)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	runID := uuid.NewString()
	h.logger.Info("estimation completed",
		"run_id", runID,
		"model", string(result.Model),
		"method", string(result.Method),
		"water_initial_ml", result.WaterInitialML,
		"evap_percent", result.EvapPercent,
	)
	core.JSON(w, r, http.StatusOK, core.APIResponse{
		Data: EstimateResponse{RunID: runID, Result: result},
	})
}

// HandleSeries handles POST /v1/estimate/series. It returns the evaporated
// mass sampled over the cooking duration, for charting, alongside the
// full-duration result.
func (h *EstimateHandler) HandleSeries(w http.ResponseWriter, r *http.Request) {
	var req SeriesRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		core.Error(w, r, err)
		return
	}

	strategy, err := h.resolveStrategy(req.Model)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	in, appErr := h.normalize(req.EstimateRequest)
	if appErr != nil {
		core.Error(w, r, appErr)
		return
	}

	if in.WaterML == 0 {
		h.respondZeroWater(w, r, strategy.Name(), in)
		return
	}

	result, err := strategy.Estimate(in)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	points, err := estimator.Series(strategy, in, req.StepMin)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	core.JSON(w, r, http.StatusOK, core.APIResponse{
		Data: SeriesResponse{
			RunID:  uuid.NewString(),
			Result: result,
			Points: points,
		},
	})
}

// HandleListMethods handles GET /v1/methods. It returns the fixed per-method
// parameters of both model variants, for explainability.
func (h *EstimateHandler) HandleListMethods(w http.ResponseWriter, r *http.Request) {
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: estimator.Methods()})
}

// resolveStrategy maps a requested model name (or the configured default,
// when empty) to a registered strategy.
func (h *EstimateHandler) resolveStrategy(model string) (estimator.Strategy, error) {
	name := types.ModelVariant(model)
	if model == "" {
		name = h.defaultModel
	}
	s, ok := h.strategies[name]
	if !ok {
		return nil, types.NewAppErrorWithDetails(
			types.ErrCodeValidationInvalidModel,
			"unknown estimation model",
			nil,
			map[string]any{"model": string(name)},
		)
	}
	return s, nil
}

// normalize converts the wire request into the estimator's input: method
// label canonicalized, duration and temperature parsed from free text, and
// water aggregated over the ingredient list. Duration must parse to a
// positive value; temperature absence is passed through as nil so each
// variant can apply its own policy.
func (h *EstimateHandler) normalize(req EstimateRequest) (estimator.Input, *types.AppError) {
	if strings.TrimSpace(req.CookingTime) == "" {
		return estimator.Input{}, types.NewAppErrorWithDetails(
			types.ErrCodeValidationMissingField,
			"cooking_time is required",
			nil,
			map[string]any{"field": "cooking_time"},
		)
	}

	duration := recipe.ParseDurationMinutes(req.CookingTime)
	if duration <= 0 {
		return estimator.Input{}, types.NewAppErrorWithDetails(
			types.ErrCodeValidationInvalidDuration,
			"cooking_time must contain a positive duration",
			nil,
			map[string]any{"cooking_time": req.CookingTime},
		)
	}

	var tempPtr *float64
	if temp, ok := recipe.ParseTemperature(req.CookingTemperature); ok {
		tempPtr = &temp
	}

	ingredients := make([]types.Ingredient, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		ingredients = append(ingredients, types.Ingredient{
			Name:     ing.Name,
			Quantity: float64(ing.Quantity),
			Unit:     ing.Unit,
		})
	}

	rec := types.Recipe{
		DishName:     req.DishName,
		Method:       types.NormalizeMethod(string(req.CookingMethod)),
		TemperatureC: tempPtr,
		TotalTimeMin: duration,
		Ingredients:  ingredients,
	}

	return estimator.Input{
		Method:       rec.Method,
		TemperatureC: rec.TemperatureC,
		DurationMin:  rec.TotalTimeMin,
		WaterML:      recipe.AggregateWaterML(rec.Ingredients),
	}, nil
}

// respondZeroWater writes the legitimate zero-evaporation result for recipes
// that parsed but aggregated no water, with a warning in the response meta.
func (h *EstimateHandler) respondZeroWater(w http.ResponseWriter, r *http.Request, model types.ModelVariant, in estimator.Input) {
	temp := 0.0
	if in.TemperatureC != nil {
		temp = *in.TemperatureC
	}
	result := types.EvaporationResult{
		Model:        model,
		Method:       in.Method,
		TotalTimeMin: in.DurationMin,
		TemperatureC: temp,
	}
	core.JSON(w, r, http.StatusOK, core.APIResponse{
		Data: EstimateResponse{RunID: uuid.NewString(), Result: result},
		Meta: &types.ResponseMeta{Warnings: []string{warnNoWater}},
	})
}
