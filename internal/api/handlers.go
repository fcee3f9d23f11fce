package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/darrylrachel/blackheart-coach-v0/internal/model"
	"github.com/darrylrachel/blackheart-coach-v0/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil && id > 0
}

// Validation failures from the service layer map to 400; "not found" errors
// map to 404; anything else is a 500.
func serviceError(w http.ResponseWriter, err error) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "not found"):
		writeError(w, http.StatusNotFound, msg)
	case strings.Contains(msg, ": "):
		writeError(w, http.StatusInternalServerError, msg)
	default:
		writeError(w, http.StatusBadRequest, msg)
	}
}

type profileResponse struct {
	Username            string  `json:"username"`
	Gender              string  `json:"gender"`
	CurrentWeightKg     float64 `json:"current_weight_kg"`
	HeightCm            float64 `json:"height_cm"`
	Age                 int     `json:"age"`
	ActivityLevel       string  `json:"activity_level"`
	FitnessGoal         string  `json:"fitness_goal"`
	PreferredWeightUnit string  `json:"preferred_weight_unit"`
	TDEE                int     `json:"tdee"`
	CaloriesGoal        int     `json:"calories_goal"`
	ProteinGoalG        int     `json:"protein_goal_g"`
	CarbsGoalG          int     `json:"carbs_goal_g"`
	FatGoalG            int     `json:"fat_goal_g"`
}

func profileToResponse(p *model.Profile) profileResponse {
	return profileResponse{
		Username:            p.Username,
		Gender:              string(p.Gender),
		CurrentWeightKg:     p.CurrentWeightKg,
		HeightCm:            p.HeightCm,
		Age:                 p.Age,
		ActivityLevel:       string(p.ActivityLevel),
		FitnessGoal:         string(p.FitnessGoal),
		PreferredWeightUnit: p.PreferredWeightUnit,
		TDEE:                p.TDEE,
		CaloriesGoal:        p.CaloriesGoal,
		ProteinGoalG:        p.ProteinGoalG,
		CarbsGoalG:          p.CarbsGoalG,
		FatGoalG:            p.FatGoalG,
	}
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	p, err := service.GetProfile(h.db)
	if err != nil {
		serviceError(w, err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "profile not set up")
		return
	}
	writeJSON(w, http.StatusOK, profileToResponse(p))
}

type profileRequest struct {
	Username      string  `json:"username"`
	Gender        string  `json:"gender"`
	Weight        float64 `json:"weight"`
	WeightUnit    string  `json:"weight_unit"`
	HeightCm      float64 `json:"height_cm"`
	Age           int     `json:"age"`
	ActivityLevel string  `json:"activity_level"`
	FitnessGoal   string  `json:"fitness_goal"`
}

func (h *Handler) putProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if !decodeBody(w, r, &req) {
		return
	}
	p, err := service.SaveProfile(h.db, service.ProfileInput{
		Username:      req.Username,
		Gender:        req.Gender,
		Weight:        req.Weight,
		WeightUnit:    req.WeightUnit,
		HeightCm:      req.HeightCm,
		Age:           req.Age,
		ActivityLevel: req.ActivityLevel,
		FitnessGoal:   req.FitnessGoal,
	})
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profileToResponse(p))
}

type weightRequest struct {
	Weight float64 `json:"weight"`
	Unit   string  `json:"unit"`
	Date   string  `json:"date"`
}

func (h *Handler) postWeight(w http.ResponseWriter, r *http.Request) {
	var req weightRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := service.LogWeight(h.db, service.LogWeightInput(req), h.now()); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getWeightHistory(w http.ResponseWriter, r *http.Request) {
	history, err := service.WeightHistory(h.db)
	if err != nil {
		serviceError(w, err)
		return
	}
	points := make([]map[string]any, 0, len(history))
	for _, s := range history {
		if s.WeightKg == nil {
			continue
		}
		points = append(points, map[string]any{
			"date":      s.Date.Format("2006-01-02"),
			"weight_kg": *s.WeightKg,
		})
	}
	writeJSON(w, http.StatusOK, points)
}

type workoutRequest struct {
	Date          string   `json:"date"`
	Name          string   `json:"name"`
	DurationMin   *int     `json:"duration_min"`
	WorkoutType   string   `json:"workout_type"`
	MusclesWorked []string `json:"muscles_worked"`
	Notes         string   `json:"notes"`
}

func (r workoutRequest) input() service.WorkoutInput {
	return service.WorkoutInput{
		Date:          r.Date,
		Name:          r.Name,
		DurationMin:   r.DurationMin,
		WorkoutType:   r.WorkoutType,
		MusclesWorked: r.MusclesWorked,
		Notes:         r.Notes,
	}
}

func (h *Handler) postWorkout(w http.ResponseWriter, r *http.Request) {
	var req workoutRequest
	if !decodeBody(w, r, &req) {
		return
	}
	id, err := service.LogWorkout(h.db, req.input(), h.now())
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *Handler) putWorkout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid workout id")
		return
	}
	var req workoutRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := service.UpdateWorkout(h.db, service.UpdateWorkoutInput{ID: id, WorkoutInput: req.input()}, h.now()); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteWorkout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid workout id")
		return
	}
	if err := service.DeleteWorkout(h.db, id); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listWorkouts(w http.ResponseWriter, r *http.Request) {
	sessions, err := service.ListWorkouts(h.db)
	if err != nil {
		serviceError(w, err)
		return
	}
	out := make([]map[string]any, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, map[string]any{
			"id":             s.ID,
			"date":           s.Date.Format("2006-01-02"),
			"name":           s.Name,
			"duration_min":   s.DurationMin,
			"workout_type":   s.WorkoutType,
			"muscles_worked": s.MusclesWorked,
			"notes":          s.Notes,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type nutritionRequest struct {
	Date        string  `json:"date"`
	MealType    string  `json:"meal_type"`
	FoodName    string  `json:"food_name"`
	ServingSize float64 `json:"serving_size"`
	ServingUnit string  `json:"serving_unit"`
	Calories    int     `json:"calories"`
	ProteinG    float64 `json:"protein_g"`
	CarbsG      float64 `json:"carbs_g"`
	FatG        float64 `json:"fat_g"`
}

func (h *Handler) postNutrition(w http.ResponseWriter, r *http.Request) {
	var req nutritionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	id, err := service.LogNutrition(h.db, service.NutritionInput(req), h.now())
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *Handler) deleteNutrition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid nutrition entry id")
		return
	}
	if err := service.DeleteNutrition(h.db, id); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listNutrition(w http.ResponseWriter, r *http.Request) {
	entries, err := service.ListNutrition(h.db)
	if err != nil {
		serviceError(w, err)
		return
	}
	out := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		out = append(out, map[string]any{
			"id":           e.ID,
			"date":         e.Date.Format("2006-01-02"),
			"meal_type":    e.MealType,
			"food_name":    e.FoodName,
			"serving_size": e.ServingSize,
			"serving_unit": e.ServingUnit,
			"calories":     e.Calories,
			"protein_g":    e.ProteinG,
			"carbs_g":      e.CarbsG,
			"fat_g":        e.FatG,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) getToday(w http.ResponseWriter, r *http.Request) {
	status, err := service.TodaySummary(h.db, h.now())
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *Handler) getAnalytics(w http.ResponseWriter, r *http.Request) {
	timeRange := r.URL.Query().Get("range")
	if timeRange == "" {
		timeRange = "30days"
	}
	vm, err := service.Analytics(h.db, timeRange, h.now())
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vm)
}
