package main

import (
	"net/http"
	"time"

	"github.com/planfit/planfit/internal/errors"
	"github.com/planfit/planfit/internal/observability"
	"github.com/planfit/planfit/internal/plan"
)

func (app *application) dailyChallengePOST(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}

	profile, problem := normalizeProfile(req)
	if problem != "" {
		app.badRequest(w, r, problem)
		return
	}

	var date time.Time
	if req.Date != "" {
		var err error
		if date, err = parseDate(req.Date); err != nil {
			app.badRequest(w, r, err.Error())
			return
		}
	}

	challenge := app.planService.DailyChallenge(r.Context(), profile, date)
	observability.RecordChallengesGenerated(1)

	app.writeJSON(w, r, http.StatusOK, map[string]any{"daily_challenge": challenge})
}

func (app *application) dailyChallengesBatchPOST(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}

	profile, problem := normalizeProfile(req)
	if problem != "" {
		app.badRequest(w, r, problem)
		return
	}

	if req.StartDate == "" || req.EndDate == "" {
		app.badRequest(w, r, "Missing required fields: start_date and end_date")
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		app.badRequest(w, r, err.Error())
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		app.badRequest(w, r, err.Error())
		return
	}

	challenges, err := app.planService.ChallengeRange(r.Context(), profile, start, end)
	if err != nil {
		if errors.Is(err, plan.ErrInvalidRange) {
			app.badRequest(w, r, "Start date must be before or equal to end date")
			return
		}
		app.serverError(w, r, err)
		return
	}
	observability.RecordChallengesGenerated(len(challenges))

	app.writeJSON(w, r, http.StatusOK, map[string]any{
		"daily_challenges": challenges,
		"count":            len(challenges),
	})
}
