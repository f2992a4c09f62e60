package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/stormbless/foodprint-backend/models"
	"github.com/stormbless/foodprint-backend/utils"
)

// fetchTimeout bounds the external fetch script; past it the process is
// killed and the fetch reported as timed out.
const fetchTimeout = 15 * time.Second

// FetchOutcome tags the three ways a fetch can end.
type FetchOutcome int

const (
	FetchSucceeded FetchOutcome = iota
	FetchFailed
	FetchTimedOut
)

// FetchResult carries the servings on success or the reason otherwise.
type FetchResult struct {
	Outcome  FetchOutcome
	Servings []models.Serving
	Err      error
}

// FetchServings runs the external fetch script with the user's Cronometer
// credentials and decodes the servings it prints to stdout. The script exits
// non-zero when authentication with the tracker fails, so any failure here
// is surfaced to the frontend as an authentication failure.
func FetchServings(ctx context.Context, userEmail, userPassword string) FetchResult {
	scriptPath := os.Getenv("FETCH_SCRIPT")
	if scriptPath == "" {
		scriptPath = "scripts/fetch_servings.py"
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "python3", scriptPath, userEmail, userPassword)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		log.Warn().Str("userEmail", userEmail).Msg("fetch script timed out")
		return FetchResult{Outcome: FetchTimedOut, Err: ctx.Err()}
	}
	if err != nil {
		log.Error().Err(err).Str("stderr", stderr.String()).Msg("fetch script failed")
		return FetchResult{Outcome: FetchFailed, Err: err}
	}

	var servings []models.Serving
	if err := json.Unmarshal(stdout.Bytes(), &servings); err != nil {
		log.Error().Err(err).Msg("fetch script output not decodable")
		return FetchResult{Outcome: FetchFailed, Err: err}
	}
	if err := validateServings(servings); err != nil {
		log.Error().Err(err).Msg("fetch script output malformed")
		return FetchResult{Outcome: FetchFailed, Err: err}
	}

	return FetchResult{Outcome: FetchSucceeded, Servings: servings}
}

func validateServings(servings []models.Serving) error {
	for _, serving := range servings {
		if !utils.DateValid(serving.Date) {
			return errors.New("servings form invalid (invalid date form)")
		}
		if serving.Food == "" {
			return errors.New("servings form invalid (invalid food form)")
		}
	}
	return nil
}
