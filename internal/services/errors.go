package services

import (
	"errors"

	"github.com/Isaiahshap/pulse/internal/repository"
)

var (
	ErrInvalidPeriod   = errors.New("invalid billing period")
	ErrMalformedPrice  = errors.New("malformed price")
	ErrPlanNotFound    = errors.New("plan not found")
	ErrClassNotFound   = errors.New("class not found")
	ErrTrainerNotFound = errors.New("trainer not found")
	ErrInvalidContact  = errors.New("invalid contact submission")

	// ErrMessageNotFound is re-exported so handlers only depend on services.
	ErrMessageNotFound = repository.ErrMessageNotFound
)
