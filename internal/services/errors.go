package services

import (
	"errors"
	"fmt"
)

// Category sentinels. Every domain error wraps exactly one of these so the
// API layer can classify with errors.Is without knowing the specific cause.
var (
	ErrValidation   = errors.New("validation failed")
	ErrInvalidState = errors.New("invalid state")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
)

var (
	ErrSeverityOutOfRange = fmt.Errorf("%w: severity must be between 1 and 10", ErrValidation)
	ErrUnknownProblem     = fmt.Errorf("%w: unknown problem", ErrValidation)
	ErrTitleRequired      = fmt.Errorf("%w: title must not be empty", ErrValidation)
	ErrShowDateRequired   = fmt.Errorf("%w: show date must be set", ErrValidation)
	ErrWindowInverted     = fmt.Errorf("%w: show-until date precedes show-on date", ErrValidation)
	ErrEndBeforeStart     = fmt.Errorf("%w: end date precedes start date", ErrValidation)

	ErrNoActiveCycle  = fmt.Errorf("%w: no active cycle", ErrInvalidState)
	ErrCycleNotActive = fmt.Errorf("%w: cycle is not the active one", ErrInvalidState)

	ErrActiveCycleExists = fmt.Errorf("%w: an active cycle already exists", ErrConflict)
	ErrLinkExists        = fmt.Errorf("%w: tracked account already has a link", ErrConflict)
	ErrPartnerSlotTaken  = fmt.Errorf("%w: link already has a partner", ErrConflict)

	ErrLinkNotFound    = fmt.Errorf("%w: period link", ErrNotFound)
	ErrCycleNotFound   = fmt.Errorf("%w: cycle", ErrNotFound)
	ErrAidNotFound     = fmt.Errorf("%w: aid", ErrNotFound)
	ErrLookoutNotFound = fmt.Errorf("%w: lookout", ErrNotFound)
	ErrAccountNotFound = fmt.Errorf("%w: account", ErrNotFound)

	ErrPartnerRoleRequired = fmt.Errorf("%w: partner role required", ErrForbidden)
	ErrTrackedRoleRequired = fmt.Errorf("%w: tracked account role required", ErrForbidden)
	ErrNoLinkedRole        = fmt.Errorf("%w: account is not part of any period link", ErrForbidden)
)
