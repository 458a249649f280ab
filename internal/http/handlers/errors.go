package handlers

import (
	"errors"
	"net/http"

	"github.com/yungbote/degreeplan-backend/internal/modules/planning"
	"github.com/yungbote/degreeplan-backend/internal/platform/apierr"
)

var planStatus = map[planning.Code]int{
	planning.CodeInvalidRequest:        http.StatusBadRequest,
	planning.CodeResolutionFailed:      http.StatusUnprocessableEntity,
	planning.CodeCatalogUnavailable:    http.StatusServiceUnavailable,
	planning.CodeGenerationParseFailed: http.StatusBadGateway,
	planning.CodeGenerationFailed:      http.StatusBadGateway,
}

// planAPIError maps pipeline failures onto HTTP statuses.
func planAPIError(err error) *apierr.Error {
	var pe *planning.Error
	if !errors.As(err, &pe) {
		return apierr.From(err)
	}
	status, ok := planStatus[pe.Code]
	if !ok {
		status = http.StatusInternalServerError
	}
	return apierr.New(status, string(pe.Code), errors.New(pe.Message))
}
