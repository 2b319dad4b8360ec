package ping

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) pingOp() huma.Operation {
	return huma.Operation{
		OperationID:   "ping",
		Method:        http.MethodGet,
		Path:          "/ping",
		Summary:       "Liveness probe",
		Description:   "Always answers 200 with an empty object",
		Tags:          []string{"ping"},
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}
