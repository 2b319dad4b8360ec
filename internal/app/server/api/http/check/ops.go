package check

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// TokenScheme имя схемы безопасности для заголовка token.
const TokenScheme = "token"

var tokenSecurity = []map[string][]string{{TokenScheme: {}}}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "check-create",
		Method:        http.MethodPost,
		Path:          "/checks",
		Summary:       "Создание проверки",
		Tags:          []string{"checks"},
		Security:      tokenSecurity,
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID:   "check-get",
		Method:        http.MethodGet,
		Path:          "/checks",
		Summary:       "Получение проверки",
		Tags:          []string{"checks"},
		Security:      tokenSecurity,
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID:   "check-update",
		Method:        http.MethodPut,
		Path:          "/checks",
		Summary:       "Изменение проверки",
		Tags:          []string{"checks"},
		Security:      tokenSecurity,
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "check-delete",
		Method:        http.MethodDelete,
		Path:          "/checks",
		Summary:       "Удаление проверки",
		Tags:          []string{"checks"},
		Security:      tokenSecurity,
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}
