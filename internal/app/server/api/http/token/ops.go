package token

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "token-create",
		Method:        http.MethodPost,
		Path:          "/tokens",
		Summary:       "Выдача токена по телефону и паролю",
		Tags:          []string{"tokens"},
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID:   "token-get",
		Method:        http.MethodGet,
		Path:          "/tokens",
		Summary:       "Получение токена",
		Tags:          []string{"tokens"},
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) renewOp() huma.Operation {
	return huma.Operation{
		OperationID:   "token-renew",
		Method:        http.MethodPut,
		Path:          "/tokens",
		Summary:       "Продление действующего токена",
		Tags:          []string{"tokens"},
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "token-delete",
		Method:        http.MethodDelete,
		Path:          "/tokens",
		Summary:       "Отзыв токена",
		Tags:          []string{"tokens"},
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}
