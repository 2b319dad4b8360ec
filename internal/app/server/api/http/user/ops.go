package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "user-create",
		Method:        http.MethodPost,
		Path:          "/users",
		Summary:       "Регистрация пользователя",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID:   "user-get",
		Method:        http.MethodGet,
		Path:          "/users",
		Summary:       "Получение пользователя по телефону",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID:   "user-update",
		Method:        http.MethodPut,
		Path:          "/users",
		Summary:       "Изменение имени, фамилии или пароля",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "user-delete",
		Method:        http.MethodDelete,
		Path:          "/users",
		Summary:       "Удаление пользователя",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}
