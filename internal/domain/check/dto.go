package check

// CreateRequest сырые данные новой проверки.
// TimeoutSeconds приходит числом JSON, целочисленность проверяется валидатором.
type CreateRequest struct {
	Protocol       *string  `json:"protocol,omitempty"`
	URL            *string  `json:"url,omitempty"`
	Method         *string  `json:"method,omitempty"`
	SuccessCodes   []int    `json:"successCodes,omitempty"`
	TimeoutSeconds *float64 `json:"timeoutSeconds,omitempty"`
}

// UpdateRequest сырые данные изменения: id обязателен, хотя бы одно поле тоже.
type UpdateRequest struct {
	ID             *string  `json:"id,omitempty"`
	Protocol       *string  `json:"protocol,omitempty"`
	URL            *string  `json:"url,omitempty"`
	Method         *string  `json:"method,omitempty"`
	SuccessCodes   []int    `json:"successCodes,omitempty"`
	TimeoutSeconds *float64 `json:"timeoutSeconds,omitempty"`
}

type CreateParams struct {
	Protocol       Protocol
	URL            string
	Method         Method
	SuccessCodes   []int
	TimeoutSeconds int
}

// UpdateParams содержит только переданные поля, nil значит "не менять".
type UpdateParams struct {
	ID             string
	Protocol       *Protocol
	URL            *string
	Method         *Method
	SuccessCodes   []int
	TimeoutSeconds *int
}

// Apply переносит переданные поля в c.
func (p UpdateParams) Apply(c Check) Check {
	if p.Protocol != nil {
		c.Protocol = *p.Protocol
	}
	if p.URL != nil {
		c.URL = *p.URL
	}
	if p.Method != nil {
		c.Method = *p.Method
	}
	if p.SuccessCodes != nil {
		c.SuccessCodes = p.SuccessCodes
	}
	if p.TimeoutSeconds != nil {
		c.TimeoutSeconds = *p.TimeoutSeconds
	}
	return c
}
