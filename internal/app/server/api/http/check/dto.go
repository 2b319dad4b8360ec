package check

import "uptime/internal/domain/check"

type createInput struct {
	Token string `header:"token" doc:"Token id issued by POST /tokens"`
	Body  createCheckBody
}

type createCheckBody struct {
	_              struct{} `json:"-" additionalProperties:"true"`
	Protocol       *string  `json:"protocol,omitempty" example:"https" doc:"http or https"`
	URL            *string  `json:"url,omitempty" example:"example.com"`
	Method         *string  `json:"method,omitempty" example:"get" doc:"post, get, put or delete"`
	SuccessCodes   []int    `json:"successCodes,omitempty" example:"[200,201]"`
	TimeoutSeconds *float64 `json:"timeoutSeconds,omitempty" example:"3" doc:"Whole number from 1 to 5"`
}

func (b createCheckBody) request() check.CreateRequest {
	return check.CreateRequest{
		Protocol:       b.Protocol,
		URL:            b.URL,
		Method:         b.Method,
		SuccessCodes:   b.SuccessCodes,
		TimeoutSeconds: b.TimeoutSeconds,
	}
}

type checkOutput struct {
	Body check.Check
}

type idInput struct {
	Token string `header:"token" doc:"Token id issued by POST /tokens"`
	ID    string `query:"id" doc:"Check id, 20 characters"`
}

type updateInput struct {
	Token string `header:"token" doc:"Token id issued by POST /tokens"`
	Body  updateCheckBody
}

type updateCheckBody struct {
	_              struct{} `json:"-" additionalProperties:"true"`
	ID             *string  `json:"id,omitempty" doc:"Check id, 20 characters"`
	Protocol       *string  `json:"protocol,omitempty"`
	URL            *string  `json:"url,omitempty"`
	Method         *string  `json:"method,omitempty"`
	SuccessCodes   []int    `json:"successCodes,omitempty"`
	TimeoutSeconds *float64 `json:"timeoutSeconds,omitempty"`
}

func (b updateCheckBody) request() check.UpdateRequest {
	return check.UpdateRequest{
		ID:             b.ID,
		Protocol:       b.Protocol,
		URL:            b.URL,
		Method:         b.Method,
		SuccessCodes:   b.SuccessCodes,
		TimeoutSeconds: b.TimeoutSeconds,
	}
}
