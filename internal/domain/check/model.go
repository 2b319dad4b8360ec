package check

const (
	// IDLength длина идентификатора проверки.
	IDLength = 20

	MinTimeoutSeconds = 1
	MaxTimeoutSeconds = 5
)

// Check описание uptime-проверки, принадлежащей ровно одному пользователю.
type Check struct {
	ID             string   `json:"id"`
	UserPhone      string   `json:"userPhone"`
	Protocol       Protocol `json:"protocol"`
	URL            string   `json:"url"`
	Method         Method   `json:"method"`
	SuccessCodes   []int    `json:"successCodes"`
	TimeoutSeconds int      `json:"timeoutSeconds"`
}
