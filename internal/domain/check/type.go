package check

type Protocol string

const (
	ProtocolHTTP  Protocol = "http"
	ProtocolHTTPS Protocol = "https"
)

// Protocols допустимые протоколы проверки.
func Protocols() []string {
	return []string{string(ProtocolHTTP), string(ProtocolHTTPS)}
}

type Method string

const (
	MethodPost   Method = "post"
	MethodGet    Method = "get"
	MethodPut    Method = "put"
	MethodDelete Method = "delete"
)

// Methods допустимые HTTP методы проверки в нижнем регистре.
func Methods() []string {
	return []string{string(MethodPost), string(MethodGet), string(MethodPut), string(MethodDelete)}
}
