// Package response общие тела ответов API.
package response

// Empty сериализуется в {}.
type Empty struct{}

type EmptyOutput struct {
	Body Empty
}

func OK() *EmptyOutput {
	return &EmptyOutput{}
}
