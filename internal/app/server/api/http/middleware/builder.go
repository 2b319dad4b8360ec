package middleware

import (
	"slices"

	"github.com/danielgtaylor/huma/v2"
)

// Container общий набор huma-мидлварей, который получают все ресурсы API.
type Container struct {
	shared huma.Middlewares
}

func NewContainer(mws ...func(ctx huma.Context, next func(huma.Context))) *Container {
	return &Container{shared: slices.Clone(huma.Middlewares(mws))}
}

// Middlewares возвращает копию набора: ресурс может дописать свои мидлвари, не задевая остальных.
func (c *Container) Middlewares() huma.Middlewares {
	return slices.Clone(c.shared)
}
