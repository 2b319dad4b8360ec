package ping

// Input represents the input for ping endpoint
type Input struct{}
