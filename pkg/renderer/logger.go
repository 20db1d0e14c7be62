package renderer

// discardLogger is used when NewRenderer is given no logger
type discardLogger struct{}

func (discardLogger) Printf(string, ...interface{}) {}
