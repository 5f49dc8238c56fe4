package logger

// Logger is the logging surface used across the application. Components
// identify themselves with a component tag so interleaved GUI and
// platform events can be told apart in one stream.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// Nop discards everything. Used in tests and as a safe default before
// logging is configured.
type Nop struct{}

func (Nop) Debug(string, string, map[string]interface{})   {}
func (Nop) Info(string, string, map[string]interface{})    {}
func (Nop) Warning(string, string, map[string]interface{}) {}
func (Nop) Error(string, error, map[string]interface{})    {}
