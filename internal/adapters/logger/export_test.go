// export_test.go exports private functions for white-box testing.
package logger

// FormatChain exports the private error chain formatter for testing.
var FormatChain = formatChain
