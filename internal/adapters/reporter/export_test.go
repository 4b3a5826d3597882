package reporter

// CollectMessages exposes collectMessages for tests.
var CollectMessages = collectMessages

// FormatErrorChain exposes formatErrorChain for tests.
var FormatErrorChain = formatErrorChain
