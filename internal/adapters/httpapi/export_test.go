package httpapi

// StatusOf exposes statusOf for testing.
var StatusOf = statusOf
