package controller

// Handlers signal domain-level rejection with the literal "false" and
// success with "true". Infrastructure failures are returned as errors and
// fail the whole invocation.
const (
	resultTrue  = "true"
	resultFalse = "false"
)
