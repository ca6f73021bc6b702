/*
Package observability turns solver hooks into metrics and logs.

Metrics registers Prometheus collectors and exposes them as domain.SolveHooks.
LogHooks does the same for a structured logger. Both can be combined with
SolveHooks.Merge and passed to the solver.
*/
package observability
