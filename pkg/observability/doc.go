/*
Package observability provides hooks and Prometheus collectors for automaton operations.

The Workbench reports every operation it runs to an Observer. Metrics is the
Prometheus-backed Observer; ObserverFunc adapts plain functions, e.g. for audit logs.
*/
package observability
