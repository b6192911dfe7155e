// Package tracker keeps the in-memory list of job applications for a view
// and reconciles it with the results of backend calls.
//
// The pure helpers (MergeCreated, MergeUpdated, Remove, ComputeAggregates,
// BuildCreatePayload, BuildUpdatePayload, GroupByColumns) never mutate their
// inputs. Tracker wraps them around a client.Client for callers that want a
// stateful list.
package tracker
