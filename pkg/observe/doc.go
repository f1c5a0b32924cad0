// Package observe exports runtime statistics.
//
// Prometheus and Tracer implement reactive.Observer and receive one call per
// drained effect queue. Prometheus also counts attribute decode failures
// (pass its DecodeFailed method to element.OnDecodeError) and dev server
// sessions.
//
//	metrics := observe.NewPrometheus(observe.WithNamespace("woby"))
//	tracer := observe.NewTracer()
//	rt := reactive.NewRuntime(reactive.WithObserver(observe.Multi(metrics, tracer)))
package observe
