// Package devserver serves a woby application to browsers.
//
// Every WebSocket connection gets its own session: a fresh reactive
// runtime, document and mounted tree owned by the goroutine reading the
// connection. Client events are dispatched on the server-side document
// and the resulting DOM mutations are streamed back as JSON frames.
//
// # Routes
//
//	GET /         page rendered on the server plus the bootstrap script
//	GET /ws       live session
//	GET /metrics  Prometheus metrics
//	GET /healthz  liveness probe
//
// # Frames
//
// Server to client:
//
//	{"op":"html","id":12,"html":"..."}           replace children of node 12
//	{"op":"text","id":12,"value":"..."}          set the text of node 12
//	{"op":"attr","id":12,"name":"class","value":"on"}
//	{"op":"remove-attr","id":12,"name":"disabled"}
//
// Client to server:
//
//	{"type":"event","id":12,"event":"click"}
//
// # Usage
//
//	srv := devserver.New(devserver.Config{
//	    Addr: ":3000",
//	    App:  demo.App,
//	})
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package devserver
