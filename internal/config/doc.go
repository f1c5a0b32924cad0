// Package config loads woby.yaml, the configuration of the woby command.
//
// The file lives at the project root. Every field is optional; missing
// values fall back to the defaults of New.
//
// # Configuration File Structure
//
//	dev:
//	  host: localhost
//	  port: 3000
//	  strict: false
//	  maxFlushPasses: 100
//	log:
//	  level: info
//	  format: auto
//	metrics:
//	  enabled: true
//	  namespace: woby
//	tracing:
//	  enabled: false
//	  tracerName: github.com/woby-dev/woby
//	render:
//	  pretty: false
//	export:
//	  bucket: my-site
//	  prefix: snapshots
//	  region: eu-west-1
//
// WOBY_ADDR and WOBY_LOG_LEVEL override dev.host/dev.port and log.level.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.DevAddress())
package config
