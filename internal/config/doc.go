// Package config provides configuration parsing for htmlsmith projects.
//
// The configuration is stored in htmlsmith.yaml at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	name: my-site
//	render:
//	  indent: "  "
//	  output: dist
//	serve:
//	  port: 8080
//	  host: localhost
//	  dir: dist
//	  liveReload: true
//	  watch: [dist]
//	publish:
//	  bucket: my-site-bucket
//	  region: us-east-1
//	  prefix: v2
//	  cacheControl: "public, max-age=300"
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Port:", cfg.Serve.Port)
package config
