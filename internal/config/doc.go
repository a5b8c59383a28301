// Package config loads the optional HCL settings file.
//
// A settings file mirrors the command-line flags:
//
//	input     = "${env.HOME}/schematics"
//	extension = ".txt"
//	strict    = true
//	parallel  = true
//
//	output {
//	  format = "json"
//	}
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
// Expressions are evaluated with a single variable, `env`, an object holding
// the process environment. Every attribute and block is optional; unset
// values are left nil so that callers can tell them apart from zero values.
package config
