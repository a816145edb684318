// Package config loads render defaults from HCL files. The process
// environment is available to expressions as env.NAME.
//
// A file holds an optional render block and an optional logo block:
//
//	render {
//	  size       = 256
//	  level      = "M"
//	  foreground = "#1f2937"
//	  background = "#ffffff"
//	  margin     = 4
//	  encoder    = "yeqown"
//	  attributes = { class = "qr" }
//	}
//
//	logo {
//	  source   = "logo.png"
//	  width    = 48
//	  excavate = true
//	}
package config
