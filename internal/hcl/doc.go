// Package hcl provides the HCL implementation of the config.Loader
// interface. It is responsible for parsing almanac files, decoding them
// into the schema structs and converting cty numbers into the uint64
// values the range tables work with.
//
// A file looks like:
//
//	seeds       = [79, 14, 55, 13]
//	stage_order = ["seed-to-soil", "soil-to-fertilizer"] # optional
//
//	stage "seed-to-soil" {
//	  rule {
//	    destination = 50
//	    source      = 98
//	    length      = 2
//	  }
//	}
package hcl
