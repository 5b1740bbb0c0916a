package testutil

import (
	"strings"

	"github.com/vk/almanacgo/internal/rangemap"
)

// ExampleSeeds are the seeds of the worked puzzle example.
var ExampleSeeds = []uint64{79, 14, 55, 13}

// ExampleLocations are the final values ExampleSeeds map to.
var ExampleLocations = []uint64{82, 43, 86, 35}

// ExampleMinimum is the smallest of ExampleLocations.
const ExampleMinimum uint64 = 35

// ExampleRules returns the worked example's stage tables as raw rules.
func ExampleRules() map[string][]rangemap.Rule {
	return map[string][]rangemap.Rule{
		"seed-to-soil": {
			{Destination: 50, Source: 98, Length: 2},
			{Destination: 52, Source: 50, Length: 48},
		},
		"soil-to-fertilizer": {
			{Destination: 0, Source: 15, Length: 37},
			{Destination: 37, Source: 52, Length: 2},
			{Destination: 39, Source: 0, Length: 15},
		},
		"fertilizer-to-water": {
			{Destination: 49, Source: 53, Length: 8},
			{Destination: 0, Source: 11, Length: 42},
			{Destination: 42, Source: 0, Length: 7},
			{Destination: 57, Source: 7, Length: 4},
		},
		"water-to-light": {
			{Destination: 88, Source: 18, Length: 7},
			{Destination: 18, Source: 25, Length: 70},
		},
		"light-to-temperature": {
			{Destination: 45, Source: 77, Length: 23},
			{Destination: 81, Source: 45, Length: 19},
			{Destination: 68, Source: 64, Length: 13},
		},
		"temperature-to-humidity": {
			{Destination: 0, Source: 69, Length: 1},
			{Destination: 1, Source: 0, Length: 69},
		},
		"humidity-to-location": {
			{Destination: 60, Source: 56, Length: 37},
			{Destination: 56, Source: 93, Length: 4},
		},
	}
}

// ExampleTables returns ExampleRules built into tables.
func ExampleTables() map[string]*rangemap.Table {
	out := make(map[string]*rangemap.Table)
	for name, rules := range ExampleRules() {
		out[name] = rangemap.MustTable(rules...)
	}
	return out
}

// ExampleText is the worked example in the puzzle's text format.
var ExampleText = strings.Join([]string{
	"seeds: 79 14 55 13",
	"",
	"seed-to-soil map:",
	"50 98 2",
	"52 50 48",
	"",
	"soil-to-fertilizer map:",
	"0 15 37",
	"37 52 2",
	"39 0 15",
	"",
	"fertilizer-to-water map:",
	"49 53 8",
	"0 11 42",
	"42 0 7",
	"57 7 4",
	"",
	"water-to-light map:",
	"88 18 7",
	"18 25 70",
	"",
	"light-to-temperature map:",
	"45 77 23",
	"81 45 19",
	"68 64 13",
	"",
	"temperature-to-humidity map:",
	"0 69 1",
	"1 0 69",
	"",
	"humidity-to-location map:",
	"60 56 37",
	"56 93 4",
}, "\n") + "\n"

// ExampleHCL is the worked example in the HCL almanac format.
const ExampleHCL = `
seeds = [79, 14, 55, 13]

stage "seed-to-soil" {
  rule {
    destination = 50
    source      = 98
    length      = 2
  }
  rule {
    destination = 52
    source      = 50
    length      = 48
  }
}

stage "soil-to-fertilizer" {
  rule {
    destination = 0
    source      = 15
    length      = 37
  }
  rule {
    destination = 37
    source      = 52
    length      = 2
  }
  rule {
    destination = 39
    source      = 0
    length      = 15
  }
}

stage "fertilizer-to-water" {
  rule {
    destination = 49
    source      = 53
    length      = 8
  }
  rule {
    destination = 0
    source      = 11
    length      = 42
  }
  rule {
    destination = 42
    source      = 0
    length      = 7
  }
  rule {
    destination = 57
    source      = 7
    length      = 4
  }
}

stage "water-to-light" {
  rule {
    destination = 88
    source      = 18
    length      = 7
  }
  rule {
    destination = 18
    source      = 25
    length      = 70
  }
}

stage "light-to-temperature" {
  rule {
    destination = 45
    source      = 77
    length      = 23
  }
  rule {
    destination = 81
    source      = 45
    length      = 19
  }
  rule {
    destination = 68
    source      = 64
    length      = 13
  }
}

stage "temperature-to-humidity" {
  rule {
    destination = 0
    source      = 69
    length      = 1
  }
  rule {
    destination = 1
    source      = 0
    length      = 69
  }
}

stage "humidity-to-location" {
  rule {
    destination = 60
    source      = 56
    length      = 37
  }
  rule {
    destination = 56
    source      = 93
    length      = 4
  }
}
`
