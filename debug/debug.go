package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
	Match  bool
	Diff   bool
	CLI    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("YT_DEBUG_PARSE")
	d.Encode = boolEnv("YT_DEBUG_ENCODE")
	d.Match = boolEnv("YT_DEBUG_MATCH")
	d.Diff = boolEnv("YT_DEBUG_DIFF")
	d.CLI = boolEnv("YT_DEBUG_CLI")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Match() bool {
	return d.Match
}
func Diff() bool {
	return d.Diff
}
func CLI() bool {
	return d.CLI
}
