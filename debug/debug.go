// Package debug provides env-gated debug logging for conversion and
// rendering. Set SERIATE_DEBUG_CONVERT or SERIATE_DEBUG_RENDER to a
// true value to enable the corresponding traces on stderr.
package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

type debug struct {
	Convert bool
	Render  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Convert = boolEnv("SERIATE_DEBUG_CONVERT")
	d.Render = boolEnv("SERIATE_DEBUG_RENDER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Convert() bool {
	return d.Convert
}
func Render() bool {
	return d.Render
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// Dump writes a deep dump of arbitrary values.
func Dump(vs ...any) {
	fmt.Fprint(os.Stderr, spew.Sdump(vs...))
}
