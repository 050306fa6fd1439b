package dbg

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/DubiousDoggo/delaunay-visualizer/quadedge"
	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary comparable values into random readable names. It
// flagrantly leaks memory but generates the names lazily, so it's not a
// problem unless you're actually using it. This is helpful for telling records
// apart in step traces, where "17[2]" and "71[2]" look alike.

var (
	memo map[interface{}]string
	used map[string]bool
)

func init() {
	memo = make(map[interface{}]string)
	used = make(map[string]bool)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Name returns the same name for equal keys for the life of the process, and
// different names for different keys. It is not safe for concurrent use.
func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	for i := 2; used[r]; i++ {
		r = fmt.Sprintf("%s%s%d", strings.Title(petname.Adjective()), strings.Title(petname.Name()), i)
	}
	used[r] = true
	memo[obj] = r
	return r
}

type recordKey struct {
	graph *quadedge.Graph
	index int
}

// EdgeName names the record behind e, followed by the rotation. All four
// quarters of a record share the name. A freed record's name is handed to
// whatever reuses its slot, so only name live edges. Like Name, it is not safe
// for concurrent use.
func EdgeName(e quadedge.Edge) string {
	if e.IsZero() {
		return "Ø"
	}
	return fmt.Sprintf("%s[%d]", Name(recordKey{e.Graph(), e.Record()}), e.Rotation())
}
