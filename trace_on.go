//go:build cder_debug

package cder

import "log"

// trace emits a structured line describing a codec decision point,
// grounded on the teacher's trc_on.go/ll_on.go debug build.
func trace(op string, k Kind, msg string) {
	log.Printf("cder[%s]: kind=%s %s", op, k, msg)
}
