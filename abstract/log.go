package abstract

import logging "github.com/op/go-logging"

const module = "segtree"

var log = logging.MustGetLogger(module)

func init() {
	// Construction and range writes log at debug; callers opt in with
	// logging.SetLevel(logging.DEBUG, "segtree").
	logging.SetLevel(logging.WARNING, module)
}
