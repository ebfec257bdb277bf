package parse

import (
	"github.com/tliron/commonlog"

	"github.com/dhamidi/pcomb/stream"
)

// The backend is chosen by the program at init time, so loggers are looked
// up on use rather than stored in package variables.
func logger() commonlog.Logger {
	return commonlog.GetLogger("pcomb.parse")
}

// Trace wraps p and logs, at debug level, where it starts and whether it
// succeeded. It behaves exactly like p.
func Trace[C stream.Cursor, O any](name string, p Parser[C, O]) Func[C, O] {
	return func(c *C) (O, bool) {
		log := logger()
		if !log.AllowLevel(commonlog.Debug) {
			return p.Parse(c)
		}
		start := (*c).Position()
		log.Debugf("%s: enter at %d", name, start)
		out, ok := p.Parse(c)
		end := (*c).Position()
		if ok {
			log.Debugf("%s: matched %d..%d", name, start, end)
		} else {
			log.Debugf("%s: failed at %d (consumed %t)", name, start, end != start)
		}
		return out, ok
	}
}
