package flyweight

import (
	"fmt"

	"github.com/go-leo/flyweight/decorator"
	"go.uber.org/zap"
)

// LookupFunc resolves a key to a shared unit. (*Registry).Lookup is a LookupFunc.
type LookupFunc func(key string) (UnitType, bool)

// DecorateLookup wraps lookup with decorators, the first being the outermost.
func DecorateLookup(lookup LookupFunc, decorators ...decorator.Decorator[LookupFunc]) LookupFunc {
	return decorator.Chain(lookup, decorators...)
}

// LogLookups logs every lookup, hits at debug level and misses at warn level.
// The unit returned by the wrapped lookup is passed through untouched.
func LogLookups(logger *zap.Logger) decorator.Decorator[LookupFunc] {
	return decorator.Func[LookupFunc](func(next LookupFunc) LookupFunc {
		return func(key string) (UnitType, bool) {
			unit, ok := next(key)
			if !ok {
				logger.Warn("unit not found", zap.String("key", key))
				return nil, false
			}
			logger.Debug("unit found",
				zap.String("key", key),
				zap.String("name", unit.Name()),
				zap.String("instance", fmt.Sprintf("%p", unit)),
			)
			return unit, true
		}
	})
}

// CountLookups counts the hits per key in counts. counts must not be nil.
func CountLookups(counts map[string]int) decorator.Decorator[LookupFunc] {
	return decorator.Func[LookupFunc](func(next LookupFunc) LookupFunc {
		return func(key string) (UnitType, bool) {
			unit, ok := next(key)
			if ok {
				counts[key]++
			}
			return unit, ok
		}
	})
}
