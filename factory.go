package flyweight

import (
	"context"

	"github.com/go-leo/flyweight/factory"
)

// Factory adapts the registry to the error returning factory.Factory contract.
// Unknown keys fail with an UnknownUnitError and a closed registry with ErrRegistryClosed.
func (r *Registry) Factory() factory.Factory[UnitType, string] {
	return factory.Func[UnitType, string](func(ctx context.Context, key string) (UnitType, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		unit, ok := r.Lookup(key)
		if ok {
			return unit, nil
		}
		if r.closed() {
			return nil, ErrRegistryClosed
		}
		return nil, UnknownUnitError{Key: key}
	})
}
