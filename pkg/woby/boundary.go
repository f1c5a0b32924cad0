package woby

import (
	"github.com/woby-dev/woby/pkg/dom"
	"github.com/woby-dev/woby/pkg/reactive"
)

type boundaryKey struct{}

// ErrorBoundary renders children and switches to fallback(err) when their
// construction fails, or when a dynamic range below it fails to rebuild
// later on. A nil fallback renders nothing.
func ErrorBoundary(fallback func(err error) any, children ...any) *VNode {
	return &VNode{Kind: KindBoundary, Fallback: fallback, Children: Normalize(children...)}
}

func (b *builder) buildBoundary(c *Ctx, v *VNode) ([]dom.Node, error) {
	var failed *reactive.Signal[error]
	b.rt.WithOwner(c.owner, func() {
		failed = reactive.NewSignal[error](b.rt, nil,
			reactive.WithName("boundary"),
			reactive.WithEquals(func(x, y error) bool { return x == y }),
		)
	})
	return b.buildDynamic(c, func() any {
		if err := failed.Get(); err != nil {
			return fallbackNode(v.Fallback, err)
		}
		return &VNode{Kind: kindCatch, Children: v.Children, Fallback: v.Fallback, failed: failed}
	})
}

// buildCatch builds the children of a boundary under an owner that
// publishes the boundary. Construction errors render the fallback directly.
func (b *builder) buildCatch(c *Ctx, v *VNode) ([]dom.Node, error) {
	owner := reactive.NewOwner(c.owner)
	owner.SetValue(boundaryKey{}, v.failed)

	nodes, err := b.buildChildren(c.with(owner), v.Children)
	if err == nil {
		return nodes, nil
	}
	owner.Dispose()
	b.rt.Logger().Debug("error boundary caught", "error", err)
	return b.build(c, fallbackNode(v.Fallback, err))
}

func fallbackNode(fallback func(error) any, err error) *VNode {
	if fallback == nil {
		return nil
	}
	out, callErr := callThunk(func() any { return fallback(err) })
	if callErr != nil {
		return &VNode{Kind: kindError, err: callErr}
	}
	return toVNode(out)
}
