package woby

import (
	"github.com/woby-dev/woby/pkg/dom"
	"github.com/woby-dev/woby/pkg/reactive"
)

// MountOption configures Mount.
type MountOption func(*mountConfig)

type mountConfig struct {
	parent *reactive.Owner
	host   *dom.Element
}

// WithParent makes the mount's owner a child of parent, so contexts bound
// above parent are visible inside.
func WithParent(parent *reactive.Owner) MountOption {
	return func(c *mountConfig) {
		c.parent = parent
	}
}

// WithHost records the custom element the tree is mounted in. The host
// publishes the root owner until a Slot built inside the tree replaces it.
func WithHost(host *dom.Element) MountOption {
	return func(c *mountConfig) {
		c.host = host
	}
}

// Root is a mounted tree.
type Root struct {
	owner     *reactive.Owner
	container *dom.Element
	nodes     []dom.Node
	disposed  bool
}

// Mount builds root and appends it to container. Construction, insertion
// and deferred mount effects run in one batch; any error disposes what was
// built and is returned.
func Mount(rt *reactive.Runtime, root any, container *dom.Element, opts ...MountOption) (*Root, error) {
	var cfg mountConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &builder{rt: rt, doc: container.OwnerDocument()}
	owner := reactive.NewOwner(cfg.parent)
	c := &Ctx{b: b, owner: owner, host: cfg.host}
	if cfg.host != nil {
		Publish(cfg.host, owner)
	}
	r := &Root{owner: owner, container: container}

	var buildErr error
	flushErr := rt.Batch(func() {
		rt.WithOwner(owner, func() {
			rt.Untrack(func() {
				nodes, err := b.build(c, toVNode(root))
				if err != nil {
					buildErr = err
					return
				}
				for _, n := range nodes {
					if err := container.AppendChild(n); err != nil {
						buildErr = err
						return
					}
					r.nodes = append(r.nodes, n)
				}
				owner.RunPending()
				buildErr = b.takeDeferredErr()
			})
		})
	})
	if buildErr == nil {
		buildErr = flushErr
	}
	if buildErr != nil {
		r.Dispose()
		return nil, buildErr
	}
	return r, nil
}

// Render mounts root into container and returns its dispose function.
func Render(rt *reactive.Runtime, root any, container *dom.Element) (dispose func(), err error) {
	r, err := Mount(rt, root, container)
	if err != nil {
		return nil, err
	}
	return r.Dispose, nil
}

// Owner returns the root owner.
func (r *Root) Owner() *reactive.Owner { return r.owner }

// Nodes returns the top-level nodes inserted into the container.
func (r *Root) Nodes() []dom.Node { return r.nodes }

// Dispose runs cleanups, then removes the nodes from the container.
func (r *Root) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	r.owner.Dispose()
	for _, n := range r.nodes {
		if n.Parent() == r.container {
			dom.Remove(n)
		}
	}
	r.nodes = nil
}
