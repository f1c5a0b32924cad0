package el

import "github.com/woby-dev/woby/pkg/woby"

// Type aliases for the woby primitives used by the DSL.
type VNode = woby.VNode
type VKind = woby.VKind
type Props = woby.Props
type Attr = woby.Attr
type Component = woby.Component
