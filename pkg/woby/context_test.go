package woby

import (
	"errors"
	"testing"

	"github.com/woby-dev/woby/pkg/reactive"
)

func TestContextScoping(t *testing.T) {
	rt, doc := setup(t)
	theme := CreateContext("light")

	var inside, sibling, nested string
	var missing error
	reader := func(out *string) Component {
		return func(c *Ctx, _ Props) any {
			*out = theme.Use(c).Get()
			return nil
		}
	}

	tree := []any{
		theme.Provider(reactive.Static("dark"),
			H("div", nil, C(reader(&inside), nil),
				theme.Provider(reactive.Static("blue"), C(reader(&nested), nil)),
			),
		),
		C(reader(&sibling), nil),
		C(func(c *Ctx, _ Props) any {
			_, missing = theme.Require(c)
			return nil
		}, nil),
	}

	if _, err := Render(rt, tree, doc.Body()); err != nil {
		t.Fatal(err)
	}
	if inside != "dark" {
		t.Errorf("descendant read %q, want dark", inside)
	}
	if nested != "blue" {
		t.Errorf("nearest provider should win, got %q", nested)
	}
	if sibling != "light" {
		t.Errorf("sibling read %q, want the default", sibling)
	}
	if !errors.Is(missing, ErrMissingContext) {
		t.Errorf("Require outside a provider = %v", missing)
	}
}

func TestContextLookupDistinguishesDefault(t *testing.T) {
	rt, doc := setup(t)
	ctx := CreateContext(0)
	var found bool

	_, err := Render(rt, C(func(c *Ctx, _ Props) any {
		_, found = ctx.Lookup(c)
		return nil
	}, nil), doc.Body())
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("Lookup without provider should report not found")
	}
	if ctx.Default() != 0 {
		t.Error("Default mismatch")
	}
}

func TestReactiveProviderValue(t *testing.T) {
	rt, doc := setup(t)
	theme := CreateContext("light")
	value := reactive.NewSignal(rt, "dark")

	consumer := func(c *Ctx, _ Props) any {
		return H("span", nil, theme.Use(c))
	}
	if _, err := Render(rt, theme.Provider(value, C(consumer, nil)), doc.Body()); err != nil {
		t.Fatal(err)
	}
	_ = value.Set("sepia")
	if got := html(doc.Body()); got != "<span>sepia</span>" {
		t.Errorf("got %s", got)
	}
}

func TestProviderBindingEndsWithOwner(t *testing.T) {
	rt, doc := setup(t)
	theme := CreateContext("light")
	var captured reactive.Accessor[string]
	var owner *reactive.Owner

	consumer := func(c *Ctx, _ Props) any {
		captured = theme.Use(c)
		owner = c.Owner()
		return nil
	}
	dispose, err := Render(rt, theme.Provider(reactive.Static("dark"), C(consumer, nil)), doc.Body())
	if err != nil {
		t.Fatal(err)
	}
	dispose()

	if captured.Get() != "dark" {
		t.Error("captured accessor should keep its value")
	}
	if _, ok := owner.Lookup(theme.key); ok {
		t.Error("disposed scope should no longer resolve the binding")
	}
}

func TestUseMountedContext(t *testing.T) {
	rt, doc := setup(t)
	theme := CreateContext("light")
	var mc MountedContext[string]
	var beforeMount string

	consumer := func(c *Ctx, _ Props) any {
		mc = UseMountedContext(c, theme)
		beforeMount = mc.Context.Get()
		return H("span", Props{"ref": mc.Ref}, mc.Context)
	}
	tree := theme.Provider(reactive.Static("dark"), C(consumer, nil))

	if _, err := Render(rt, tree, doc.Body()); err != nil {
		t.Fatal(err)
	}
	if beforeMount != "light" {
		t.Errorf("before mount read %q, want the default", beforeMount)
	}
	if got := html(doc.Body()); got != "<span>dark</span>" {
		t.Errorf("got %s", got)
	}
	if !mc.Resolved.Get() {
		t.Error("Resolved should be true once attached under a provider")
	}
}

func TestOwnerOfSkipsDisposedOwners(t *testing.T) {
	_, doc := setup(t)
	outer := doc.CreateElement("div")
	inner := doc.CreateElement("span")
	_ = outer.AppendChild(inner)

	live := reactive.NewOwner(nil)
	dead := reactive.NewOwner(nil)
	Publish(outer, live)
	Publish(inner, dead)
	dead.Dispose()

	if OwnerOf(inner) != live {
		t.Error("OwnerOf should skip disposed owners")
	}
	if OwnerOf(doc.CreateElement("p")) != nil {
		t.Error("unstamped detached node should have no owner")
	}
}
