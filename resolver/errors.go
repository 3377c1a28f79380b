package resolver

import (
	"github.com/teranos/typedoc/errors"
	"github.com/teranos/typedoc/model"
)

// newUnresolvedError reports a type expression no dispatch rule matched.
// This is fatal: an unrepresentable shape must fail loudly rather than
// silently producing an incomplete tree.
func newUnresolvedError(t model.Type, enclosing model.Declaration) error {
	err := errors.Newf("no resolution rule matched type %q", t.Text(model.RenderDefault))
	err = errors.Mark(err, errors.ErrUnresolvedType)
	err = errors.WithSafeDetails(err, "type class: %s", t.Class().String())
	if enclosing != nil {
		err = errors.WithDetailf(err, "declaration: %s", enclosing.Text())
		if p := enclosing.Path(); p != "" {
			err = errors.WithDetailf(err, "file: %s", p)
		}
	}
	return err
}

// newMissingDeclarationError reports a symbol that is structurally required
// to carry a declaration but has none.
func newMissingDeclarationError(name string, enclosing model.Declaration) error {
	err := errors.Newf("symbol %q has no declaration", name)
	err = errors.Mark(err, errors.ErrMissingDeclaration)
	if enclosing != nil {
		err = errors.WithDetailf(err, "within: %s", enclosing.Text())
	}
	return err
}
