package codec

import "github.com/codebot/zenoh/core"

// ReadWireExpr reads a varint key id and, only when hasSuffix is true (the
// caller passes in the enclosing message's N flag), a length-prefixed
// suffix string. This is the conditional read described in spec §4.B,
// taken here as a plain boolean argument rather than a separate
// decorator type.
func (r *Reader) ReadWireExpr(hasSuffix bool) (core.WireExpr, error) {
	id, err := r.ReadVarint()
	if err != nil {
		return core.WireExpr{}, err
	}
	if !hasSuffix {
		return core.WireExpr{ID: id}, nil
	}
	suffix, err := r.ReadString()
	if err != nil {
		return core.WireExpr{}, err
	}
	return core.WireExpr{ID: id, Suffix: suffix}, nil
}

// WriteWireExpr writes the key id, followed by the suffix iff present.
// The caller is expected to have already set the N flag from
// x.HasSuffix() before calling this.
func (w *Writer) WriteWireExpr(x core.WireExpr) error {
	if err := w.WriteVarint(x.ID); err != nil {
		return err
	}
	if x.HasSuffix() {
		return w.WriteString(x.Suffix)
	}
	return nil
}
