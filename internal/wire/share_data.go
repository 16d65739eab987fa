package wire

// ShareData is the body carried by a share string, independent of
// which wire format (Binary or Textual) it was read from or will be
// written as.
type ShareData struct {
	ShamirData []byte
	Signature  [][]byte // nil when the share carries no signature
	Proof      []byte   // nil when the share carries no signature; an encoded proof otherwise
}

// Signed reports whether this body carries a signature bundle.
func (d ShareData) Signed() bool {
	return len(d.Signature) > 0
}
