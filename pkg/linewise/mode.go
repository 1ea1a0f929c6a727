package linewise

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeChain stacks the layers named by a normalized binmode on top of r,
// leftmost layer innermost, the way PerlIO applies layer lists. An empty
// mode means DefaultBinmode.
func decodeChain(r io.Reader, binmode string) (io.Reader, error) {
	mode := NormalizeBinmode(binmode)
	if mode == "" {
		mode = DefaultBinmode
	}
	for _, layer := range strings.Split(mode, ":") {
		if layer == "" {
			continue
		}
		t, err := layerTransformer(layer)
		if err != nil {
			return nil, err
		}
		if t != nil {
			r = transform.NewReader(r, t)
		}
	}
	return r, nil
}

func layerTransformer(layer string) (transform.Transformer, error) {
	switch {
	case layer == "raw" || layer == "bytes":
		// pass-through, no transformation
		return nil, nil
	case layer == "utf8":
		return unicode.UTF8.NewDecoder(), nil
	case layer == "crlf":
		return crlfTransformer{}, nil
	case strings.HasPrefix(layer, "encoding(") && strings.HasSuffix(layer, ")"):
		name := layer[len("encoding(") : len(layer)-1]
		enc, err := ianaindex.IANA.Encoding(name)
		if err != nil || enc == nil {
			return nil, fmt.Errorf("unknown encoding '%s'", name)
		}
		return enc.NewDecoder(), nil
	}
	return nil, fmt.Errorf("unknown binmode layer '%s'", layer)
}

// crlfTransformer rewrites CR LF pairs to LF. Lone CR bytes pass through.
type crlfTransformer struct{}

func (crlfTransformer) Reset() {}

func (crlfTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c == '\r' {
			if nSrc+1 >= len(src) {
				if !atEOF {
					// pair may straddle the chunk boundary
					return nDst, nSrc, transform.ErrShortSrc
				}
			} else if src[nSrc+1] == '\n' {
				if nDst >= len(dst) {
					return nDst, nSrc, transform.ErrShortDst
				}
				dst[nDst] = '\n'
				nDst++
				nSrc += 2
				continue
			}
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = c
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}
