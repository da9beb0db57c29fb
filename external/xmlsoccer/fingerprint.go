package xmlsoccer

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/valyala/bytebufferpool"
)

const fingerprintPrefix = "xmlsoccer:"

// Fingerprint derives the cache key of a call from the method name and its
// coerced positional arguments. The api key is not part of it.
func Fingerprint(method string, args ...any) (string, error) {
	sig, err := LookupMethod(method)
	if err != nil {
		return "", err
	}
	return fingerprintOf(sig.Name, sig.Bind(args)), nil
}

// fingerprintOf writes every name, type and value length-prefixed so that no
// value, whatever bytes it holds, can be mistaken for a field boundary.
func fingerprintOf(method string, args []Argument) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeField(buf, strings.ToLower(method))
	buf.B = strconv.AppendInt(buf.B, int64(len(args)), 10)
	for _, arg := range args {
		writeField(buf, strings.ToLower(arg.Name))
		writeField(buf, arg.Type.String())
		items, isArray := arg.Value.([]string)
		if !isArray {
			_ = buf.WriteByte('s')
			writeField(buf, arg.Encoded)
			continue
		}
		_ = buf.WriteByte('a')
		buf.B = strconv.AppendInt(buf.B, int64(len(items)), 10)
		for _, item := range items {
			writeField(buf, item)
		}
	}

	return fingerprintPrefix + strings.ToLower(method) + ":" + strconv.FormatUint(xxhash.Sum64(buf.B), 16)
}

// writeField appends "<len>:<value>".
func writeField(buf *bytebufferpool.ByteBuffer, value string) {
	buf.B = strconv.AppendInt(buf.B, int64(len(value)), 10)
	_ = buf.WriteByte(':')
	_, _ = buf.WriteString(value)
}
