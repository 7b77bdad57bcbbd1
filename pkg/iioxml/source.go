package iioxml

import (
	"strings"

	"github.com/openiio/iio-go/pkg/model"
)

// xmlHeader is the declaration a serialized description starts with.
// SourceFromArg uses it to tell inline documents from file paths.
const xmlHeader = `<?xml version="1.0" encoding="utf-8"?>`

type sourceKind uint8

const (
	sourceXML sourceKind = iota
	sourceFile
	sourceContext
)

// Source selects where a context description comes from: in-memory
// XML bytes, a file on disk, or an existing context to clone.
type Source struct {
	kind sourceKind
	data []byte
	path string
	ctx  *model.Context
}

// FromXML builds from an in-memory description document.
func FromXML(data []byte) Source {
	return Source{kind: sourceXML, data: data}
}

// FromFile builds from a description document on disk.
func FromFile(path string) Source {
	return Source{kind: sourceFile, path: path}
}

// FromContext clones an existing context: the context is encoded back
// to its description and re-built, yielding an independent copy that
// is Equal to the original.
func FromContext(ctx *model.Context) Source {
	return Source{kind: sourceContext, ctx: ctx}
}

// SourceFromArg interprets a backend argument: an argument starting
// with the XML declaration is an inline document, anything else is a
// file path.
func SourceFromArg(arg string) Source {
	if strings.HasPrefix(arg, xmlHeader) {
		return FromXML([]byte(arg))
	}
	return FromFile(arg)
}
