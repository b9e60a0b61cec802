package api

import (
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/opentracing/opentracing-go/log"
)

// GetSpanName returns the name of a span started by a tracing decorator
func GetSpanName(prefix, funcName string) string {
	return prefix + ":" + funcName
}

// FinishSpan finishes a span
func FinishSpan(span opentracing.Span) {
	span.Finish()
}

// FinishSpanWithError finishes a span, tagging it as failed when err is
// not nil
func FinishSpanWithError(span opentracing.Span, err error) {
	if err != nil {
		ext.Error.Set(span, true)
		span.LogFields(log.Error(err))
	}
	FinishSpan(span)
}
