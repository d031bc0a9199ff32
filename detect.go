package savekit

import (
	"os"

	"github.com/sirupsen/logrus"
)

// logger receives boundary diagnostics (I/O failures, gate rejections).
// Detection itself never logs; only the path entry point does.
var logger = logrus.StandardLogger()

// SetLogger replaces the package logger. Pass nil to restore the
// standard logger.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	logger = l
}

// DetectFromBytes classifies a raw buffer. The hint is advisory; ctx may
// be nil, which makes context-dependent recognizers decline. The buffer
// is never mutated, and exactly one result variant is populated on a
// match; everything else yields KindNone.
func DetectFromBytes(data []byte, hint Hint, ctx *ReferenceContext) *DetectionResult {
	n := int64(len(data))
	if TooSmall(n) || TooBig(n) {
		return None()
	}

	for _, r := range recognizers {
		if res, ok := r.TryRecognize(data, hint, ctx); ok {
			return res
		}
	}
	return None()
}

// DetectFromPath reads a file and classifies its contents. The size gate
// is applied against the file's reported length before the bytes are
// loaded, so pointing at an arbitrarily large file never allocates. Any
// I/O failure is logged and folded into a KindNone result; this entry
// point never returns an error to the caller.
func DetectFromPath(path string, ctx *ReferenceContext) *DetectionResult {
	info, err := os.Stat(path)
	if err != nil {
		logger.WithError(&DetectionError{Op: "stat", Path: path, Err: err}).
			Warn("detection skipped: file not accessible")
		return None()
	}

	if TooSmall(info.Size()) {
		logger.WithFields(logrus.Fields{"path": path, "size": info.Size()}).
			WithError(ErrTooSmall).Debug("detection skipped")
		return None()
	}
	if TooBig(info.Size()) {
		logger.WithFields(logrus.Fields{"path": path, "size": info.Size()}).
			WithError(ErrTooBig).Debug("detection skipped")
		return None()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.WithError(&DetectionError{Op: "read", Path: path, Err: err}).
			Warn("detection skipped: file not readable")
		return None()
	}

	res := DetectFromBytes(data, HintFromPath(path), ctx)
	if !res.Recognized() {
		logger.WithField("path", path).WithError(ErrUnrecognized).Debug("detection finished")
	}
	return res
}
