//go:build !windows && !plan9

package syslogsink

import (
	"log/syslog"

	"github.com/pkg/errors"
)

// New connects to the local system log daemon and returns a sink
// submitting messages under the given tag.
func New(tag string, opts ...Option) (*Sink, error) {
	w, err := syslog.New(syslog.LOG_INFO|syslog.LOG_USER, tag)
	if err != nil {
		return nil, errors.Wrap(err, "syslogsink: dial system log")
	}
	return newWith(w, opts...), nil
}
